package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EvenStart(t *testing.T) {
	s, ok := New(10)
	require.True(t, ok)
	assert.Equal(t, 5, s.First.Count)
	assert.Equal(t, 5, s.Second.Count)

	odd, ok := New(7)
	require.True(t, ok)
	assert.Equal(t, 4, odd.First.Count)
	assert.Equal(t, 3, odd.Second.Count)
}

func TestNew_NotOfferedBelowMinimum(t *testing.T) {
	_, ok := New(1)
	assert.False(t, ok)

	_, ok = New(0)
	assert.False(t, ok)

	assert.False(t, Offered(1))
	assert.True(t, Offered(2))
}

func TestSetFirstSlot_AutoBalance(t *testing.T) {
	s, _ := New(10)

	s = SetFirstSlot(s, 4, 10)
	assert.Equal(t, 4, s.First.Count)
	assert.Equal(t, 6, s.Second.Count)

	s = SetFirstSlot(s, 9, 10)
	assert.Equal(t, 9, s.First.Count)
	assert.Equal(t, 1, s.Second.Count)
}

func TestSetFirstSlot_ClampsToKeepBothSlotsOccupied(t *testing.T) {
	s, _ := New(10)

	s = SetFirstSlot(s, 0, 10)
	assert.Equal(t, 1, s.First.Count)
	assert.Equal(t, 9, s.Second.Count)

	s = SetFirstSlot(s, 15, 10)
	assert.Equal(t, 9, s.First.Count)
	assert.Equal(t, 1, s.Second.Count)
}

func TestSetSlotFlavor(t *testing.T) {
	s, _ := New(8)

	s = SetSlotFlavor(s, 1, "classic-buffalo")
	s = SetSlotFlavor(s, 2, "honey-garlic")
	assert.Equal(t, "classic-buffalo", s.First.FlavorID)
	assert.Equal(t, "honey-garlic", s.Second.FlavorID)

	// Bogus slot index is ignored.
	unchanged := SetSlotFlavor(s, 3, "mystery")
	assert.Equal(t, s, unchanged)
}

func TestComplete_RequiresBothFlavors(t *testing.T) {
	s, _ := New(6)
	assert.False(t, s.Complete())

	s = SetSlotFlavor(s, 1, "lemon-pepper")
	assert.False(t, s.Complete())

	s = SetSlotFlavor(s, 2, "bbq")
	assert.True(t, s.Complete())
}
