package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingworks/catering-configurator-backend/internal/domain/allocator"
)

func kinds(msgs []Message) []Kind {
	out := make([]Kind, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Kind)
	}
	return out
}

func TestValidate_TotalMismatch(t *testing.T) {
	t.Run("deficit reports how many more are needed", func(t *testing.T) {
		d := allocator.Distribution{Boneless: 20}

		msgs := Validate(d, 24)

		require.NotEmpty(t, msgs)
		assert.Equal(t, KindError, msgs[0].Kind)
		assert.Equal(t, "Total must equal 24", msgs[0].Summary)
		assert.Equal(t, "need 4 more", msgs[0].Detail)
		assert.False(t, IsValid(msgs))
	})

	t.Run("excess reports how many over", func(t *testing.T) {
		d := allocator.Distribution{Boneless: 27}

		msgs := Validate(d, 24)

		require.NotEmpty(t, msgs)
		assert.Equal(t, "3 too many", msgs[0].Detail)
	})
}

func TestValidate_PrepMethodRequired(t *testing.T) {
	d := allocator.Distribution{
		Boneless:   12,
		PlantBased: allocator.PlantBasedChoice{Count: 12},
	}

	msgs := Validate(d, 24)

	assert.Contains(t, kinds(msgs), KindError)
	assert.False(t, IsValid(msgs))

	withPrep := d.WithPrep(allocator.PrepBaked)
	assert.True(t, IsValid(Validate(withPrep, 24)))
}

func TestValidate_StyleRequired(t *testing.T) {
	// StyleUnset can only be reached by bypassing the distribution
	// helpers, which always default bone-in to mixed.
	d := allocator.Distribution{
		Boneless: 12,
		BoneIn:   allocator.BoneInChoice{Count: 12, Style: allocator.StyleUnset},
	}

	msgs := Validate(d, 24)

	assert.False(t, IsValid(msgs))
}

func TestValidate_SuccessWhenNoErrors(t *testing.T) {
	d := allocator.Distribution{
		Boneless: 14,
		BoneIn:   allocator.BoneInChoice{Count: 10, Style: allocator.StyleMixed},
	}

	msgs := Validate(d, 24)

	assert.True(t, IsValid(msgs))
	assert.Equal(t, KindSuccess, msgs[0].Kind)
}

func TestValidate_AllFiringRulesIncluded(t *testing.T) {
	// Wrong total and missing prep at once: both errors present, no
	// success message.
	d := allocator.Distribution{
		PlantBased: allocator.PlantBasedChoice{Count: 10},
	}

	msgs := Validate(d, 24)

	assert.Contains(t, msgs[0].Summary, "Total must equal")
	assert.Equal(t, "Preparation method required", msgs[1].Summary)
	assert.NotContains(t, kinds(msgs), KindSuccess)
}

func TestValidate_HeadroomWarningIsDismissibleAndNonBlocking(t *testing.T) {
	d := allocator.Distribution{Boneless: 24}

	msgs := Validate(d, 24)

	require.Len(t, msgs, 2)
	assert.Equal(t, KindSuccess, msgs[0].Kind)
	assert.Equal(t, KindWarning, msgs[1].Kind)
	assert.True(t, msgs[1].Dismissible)
	assert.True(t, IsValid(msgs))
}

func TestValidate_Idempotent(t *testing.T) {
	d := allocator.Distribution{
		Boneless:   10,
		BoneIn:     allocator.BoneInChoice{Count: 8, Style: allocator.StyleFlats},
		PlantBased: allocator.PlantBasedChoice{Count: 6, Prep: allocator.PrepFried},
	}

	first := Validate(d, 24)
	second := Validate(d, 24)

	assert.Equal(t, first, second)
}
