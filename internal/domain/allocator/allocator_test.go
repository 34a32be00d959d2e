package allocator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetQuantity_ProportionalReallocation(t *testing.T) {
	// 24-piece box, all boneless. Moving 6 pieces to bone-in should pull
	// the whole remainder from boneless since it held everything.
	d := Distribution{Boneless: 24}

	got := SetQuantity(d, CategoryBoneIn, 6, 24)

	assert.Equal(t, 18, got.Boneless)
	assert.Equal(t, 6, got.BoneIn.Count)
	assert.Equal(t, 0, got.PlantBased.Count)
	assert.Equal(t, 24, got.Sum())
}

func TestSetQuantity_RemainingZeroZeroesOthers(t *testing.T) {
	d := Distribution{Boneless: 10, BoneIn: BoneInChoice{Count: 8, Style: StyleFlats}}

	got := SetQuantity(d, CategoryPlantBased, 18, 18)

	assert.Equal(t, 0, got.Boneless)
	assert.Equal(t, 0, got.BoneIn.Count)
	assert.Equal(t, 18, got.PlantBased.Count)
}

func TestSetQuantity_AllOthersZero(t *testing.T) {
	t.Run("even remainder splits evenly", func(t *testing.T) {
		d := Distribution{Boneless: 10}

		got := SetQuantity(d, CategoryBoneless, 0, 10)

		assert.Equal(t, 0, got.Boneless)
		assert.Equal(t, 5, got.BoneIn.Count)
		assert.Equal(t, 5, got.PlantBased.Count)
	})

	t.Run("odd remainder goes to last category", func(t *testing.T) {
		d := Distribution{Boneless: 11}

		got := SetQuantity(d, CategoryBoneless, 0, 11)

		assert.Equal(t, 5, got.BoneIn.Count)
		assert.Equal(t, 6, got.PlantBased.Count)
		assert.Equal(t, 11, got.Sum())
	})
}

func TestSetQuantity_ClampsInput(t *testing.T) {
	d := Distribution{Boneless: 24}

	over := SetQuantity(d, CategoryBoneIn, 99, 24)
	assert.Equal(t, 24, over.BoneIn.Count)
	assert.Equal(t, 24, over.Sum())

	under := SetQuantity(d, CategoryBoneIn, -5, 24)
	assert.Equal(t, 0, under.BoneIn.Count)
	assert.Equal(t, 24, under.Sum())
}

func TestSetQuantity_ZeroedCategoryLosesSubSelection(t *testing.T) {
	d := Distribution{
		BoneIn:     BoneInChoice{Count: 12, Style: StyleDrums},
		PlantBased: PlantBasedChoice{Count: 12, Prep: PrepBaked},
	}

	got := SetQuantity(d, CategoryBoneless, 24, 24)

	assert.Equal(t, PrepUnset, got.PlantBased.Prep)
	assert.Equal(t, StyleMixed, got.BoneIn.Style)
}

func TestSetQuantity_SumInvariantUnderRandomEdits(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cats := Categories()

	for _, total := range []int{1, 13, 24, 50} {
		d := Distribution{Boneless: total}
		for i := 0; i < 200; i++ {
			c := cats[rng.Intn(len(cats))]
			d = SetQuantity(d, c, rng.Intn(total+10)-5, total)
			require.Equal(t, total, d.Sum(), "total=%d edit=%d", total, i)
			for _, cc := range cats {
				require.GreaterOrEqual(t, d.Count(cc), 0)
			}
		}
	}
}

func TestSetQuantity_Idempotent(t *testing.T) {
	d := Distribution{Boneless: 14, BoneIn: BoneInChoice{Count: 6, Style: StyleMixed}, PlantBased: PlantBasedChoice{Count: 4, Prep: PrepFried}}

	once := SetQuantity(d, CategoryBoneIn, 8, 24)
	twice := SetQuantity(once, CategoryBoneIn, 8, 24)

	assert.Equal(t, once, twice)
}

func TestApplyPreset_ExactTotals(t *testing.T) {
	for _, total := range []int{13, 24, 50} {
		for _, p := range Presets() {
			d, err := ApplyPreset(Distribution{}, p, total)
			require.NoError(t, err)
			assert.Equal(t, total, d.Sum(), "preset=%s total=%d", p, total)
		}
	}
}

func TestApplyPreset_BalancedMixAt13(t *testing.T) {
	d, err := ApplyPreset(Distribution{}, PresetBalancedMix, 13)
	require.NoError(t, err)

	assert.Equal(t, 9, d.Boneless)
	assert.Equal(t, 4, d.BoneIn.Count)
	assert.Equal(t, 0, d.PlantBased.Count)
}

func TestApplyPreset_TraditionalAt13(t *testing.T) {
	// Boneless takes the remainder, so the odd piece lands there.
	d, err := ApplyPreset(Distribution{}, PresetTraditional, 13)
	require.NoError(t, err)

	assert.Equal(t, 7, d.Boneless)
	assert.Equal(t, 6, d.BoneIn.Count)
}

func TestApplyPreset_ClearsSubSelections(t *testing.T) {
	prior := Distribution{
		BoneIn:     BoneInChoice{Count: 6, Style: StyleFlats},
		PlantBased: PlantBasedChoice{Count: 6, Prep: PrepFried},
	}

	d, err := ApplyPreset(prior, PresetAllBoneless, 24)
	require.NoError(t, err)

	assert.Equal(t, PrepUnset, d.PlantBased.Prep)
	assert.Equal(t, StyleMixed, d.BoneIn.Style)
}

func TestApplyPreset_KeepsSubSelectionsWhenCategorySurvives(t *testing.T) {
	prior := Distribution{
		Boneless: 12,
		BoneIn:   BoneInChoice{Count: 12, Style: StyleDrums},
	}

	d, err := ApplyPreset(prior, PresetTraditional, 24)
	require.NoError(t, err)

	assert.Equal(t, 12, d.BoneIn.Count)
	assert.Equal(t, StyleDrums, d.BoneIn.Style)
}

func TestApplyPreset_UnknownName(t *testing.T) {
	_, err := ApplyPreset(Distribution{}, Preset("spicy_mystery"), 24)
	assert.Error(t, err)
}
