package allocator

import "fmt"

// Preset names a stock distribution shape offered to the operator.
type Preset string

const (
	PresetBalancedMix   Preset = "balanced_mix"
	PresetAllBoneless   Preset = "all_boneless"
	PresetTraditional   Preset = "traditional"
	PresetAllPlantBased Preset = "all_plant_based"
)

// fraction is a non-negative rational target share for one category.
type fraction struct {
	num, den int
}

// presetTargets holds the fractional targets for each preset. Fractions per
// preset sum to 1. Boneless is always resolved last as requiredTotal minus
// the floored shares of the other categories, which makes every preset land
// exactly on the required total for any positive total.
var presetTargets = map[Preset]map[Category]fraction{
	PresetBalancedMix: {
		CategoryBoneless:   {2, 3},
		CategoryBoneIn:     {1, 3},
		CategoryPlantBased: {0, 1},
	},
	PresetAllBoneless: {
		CategoryBoneless:   {1, 1},
		CategoryBoneIn:     {0, 1},
		CategoryPlantBased: {0, 1},
	},
	PresetTraditional: {
		CategoryBoneless:   {1, 2},
		CategoryBoneIn:     {1, 2},
		CategoryPlantBased: {0, 1},
	},
	PresetAllPlantBased: {
		CategoryBoneless:   {0, 1},
		CategoryBoneIn:     {0, 1},
		CategoryPlantBased: {1, 1},
	},
}

// Presets returns all preset names in menu order.
func Presets() []Preset {
	return []Preset{PresetBalancedMix, PresetAllBoneless, PresetTraditional, PresetAllPlantBased}
}

// ApplyPreset resolves a named preset into a distribution summing exactly to
// requiredTotal. Non-remainder categories are floored; Boneless receives
// whatever is left. Sub-selections carried on d survive unless the preset
// zeroes their category, in which case they are cleared (prep) or reset to
// mixed (style).
func ApplyPreset(d Distribution, name Preset, requiredTotal int) (Distribution, error) {
	targets, ok := presetTargets[name]
	if !ok {
		return d, fmt.Errorf("unknown preset %q", name)
	}
	if requiredTotal < 0 {
		requiredTotal = 0
	}

	out := d
	allocated := 0
	for _, c := range categoryOrder[1:] {
		f := targets[c]
		q := requiredTotal * f.num / f.den
		out = out.withCount(c, q)
		allocated += q
	}
	out = out.withCount(CategoryBoneless, requiredTotal-allocated)

	return out.normalized(), nil
}
