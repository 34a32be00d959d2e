// Package allocator maintains the per-category piece distribution of a
// catering box.
//
// A box holds a fixed number of pieces split across the three protein
// categories. Editing one category reallocates the remainder across the
// others proportionally to their previous counts:
//
//	share = round(prior / priorOtherTotal * remaining)
//
// with the last category in iteration order absorbing the exact remainder
// so the total never drifts.
package allocator

// Category identifies one of the protein classes a box can be split across.
type Category string

const (
	CategoryBoneless   Category = "boneless"
	CategoryBoneIn     Category = "bone_in"
	CategoryPlantBased Category = "plant_based"
)

// categoryOrder is the fixed iteration order used by the allocator and the
// presets. Boneless comes first and is the designated remainder category.
var categoryOrder = [...]Category{CategoryBoneless, CategoryBoneIn, CategoryPlantBased}

// Categories returns all categories in allocation order.
func Categories() []Category {
	return categoryOrder[:]
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryBoneless, CategoryBoneIn, CategoryPlantBased:
		return true
	}
	return false
}

// PrepMethod is how plant-based pieces are prepared. Only meaningful while
// the plant-based count is positive.
type PrepMethod string

const (
	PrepUnset PrepMethod = ""
	PrepBaked PrepMethod = "baked"
	PrepFried PrepMethod = "fried"
	PrepSplit PrepMethod = "split"
)

// WingStyle is the cut selection for bone-in pieces.
type WingStyle string

const (
	StyleUnset WingStyle = ""
	StyleMixed WingStyle = "mixed"
	StyleFlats WingStyle = "flats"
	StyleDrums WingStyle = "drums"
)

// BoneInChoice is the bone-in portion of a distribution. A positive count
// always carries a style; it defaults to mixed.
type BoneInChoice struct {
	Count int       `json:"count"`
	Style WingStyle `json:"style,omitempty"`
}

// PlantBasedChoice is the plant-based portion of a distribution. The prep
// method is required once the count is positive, which the validator
// enforces; it is cleared automatically when the count drops to zero.
type PlantBasedChoice struct {
	Count int        `json:"count"`
	Prep  PrepMethod `json:"prep,omitempty"`
}

// Distribution is the per-category piece count for one box. Each category
// carries its own conditional sub-selection so a style can never be attached
// to plant-based pieces or a prep method to wings.
//
// A distribution is only "valid" when the counts sum to the required box
// total; the validator package is the authority on that.
type Distribution struct {
	Boneless   int              `json:"boneless"`
	BoneIn     BoneInChoice     `json:"bone_in"`
	PlantBased PlantBasedChoice `json:"plant_based"`
}

// Count returns the piece count for a single category.
func (d Distribution) Count(c Category) int {
	switch c {
	case CategoryBoneless:
		return d.Boneless
	case CategoryBoneIn:
		return d.BoneIn.Count
	case CategoryPlantBased:
		return d.PlantBased.Count
	}
	return 0
}

// Sum returns the total piece count across all categories.
func (d Distribution) Sum() int {
	total := 0
	for _, c := range categoryOrder {
		total += d.Count(c)
	}
	return total
}

// withCount returns a copy of d with the count for one category replaced.
// Sub-selections are left alone; normalized applies the zero-clear rules.
func (d Distribution) withCount(c Category, n int) Distribution {
	switch c {
	case CategoryBoneless:
		d.Boneless = n
	case CategoryBoneIn:
		d.BoneIn.Count = n
	case CategoryPlantBased:
		d.PlantBased.Count = n
	}
	return d
}

// normalized applies the conditional sub-selection rules: a zeroed category
// loses its sub-selection, and bone-in pieces default to the mixed style.
func (d Distribution) normalized() Distribution {
	if d.PlantBased.Count == 0 {
		d.PlantBased.Prep = PrepUnset
	}
	if d.BoneIn.Count == 0 {
		d.BoneIn.Style = StyleMixed
	} else if d.BoneIn.Style == StyleUnset {
		d.BoneIn.Style = StyleMixed
	}
	return d
}

// WithPrep returns a copy of d with the plant-based prep method set. The
// choice only sticks while plant-based pieces are present.
func (d Distribution) WithPrep(p PrepMethod) Distribution {
	d.PlantBased.Prep = p
	return d.normalized()
}

// WithStyle returns a copy of d with the bone-in style set.
func (d Distribution) WithStyle(s WingStyle) Distribution {
	d.BoneIn.Style = s
	return d.normalized()
}
