// Package boxes tracks a multi-box order: one shared template configuration
// plus sparse per-box overrides.
//
// The effective configuration for box i is overrides[i] when present,
// otherwise the template. Overrides are created only by explicit per-box
// edits and are never touched by later template edits; the pricing
// aggregator depends on that.
package boxes

import (
	"github.com/wingworks/catering-configurator-backend/internal/domain/allocator"
	"github.com/wingworks/catering-configurator-backend/internal/domain/splitter"
)

// MinBoxCount is the smallest catering order we accept.
const MinBoxCount = 1

// Configuration is the full set of choices for one box. It is used both as
// the shared template and as a per-box override.
type Configuration struct {
	Mix allocator.Distribution `json:"mix"`

	// FlavorID is the single flavor choice; Split replaces it when the
	// box's flavor-bearing pieces are divided across two flavors.
	FlavorID string              `json:"flavor_id,omitempty"`
	Split    *splitter.Selection `json:"split,omitempty"`

	// Two dips are always required; one side and one dessert.
	Dips    [2]string `json:"dips"`
	SideID  string    `json:"side_id"`
	Dessert string    `json:"dessert_id"`
	Notes   string    `json:"notes,omitempty"`
}

// Collection is the set of boxes in one order.
type Collection struct {
	BoxCount  int
	Template  Configuration
	overrides map[int]Configuration
}

// NewCollection creates a collection of boxCount boxes all following the
// template. boxCount is raised to the minimum if needed.
func NewCollection(boxCount int, template Configuration) Collection {
	if boxCount < MinBoxCount {
		boxCount = MinBoxCount
	}
	return Collection{
		BoxCount:  boxCount,
		Template:  template,
		overrides: map[int]Configuration{},
	}
}

// SetTemplate replaces the shared template. Boxes without an override adopt
// it immediately; overridden boxes keep their override.
func SetTemplate(c Collection, template Configuration) Collection {
	c.Template = template
	return c
}

// SetOverride pins a configuration to exactly one box. Indices are 1-based;
// an index outside [1, BoxCount] is a no-op rather than an error, since it
// can only come from a stale UI reference.
func SetOverride(c Collection, boxIndex int, cfg Configuration) Collection {
	if boxIndex < 1 || boxIndex > c.BoxCount {
		return c
	}
	c.overrides = cloneOverrides(c.overrides)
	c.overrides[boxIndex] = cfg
	return c
}

// ClearOverride reverts one box to the template. Out-of-range indices are
// a no-op, same as SetOverride.
func ClearOverride(c Collection, boxIndex int) Collection {
	if _, ok := c.overrides[boxIndex]; !ok {
		return c
	}
	c.overrides = cloneOverrides(c.overrides)
	delete(c.overrides, boxIndex)
	return c
}

// EffectiveConfig resolves the configuration for one box: the override when
// present, otherwise the template.
func EffectiveConfig(c Collection, boxIndex int) Configuration {
	if cfg, ok := c.overrides[boxIndex]; ok {
		return cfg
	}
	return c.Template
}

// Overridden reports whether a box has its own override.
func (c Collection) Overridden(boxIndex int) bool {
	_, ok := c.overrides[boxIndex]
	return ok
}

// OverrideCount returns the number of boxes diverging from the template.
func (c Collection) OverrideCount() int {
	return len(c.overrides)
}

// OverriddenIndices returns the 1-based indices of overridden boxes in no
// particular order.
func (c Collection) OverriddenIndices() []int {
	idxs := make([]int, 0, len(c.overrides))
	for i := range c.overrides {
		idxs = append(idxs, i)
	}
	return idxs
}

func cloneOverrides(src map[int]Configuration) map[int]Configuration {
	dst := make(map[int]Configuration, len(src)+1)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
