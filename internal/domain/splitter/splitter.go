// Package splitter manages splitting one box's flavor-bearing pieces across
// two flavor choices.
//
// Only the first slot's count is edited directly; the second slot always
// holds whatever is left of the slot total, so the two counts can never
// drift apart.
package splitter

// Slot is one half of a flavor split.
type Slot struct {
	FlavorID string `json:"flavor_id,omitempty"`
	Count    int    `json:"count"`
}

// Selection is a two-way flavor split. Construct with New; the zero value
// is not a usable split.
type Selection struct {
	First  Slot `json:"first"`
	Second Slot `json:"second"`
}

// MinSlotTotal is the smallest flavor-bearing quantity a split can be
// offered for. Below it both slots cannot hold a piece each and the UI
// falls back to a single flavor choice.
const MinSlotTotal = 2

// Offered reports whether a split is available for the given
// flavor-bearing quantity.
func Offered(slotTotal int) bool {
	return slotTotal >= MinSlotTotal
}

// New returns an even starting split for slotTotal pieces, with the extra
// piece on the first slot when the total is odd. ok is false when the
// total is too small for a split.
func New(slotTotal int) (s Selection, ok bool) {
	if !Offered(slotTotal) {
		return Selection{}, false
	}
	first := slotTotal - slotTotal/2
	return Selection{
		First:  Slot{Count: first},
		Second: Slot{Count: slotTotal - first},
	}, true
}

// SetFirstSlot sets the first slot's count, clamped so each slot keeps at
// least one piece, and rebalances the second slot to the remainder.
func SetFirstSlot(s Selection, newCount, slotTotal int) Selection {
	if !Offered(slotTotal) {
		return s
	}
	if newCount < 1 {
		newCount = 1
	}
	if newCount > slotTotal-1 {
		newCount = slotTotal - 1
	}
	s.First.Count = newCount
	s.Second.Count = slotTotal - newCount
	return s
}

// SetSlotFlavor assigns a flavor to one slot. Slots are numbered 1 and 2;
// any other index leaves the selection unchanged.
func SetSlotFlavor(s Selection, slotIndex int, flavorID string) Selection {
	switch slotIndex {
	case 1:
		s.First.FlavorID = flavorID
	case 2:
		s.Second.FlavorID = flavorID
	}
	return s
}

// Complete reports whether both slots have a flavor chosen. Counts alone
// are never enough.
func (s Selection) Complete() bool {
	return s.First.FlavorID != "" && s.Second.FlavorID != ""
}
