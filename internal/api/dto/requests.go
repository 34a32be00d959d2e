package dto

import "github.com/wingworks/catering-configurator-backend/internal/domain/boxes"

// CreateSessionRequest starts a new configurator session.
type CreateSessionRequest struct {
	PiecesPerBox int `json:"pieces_per_box"`
	BoxCount     int `json:"box_count"`
}

// SetQuantityRequest edits one category of the working distribution.
type SetQuantityRequest struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// ApplyPresetRequest applies a named distribution preset.
type ApplyPresetRequest struct {
	Preset string `json:"preset"`
}

// SetPrepRequest chooses the plant-based preparation method.
type SetPrepRequest struct {
	Prep string `json:"prep"`
}

// SetStyleRequest chooses the bone-in wing style.
type SetStyleRequest struct {
	Style string `json:"style"`
}

// SetFlavorRequest picks a single flavor (dropping any split).
type SetFlavorRequest struct {
	FlavorID string `json:"flavor_id"`
}

// SetSplitCountRequest edits the first split slot's count.
type SetSplitCountRequest struct {
	FirstCount int `json:"first_count"`
}

// SetSplitFlavorRequest assigns a flavor to one split slot.
type SetSplitFlavorRequest struct {
	Slot     int    `json:"slot"`
	FlavorID string `json:"flavor_id"`
}

// SetSelectionsRequest sets the template's dips, side, and dessert.
type SetSelectionsRequest struct {
	Dips    [2]string `json:"dips"`
	SideID  string    `json:"side_id"`
	Dessert string    `json:"dessert_id"`
	Notes   string    `json:"notes"`
}

// OverrideRequest pins a full configuration to one box.
type OverrideRequest struct {
	Config boxes.Configuration `json:"config"`
}
