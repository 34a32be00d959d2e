package storage

import (
	"time"

	"github.com/wingworks/catering-configurator-backend/internal/domain/boxes"
)

// Order statuses
const (
	StatusFinalized = "finalized"
	StatusExported  = "exported"
)

// OrderRecord is a finalized catering order as persisted. Box
// configurations and price groups are stored as JSON columns; the sqlite
// schema never needs to understand their insides.
type OrderRecord struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	BoxCount     int       `json:"box_count"`
	PiecesPerBox int       `json:"pieces_per_box"`

	// Total is a decimal string ("479.88"); money never round-trips
	// through float64.
	Total string `json:"total"`

	Boxes       []BoxRecord        `json:"boxes"`
	PriceGroups []PriceGroupRecord `json:"price_groups"`

	Notes string `json:"notes,omitempty"`
}

// BoxRecord is one box's effective configuration at finalize time.
type BoxRecord struct {
	Index      int                 `json:"index"`
	Overridden bool                `json:"overridden"`
	Config     boxes.Configuration `json:"config"`
	Price      string              `json:"price"`
}

// PriceGroupRecord is one entry of the order's price breakdown.
type PriceGroupRecord struct {
	Price      string `json:"price"`
	BoxCount   int    `json:"box_count"`
	BoxIndices []int  `json:"box_indices"`
}

// Stats holds aggregate numbers for the dashboard.
type Stats struct {
	TotalOrders int    `json:"total_orders"`
	TotalBoxes  int    `json:"total_boxes"`
	Revenue     string `json:"revenue"`
}

// OrderFilters defines filters for listing orders.
type OrderFilters struct {
	Status string // Filter by status (empty = all)
	Limit  int    // Max results (0 = default 50)
	Offset int    // Pagination offset
}
