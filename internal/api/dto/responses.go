package dto

import (
	"time"

	"github.com/wingworks/catering-configurator-backend/internal/application/session"
	"github.com/wingworks/catering-configurator-backend/internal/infrastructure/storage"
)

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthResponse creates a healthy response with the current time.
func NewHealthResponse() HealthResponse {
	return HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// SessionResponse wraps a session snapshot. Snapshots are already plain
// data with json tags, so they go out as-is.
type SessionResponse struct {
	Session session.Snapshot `json:"session"`
}

// OrderResponse represents a finalized order in API responses.
type OrderResponse struct {
	ID           string                       `json:"id"`
	Status       string                       `json:"status"`
	CreatedAt    string                       `json:"created_at"`
	BoxCount     int                          `json:"box_count"`
	PiecesPerBox int                          `json:"pieces_per_box"`
	Total        string                       `json:"total"`
	Boxes        []storage.BoxRecord          `json:"boxes,omitempty"`
	PriceGroups  []storage.PriceGroupRecord   `json:"price_groups,omitempty"`
	Notes        string                       `json:"notes,omitempty"`
}

// NewOrderResponse converts a stored order for the wire.
func NewOrderResponse(o *storage.OrderRecord) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
		BoxCount:     o.BoxCount,
		PiecesPerBox: o.PiecesPerBox,
		Total:        o.Total,
		Boxes:        o.Boxes,
		PriceGroups:  o.PriceGroups,
		Notes:        o.Notes,
	}
}

// OrderListResponse is returned when listing orders.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Count  int             `json:"count"`
}
