package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wingworks/catering-configurator-backend/internal/api/dto"
	"github.com/wingworks/catering-configurator-backend/internal/export"
	"github.com/wingworks/catering-configurator-backend/internal/infrastructure/storage"
)

// OrdersHandler serves finalized orders.
type OrdersHandler struct {
	repo storage.Repository
}

// NewOrdersHandler creates a new orders handler.
func NewOrdersHandler(repo storage.Repository) *OrdersHandler {
	return &OrdersHandler{repo: repo}
}

// List handles GET /api/orders.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := storage.OrderFilters{
		Status: r.URL.Query().Get("status"),
		Limit:  ParseIntParam(r, "limit", 50),
		Offset: ParseIntParam(r, "offset", 0),
	}

	orders, err := h.repo.ListOrders(filters)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	resp := dto.OrderListResponse{Orders: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, dto.NewOrderResponse(o))
	}
	resp.Count = len(resp.Orders)

	WriteJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/orders/{id}.
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, ok := h.fetch(w, r)
	if !ok {
		return
	}

	WriteJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

// Export handles GET /api/orders/{id}/export?platform=...
func (h *OrdersHandler) Export(w http.ResponseWriter, r *http.Request) {
	order, ok := h.fetch(w, r)
	if !ok {
		return
	}

	platform := r.URL.Query().Get("platform")
	payload, err := export.ForPlatform(platform, order)
	if err != nil {
		WriteError(w, http.StatusBadRequest, dto.BadRequestError(err.Error()))
		return
	}

	WriteJSON(w, http.StatusOK, payload)
}

func (h *OrdersHandler) fetch(w http.ResponseWriter, r *http.Request) (*storage.OrderRecord, bool) {
	id := chi.URLParam(r, "id")

	order, err := h.repo.GetOrder(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return nil, false
	}
	if order == nil {
		WriteError(w, http.StatusNotFound, dto.NotFoundError("order"))
		return nil, false
	}
	return order, true
}
