package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wingworks/catering-configurator-backend/internal/api/dto"
	"github.com/wingworks/catering-configurator-backend/internal/application/session"
	"github.com/wingworks/catering-configurator-backend/internal/domain/allocator"
	"github.com/wingworks/catering-configurator-backend/internal/domain/pricing"
)

// SessionsHandler exposes the configurator session lifecycle.
type SessionsHandler struct {
	manager *session.Manager
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(manager *session.Manager) *SessionsHandler {
	return &SessionsHandler{manager: manager}
}

// Create handles POST /api/sessions.
func (h *SessionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSessionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	snap, err := h.manager.Create(req.PiecesPerBox, req.BoxCount)
	if err != nil {
		WriteError(w, http.StatusBadRequest, dto.BadRequestError(err.Error()))
		return
	}

	WriteJSON(w, http.StatusCreated, dto.SessionResponse{Session: snap})
}

// Get handles GET /api/sessions/{id}.
func (h *SessionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	snap, ok := h.manager.Get(id)
	if !ok {
		WriteError(w, http.StatusNotFound, dto.NotFoundError("session"))
		return
	}

	WriteJSON(w, http.StatusOK, dto.SessionResponse{Session: snap})
}

// SetQuantity handles PUT /api/sessions/{id}/quantities.
func (h *SessionsHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req dto.SetQuantityRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	h.update(w, r, func(s *session.Session) error {
		return s.SetQuantity(allocator.Category(req.Category), req.Quantity)
	})
}

// ApplyPreset handles POST /api/sessions/{id}/preset.
func (h *SessionsHandler) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyPresetRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	h.update(w, r, func(s *session.Session) error {
		return s.ApplyPreset(allocator.Preset(req.Preset))
	})
}

// SetPrep handles PUT /api/sessions/{id}/prep.
func (h *SessionsHandler) SetPrep(w http.ResponseWriter, r *http.Request) {
	var req dto.SetPrepRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	h.update(w, r, func(s *session.Session) error {
		return s.SetPrep(allocator.PrepMethod(req.Prep))
	})
}

// SetStyle handles PUT /api/sessions/{id}/style.
func (h *SessionsHandler) SetStyle(w http.ResponseWriter, r *http.Request) {
	var req dto.SetStyleRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	h.update(w, r, func(s *session.Session) error {
		return s.SetStyle(allocator.WingStyle(req.Style))
	})
}

// SetFlavor handles PUT /api/sessions/{id}/flavor.
func (h *SessionsHandler) SetFlavor(w http.ResponseWriter, r *http.Request) {
	var req dto.SetFlavorRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	h.update(w, r, func(s *session.Session) error {
		return s.SetFlavor(req.FlavorID)
	})
}

// EnableSplit handles POST /api/sessions/{id}/split.
func (h *SessionsHandler) EnableSplit(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, func(s *session.Session) error {
		return s.EnableSplit()
	})
}

// SetSplitCount handles PUT /api/sessions/{id}/split/count.
func (h *SessionsHandler) SetSplitCount(w http.ResponseWriter, r *http.Request) {
	var req dto.SetSplitCountRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	h.update(w, r, func(s *session.Session) error {
		return s.SetSplitCount(req.FirstCount)
	})
}

// SetSplitFlavor handles PUT /api/sessions/{id}/split/flavor.
func (h *SessionsHandler) SetSplitFlavor(w http.ResponseWriter, r *http.Request) {
	var req dto.SetSplitFlavorRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	h.update(w, r, func(s *session.Session) error {
		return s.SetSplitFlavor(req.Slot, req.FlavorID)
	})
}

// SetSelections handles PUT /api/sessions/{id}/selections.
func (h *SessionsHandler) SetSelections(w http.ResponseWriter, r *http.Request) {
	var req dto.SetSelectionsRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	h.update(w, r, func(s *session.Session) error {
		if err := s.SetDips(req.Dips[0], req.Dips[1]); err != nil {
			return err
		}
		if req.SideID != "" {
			if err := s.SetSide(req.SideID); err != nil {
				return err
			}
		}
		if req.Dessert != "" {
			if err := s.SetDessert(req.Dessert); err != nil {
				return err
			}
		}
		return s.SetNotes(req.Notes)
	})
}

// SetOverride handles PUT /api/sessions/{id}/boxes/{index}.
func (h *SessionsHandler) SetOverride(w http.ResponseWriter, r *http.Request) {
	index, ok := boxIndex(w, r)
	if !ok {
		return
	}

	var req dto.OverrideRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	h.update(w, r, func(s *session.Session) error {
		return s.SetBoxOverride(index, req.Config)
	})
}

// ClearOverride handles DELETE /api/sessions/{id}/boxes/{index}.
func (h *SessionsHandler) ClearOverride(w http.ResponseWriter, r *http.Request) {
	index, ok := boxIndex(w, r)
	if !ok {
		return
	}

	h.update(w, r, func(s *session.Session) error {
		return s.ClearBoxOverride(index)
	})
}

// Finalize handles POST /api/sessions/{id}/finalize.
func (h *SessionsHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, err := h.manager.Finalize(id)
	if err != nil {
		status, apiErr := classifyError(err)
		WriteError(w, status, apiErr)
		return
	}

	WriteJSON(w, http.StatusCreated, dto.NewOrderResponse(order))
}

// update runs one session edit and writes the post-edit snapshot.
func (h *SessionsHandler) update(w http.ResponseWriter, r *http.Request, edit func(*session.Session) error) {
	id := chi.URLParam(r, "id")

	snap, err := h.manager.Update(id, edit)
	if err != nil {
		status, apiErr := classifyError(err)
		WriteError(w, status, apiErr)
		return
	}

	WriteJSON(w, http.StatusOK, dto.SessionResponse{Session: snap})
}

func boxIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, dto.BadRequestError("box index must be an integer"))
		return 0, false
	}
	return index, true
}

func classifyError(err error) (int, dto.APIError) {
	var pricingErr *pricing.ComputationError
	switch {
	case errors.As(err, &pricingErr):
		return http.StatusUnprocessableEntity, dto.PricingError(err.Error())
	case strings.Contains(err.Error(), "not found"):
		return http.StatusNotFound, dto.NotFoundError("session")
	default:
		return http.StatusBadRequest, dto.BadRequestError(err.Error())
	}
}
