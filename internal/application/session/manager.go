package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/wingworks/catering-configurator-backend/internal/domain/menu"
	"github.com/wingworks/catering-configurator-backend/internal/domain/pricing"
	"github.com/wingworks/catering-configurator-backend/internal/infrastructure/storage"
)

// Manager owns the live sessions and the finalize path into storage. The
// engine itself assumes a single editor per session; the manager only
// serializes access so concurrent HTTP requests cannot interleave edits.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	catalog *menu.Catalog
	priceFn pricing.PriceFunc
	repo    storage.Repository
	logger  *slog.Logger
}

// NewManager creates a session manager.
func NewManager(catalog *menu.Catalog, priceFn pricing.PriceFunc, repo storage.Repository, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		catalog:  catalog,
		priceFn:  priceFn,
		repo:     repo,
		logger:   logger,
	}
}

// Create starts a new session and returns its snapshot.
func (m *Manager) Create(piecesPerBox, boxCount int) (Snapshot, error) {
	s, err := New(piecesPerBox, boxCount, m.catalog, m.priceFn)
	if err != nil {
		return Snapshot{}, err
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Info("session created",
		"session_id", s.ID,
		"pieces_per_box", piecesPerBox,
		"box_count", boxCount)

	return s.Snapshot(), nil
}

// Get returns a session's snapshot.
func (m *Manager) Get(id string) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, false
	}
	return s.Snapshot(), true
}

// Update runs one edit against a session under the manager's lock and
// returns the post-edit snapshot. The edit's error is returned alongside
// the snapshot so handlers can surface both the failure and current state.
func (m *Manager) Update(id string, edit func(*Session) error) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, fmt.Errorf("session %q not found", id)
	}

	if err := edit(s); err != nil {
		return s.Snapshot(), err
	}
	return s.Snapshot(), nil
}

// Finalize freezes a session into an order, persists it, and drops the
// session.
func (m *Manager) Finalize(id string) (*storage.OrderRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %q not found", id)
	}

	order, err := s.Finalize()
	if err != nil {
		return nil, err
	}

	if err := m.repo.SaveOrder(order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	delete(m.sessions, id)

	m.logger.Info("order finalized",
		"session_id", id,
		"order_id", order.ID,
		"box_count", order.BoxCount,
		"total", order.Total)

	return order, nil
}
