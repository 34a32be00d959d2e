package storage

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MockRepository is an in-memory implementation of Repository for testing.
type MockRepository struct {
	orders map[string]*OrderRecord

	// Hooks for test assertions
	SaveOrderCalled bool
	LastSavedOrder  *OrderRecord
	GetOrderCalled  bool

	// Error injection for testing error paths
	SaveOrderErr  error
	GetOrderErr   error
	ListOrdersErr error
	GetStatsErr   error
}

// NewMockRepository creates a new mock repository for testing
func NewMockRepository() *MockRepository {
	return &MockRepository{
		orders: make(map[string]*OrderRecord),
	}
}

// Compile-time check that MockRepository implements Repository
var _ Repository = (*MockRepository)(nil)

// Close does nothing for mock
func (m *MockRepository) Close() error {
	return nil
}

// SaveOrder saves an order to the in-memory map
func (m *MockRepository) SaveOrder(order *OrderRecord) error {
	m.SaveOrderCalled = true
	m.LastSavedOrder = order
	if m.SaveOrderErr != nil {
		return m.SaveOrderErr
	}
	m.orders[order.ID] = order
	return nil
}

// GetOrder retrieves an order by id, nil when absent
func (m *MockRepository) GetOrder(id string) (*OrderRecord, error) {
	m.GetOrderCalled = true
	if m.GetOrderErr != nil {
		return nil, m.GetOrderErr
	}
	return m.orders[id], nil
}

// ListOrders returns stored orders newest first
func (m *MockRepository) ListOrders(filters OrderFilters) ([]*OrderRecord, error) {
	if m.ListOrdersErr != nil {
		return nil, m.ListOrdersErr
	}

	var orders []*OrderRecord
	for _, o := range m.orders {
		if filters.Status != "" && o.Status != filters.Status {
			continue
		}
		orders = append(orders, o)
	}
	sort.Slice(orders, func(a, b int) bool {
		return orders[a].CreatedAt.After(orders[b].CreatedAt)
	})

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	if filters.Offset >= len(orders) {
		return nil, nil
	}
	orders = orders[filters.Offset:]
	if len(orders) > limit {
		orders = orders[:limit]
	}

	return orders, nil
}

// GetStats aggregates over the in-memory orders
func (m *MockRepository) GetStats() (*Stats, error) {
	if m.GetStatsErr != nil {
		return nil, m.GetStatsErr
	}

	stats := &Stats{}
	revenue := decimal.Zero
	for _, o := range m.orders {
		stats.TotalOrders++
		stats.TotalBoxes += o.BoxCount
		if d, err := decimal.NewFromString(o.Total); err == nil {
			revenue = revenue.Add(d)
		}
	}
	stats.Revenue = revenue.StringFixed(2)
	return stats, nil
}

// AddOrder seeds the mock with an order without tripping the call hooks.
func (m *MockRepository) AddOrder(order *OrderRecord) {
	m.orders[order.ID] = order
}
