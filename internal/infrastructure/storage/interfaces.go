package storage

// Repository defines the storage interface for finalized orders. It keeps
// the sqlite implementation swappable and makes testing with the in-memory
// mock straightforward.
type Repository interface {
	// SaveOrder saves or updates a finalized order
	SaveOrder(order *OrderRecord) error

	// GetOrder retrieves an order by id
	GetOrder(id string) (*OrderRecord, error)

	// ListOrders returns orders matching the filters, newest first
	ListOrders(filters OrderFilters) ([]*OrderRecord, error)

	// GetStats returns aggregate statistics
	GetStats() (*Stats, error)

	Close() error
}
