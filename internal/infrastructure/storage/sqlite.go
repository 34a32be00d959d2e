package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// Storage provides SQLite database access for finalized orders.
// It implements the Repository interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// NewStorage creates a new storage instance with SQLite database
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints (SQLite-specific)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Storage{db: db}

	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// SaveOrder saves or updates a finalized order
func (s *Storage) SaveOrder(order *OrderRecord) error {
	boxesJSON, err := json.Marshal(order.Boxes)
	if err != nil {
		return fmt.Errorf("failed to marshal boxes: %w", err)
	}
	groupsJSON, err := json.Marshal(order.PriceGroups)
	if err != nil {
		return fmt.Errorf("failed to marshal price groups: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO orders
	(id, status, created_at, box_count, pieces_per_box, total,
	 boxes_json, price_groups_json, notes)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.Exec(query,
		order.ID,
		order.Status,
		order.CreatedAt,
		order.BoxCount,
		order.PiecesPerBox,
		order.Total,
		string(boxesJSON),
		string(groupsJSON),
		order.Notes,
	)

	return err
}

// GetOrder retrieves an order by id
func (s *Storage) GetOrder(id string) (*OrderRecord, error) {
	query := `
	SELECT id, status, created_at, box_count, pieces_per_box, total,
	       boxes_json, price_groups_json, notes
	FROM orders WHERE id = ?
	`

	order := &OrderRecord{}
	var boxesJSON, groupsJSON string
	err := s.db.QueryRow(query, id).Scan(
		&order.ID,
		&order.Status,
		&order.CreatedAt,
		&order.BoxCount,
		&order.PiecesPerBox,
		&order.Total,
		&boxesJSON,
		&groupsJSON,
		&order.Notes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := unmarshalOrderColumns(order, boxesJSON, groupsJSON); err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders returns orders matching the filters, newest first
func (s *Storage) ListOrders(filters OrderFilters) ([]*OrderRecord, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `
	SELECT id, status, created_at, box_count, pieces_per_box, total,
	       boxes_json, price_groups_json, notes
	FROM orders
	`
	args := []any{}
	if filters.Status != "" {
		query += " WHERE status = ?"
		args = append(args, filters.Status)
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, filters.Offset)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*OrderRecord
	for rows.Next() {
		order := &OrderRecord{}
		var boxesJSON, groupsJSON string
		if err := rows.Scan(
			&order.ID,
			&order.Status,
			&order.CreatedAt,
			&order.BoxCount,
			&order.PiecesPerBox,
			&order.Total,
			&boxesJSON,
			&groupsJSON,
			&order.Notes,
		); err != nil {
			return nil, err
		}
		if err := unmarshalOrderColumns(order, boxesJSON, groupsJSON); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

// GetStats returns aggregate statistics across all orders. Revenue is
// summed in decimal space since totals are stored as text.
func (s *Storage) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(box_count), 0) FROM orders`).
		Scan(&stats.TotalOrders, &stats.TotalBoxes)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT total FROM orders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	revenue := decimal.Zero
	for rows.Next() {
		var total string
		if err := rows.Scan(&total); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(total)
		if err != nil {
			return nil, fmt.Errorf("bad total %q on stored order: %w", total, err)
		}
		revenue = revenue.Add(d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stats.Revenue = revenue.StringFixed(2)
	return stats, nil
}

func unmarshalOrderColumns(order *OrderRecord, boxesJSON, groupsJSON string) error {
	if boxesJSON != "" {
		if err := json.Unmarshal([]byte(boxesJSON), &order.Boxes); err != nil {
			return fmt.Errorf("failed to unmarshal boxes for order %s: %w", order.ID, err)
		}
	}
	if groupsJSON != "" {
		if err := json.Unmarshal([]byte(groupsJSON), &order.PriceGroups); err != nil {
			return fmt.Errorf("failed to unmarshal price groups for order %s: %w", order.ID, err)
		}
	}
	return nil
}
