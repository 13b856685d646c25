// Package storage provides abstractions for persistent bill storage.
package storage

import (
	"context"

	"github.com/paysprint/billflow/internal/models"
)

// Store defines the interface for persisting the bill collection between
// runs. The billstore package stays pure in-memory logic; a host loads its
// seed from a Store at startup and writes snapshots back through it.
type Store interface {
	// SaveBill inserts or replaces a bill together with its full
	// activity log. A missing ID is populated by the store.
	SaveBill(ctx context.Context, bill *models.Bill) error

	// GetBill retrieves a bill by its ID, activities included.
	// Returns nil and an error if the bill is not found.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// ListBills retrieves every bill in insertion order.
	ListBills(ctx context.Context) ([]models.Bill, error)

	// DeleteBill removes a bill and its activities.
	DeleteBill(ctx context.Context, billID string) error

	// Close releases any resources held by the store.
	Close() error
}
