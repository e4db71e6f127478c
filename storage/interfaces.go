package storage

import (
	"context"

	"github.com/poiesic/assessrec/core"
)

// CatalogRepository provides operations for managing catalog items.
// Implementations must be thread-safe and support concurrent access.
type CatalogRepository interface {
	// AddItems adds one or more catalog items to storage.
	// Sets InsertedAt/UpdatedAt timestamps.
	// Returns ErrDuplicateKey if an item with the same ID already exists.
	AddItems(ctx context.Context, items ...*core.CatalogItem) ([]*core.CatalogItem, error)

	// UpdateItems updates existing catalog items.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any item doesn't exist.
	UpdateItems(ctx context.Context, items ...*core.CatalogItem) ([]*core.CatalogItem, error)

	// DeleteItems removes catalog items by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any item doesn't exist.
	DeleteItems(ctx context.Context, ids ...core.ID) error

	// GetItem retrieves a single catalog item by ID.
	// Returns ErrNotFound if the item doesn't exist.
	GetItem(ctx context.Context, id core.ID) (*core.CatalogItem, error)

	// GetItems retrieves multiple catalog items by their IDs.
	// Returns only the items that exist (no error for missing items).
	GetItems(ctx context.Context, ids ...core.ID) ([]*core.CatalogItem, error)

	// ListItems retrieves every catalog item ordered by label.
	// Label order is the catalog build order, which is also the row order
	// of the embedding matrix when a snapshot is built.
	ListItems(ctx context.Context) ([]*core.CatalogItem, error)

	// Count returns the number of stored catalog items.
	Count(ctx context.Context) (int, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
