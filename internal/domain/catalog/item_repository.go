package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// ItemFilter narrows item queries beyond the shared pagination filter.
// Status filtering needs the current threshold because the status is
// derived from quantity at query time, not stored.
type ItemFilter struct {
	shared.Filter
	CategoryID *uuid.UUID
	Status     StockStatus
	Threshold  int64
}

// DefaultItemFilter returns an item filter with default values
func DefaultItemFilter() ItemFilter {
	return ItemFilter{Filter: shared.DefaultFilter()}
}

// ItemRepository defines the interface for item persistence
type ItemRepository interface {
	// FindByID finds an item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindAll finds all items matching the filter
	FindAll(ctx context.Context, filter ItemFilter) ([]Item, error)

	// ExistsByName checks whether an item with the given name exists,
	// compared case-insensitively, optionally excluding one item
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)

	// Save creates or updates an item
	Save(ctx context.Context, item *Item) error

	// Delete deletes an item
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts items matching the filter
	Count(ctx context.Context, filter ItemFilter) (int64, error)

	// CountByCategory counts items assigned to a category
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// DecrementStock atomically subtracts qty from an item's quantity,
	// guarded so the quantity never goes negative. It returns the item's
	// state after the decrement, shared.ErrItemNotFound when no such item
	// exists, or shared.ErrInsufficientStock when stock is too low.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int64) (*Item, error)
}
