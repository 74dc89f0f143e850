package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindAll finds all categories matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)

	// ExistsByName checks whether a category with the given name exists,
	// compared case-insensitively. When excludeID is non-nil that category
	// is ignored, so a rename does not collide with itself.
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts categories matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
