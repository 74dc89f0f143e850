package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stocktrack/backend/internal/domain/catalog"
	"github.com/stocktrack/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormItemRepository implements catalog.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item by its ID
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	var item catalog.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewPersistenceError(err)
	}
	return &item, nil
}

// FindAll finds all items matching the filter
func (r *GormItemRepository) FindAll(ctx context.Context, filter catalog.ItemFilter) ([]catalog.Item, error) {
	var items []catalog.Item
	query := applyPagination(r.applyItemFilter(r.db.WithContext(ctx).Model(&catalog.Item{}), filter), filter.Filter)

	if err := query.Find(&items).Error; err != nil {
		return nil, shared.NewPersistenceError(err)
	}
	return items, nil
}

// ExistsByName checks whether an item name is taken, case-insensitively
func (r *GormItemRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&catalog.Item{}).
		Where("LOWER(name) = LOWER(?)", name)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, shared.NewPersistenceError(err)
	}
	return count > 0, nil
}

// Save creates or updates an item
func (r *GormItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return shared.NewPersistenceError(err)
	}
	return nil
}

// Delete deletes an item
func (r *GormItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Item{}, "id = ?", id)
	if result.Error != nil {
		return shared.NewPersistenceError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts items matching the filter
func (r *GormItemRepository) Count(ctx context.Context, filter catalog.ItemFilter) (int64, error) {
	var count int64
	query := r.applyItemFilter(r.db.WithContext(ctx).Model(&catalog.Item{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, shared.NewPersistenceError(err)
	}
	return count, nil
}

// CountByCategory counts items assigned to a category
func (r *GormItemRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Item{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, shared.NewPersistenceError(err)
	}
	return count, nil
}

// DecrementStock atomically subtracts qty from an item's quantity. The
// quantity guard in the WHERE clause makes the decrement conditional, so
// two concurrent sales can never drive stock negative; the loser of the
// race sees zero rows affected.
func (r *GormItemRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int64) (*catalog.Item, error) {
	result := r.db.WithContext(ctx).
		Model(&catalog.Item{}).
		Where("id = ? AND quantity >= ?", id, qty).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity - ?", qty),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, shared.NewPersistenceError(result.Error)
	}

	if result.RowsAffected == 0 {
		// Zero rows means either the item is gone or stock is too low
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&catalog.Item{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return nil, shared.NewPersistenceError(err)
		}
		if count == 0 {
			return nil, shared.ErrItemNotFound
		}
		return nil, shared.ErrInsufficientStock
	}

	return r.FindByID(ctx, id)
}

func (r *GormItemRepository) applyItemFilter(query *gorm.DB, filter catalog.ItemFilter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	// Stock status is derived, so filtering translates to quantity bounds
	switch filter.Status {
	case catalog.StockStatusOut:
		query = query.Where("quantity = 0")
	case catalog.StockStatusLow:
		query = query.Where("quantity > 0 AND quantity <= ?", filter.Threshold)
	case catalog.StockStatusIn:
		query = query.Where("quantity > ?", filter.Threshold)
	}
	return query
}

// Ensure GormItemRepository implements ItemRepository
var _ catalog.ItemRepository = (*GormItemRepository)(nil)
