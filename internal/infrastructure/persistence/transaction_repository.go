package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/stocktrack/backend/internal/domain/ledger"
	"github.com/stocktrack/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormTransactionRepository implements ledger.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Append stores a new sale record
func (r *GormTransactionRepository) Append(ctx context.Context, transaction *ledger.SaleTransaction) error {
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return shared.NewPersistenceError(err)
	}
	return nil
}

// FindByID finds a sale record by its ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.SaleTransaction, error) {
	var transaction ledger.SaleTransaction
	if err := r.db.WithContext(ctx).First(&transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewPersistenceError(err)
	}
	return &transaction, nil
}

// FindAll finds sale records matching the filter, newest first
func (r *GormTransactionRepository) FindAll(ctx context.Context, filter ledger.TransactionFilter) ([]ledger.SaleTransaction, error) {
	var transactions []ledger.SaleTransaction
	query := r.applyFilter(r.db.WithContext(ctx).Model(&ledger.SaleTransaction{}), filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	query = query.Order("occurred_at DESC")

	if err := query.Find(&transactions).Error; err != nil {
		return nil, shared.NewPersistenceError(err)
	}
	return transactions, nil
}

// Count counts sale records matching the filter
func (r *GormTransactionRepository) Count(ctx context.Context, filter ledger.TransactionFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&ledger.SaleTransaction{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, shared.NewPersistenceError(err)
	}
	return count, nil
}

// DeleteAll removes the entire sale history and reports the removed count
func (r *GormTransactionRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&ledger.SaleTransaction{})
	if result.Error != nil {
		return 0, shared.NewPersistenceError(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormTransactionRepository) applyFilter(query *gorm.DB, filter ledger.TransactionFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(item_name) LIKE ? OR LOWER(notes) LIKE ?", pattern, pattern)
	}
	if filter.ItemID != nil {
		query = query.Where("item_id = ?", *filter.ItemID)
	}
	if !filter.Since.IsZero() {
		query = query.Where("occurred_at >= ?", filter.Since)
	}
	return query
}

// Ensure GormTransactionRepository implements TransactionRepository
var _ ledger.TransactionRepository = (*GormTransactionRepository)(nil)
