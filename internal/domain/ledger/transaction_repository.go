package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// TransactionFilter narrows ledger queries. Since is the inclusive lower
// bound on OccurredAt; a zero Since means all of history.
type TransactionFilter struct {
	shared.Filter
	ItemID *uuid.UUID
	Since  time.Time
}

// DefaultTransactionFilter returns a transaction filter with default values
func DefaultTransactionFilter() TransactionFilter {
	f := shared.DefaultFilter()
	f.OrderBy = "occurred_at"
	return TransactionFilter{Filter: f}
}

// TransactionRepository defines the interface for ledger persistence.
// Records are append-only: there is no update and no single delete, only
// a full clear of the history.
type TransactionRepository interface {
	// Append stores a new sale record
	Append(ctx context.Context, transaction *SaleTransaction) error

	// FindByID finds a sale record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*SaleTransaction, error)

	// FindAll finds sale records matching the filter, newest first
	FindAll(ctx context.Context, filter TransactionFilter) ([]SaleTransaction, error)

	// Count counts sale records matching the filter
	Count(ctx context.Context, filter TransactionFilter) (int64, error)

	// DeleteAll removes the entire sale history and reports how many
	// records it removed
	DeleteAll(ctx context.Context) (int64, error)
}
