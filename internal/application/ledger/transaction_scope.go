package ledger

import (
	"context"

	"github.com/stocktrack/backend/internal/domain/catalog"
	"github.com/stocktrack/backend/internal/domain/ledger"
)

// TransactionScope provides transactional access to the repositories a sale
// touches. When a function is executed within a transaction scope, all
// repository operations are part of the same database transaction and are
// committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the sale-path repositories
// within a transaction. Both repositories returned share the same underlying
// database transaction, so a stock decrement and its ledger record either
// both land or neither does.
type TransactionalRepositories interface {
	// Items returns the item repository scoped to the current transaction
	Items() catalog.ItemRepository
	// Transactions returns the ledger repository scoped to the current transaction
	Transactions() ledger.TransactionRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is
// not required.
type NoOpTransactionScope struct {
	itemRepo        catalog.ItemRepository
	transactionRepo ledger.TransactionRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(itemRepo catalog.ItemRepository, transactionRepo ledger.TransactionRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		itemRepo:        itemRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Items returns the item repository.
func (s *NoOpTransactionScope) Items() catalog.ItemRepository {
	return s.itemRepo
}

// Transactions returns the ledger repository.
func (s *NoOpTransactionScope) Transactions() ledger.TransactionRepository {
	return s.transactionRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
