package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// Ledger event types
const (
	EventTypeSaleRecorded  = "ledger.sale.recorded"
	EventTypeLedgerCleared = "ledger.cleared"
)

// SaleRecordedEvent is published after a sale has committed
type SaleRecordedEvent struct {
	shared.BaseDomainEvent
	ItemName string          `json:"item_name"`
	Quantity int64           `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// NewSaleRecordedEvent creates a new SaleRecordedEvent
func NewSaleRecordedEvent(transaction *SaleTransaction) *SaleRecordedEvent {
	return &SaleRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleRecorded, "SaleTransaction", transaction.ID),
		ItemName:        transaction.ItemName,
		Quantity:        transaction.Quantity,
		Total:           transaction.Total,
	}
}

// LedgerClearedEvent is published when the sale history is wiped
type LedgerClearedEvent struct {
	shared.BaseDomainEvent
	Removed int64 `json:"removed"`
}

// NewLedgerClearedEvent creates a new LedgerClearedEvent
func NewLedgerClearedEvent(removed int64) *LedgerClearedEvent {
	return &LedgerClearedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLedgerCleared, "SaleTransaction", uuid.Nil),
		Removed:         removed,
	}
}
