package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// SaleTransaction is an immutable record of a completed sale. Item name and
// unit price are copied at sale time so the ledger keeps reporting the same
// numbers after the item is edited or deleted.
type SaleTransaction struct {
	shared.BaseEntity
	OccurredAt time.Time       `gorm:"not null;index"`
	ItemID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemName   string          `gorm:"type:varchar(100);not null"`
	Quantity   int64           `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Discount   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Total      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Notes      string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SaleTransaction) TableName() string {
	return "sale_transactions"
}

// NewSaleTransaction records a sale. Quantity and discount are validated
// against the snapshot price; Total is derived, never supplied.
func NewSaleTransaction(itemID uuid.UUID, itemName string, quantity int64, unitPrice, discount decimal.Decimal, notes string) (*SaleTransaction, error) {
	if itemID == uuid.Nil {
		return nil, shared.ErrItemNotFound
	}
	if err := shared.ValidateSaleQuantity(quantity); err != nil {
		return nil, err
	}
	if err := shared.ValidateAmount(unitPrice); err != nil {
		return nil, err
	}

	subtotal := unitPrice.Mul(decimal.NewFromInt(quantity))
	if err := shared.ValidateDiscount(discount, subtotal); err != nil {
		return nil, err
	}

	return &SaleTransaction{
		BaseEntity: shared.NewBaseEntity(),
		OccurredAt: time.Now(),
		ItemID:     itemID,
		ItemName:   itemName,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Discount:   discount,
		Total:      subtotal.Sub(discount),
		Notes:      notes,
	}, nil
}

// Subtotal returns quantity x unit price before discount
func (t *SaleTransaction) Subtotal() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(t.Quantity))
}
