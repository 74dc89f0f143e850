package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stocktrack/backend/internal/domain/ledger"
)

// SellRequest represents a request to record a sale. PriceEach overrides the
// item's catalog price for this sale (a negotiated price); when nil, the
// catalog price is used.
type SellRequest struct {
	ItemID    uuid.UUID        `json:"item_id" binding:"required"`
	Quantity  int64            `json:"quantity" binding:"required,min=1"`
	PriceEach *decimal.Decimal `json:"price_each" binding:"omitempty,dgte0"`
	Discount  decimal.Decimal  `json:"discount" binding:"dgte0"`
	Notes     string           `json:"notes"`
}

// TransactionResponse represents a sale record in API responses
type TransactionResponse struct {
	ID         uuid.UUID       `json:"id"`
	OccurredAt time.Time       `json:"occurred_at"`
	ItemID     uuid.UUID       `json:"item_id"`
	ItemName   string          `json:"item_name"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Discount   decimal.Decimal `json:"discount"`
	Total      decimal.Decimal `json:"total"`
	Notes      string          `json:"notes,omitempty"`
}

// ToTransactionResponse converts a domain sale record to a response DTO
func ToTransactionResponse(tx *ledger.SaleTransaction) TransactionResponse {
	return TransactionResponse{
		ID:         tx.ID,
		OccurredAt: tx.OccurredAt,
		ItemID:     tx.ItemID,
		ItemName:   tx.ItemName,
		Quantity:   tx.Quantity,
		UnitPrice:  tx.UnitPrice,
		Discount:   tx.Discount,
		Total:      tx.Total,
		Notes:      tx.Notes,
	}
}

// SellResponse carries the recorded sale and the item's remaining stock
type SellResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Remaining   int64               `json:"remaining"`
	Status      string              `json:"status"`
}

// TransactionListFilter represents filter options for the ledger list
type TransactionListFilter struct {
	Search   string     `form:"search"`
	ItemID   *uuid.UUID `form:"item_id"`
	Period   string     `form:"period" binding:"omitempty,oneof=all today week month"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// SalesSummaryResponse aggregates sales over a reporting period
type SalesSummaryResponse struct {
	Period        string          `json:"period"`
	Transactions  int64           `json:"transactions"`
	UnitsSold     int64           `json:"units_sold"`
	GrossRevenue  decimal.Decimal `json:"gross_revenue"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	NetRevenue    decimal.Decimal `json:"net_revenue"`
}
