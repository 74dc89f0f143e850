package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// StockStatus classifies an item's quantity against the low-stock threshold.
// It is purely derived for display and carries no invariant of its own.
type StockStatus string

const (
	StockStatusIn  StockStatus = "in_stock"
	StockStatusLow StockStatus = "low_stock"
	StockStatusOut StockStatus = "out_of_stock"
)

// String returns the string representation of StockStatus
func (s StockStatus) String() string {
	return string(s)
}

// IsValid returns true if the stock status is valid
func (s StockStatus) IsValid() bool {
	switch s {
	case StockStatusIn, StockStatusLow, StockStatusOut:
		return true
	}
	return false
}

// StatusForQuantity derives the stock status for a quantity and threshold
func StatusForQuantity(quantity, threshold int64) StockStatus {
	switch {
	case quantity == 0:
		return StockStatusOut
	case quantity <= threshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// Item represents a trackable stock-keeping unit. Quantity is the only field
// mutated outside direct edits, and exclusively by the sale engine decrement.
type Item struct {
	shared.BaseAggregateRoot
	Name       string          `gorm:"type:varchar(100);not null;index"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int64           `gorm:"not null;default:0"`
	Price      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Image      *string         `gorm:"type:text"` // base64 data URL, optional
	Notes      string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// NewItem creates a new item after validating every field. Category
// existence and name uniqueness are checked by the service against the
// stores; everything value-shaped is enforced here.
func NewItem(name string, categoryID uuid.UUID, quantity int64, price decimal.Decimal) (*Item, error) {
	trimmed, err := shared.ValidateName("Item", name)
	if err != nil {
		return nil, err
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeCategoryMissing, "Category is required.")
	}
	if err := shared.ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := shared.ValidateAmount(price); err != nil {
		return nil, err
	}

	item := &Item{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              trimmed,
		CategoryID:        categoryID,
		Quantity:          quantity,
		Price:             price,
	}

	item.AddDomainEvent(NewItemCreatedEvent(item))

	return item, nil
}

// Rename changes the item name; uniqueness is the caller's responsibility
func (i *Item) Rename(name string) error {
	trimmed, err := shared.ValidateName("Item", name)
	if err != nil {
		return err
	}
	i.Name = trimmed
	i.touch()
	return nil
}

// Recategorize moves the item to another category
func (i *Item) Recategorize(categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return shared.NewDomainError(shared.CodeCategoryMissing, "Category is required.")
	}
	i.CategoryID = categoryID
	i.touch()
	return nil
}

// SetQuantity replaces the current quantity with a direct stock correction
func (i *Item) SetQuantity(quantity int64) error {
	if err := shared.ValidateQuantity(quantity); err != nil {
		return err
	}
	i.Quantity = quantity
	i.touch()
	return nil
}

// SetPrice replaces the unit price
func (i *Item) SetPrice(price decimal.Decimal) error {
	if err := shared.ValidateAmount(price); err != nil {
		return err
	}
	i.Price = price
	i.touch()
	return nil
}

// SetImage replaces the optional image blob; nil clears it
func (i *Item) SetImage(image *string) {
	i.Image = image
	i.touch()
}

// SetNotes replaces the free-form notes
func (i *Item) SetNotes(notes string) {
	i.Notes = notes
	i.touch()
}

// CanDeduct reports whether qty units can be sold from current stock
func (i *Item) CanDeduct(qty int64) bool {
	return qty >= 1 && qty <= i.Quantity
}

// Deduct removes sold units from stock. It is the only quantity mutation
// outside direct edits; callers must hold the sale transaction scope.
func (i *Item) Deduct(qty int64) error {
	if err := shared.ValidateSaleQuantity(qty); err != nil {
		return err
	}
	if qty > i.Quantity {
		return shared.ErrInsufficientStock
	}
	i.Quantity -= qty
	i.touch()
	return nil
}

// StockValue returns quantity x unit price
func (i *Item) StockValue() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// Status derives the stock status against the given threshold
func (i *Item) Status(threshold int64) StockStatus {
	return StatusForQuantity(i.Quantity, threshold)
}

func (i *Item) touch() {
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}
