package catalog

import (
	"github.com/google/uuid"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// Item event types
const (
	EventTypeItemCreated   = "catalog.item.created"
	EventTypeItemUpdated   = "catalog.item.updated"
	EventTypeItemDeleted   = "catalog.item.deleted"
	EventTypeStockLow      = "catalog.item.stock_low"
	EventTypeStockDepleted = "catalog.item.stock_depleted"
)

// ItemCreatedEvent is published when an item is created
type ItemCreatedEvent struct {
	shared.BaseDomainEvent
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"category_id"`
	Quantity   int64     `json:"quantity"`
}

// NewItemCreatedEvent creates a new ItemCreatedEvent
func NewItemCreatedEvent(item *Item) *ItemCreatedEvent {
	return &ItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemCreated, "Item", item.ID),
		Name:            item.Name,
		CategoryID:      item.CategoryID,
		Quantity:        item.Quantity,
	}
}

// ItemUpdatedEvent is published when an item's fields are edited
type ItemUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewItemUpdatedEvent creates a new ItemUpdatedEvent
func NewItemUpdatedEvent(item *Item) *ItemUpdatedEvent {
	return &ItemUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemUpdated, "Item", item.ID),
		Name:            item.Name,
	}
}

// ItemDeletedEvent is published when an item is deleted
type ItemDeletedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewItemDeletedEvent creates a new ItemDeletedEvent
func NewItemDeletedEvent(id uuid.UUID, name string) *ItemDeletedEvent {
	return &ItemDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemDeleted, "Item", id),
		Name:            name,
	}
}

// StockLowEvent is published when a sale leaves an item at or below the
// low-stock threshold but not empty
type StockLowEvent struct {
	shared.BaseDomainEvent
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Threshold int64  `json:"threshold"`
}

// NewStockLowEvent creates a new StockLowEvent
func NewStockLowEvent(item *Item, threshold int64) *StockLowEvent {
	return &StockLowEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockLow, "Item", item.ID),
		Name:            item.Name,
		Quantity:        item.Quantity,
		Threshold:       threshold,
	}
}

// StockDepletedEvent is published when a sale empties an item's stock
type StockDepletedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewStockDepletedEvent creates a new StockDepletedEvent
func NewStockDepletedEvent(item *Item) *StockDepletedEvent {
	return &StockDepletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockDepleted, "Item", item.ID),
		Name:            item.Name,
	}
}
