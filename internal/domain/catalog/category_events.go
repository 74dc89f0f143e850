package catalog

import (
	"github.com/google/uuid"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// Category event types
const (
	EventTypeCategoryCreated = "catalog.category.created"
	EventTypeCategoryRenamed = "catalog.category.renamed"
	EventTypeCategoryDeleted = "catalog.category.deleted"
)

// CategoryCreatedEvent is published when a category is created
type CategoryCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewCategoryCreatedEvent creates a new CategoryCreatedEvent
func NewCategoryCreatedEvent(category *Category) *CategoryCreatedEvent {
	return &CategoryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoryCreated, "Category", category.ID),
		Name:            category.Name,
	}
}

// CategoryRenamedEvent is published when a category is renamed
type CategoryRenamedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewCategoryRenamedEvent creates a new CategoryRenamedEvent
func NewCategoryRenamedEvent(category *Category) *CategoryRenamedEvent {
	return &CategoryRenamedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoryRenamed, "Category", category.ID),
		Name:            category.Name,
	}
}

// CategoryDeletedEvent is published when a category is deleted
type CategoryDeletedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewCategoryDeletedEvent creates a new CategoryDeletedEvent
func NewCategoryDeletedEvent(id uuid.UUID, name string) *CategoryDeletedEvent {
	return &CategoryDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoryDeleted, "Category", id),
		Name:            name,
	}
}
