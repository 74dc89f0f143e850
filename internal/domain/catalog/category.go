package catalog

import (
	"time"

	"github.com/stocktrack/backend/internal/domain/shared"
)

// Category represents a named grouping that items belong to.
// Category names are unique case-insensitively across the account;
// the uniqueness check itself lives in the service layer where the
// full collection is visible.
type Category struct {
	shared.BaseAggregateRoot
	Name string `gorm:"type:varchar(100);not null;index"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category with a trimmed, validated name
func NewCategory(name string) (*Category, error) {
	trimmed, err := shared.ValidateName("Category", name)
	if err != nil {
		return nil, err
	}

	category := &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              trimmed,
	}

	category.AddDomainEvent(NewCategoryCreatedEvent(category))

	return category, nil
}

// Rename changes the category name. The new name is trimmed and validated;
// uniqueness against sibling categories is the caller's responsibility.
func (c *Category) Rename(name string) error {
	trimmed, err := shared.ValidateName("Category", name)
	if err != nil {
		return err
	}

	c.Name = trimmed
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCategoryRenamedEvent(c))

	return nil
}
