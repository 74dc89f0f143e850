package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stocktrack/backend/internal/domain/catalog"
)

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ItemCount int64     `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a domain category to a response DTO
func ToCategoryResponse(category *catalog.Category, itemCount int64) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		ItemCount: itemCount,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameCategoryRequest represents a request to rename a category
type RenameCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// ItemResponse represents an item in API responses
type ItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	CategoryID uuid.UUID       `json:"category_id"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Image      *string         `json:"image,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Status     string          `json:"status"`
	StockValue decimal.Decimal `json:"stock_value"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Version    int             `json:"version"`
}

// ToItemResponse converts a domain item to a response DTO, deriving the
// stock status from the given threshold
func ToItemResponse(item *catalog.Item, threshold int64) ItemResponse {
	return ItemResponse{
		ID:         item.ID,
		Name:       item.Name,
		CategoryID: item.CategoryID,
		Quantity:   item.Quantity,
		Price:      item.Price,
		Image:      item.Image,
		Notes:      item.Notes,
		Status:     item.Status(threshold).String(),
		StockValue: item.StockValue(),
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
		Version:    item.Version,
	}
}

// CreateItemRequest represents a request to create an item
type CreateItemRequest struct {
	Name       string          `json:"name" binding:"required"`
	CategoryID uuid.UUID       `json:"category_id" binding:"required"`
	Quantity   int64           `json:"quantity" binding:"min=0"`
	Price      decimal.Decimal `json:"price" binding:"dgte0"`
	Image      *string         `json:"image"`
	Notes      string          `json:"notes"`
}

// UpdateItemRequest represents a partial item edit. Nil fields are left
// unchanged; a non-nil Image pointing at an empty string clears the image.
type UpdateItemRequest struct {
	Name       *string          `json:"name"`
	CategoryID *uuid.UUID       `json:"category_id"`
	Quantity   *int64           `json:"quantity"`
	Price      *decimal.Decimal `json:"price"`
	Image      *string          `json:"image"`
	Notes      *string          `json:"notes"`
}

// ItemListFilter represents filter options for the item list
type ItemListFilter struct {
	Search     string     `form:"search"`
	CategoryID *uuid.UUID `form:"category_id"`
	Status     string     `form:"status" binding:"omitempty,oneof=in_stock low_stock out_of_stock"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// TopItemResponse is one row of the stock value ranking
type TopItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	StockValue decimal.Decimal `json:"stock_value"`
}

// InventorySummaryResponse aggregates the current stock position
type InventorySummaryResponse struct {
	TotalItems      int64             `json:"total_items"`
	TotalUnits      int64             `json:"total_units"`
	TotalStockValue decimal.Decimal   `json:"total_stock_value"`
	LowStockCount   int64             `json:"low_stock_count"`
	OutOfStockCount int64             `json:"out_of_stock_count"`
	TopByStockValue []TopItemResponse `json:"top_by_stock_value"`
}
