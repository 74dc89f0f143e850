package catalog

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stocktrack/backend/internal/domain/catalog"
	"github.com/stocktrack/backend/internal/domain/settings"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// SummaryTopN is how many items the stock value ranking returns
const SummaryTopN = 5

// ItemService handles item business operations
type ItemService struct {
	itemRepo       catalog.ItemRepository
	categoryRepo   catalog.CategoryRepository
	settingsRepo   settings.SettingsRepository
	eventPublisher shared.EventPublisher
}

// NewItemService creates a new ItemService
func NewItemService(
	itemRepo catalog.ItemRepository,
	categoryRepo catalog.CategoryRepository,
	settingsRepo settings.SettingsRepository,
) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		settingsRepo: settingsRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ItemService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *ItemService) publishEvents(ctx context.Context, events ...shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}

func (s *ItemService) threshold(ctx context.Context) (int64, error) {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return 0, err
	}
	return cfg.LowStockThreshold, nil
}

// Create creates a new item in an existing category
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	item, err := catalog.NewItem(req.Name, req.CategoryID, req.Quantity, req.Price)
	if err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if shared.IsCode(err, shared.CodeNotFound) {
			return nil, shared.NewDomainError(shared.CodeCategoryMissing, "Category is required.")
		}
		return nil, err
	}

	exists, err := s.itemRepo.ExistsByName(ctx, item.Name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeDuplicateName, "Item name already exists.")
	}

	item.SetImage(req.Image)
	item.SetNotes(req.Notes)

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, item.GetDomainEvents()...)
	item.ClearDomainEvents()

	threshold, err := s.threshold(ctx)
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item, threshold)
	return &response, nil
}

// Update applies a partial edit. Fields left nil keep their current value;
// every supplied field is validated before anything is written.
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		trimmed, err := shared.ValidateName("Item", *req.Name)
		if err != nil {
			return nil, err
		}
		exists, err := s.itemRepo.ExistsByName(ctx, trimmed, &id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError(shared.CodeDuplicateName, "Item name already exists.")
		}
		if err := item.Rename(trimmed); err != nil {
			return nil, err
		}
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if shared.IsCode(err, shared.CodeNotFound) {
				return nil, shared.NewDomainError(shared.CodeCategoryMissing, "Category is required.")
			}
			return nil, err
		}
		if err := item.Recategorize(*req.CategoryID); err != nil {
			return nil, err
		}
	}

	if req.Quantity != nil {
		if err := item.SetQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}

	if req.Price != nil {
		if err := item.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}

	if req.Image != nil {
		if *req.Image == "" {
			item.SetImage(nil)
		} else {
			item.SetImage(req.Image)
		}
	}

	if req.Notes != nil {
		item.SetNotes(*req.Notes)
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, catalog.NewItemUpdatedEvent(item))

	threshold, err := s.threshold(ctx)
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item, threshold)
	return &response, nil
}

// Delete removes an item. Past sale records keep their snapshot of the
// item's name and price, so deletion never touches the ledger.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvents(ctx, catalog.NewItemDeletedEvent(item.ID, item.Name))
	return nil
}

// GetByID retrieves an item by ID
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	threshold, err := s.threshold(ctx)
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item, threshold)
	return &response, nil
}

// List retrieves items with search, category and status filtering
func (s *ItemService) List(ctx context.Context, filter ItemListFilter) ([]ItemResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	threshold, err := s.threshold(ctx)
	if err != nil {
		return nil, 0, err
	}

	domainFilter := catalog.ItemFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			OrderBy:  filter.OrderBy,
			OrderDir: filter.OrderDir,
			Search:   filter.Search,
		},
		CategoryID: filter.CategoryID,
		Status:     catalog.StockStatus(filter.Status),
		Threshold:  threshold,
	}

	items, err := s.itemRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.itemRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToItemResponse(&items[i], threshold))
	}

	return responses, total, nil
}

// Summary aggregates the current stock position across all items
func (s *ItemService) Summary(ctx context.Context) (*InventorySummaryResponse, error) {
	threshold, err := s.threshold(ctx)
	if err != nil {
		return nil, err
	}

	filter := catalog.DefaultItemFilter()
	filter.PageSize = -1 // all items
	items, err := s.itemRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &InventorySummaryResponse{
		TotalItems:      int64(len(items)),
		TotalStockValue: decimal.Zero,
		TopByStockValue: make([]TopItemResponse, 0, SummaryTopN),
	}

	for i := range items {
		item := &items[i]
		summary.TotalUnits += item.Quantity
		summary.TotalStockValue = summary.TotalStockValue.Add(item.StockValue())
		switch item.Status(threshold) {
		case catalog.StockStatusLow:
			summary.LowStockCount++
		case catalog.StockStatusOut:
			summary.OutOfStockCount++
		}
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].StockValue().GreaterThan(items[b].StockValue())
	})

	for i := 0; i < len(items) && i < SummaryTopN; i++ {
		item := &items[i]
		summary.TopByStockValue = append(summary.TopByStockValue, TopItemResponse{
			ID:         item.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Price:      item.Price,
			StockValue: item.StockValue(),
		})
	}

	return summary, nil
}
