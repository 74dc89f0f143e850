package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/stocktrack/backend/internal/domain/catalog"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// CategoryService handles category business operations
type CategoryService struct {
	categoryRepo   catalog.CategoryRepository
	itemRepo       catalog.ItemRepository
	eventPublisher shared.EventPublisher
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository, itemRepo catalog.ItemRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *CategoryService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *CategoryService) publishEvents(ctx context.Context, events ...shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}

// Create creates a new category with a unique, case-insensitive name
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Name)
	if err != nil {
		return nil, err
	}

	exists, err := s.categoryRepo.ExistsByName(ctx, category.Name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeDuplicateName, "Category already exists.")
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, category.GetDomainEvents()...)
	category.ClearDomainEvents()

	response := ToCategoryResponse(category, 0)
	return &response, nil
}

// Rename renames a category, keeping names unique case-insensitively
func (s *CategoryService) Rename(ctx context.Context, id uuid.UUID, req RenameCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	trimmed, err := shared.ValidateName("Category", req.Name)
	if err != nil {
		return nil, err
	}

	exists, err := s.categoryRepo.ExistsByName(ctx, trimmed, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeDuplicateName, "Category already exists.")
	}

	if err := category.Rename(trimmed); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, category.GetDomainEvents()...)
	category.ClearDomainEvents()

	count, err := s.itemRepo.CountByCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category, count)
	return &response, nil
}

// Delete removes a category that has no items assigned
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.itemRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError(shared.CodeCategoryInUse, "Cannot delete: category has items assigned. Reassign them first.")
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvents(ctx, catalog.NewCategoryDeletedEvent(category.ID, category.Name))
	return nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.itemRepo.CountByCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category, count)
	return &response, nil
}

// List retrieves categories with pagination, each with its item count
func (s *CategoryService) List(ctx context.Context, filter shared.Filter) ([]CategoryResponse, int64, error) {
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

	categories, err := s.categoryRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.categoryRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		count, err := s.itemRepo.CountByCategory(ctx, categories[i].ID)
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, ToCategoryResponse(&categories[i], count))
	}

	return responses, total, nil
}
