package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stocktrack/backend/internal/domain/catalog"
	"github.com/stocktrack/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates category and publishes event", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		itemRepo := new(MockItemRepository)
		publisher := NewMockEventPublisher()
		service := NewCategoryService(categoryRepo, itemRepo)
		service.SetEventPublisher(publisher)

		categoryRepo.On("ExistsByName", ctx, "Beverages", (*uuid.UUID)(nil)).Return(false, nil)
		categoryRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

		resp, err := service.Create(ctx, CreateCategoryRequest{Name: " Beverages "})

		require.NoError(t, err)
		assert.Equal(t, "Beverages", resp.Name)
		assert.Equal(t, int64(0), resp.ItemCount)
		assert.Len(t, publisher.GetEventsByType(catalog.EventTypeCategoryCreated), 1)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		itemRepo := new(MockItemRepository)
		service := NewCategoryService(categoryRepo, itemRepo)

		categoryRepo.On("ExistsByName", ctx, "Beverages", (*uuid.UUID)(nil)).Return(true, nil)

		_, err := service.Create(ctx, CreateCategoryRequest{Name: "Beverages"})

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeDuplicateName))
		assert.Equal(t, "Category already exists.", err.Error())
		categoryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects empty name before any storage call", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		itemRepo := new(MockItemRepository)
		service := NewCategoryService(categoryRepo, itemRepo)

		_, err := service.Create(ctx, CreateCategoryRequest{Name: "   "})

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeEmptyName))
		categoryRepo.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCategoryServiceRename(t *testing.T) {
	ctx := context.Background()

	t.Run("renames when new name is free", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		itemRepo := new(MockItemRepository)
		service := NewCategoryService(categoryRepo, itemRepo)

		category, err := catalog.NewCategory("Snacks")
		require.NoError(t, err)
		id := category.ID

		categoryRepo.On("FindByID", ctx, id).Return(category, nil)
		categoryRepo.On("ExistsByName", ctx, "Pastries", &id).Return(false, nil)
		categoryRepo.On("Save", ctx, category).Return(nil)
		itemRepo.On("CountByCategory", ctx, id).Return(int64(3), nil)

		resp, err := service.Rename(ctx, id, RenameCategoryRequest{Name: "Pastries"})

		require.NoError(t, err)
		assert.Equal(t, "Pastries", resp.Name)
		assert.Equal(t, int64(3), resp.ItemCount)
	})

	t.Run("rejects rename to an existing name", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		itemRepo := new(MockItemRepository)
		service := NewCategoryService(categoryRepo, itemRepo)

		category, err := catalog.NewCategory("Snacks")
		require.NoError(t, err)
		id := category.ID

		categoryRepo.On("FindByID", ctx, id).Return(category, nil)
		categoryRepo.On("ExistsByName", ctx, "Beverages", &id).Return(true, nil)

		_, err = service.Rename(ctx, id, RenameCategoryRequest{Name: "Beverages"})

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeDuplicateName))
		assert.Equal(t, "Snacks", category.Name)
	})

	t.Run("propagates not found", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		itemRepo := new(MockItemRepository)
		service := NewCategoryService(categoryRepo, itemRepo)

		id := uuid.New()
		categoryRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Rename(ctx, id, RenameCategoryRequest{Name: "Pastries"})

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeNotFound))
	})
}

func TestCategoryServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an empty category", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		itemRepo := new(MockItemRepository)
		publisher := NewMockEventPublisher()
		service := NewCategoryService(categoryRepo, itemRepo)
		service.SetEventPublisher(publisher)

		category, err := catalog.NewCategory("Snacks")
		require.NoError(t, err)
		id := category.ID

		categoryRepo.On("FindByID", ctx, id).Return(category, nil)
		itemRepo.On("CountByCategory", ctx, id).Return(int64(0), nil)
		categoryRepo.On("Delete", ctx, id).Return(nil)

		require.NoError(t, service.Delete(ctx, id))
		assert.Len(t, publisher.GetEventsByType(catalog.EventTypeCategoryDeleted), 1)
	})

	t.Run("refuses to delete a category with items", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		itemRepo := new(MockItemRepository)
		service := NewCategoryService(categoryRepo, itemRepo)

		category, err := catalog.NewCategory("Snacks")
		require.NoError(t, err)
		id := category.ID

		categoryRepo.On("FindByID", ctx, id).Return(category, nil)
		itemRepo.On("CountByCategory", ctx, id).Return(int64(2), nil)

		err = service.Delete(ctx, id)

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeCategoryInUse))
		assert.Equal(t, "Cannot delete: category has items assigned. Reassign them first.", err.Error())
		categoryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
