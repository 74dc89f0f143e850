package ledger

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stocktrack/backend/internal/domain/catalog"
	"github.com/stocktrack/backend/internal/domain/ledger"
	"github.com/stocktrack/backend/internal/domain/settings"
	"github.com/stocktrack/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, qty int64, price float64) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem("Espresso", uuid.New(), qty, decimal.NewFromFloat(price))
	require.NoError(t, err)
	item.ClearDomainEvents()
	return item
}

func afterDeduct(t *testing.T, item *catalog.Item, qty int64) *catalog.Item {
	t.Helper()
	copied := *item
	require.NoError(t, copied.Deduct(qty))
	return &copied
}

func TestSaleServiceSell(t *testing.T) {
	ctx := context.Background()

	setup := func() (*MockItemRepository, *MockTransactionRepository, *MockSettingsRepository, *SaleService, *MockEventPublisher) {
		itemRepo := new(MockItemRepository)
		txRepo := new(MockTransactionRepository)
		settingsRepo := new(MockSettingsRepository)
		publisher := NewMockEventPublisher()
		scope := NewNoOpTransactionScope(itemRepo, txRepo)
		service := NewSaleService(scope, settingsRepo)
		service.SetEventPublisher(publisher)
		return itemRepo, txRepo, settingsRepo, service, publisher
	}

	t.Run("records sale and decrements stock", func(t *testing.T) {
		itemRepo, txRepo, settingsRepo, service, publisher := setup()

		item := newTestItem(t, 10, 4.50)
		settingsRepo.On("Get", ctx).Return(settings.NewSettings(), nil)
		itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
		itemRepo.On("DecrementStock", ctx, item.ID, int64(3)).Return(afterDeduct(t, item, 3), nil)
		txRepo.On("Append", ctx, mock.AnythingOfType("*ledger.SaleTransaction")).Return(nil)

		resp, err := service.Sell(ctx, SellRequest{
			ItemID:   item.ID,
			Quantity: 3,
			Discount: decimal.NewFromFloat(1.50),
			Notes:    "morning rush",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.Remaining)
		assert.Equal(t, "in_stock", resp.Status)
		assert.Equal(t, "Espresso", resp.Transaction.ItemName)
		assert.True(t, decimal.NewFromFloat(12.00).Equal(resp.Transaction.Total))
		assert.Len(t, publisher.GetEventsByType(ledger.EventTypeSaleRecorded), 1)
	})

	t.Run("publishes stock low event when sale crosses threshold", func(t *testing.T) {
		itemRepo, txRepo, settingsRepo, service, publisher := setup()

		item := newTestItem(t, 6, 4.50)
		settingsRepo.On("Get", ctx).Return(settings.NewSettings(), nil)
		itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
		itemRepo.On("DecrementStock", ctx, item.ID, int64(2)).Return(afterDeduct(t, item, 2), nil)
		txRepo.On("Append", ctx, mock.AnythingOfType("*ledger.SaleTransaction")).Return(nil)

		resp, err := service.Sell(ctx, SellRequest{ItemID: item.ID, Quantity: 2})

		require.NoError(t, err)
		assert.Equal(t, "low_stock", resp.Status)
		assert.Len(t, publisher.GetEventsByType(catalog.EventTypeStockLow), 1)
	})

	t.Run("publishes stock depleted event when sale empties the item", func(t *testing.T) {
		itemRepo, txRepo, settingsRepo, service, publisher := setup()

		item := newTestItem(t, 2, 4.50)
		settingsRepo.On("Get", ctx).Return(settings.NewSettings(), nil)
		itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
		itemRepo.On("DecrementStock", ctx, item.ID, int64(2)).Return(afterDeduct(t, item, 2), nil)
		txRepo.On("Append", ctx, mock.AnythingOfType("*ledger.SaleTransaction")).Return(nil)

		resp, err := service.Sell(ctx, SellRequest{ItemID: item.ID, Quantity: 2})

		require.NoError(t, err)
		assert.Equal(t, int64(0), resp.Remaining)
		assert.Equal(t, "out_of_stock", resp.Status)
		assert.Len(t, publisher.GetEventsByType(catalog.EventTypeStockDepleted), 1)
	})

	t.Run("negotiated price overrides the catalog price", func(t *testing.T) {
		itemRepo, txRepo, settingsRepo, service, _ := setup()

		item := newTestItem(t, 10, 3.25)
		settingsRepo.On("Get", ctx).Return(settings.NewSettings(), nil)
		itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
		itemRepo.On("DecrementStock", ctx, item.ID, int64(2)).Return(afterDeduct(t, item, 2), nil)
		txRepo.On("Append", ctx, mock.AnythingOfType("*ledger.SaleTransaction")).Return(nil)

		priceEach := decimal.NewFromFloat(1.00)
		resp, err := service.Sell(ctx, SellRequest{
			ItemID:    item.ID,
			Quantity:  2,
			PriceEach: &priceEach,
		})

		require.NoError(t, err)
		assert.True(t, priceEach.Equal(resp.Transaction.UnitPrice))
		assert.True(t, decimal.NewFromFloat(2.00).Equal(resp.Transaction.Total))
	})

	t.Run("discount is validated against the negotiated subtotal", func(t *testing.T) {
		itemRepo, txRepo, settingsRepo, service, _ := setup()

		item := newTestItem(t, 10, 4.50)
		settingsRepo.On("Get", ctx).Return(settings.NewSettings(), nil)
		itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)

		priceEach := decimal.NewFromFloat(1.00)
		_, err := service.Sell(ctx, SellRequest{
			ItemID:    item.ID,
			Quantity:  2,
			PriceEach: &priceEach,
			Discount:  decimal.NewFromFloat(2.01),
		})

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeInvalidDiscount))
		txRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("rejects a negative negotiated price up front", func(t *testing.T) {
		itemRepo, _, _, service, _ := setup()

		priceEach := decimal.NewFromFloat(-0.01)
		_, err := service.Sell(ctx, SellRequest{
			ItemID:    uuid.New(),
			Quantity:  1,
			PriceEach: &priceEach,
		})

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeInvalidPrice))
		itemRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("rejects overselling without appending to the ledger", func(t *testing.T) {
		itemRepo, txRepo, settingsRepo, service, _ := setup()

		item := newTestItem(t, 2, 4.50)
		settingsRepo.On("Get", ctx).Return(settings.NewSettings(), nil)
		itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
		itemRepo.On("DecrementStock", ctx, item.ID, int64(5)).Return(nil, shared.ErrInsufficientStock)

		_, err := service.Sell(ctx, SellRequest{ItemID: item.ID, Quantity: 5})

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeInsufficientStock))
		txRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("maps unknown item to item not found", func(t *testing.T) {
		itemRepo, txRepo, settingsRepo, service, _ := setup()

		id := uuid.New()
		settingsRepo.On("Get", ctx).Return(settings.NewSettings(), nil)
		itemRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Sell(ctx, SellRequest{ItemID: id, Quantity: 1})

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeItemNotFound))
		assert.Equal(t, "Item not found.", err.Error())
		txRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("rejects discount above subtotal before touching stock", func(t *testing.T) {
		itemRepo, txRepo, settingsRepo, service, _ := setup()

		item := newTestItem(t, 10, 4.50)
		settingsRepo.On("Get", ctx).Return(settings.NewSettings(), nil)
		itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)

		_, err := service.Sell(ctx, SellRequest{
			ItemID:   item.ID,
			Quantity: 2,
			Discount: decimal.NewFromFloat(9.01),
		})

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeInvalidDiscount))
		itemRepo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
		txRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("accepts a zero total sale", func(t *testing.T) {
		itemRepo, txRepo, settingsRepo, service, _ := setup()

		item := newTestItem(t, 10, 4.50)
		settingsRepo.On("Get", ctx).Return(settings.NewSettings(), nil)
		itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
		itemRepo.On("DecrementStock", ctx, item.ID, int64(2)).Return(afterDeduct(t, item, 2), nil)
		txRepo.On("Append", ctx, mock.AnythingOfType("*ledger.SaleTransaction")).Return(nil)

		resp, err := service.Sell(ctx, SellRequest{
			ItemID:   item.ID,
			Quantity: 2,
			Discount: decimal.NewFromFloat(9.00),
		})

		require.NoError(t, err)
		assert.True(t, resp.Transaction.Total.IsZero())
	})

	t.Run("rejects zero quantity up front", func(t *testing.T) {
		itemRepo, _, _, service, _ := setup()

		_, err := service.Sell(ctx, SellRequest{ItemID: uuid.New(), Quantity: 0})

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeInvalidQuantity))
		itemRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}
