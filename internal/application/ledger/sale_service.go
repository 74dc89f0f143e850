package ledger

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stocktrack/backend/internal/domain/catalog"
	"github.com/stocktrack/backend/internal/domain/ledger"
	"github.com/stocktrack/backend/internal/domain/settings"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// SaleService records sales. A sale decrements item stock and appends a
// ledger record in one transaction; partial outcomes never persist.
type SaleService struct {
	scope          TransactionScope
	settingsRepo   settings.SettingsRepository
	eventPublisher shared.EventPublisher
}

// NewSaleService creates a new SaleService
func NewSaleService(scope TransactionScope, settingsRepo settings.SettingsRepository) *SaleService {
	return &SaleService{
		scope:        scope,
		settingsRepo: settingsRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *SaleService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *SaleService) publishEvents(ctx context.Context, events ...shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}

// Sell validates and records a sale atomically. All preconditions are
// checked against the item's state inside the transaction, so concurrent
// sales of the same item cannot oversell it.
func (s *SaleService) Sell(ctx context.Context, req SellRequest) (*SellResponse, error) {
	if err := shared.ValidateSaleQuantity(req.Quantity); err != nil {
		return nil, err
	}
	if req.PriceEach != nil {
		if err := shared.ValidateAmount(*req.PriceEach); err != nil {
			return nil, err
		}
	}
	if req.Discount.IsNegative() {
		return nil, shared.NewDomainError(shared.CodeInvalidDiscount, "Discount cannot be negative.")
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	threshold := cfg.LowStockThreshold

	var (
		transaction *ledger.SaleTransaction
		remaining   int64
		events      []shared.DomainEvent
	)

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		item, err := repos.Items().FindByID(ctx, req.ItemID)
		if err != nil {
			if shared.IsCode(err, shared.CodeNotFound) {
				return shared.ErrItemNotFound
			}
			return err
		}

		unitPrice := item.Price
		if req.PriceEach != nil {
			unitPrice = *req.PriceEach
		}

		subtotal := unitPrice.Mul(decimal.NewFromInt(req.Quantity))
		if err := shared.ValidateDiscount(req.Discount, subtotal); err != nil {
			return err
		}

		// Conditional decrement: the guard re-checks stock at write time,
		// so a concurrent sale that drained the item makes this fail with
		// INSUFFICIENT_STOCK instead of committing a negative quantity.
		updated, err := repos.Items().DecrementStock(ctx, item.ID, req.Quantity)
		if err != nil {
			return err
		}
		remaining = updated.Quantity

		transaction, err = ledger.NewSaleTransaction(item.ID, item.Name, req.Quantity, unitPrice, req.Discount, req.Notes)
		if err != nil {
			return err
		}

		if err := repos.Transactions().Append(ctx, transaction); err != nil {
			return err
		}

		events = append(events, ledger.NewSaleRecordedEvent(transaction))
		switch catalog.StatusForQuantity(updated.Quantity, threshold) {
		case catalog.StockStatusOut:
			events = append(events, catalog.NewStockDepletedEvent(updated))
		case catalog.StockStatusLow:
			events = append(events, catalog.NewStockLowEvent(updated, threshold))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Events go out only after the transaction has committed
	s.publishEvents(ctx, events...)

	return &SellResponse{
		Transaction: ToTransactionResponse(transaction),
		Remaining:   remaining,
		Status:      catalog.StatusForQuantity(remaining, threshold).String(),
	}, nil
}
