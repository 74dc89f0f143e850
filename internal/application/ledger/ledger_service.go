package ledger

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stocktrack/backend/internal/domain/ledger"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// TransactionExporter writes sale records to an output stream
type TransactionExporter interface {
	Export(w io.Writer, transactions []ledger.SaleTransaction) error
}

// LedgerService exposes the read side of the sale history plus the one
// destructive operation it supports, clearing it entirely.
type LedgerService struct {
	transactionRepo ledger.TransactionRepository
	exporter        TransactionExporter
	eventPublisher  shared.EventPublisher
	now             func() time.Time
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(transactionRepo ledger.TransactionRepository, exporter TransactionExporter) *LedgerService {
	return &LedgerService{
		transactionRepo: transactionRepo,
		exporter:        exporter,
		now:             time.Now,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *LedgerService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock overrides the time source, for tests that pin the period windows
func (s *LedgerService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *LedgerService) buildFilter(filter TransactionListFilter) (ledger.TransactionFilter, error) {
	period := ledger.PeriodAll
	if filter.Period != "" {
		period = ledger.Period(filter.Period)
		if !period.IsValid() {
			return ledger.TransactionFilter{}, shared.NewDomainError(shared.CodeInvalidPeriod, "Unknown period: "+filter.Period)
		}
	}

	domainFilter := ledger.DefaultTransactionFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	domainFilter.ItemID = filter.ItemID
	domainFilter.Since = period.Start(s.now())
	return domainFilter, nil
}

// List retrieves sale records, newest first
func (s *LedgerService) List(ctx context.Context, filter TransactionListFilter) ([]TransactionResponse, int64, error) {
	domainFilter, err := s.buildFilter(filter)
	if err != nil {
		return nil, 0, err
	}

	transactions, err := s.transactionRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.transactionRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, ToTransactionResponse(&transactions[i]))
	}

	return responses, total, nil
}

// Summary aggregates sales over a reporting period
func (s *LedgerService) Summary(ctx context.Context, period ledger.Period) (*SalesSummaryResponse, error) {
	if !period.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidPeriod, "Unknown period: "+string(period))
	}

	filter := ledger.DefaultTransactionFilter()
	filter.PageSize = -1 // all records in the window
	filter.Since = period.Start(s.now())

	transactions, err := s.transactionRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &SalesSummaryResponse{
		Period:        string(period),
		GrossRevenue:  decimal.Zero,
		TotalDiscount: decimal.Zero,
		NetRevenue:    decimal.Zero,
	}

	for i := range transactions {
		tx := &transactions[i]
		summary.Transactions++
		summary.UnitsSold += tx.Quantity
		summary.GrossRevenue = summary.GrossRevenue.Add(tx.Subtotal())
		summary.TotalDiscount = summary.TotalDiscount.Add(tx.Discount)
		summary.NetRevenue = summary.NetRevenue.Add(tx.Total)
	}

	return summary, nil
}

// Export streams sale records matching the filter to w
func (s *LedgerService) Export(ctx context.Context, filter TransactionListFilter, w io.Writer) error {
	domainFilter, err := s.buildFilter(filter)
	if err != nil {
		return err
	}
	domainFilter.PageSize = -1 // export is never paginated

	transactions, err := s.transactionRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return err
	}

	return s.exporter.Export(w, transactions)
}

// ClearAll wipes the entire sale history and returns how many records
// the delete actually removed. Item stock is untouched.
func (s *LedgerService) ClearAll(ctx context.Context) (int64, error) {
	removed, err := s.transactionRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, ledger.NewLedgerClearedEvent(removed))
	}

	return removed, nil
}
