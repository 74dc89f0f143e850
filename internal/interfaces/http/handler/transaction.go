package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	ledgerapp "github.com/stocktrack/backend/internal/application/ledger"
	"github.com/stocktrack/backend/internal/domain/ledger"
)

// TransactionHandler handles sale history API endpoints
type TransactionHandler struct {
	BaseHandler
	ledgerService *ledgerapp.LedgerService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(ledgerService *ledgerapp.LedgerService) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
	}
}

// List handles GET /transactions
func (h *TransactionHandler) List(c *gin.Context) {
	var filter ledgerapp.TransactionListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = 20
	}

	transactions, total, err := h.ledgerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, transactions, total, filter.Page, filter.PageSize)
}

// Summary handles GET /transactions/summary
func (h *TransactionHandler) Summary(c *gin.Context) {
	period := ledger.Period(c.DefaultQuery("period", string(ledger.PeriodAll)))

	summary, err := h.ledgerService.Summary(c.Request.Context(), period)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// Export handles GET /transactions/export, streaming the history as a CSV
// file download
func (h *TransactionHandler) Export(c *gin.Context) {
	var filter ledgerapp.TransactionListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filename := fmt.Sprintf("transactions-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := h.ledgerService.Export(c.Request.Context(), filter, c.Writer); err != nil {
		// Headers are already written, the best we can do is log via gin's
		// error list and cut the stream short.
		_ = c.Error(err)
	}
}

// ClearAll handles DELETE /transactions
func (h *TransactionHandler) ClearAll(c *gin.Context) {
	removed, err := h.ledgerService.ClearAll(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"removed": removed})
}
