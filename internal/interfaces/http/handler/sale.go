package handler

import (
	"github.com/gin-gonic/gin"
	ledgerapp "github.com/stocktrack/backend/internal/application/ledger"
)

// SaleHandler handles the sale endpoint
type SaleHandler struct {
	BaseHandler
	saleService *ledgerapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *ledgerapp.SaleService) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
	}
}

// Sell handles POST /sales
func (h *SaleHandler) Sell(c *gin.Context) {
	var req ledgerapp.SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.saleService.Sell(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}
