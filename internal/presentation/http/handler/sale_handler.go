package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/tillpoint-api/internal/application/service"
	"github.com/sangkips/tillpoint-api/internal/domain/entity"
	"github.com/sangkips/tillpoint-api/internal/domain/money"
	"github.com/sangkips/tillpoint-api/internal/presentation/http/dto/request"
	"github.com/sangkips/tillpoint-api/internal/presentation/http/dto/response"
	"github.com/sangkips/tillpoint-api/pkg/apperror"
)

// SaleHandler handles the sale lifecycle at the terminal
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// saleError maps the service's sentinel errors to HTTP errors
func saleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrNoActiveSale):
		response.Error(c, apperror.NewConflictError("No sale in progress"))
	case errors.Is(err, entity.ErrItemNotFound):
		response.Error(c, apperror.NewNotFoundError("Item"))
	default:
		response.Error(c, err)
	}
}

// Start begins a new sale, replacing any sale in progress
func (h *SaleHandler) Start(c *gin.Context) {
	sale := h.saleService.StartNewSale()
	response.Created(c, "Sale started", response.NewSaleResponse(sale))
}

// EnterItem adds a quantity of one item to the current sale
func (h *SaleHandler) EnterItem(c *gin.Context) {
	var req request.EnterItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	entered, err := h.saleService.EnterItem(req.ItemID, req.Quantity)
	if err != nil {
		saleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Item entered", response.NewEnteredItemResponse(entered))
}

// End returns the sale total including VAT
func (h *SaleHandler) End(c *gin.Context) {
	total, err := h.saleService.EndSale()
	if err != nil {
		saleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Sale ended", gin.H{
		"total_with_vat": total,
	})
}

// Discount applies the discounts the customer is eligible for
func (h *SaleHandler) Discount(c *gin.Context) {
	var req request.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	total, err := h.saleService.RequestDiscount(req.CustomerID)
	if err != nil {
		saleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Discount applied", gin.H{
		"total_with_vat": total,
	})
}

// Pay settles the sale and returns the change and the receipt
func (h *SaleHandler) Pay(c *gin.Context) {
	var req request.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.saleService.ProcessPayment(money.NewFromFloat(req.Amount))
	if err != nil {
		saleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Payment processed", response.NewPaymentResponse(result))
}

// Current returns a snapshot of the sale in progress
func (h *SaleHandler) Current(c *gin.Context) {
	sale := h.saleService.CurrentSale()
	if sale == nil {
		saleError(c, entity.ErrNoActiveSale)
		return
	}

	response.Success(c, http.StatusOK, "Current sale", response.NewSaleResponse(sale))
}

// CurrentVAT returns the current sale's total VAT
func (h *SaleHandler) CurrentVAT(c *gin.Context) {
	totalVAT, err := h.saleService.CurrentTotalVAT()
	if err != nil {
		saleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Current VAT", gin.H{
		"total_vat": totalVAT,
	})
}
