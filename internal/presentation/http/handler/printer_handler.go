package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/tillpoint-api/internal/domain/entity"
	"github.com/sangkips/tillpoint-api/internal/domain/money"
	"github.com/sangkips/tillpoint-api/internal/infrastructure/printing"
	"github.com/sangkips/tillpoint-api/internal/presentation/http/dto/response"
	"github.com/sangkips/tillpoint-api/pkg/apperror"
)

// PrinterHandler exposes printer status and test printing
type PrinterHandler struct {
	printer *printing.TerminalPrinter
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printer *printing.TerminalPrinter) *PrinterHandler {
	return &PrinterHandler{printer: printer}
}

// Status returns the printer connection status
func (h *PrinterHandler) Status(c *gin.Context) {
	configured, connected := h.printer.Status()
	response.Success(c, http.StatusOK, "Printer status", gin.H{
		"configured": configured,
		"connected":  connected,
		"type":       h.printer.Type(),
	})
}

// Test prints a fixed test receipt
func (h *PrinterHandler) Test(c *gin.Context) {
	receipt := &entity.Receipt{
		Number:   "PRINTER-TEST",
		SaleTime: time.Now(),
		Lines: []entity.ReceiptLine{
			{Name: "Test Item", Quantity: 1, UnitPrice: money.NewFromFloat(10.0), Subtotal: money.NewFromFloat(10.0)},
		},
		Total:    money.NewFromFloat(10.0),
		TotalVAT: money.Zero(),
		Paid:     money.NewFromFloat(10.0),
		Change:   money.Zero(),
	}

	if err := h.printer.PrintReceipt(receipt); err != nil {
		response.Error(c, apperror.NewAppError(http.StatusServiceUnavailable, "Test print failed"))
		return
	}

	response.Success(c, http.StatusOK, "Test receipt printed", nil)
}
