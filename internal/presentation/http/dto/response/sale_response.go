package response

import (
	"time"

	"github.com/sangkips/tillpoint-api/internal/application/service"
	"github.com/sangkips/tillpoint-api/internal/domain/entity"
	"github.com/sangkips/tillpoint-api/internal/domain/money"
)

// SaleLineResponse is one line of the current sale
type SaleLineResponse struct {
	ItemID    string      `json:"item_id"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	UnitPrice money.Money `json:"unit_price"`
	Subtotal  money.Money `json:"subtotal"`
	VAT       money.Money `json:"vat"`
}

// SaleResponse is a snapshot of the sale in progress
type SaleResponse struct {
	ID           string             `json:"id"`
	StartedAt    time.Time          `json:"started_at"`
	Lines        []SaleLineResponse `json:"lines"`
	Total        money.Money        `json:"total"`
	TotalVAT     money.Money        `json:"total_vat"`
	Discount     money.Money        `json:"discount"`
	TotalWithVAT money.Money        `json:"total_with_vat"`
	Paid         bool               `json:"paid"`
}

// NewSaleResponse builds the snapshot from the sale aggregate
func NewSaleResponse(sale *entity.Sale) *SaleResponse {
	resp := &SaleResponse{
		ID:           sale.ID(),
		StartedAt:    sale.StartedAt(),
		Lines:        []SaleLineResponse{},
		Total:        sale.CalculateTotal(),
		TotalVAT:     sale.CalculateTotalVAT(),
		Discount:     sale.DiscountAmount(),
		TotalWithVAT: sale.CalculateTotalWithVAT(),
		Paid:         sale.Receipt() != nil,
	}

	for _, li := range sale.Items() {
		resp.Lines = append(resp.Lines, SaleLineResponse{
			ItemID:    li.Item().ID,
			Name:      li.Item().Name,
			Quantity:  li.Quantity(),
			UnitPrice: li.Item().Price,
			Subtotal:  li.Subtotal(),
			VAT:       li.VATAmount(),
		})
	}

	return resp
}

// EnteredItemResponse is returned after each item entry
type EnteredItemResponse struct {
	Item         entity.Item `json:"item"`
	RunningTotal money.Money `json:"running_total"`
	Duplicate    bool        `json:"duplicate"`
}

// NewEnteredItemResponse builds the response from the running-total projection
func NewEnteredItemResponse(entered *service.EnteredItem) *EnteredItemResponse {
	return &EnteredItemResponse{
		Item:         entered.Item,
		RunningTotal: entered.RunningTotal,
		Duplicate:    entered.Duplicate,
	}
}

// PaymentResponse is returned after a processed payment
type PaymentResponse struct {
	Change      money.Money     `json:"change"`
	Receipt     *entity.Receipt `json:"receipt"`
	ReceiptText string          `json:"receipt_text"`
}

// NewPaymentResponse builds the response from the payment result
func NewPaymentResponse(result *service.PaymentResult) *PaymentResponse {
	return &PaymentResponse{
		Change:      result.Change,
		Receipt:     result.Receipt,
		ReceiptText: result.Receipt.Format(),
	}
}

// ItemResponse is a catalog item plus its stock availability
type ItemResponse struct {
	Item    entity.Item `json:"item"`
	InStock bool        `json:"in_stock"`
}
