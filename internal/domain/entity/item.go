package entity

import (
	"github.com/sangkips/tillpoint-api/internal/domain/money"
)

// Item represents a catalog item as supplied by the inventory registry.
// It is immutable; the sale only ever reads from it.
type Item struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Money `json:"price"`    // unit price excluding VAT
	VATRate     float64     `json:"vat_rate"` // fraction, e.g. 0.25 for 25%
}

// VATAmount returns the VAT charged on one unit of this item.
func (i Item) VATAmount() money.Money {
	return i.Price.Multiply(i.VATRate)
}

// PriceWithVAT returns the unit price including VAT.
func (i Item) PriceWithVAT() money.Money {
	return i.Price.Add(i.VATAmount())
}
