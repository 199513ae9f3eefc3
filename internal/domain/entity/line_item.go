package entity

import (
	"github.com/sangkips/tillpoint-api/internal/domain/money"
)

// SaleLineItem is one catalog item plus its accumulated quantity within a
// sale. Entering the same item identifier again increments the quantity
// instead of adding a second line.
type SaleLineItem struct {
	item     Item
	quantity int
}

// NewSaleLineItem creates a line item for the given catalog item.
func NewSaleLineItem(item Item, quantity int) *SaleLineItem {
	return &SaleLineItem{item: item, quantity: quantity}
}

// Item returns the catalog item this line refers to.
func (li *SaleLineItem) Item() Item {
	return li.item
}

// Quantity returns the accumulated quantity.
func (li *SaleLineItem) Quantity() int {
	return li.quantity
}

// IncrementQuantity adds the given quantity to the line. Inventory
// sufficiency is the catalog's concern, not enforced here.
func (li *SaleLineItem) IncrementQuantity(quantityToAdd int) {
	li.quantity += quantityToAdd
}

// Subtotal returns the total price of this line, excluding VAT.
func (li *SaleLineItem) Subtotal() money.Money {
	return li.item.Price.MultiplyInt(li.quantity)
}

// VATAmount returns the total VAT for this line.
func (li *SaleLineItem) VATAmount() money.Money {
	return li.item.VATAmount().MultiplyInt(li.quantity)
}

// TotalWithVAT returns the total price of this line, including VAT.
func (li *SaleLineItem) TotalWithVAT() money.Money {
	return li.item.PriceWithVAT().MultiplyInt(li.quantity)
}
