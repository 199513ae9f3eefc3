package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/tillpoint-api/internal/domain/money"
)

// ReceiptPrinter outputs a finished receipt. Declared here, on the consumer
// side, so the aggregate stays free of infrastructure imports.
type ReceiptPrinter interface {
	PrintReceipt(receipt *Receipt) error
}

// InventoryUpdater decrements stock for the line items of a completed sale.
// The boolean is an all-or-nothing signal; per-item failures are the
// implementation's concern to log.
type InventoryUpdater interface {
	UpdateInventoryForCompletedSale(items []*SaleLineItem) bool
}

// Sale is the aggregate root for one sale transaction: an ordered sequence
// of line items keyed by item identifier, the current discount, and — once
// paid — the generated receipt.
type Sale struct {
	id             string
	startedAt      time.Time
	items          []*SaleLineItem
	discountAmount money.Money
	receipt        *Receipt
}

// NewSale begins an empty sale.
func NewSale() *Sale {
	return &Sale{
		id:             uuid.New().String(),
		startedAt:      time.Now(),
		discountAmount: money.Zero(),
	}
}

// ID returns the sale identifier.
func (s *Sale) ID() string {
	return s.id
}

// StartedAt returns when the sale was started.
func (s *Sale) StartedAt() time.Time {
	return s.startedAt
}

// AddItem adds the item to the sale, or increments the quantity of the
// existing line when the identifier is already present. Linear scan over
// the current lines; fine at single-sale scale.
func (s *Sale) AddItem(item Item, quantity int) {
	if existing := s.findLine(item.ID); existing != nil {
		existing.IncrementQuantity(quantity)
		return
	}
	s.items = append(s.items, NewSaleLineItem(item, quantity))
}

func (s *Sale) findLine(itemID string) *SaleLineItem {
	for _, li := range s.items {
		if li.Item().ID == itemID {
			return li
		}
	}
	return nil
}

// ContainsItem reports whether the sale already has a line for the given
// item identifier.
func (s *Sale) ContainsItem(itemID string) bool {
	return s.findLine(itemID) != nil
}

// Items returns the line items in entry order. The slice is a copy; the
// pointed-to lines are the live ones.
func (s *Sale) Items() []*SaleLineItem {
	items := make([]*SaleLineItem, len(s.items))
	copy(items, s.items)
	return items
}

// CalculateTotal returns the sum of all line subtotals, excluding VAT.
func (s *Sale) CalculateTotal() money.Money {
	total := money.Zero()
	for _, li := range s.items {
		total = total.Add(li.Subtotal())
	}
	return total
}

// CalculateTotalVAT returns the sum of all line VAT amounts.
func (s *Sale) CalculateTotalVAT() money.Money {
	totalVAT := money.Zero()
	for _, li := range s.items {
		totalVAT = totalVAT.Add(li.VATAmount())
	}
	return totalVAT
}

// CalculateTotalWithVAT returns the grand total: subtotals plus VAT minus
// the discount. The discount is applied exactly once, at this level.
func (s *Sale) CalculateTotalWithVAT() money.Money {
	return s.CalculateTotal().Add(s.CalculateTotalVAT()).Subtract(s.discountAmount)
}

// ApplyDiscount replaces the stored discount with the given amount — the
// last applied discount wins, amounts do not accumulate — and returns the
// new total including VAT. No check that the discount stays below the
// total; a too-large discount yields a negative payable amount.
func (s *Sale) ApplyDiscount(customer Customer, discountAmount money.Money) money.Money {
	s.discountAmount = discountAmount
	return s.CalculateTotalWithVAT()
}

// HasDiscount reports whether a strictly positive discount is applied.
func (s *Sale) HasDiscount() bool {
	return s.discountAmount.IsPositive()
}

// DiscountAmount returns the currently applied discount.
func (s *Sale) DiscountAmount() money.Money {
	return s.discountAmount
}

// Pay settles the sale with the given payment and generates the receipt.
// Returns the change, which is negative when the payment does not cover
// the total; validating sufficiency is the caller's responsibility.
// Paying again overwrites the previous receipt.
func (s *Sale) Pay(payment CashPayment) money.Money {
	totalToPay := s.CalculateTotalWithVAT()
	change := payment.Change(totalToPay)

	s.receipt = NewReceipt(s, payment.Amount(), change, time.Now())

	return change
}

// Receipt returns the receipt generated by Pay, or nil before payment.
func (s *Sale) Receipt() *Receipt {
	return s.receipt
}

// PrintReceipt sends the receipt to the printer. No-op before payment.
func (s *Sale) PrintReceipt(printer ReceiptPrinter) error {
	if s.receipt == nil {
		return ErrNotPaid
	}
	return printer.PrintReceipt(s.receipt)
}

// UpdateInventory hands the full line list to the inventory system for
// stock decrement and relays its all-or-nothing success signal.
func (s *Sale) UpdateInventory(inventory InventoryUpdater) bool {
	return inventory.UpdateInventoryForCompletedSale(s.items)
}
