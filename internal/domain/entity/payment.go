package entity

import (
	"github.com/sangkips/tillpoint-api/internal/domain/money"
)

// CashPayment is the immutable amount tendered by the customer.
type CashPayment struct {
	amount money.Money
}

// NewCashPayment creates a payment over the tendered amount.
func NewCashPayment(amount money.Money) CashPayment {
	return CashPayment{amount: amount}
}

// Amount returns the tendered amount.
func (p CashPayment) Amount() money.Money {
	return p.amount
}

// Change returns the change to hand back for the given total. The result
// is negative when the payment does not cover the total; rejecting an
// underpayment is the caller's decision.
func (p CashPayment) Change(total money.Money) money.Money {
	return p.amount.Subtract(total)
}

// CashRegister accumulates the payments recorded at this terminal.
type CashRegister struct {
	balance money.Money
}

// NewCashRegister creates a register with the given opening balance.
func NewCashRegister(openingBalance money.Money) *CashRegister {
	return &CashRegister{balance: openingBalance}
}

// RecordPayment adds the tendered amount to the register balance.
func (r *CashRegister) RecordPayment(payment CashPayment) {
	r.balance = r.balance.Add(payment.Amount())
}

// Balance returns the current register balance.
func (r *CashRegister) Balance() money.Money {
	return r.balance
}
