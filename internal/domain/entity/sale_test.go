package entity

import (
	"testing"

	"github.com/sangkips/tillpoint-api/internal/domain/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cornflakes() Item {
	return Item{ID: "1", Name: "Kellogg's Cornflakes", Price: money.NewFromFloat(10.0), VATRate: 0.12}
}

func milk() Item {
	return Item{ID: "3", Name: "Arla Milk", Price: money.NewFromFloat(22.0), VATRate: 0.12}
}

func chocolate() Item {
	return Item{ID: "5", Name: "Fazer Chocolate", Price: money.NewFromFloat(75.0), VATRate: 0.25}
}

func TestAddItemAggregatesDuplicates(t *testing.T) {
	sale := NewSale()

	sale.AddItem(cornflakes(), 1)
	sale.AddItem(milk(), 1)
	sale.AddItem(cornflakes(), 2)

	items := sale.Items()
	require.Len(t, items, 2, "same item must merge into one line")
	assert.Equal(t, "1", items[0].Item().ID)
	assert.Equal(t, 3, items[0].Quantity())
	assert.Equal(t, "3", items[1].Item().ID)
	assert.Equal(t, 1, items[1].Quantity())
}

func TestContainsItem(t *testing.T) {
	sale := NewSale()
	sale.AddItem(cornflakes(), 1)

	assert.True(t, sale.ContainsItem("1"))
	assert.False(t, sale.ContainsItem("3"))
}

func TestTotalsEmptySale(t *testing.T) {
	sale := NewSale()

	assert.True(t, sale.CalculateTotal().Equal(money.Zero()))
	assert.True(t, sale.CalculateTotalVAT().Equal(money.Zero()))
	assert.True(t, sale.CalculateTotalWithVAT().Equal(money.Zero()))
}

func TestTotalsAreAdditive(t *testing.T) {
	sale := NewSale()
	sale.AddItem(cornflakes(), 2) // 20.00 + 2.40 VAT
	sale.AddItem(milk(), 1)       // 22.00 + 2.64 VAT

	assert.True(t, sale.CalculateTotal().Equal(money.NewFromFloat(42.0)))
	assert.True(t, sale.CalculateTotalVAT().Equal(money.NewFromFloat(5.04)))
	assert.True(t, sale.CalculateTotalWithVAT().Equal(money.NewFromFloat(47.04)))
}

func TestMixedVATRates(t *testing.T) {
	sale := NewSale()
	sale.AddItem(milk(), 1)      // 12% VAT
	sale.AddItem(chocolate(), 1) // 25% VAT

	// 2.64 + 18.75
	assert.True(t, sale.CalculateTotalVAT().Equal(money.NewFromFloat(21.39)))
	assert.True(t, sale.CalculateTotalWithVAT().Equal(money.NewFromFloat(118.39)))
}

func TestApplyDiscountLastWins(t *testing.T) {
	sale := NewSale()
	sale.AddItem(cornflakes(), 2)
	sale.AddItem(milk(), 1)

	total := sale.ApplyDiscount(Customer{ID: "1001"}, money.NewFromFloat(4.70))
	assert.True(t, total.Equal(money.NewFromFloat(42.34)))
	assert.True(t, sale.HasDiscount())

	// A second application replaces the first, it does not accumulate.
	total = sale.ApplyDiscount(Customer{ID: "1002"}, money.NewFromFloat(2.00))
	assert.True(t, total.Equal(money.NewFromFloat(45.04)))
	assert.True(t, sale.DiscountAmount().Equal(money.NewFromFloat(2.00)))
}

func TestPayReturnsChange(t *testing.T) {
	sale := NewSale()
	sale.AddItem(cornflakes(), 2)
	sale.AddItem(milk(), 1)

	change := sale.Pay(NewCashPayment(money.NewFromFloat(100.0)))

	assert.True(t, change.Equal(money.NewFromFloat(52.96)))
	require.NotNil(t, sale.Receipt())
	assert.True(t, sale.Receipt().Total.Equal(money.NewFromFloat(47.04)))
}

func TestPayWithInsufficientAmountYieldsNegativeChange(t *testing.T) {
	sale := NewSale()
	sale.AddItem(milk(), 1) // 24.64 incl. VAT

	change := sale.Pay(NewCashPayment(money.NewFromFloat(20.0)))

	assert.True(t, change.IsNegative())
	assert.True(t, change.Equal(money.NewFromFloat(-4.64)))
}

func TestReceiptIsSnapshotOfPaymentTime(t *testing.T) {
	sale := NewSale()
	sale.AddItem(cornflakes(), 1)
	sale.Pay(NewCashPayment(money.NewFromFloat(20.0)))

	receipt := sale.Receipt()
	require.Len(t, receipt.Lines, 1)
	totalBefore := receipt.Total

	// Mutating the sale after payment must not change the receipt.
	sale.AddItem(milk(), 1)

	assert.Len(t, receipt.Lines, 1)
	assert.True(t, receipt.Total.Equal(totalBefore))
}

func TestPrintReceiptBeforePayment(t *testing.T) {
	sale := NewSale()
	sale.AddItem(cornflakes(), 1)

	err := sale.PrintReceipt(printerFunc(func(*Receipt) error { return nil }))
	assert.ErrorIs(t, err, ErrNotPaid)
}

type printerFunc func(*Receipt) error

func (f printerFunc) PrintReceipt(r *Receipt) error { return f(r) }

func TestCashRegisterAccumulates(t *testing.T) {
	register := NewCashRegister(money.Zero())

	register.RecordPayment(NewCashPayment(money.NewFromFloat(100.0)))
	register.RecordPayment(NewCashPayment(money.NewFromFloat(50.0)))

	assert.True(t, register.Balance().Equal(money.NewFromFloat(150.0)))
}

func TestLineItemTotals(t *testing.T) {
	line := NewSaleLineItem(milk(), 2)

	assert.True(t, line.Subtotal().Equal(money.NewFromFloat(44.0)))
	assert.True(t, line.VATAmount().Equal(money.NewFromFloat(5.28)))
	assert.True(t, line.TotalWithVAT().Equal(money.NewFromFloat(49.28)))

	line.IncrementQuantity(1)
	assert.Equal(t, 3, line.Quantity())
	assert.True(t, line.Subtotal().Equal(money.NewFromFloat(66.0)))
}
