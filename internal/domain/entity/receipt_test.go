package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/sangkips/tillpoint-api/internal/domain/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptFormat(t *testing.T) {
	sale := NewSale()
	sale.AddItem(cornflakes(), 1)
	sale.AddItem(cornflakes(), 1)
	sale.AddItem(milk(), 1)

	saleTime := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	receipt := NewReceipt(sale, money.NewFromFloat(100.0), money.NewFromFloat(52.96), saleTime)

	expected := strings.Join([]string{
		"------------------ Begin receipt -------------------",
		"Time of Sale : 2024-03-15 14:30",
		"",
		"Kellogg's Cornflakes 2 x 10:00     20:00 SEK",
		"Arla Milk 1 x 22:00                22:00 SEK",
		"",
		"Total :                            47:04 SEK",
		"VAT :                               5:04",
		"",
		"Cash :                            100:00 SEK",
		"Change :                           52:96 SEK",
		"------------------ End receipt ---------------------",
	}, "\n")

	assert.Equal(t, expected, receipt.Format())
}

func TestReceiptAmountColumnAlignment(t *testing.T) {
	sale := NewSale()
	sale.AddItem(milk(), 1)

	receipt := NewReceipt(sale, money.NewFromFloat(30.0), money.NewFromFloat(5.36), time.Now())

	for _, line := range strings.Split(receipt.Format(), "\n") {
		if !strings.Contains(line, ":") || strings.HasPrefix(line, "Time of Sale") {
			continue
		}
		trimmed := strings.TrimSuffix(line, " "+money.Currency)
		assert.Len(t, trimmed, 40, "amount column must end at offset 40: %q", line)
	}
}

func TestReceiptFormatOverlongName(t *testing.T) {
	long := Item{
		ID:      "9",
		Name:    "An Exceptionally Long Product Name That Overruns The Column",
		Price:   money.NewFromFloat(10.0),
		VATRate: 0.12,
	}
	sale := NewSale()
	sale.AddItem(long, 1)

	receipt := NewReceipt(sale, money.NewFromFloat(20.0), money.NewFromFloat(8.80), time.Now())

	// When the left side overruns the column, a single space still
	// separates it from the amount.
	assert.Contains(t, receipt.Format(), "x 10:00 10:00 SEK")
}

func TestNewReceiptSnapshotsTotals(t *testing.T) {
	sale := NewSale()
	sale.AddItem(cornflakes(), 2)
	sale.AddItem(milk(), 1)
	sale.ApplyDiscount(Customer{ID: "1001"}, money.NewFromFloat(4.70))

	saleTime := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	receipt := NewReceipt(sale, money.NewFromFloat(100.0), money.NewFromFloat(57.66), saleTime)

	assert.Equal(t, sale.ID(), receipt.Number)
	assert.Equal(t, saleTime, receipt.SaleTime)
	require.Len(t, receipt.Lines, 2)
	assert.True(t, receipt.Total.Equal(money.NewFromFloat(42.34)), "total must include the discount")
	assert.True(t, receipt.TotalVAT.Equal(money.NewFromFloat(5.04)))
	assert.True(t, receipt.Paid.Equal(money.NewFromFloat(100.0)))
	assert.True(t, receipt.Change.Equal(money.NewFromFloat(57.66)))
}
