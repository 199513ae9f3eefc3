package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/sangkips/tillpoint-api/internal/domain/money"
)

// amountColumn is the character offset the monetary column is right-aligned
// against on the printed receipt. Wide enough for long product names.
const amountColumn = 40

// ReceiptLine is the frozen copy of one sale line at payment time.
type ReceiptLine struct {
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	UnitPrice money.Money `json:"unit_price"`
	Subtotal  money.Money `json:"subtotal"`
}

// Receipt proves that a payment has been made. It is a snapshot taken at
// payment time: mutating the sale afterwards does not change the values a
// receipt already holds.
type Receipt struct {
	Number   string        `json:"number"`
	SaleTime time.Time     `json:"sale_time"`
	Lines    []ReceiptLine `json:"lines"`
	Total    money.Money   `json:"total"` // incl. VAT, after discount
	TotalVAT money.Money   `json:"total_vat"`
	Paid     money.Money   `json:"paid"`
	Change   money.Money   `json:"change"`
}

// NewReceipt snapshots the given sale together with the tendered amount
// and the change handed back.
func NewReceipt(sale *Sale, paid, change money.Money, saleTime time.Time) *Receipt {
	lines := make([]ReceiptLine, 0, len(sale.items))
	for _, li := range sale.items {
		lines = append(lines, ReceiptLine{
			Name:      li.Item().Name,
			Quantity:  li.Quantity(),
			UnitPrice: li.Item().Price,
			Subtotal:  li.Subtotal(),
		})
	}

	return &Receipt{
		Number:   sale.ID(),
		SaleTime: saleTime,
		Lines:    lines,
		Total:    sale.CalculateTotalWithVAT(),
		TotalVAT: sale.CalculateTotalVAT(),
		Paid:     paid,
		Change:   change,
	}
}

// Format renders the full receipt text. The layout is fixed: one line per
// distinct item with a right-aligned amount column, totals, payment details
// and the header/footer rules. Amounts print with two fractional digits,
// ':' as the fractional separator and the currency code where noted.
func (r *Receipt) Format() string {
	var b strings.Builder

	b.WriteString("------------------ Begin receipt -------------------\n")
	b.WriteString("Time of Sale : " + r.SaleTime.Format("2006-01-02 15:04") + "\n\n")

	for _, line := range r.Lines {
		left := line.Name + " " + strconv.Itoa(line.Quantity) + " x " + formatAmount(line.UnitPrice)
		b.WriteString(lineWithAmount(left, line.Subtotal, true) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(lineWithAmount("Total :", r.Total, true) + "\n")
	b.WriteString(lineWithAmount("VAT :", r.TotalVAT, false) + "\n\n")

	b.WriteString(lineWithAmount("Cash :", r.Paid, true) + "\n")
	b.WriteString(lineWithAmount("Change :", r.Change, true) + "\n")

	b.WriteString("------------------ End receipt ---------------------")

	return b.String()
}

// lineWithAmount right-aligns the amount against the fixed column, with at
// least one space of separation when the left side overruns.
func lineWithAmount(left string, amount money.Money, includeCurrency bool) string {
	amountStr := formatAmount(amount)

	spaces := amountColumn - len(left) - len(amountStr)
	if spaces < 1 {
		spaces = 1
	}

	line := left + strings.Repeat(" ", spaces) + amountStr
	if includeCurrency {
		line += " " + money.Currency
	}
	return line
}

// formatAmount renders an amount with ':' as the fractional separator,
// e.g. "42:34".
func formatAmount(m money.Money) string {
	return strings.Replace(m.Decimal().StringFixed(2), ".", ":", 1)
}
