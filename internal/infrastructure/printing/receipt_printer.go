package printing

import (
	"strings"

	"github.com/sangkips/tillpoint-api/internal/domain/entity"
	"github.com/sangkips/tillpoint-api/internal/domain/money"
	"github.com/sangkips/tillpoint-api/pkg/printer"
)

// TerminalPrinter renders receipts for the configured transport. Thermal
// transports (usb, network) get an ESC/POS byte stream; the console
// transport gets the receipt's canonical plain-text layout.
type TerminalPrinter struct {
	transport   printer.Printer
	printerType string
	storeName   string
	width       int
}

// NewTerminalPrinter creates a printer over the given transport.
func NewTerminalPrinter(transport printer.Printer, printerType, storeName string, width int) *TerminalPrinter {
	if width <= 0 {
		width = 32
	}
	return &TerminalPrinter{
		transport:   transport,
		printerType: printerType,
		storeName:   storeName,
		width:       width,
	}
}

// PrintReceipt sends the receipt to the configured printer.
func (p *TerminalPrinter) PrintReceipt(receipt *entity.Receipt) error {
	var data []byte
	switch p.printerType {
	case "usb", "network":
		data = p.renderESCPOS(receipt)
	default:
		data = []byte(receipt.Format() + "\n")
	}
	return p.transport.Print(data)
}

// Status reports whether a physical printer is configured and reachable.
func (p *TerminalPrinter) Status() (configured bool, connected bool) {
	configured = p.printerType != "none" && p.printerType != ""
	connected = p.transport.IsConnected()
	return configured, connected
}

// Type returns the configured printer type.
func (p *TerminalPrinter) Type() string {
	return p.printerType
}

// renderESCPOS builds the thermal-printer rendering of the receipt.
func (p *TerminalPrinter) renderESCPOS(r *entity.Receipt) []byte {
	doc := printer.NewDocument(p.width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(p.storeName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Receipt:", shortNumber(r.Number)).
		KeyValue("Date:", r.SaleTime.Format("2006-01-02 15:04"))

	doc.Separator('-')

	for _, line := range r.Lines {
		doc.ItemLine(line.Name, line.Quantity, amount(line.UnitPrice), amount(line.Subtotal))
	}

	doc.Separator('-')

	doc.KeyValue("VAT:", amount(r.TotalVAT))
	doc.SetBold(true).
		KeyValue("TOTAL:", amount(r.Total)+" "+money.Currency).
		SetBold(false)

	doc.KeyValue("Cash:", amount(r.Paid)).
		KeyValue("Change:", amount(r.Change))

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		Text("Thank you for shopping!").
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// amount renders a Money with ':' as the fractional separator, matching
// the canonical receipt layout.
func amount(m money.Money) string {
	return strings.Replace(m.Decimal().StringFixed(2), ".", ":", 1)
}

// shortNumber trims a UUID receipt number to its first block so it fits
// the narrow paper.
func shortNumber(number string) string {
	if i := strings.IndexByte(number, '-'); i > 0 {
		return number[:i]
	}
	return number
}
