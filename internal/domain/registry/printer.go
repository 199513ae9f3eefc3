package registry

import (
	"github.com/sangkips/tillpoint-api/internal/domain/entity"
)

// ReceiptPrinter outputs a finished receipt, typically to a thermal
// printer. Implementations decide the physical rendering; the receipt's
// own Format method defines the canonical text layout.
type ReceiptPrinter interface {
	PrintReceipt(receipt *entity.Receipt) error

	// Status reports whether a physical printer is configured and
	// reachable.
	Status() (configured bool, connected bool)
}
