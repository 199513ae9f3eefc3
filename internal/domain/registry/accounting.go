package registry

import (
	"github.com/sangkips/tillpoint-api/internal/domain/entity"
	"github.com/sangkips/tillpoint-api/internal/domain/money"
)

// AccountingSystem receives completed sales for financial record keeping.
// Both calls are fire-and-forget side effects from the terminal's point of
// view; errors are logged by the caller and never abort a sale.
type AccountingSystem interface {
	RecordSale(sale *entity.Sale) error
	UpdateSalesStatistics(amount money.Money) error
}
