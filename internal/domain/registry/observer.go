package registry

import (
	"github.com/sangkips/tillpoint-api/internal/domain/entity"
)

// SaleObserver is notified after a sale has been paid. Observers run in
// registration order; a failing observer is logged and does not stop the
// rest of the batch.
type SaleObserver interface {
	SaleCompleted(sale *entity.Sale)
}
