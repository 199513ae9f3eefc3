package registry

import (
	"github.com/sangkips/tillpoint-api/internal/domain/entity"
	"github.com/sangkips/tillpoint-api/internal/domain/money"
)

// DiscountSource computes the combined discount for a sale. The returned
// amount is the sum of all applicable discount rules (customer tier,
// volume tier, per-item and item-combination rates), each computed against
// its own base.
type DiscountSource interface {
	GetDiscount(items []*entity.SaleLineItem, totalWithVAT money.Money, customerID string) money.Money
}
