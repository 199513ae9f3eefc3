package registry

import (
	"log"

	"github.com/sangkips/tillpoint-api/internal/domain/entity"
	"github.com/sangkips/tillpoint-api/internal/domain/money"
)

// Volume discount tiers on the tax-inclusive total. Mutually exclusive;
// only the highest matching tier applies.
const (
	largePurchaseThreshold  = 1000.0
	mediumPurchaseThreshold = 500.0
	largePurchaseRate       = 0.03
	mediumPurchaseRate      = 0.02
)

// ComboRule is a named set of item identifiers that must all be present in
// the sale for the rate to apply. The rate is applied to the summed
// pre-tax price of the required items only.
type ComboRule struct {
	Items []string
	Rate  float64
}

// DiscountRules are the tables the registry resolves discounts from.
type DiscountRules struct {
	CustomerRates map[string]float64   // customer ID -> rate on total incl. VAT
	ItemRates     map[string]float64   // item ID -> rate on pre-tax line price
	Combos        map[string]ComboRule // combo name -> rule
}

// DiscountRegistry is the in-memory stand-in for the external discount
// database. Discounts are additive: each rule is computed against its own
// base and the results are summed.
type DiscountRegistry struct {
	rules DiscountRules
}

// NewDiscountRegistry creates a registry with the default promotion tables.
func NewDiscountRegistry() *DiscountRegistry {
	return NewDiscountRegistryWithRules(DiscountRules{
		CustomerRates: map[string]float64{
			"1001": 0.10,
			"1002": 0.15,
		},
		ItemRates: map[string]float64{
			"2": 0.05, // pasta promotion
		},
		Combos: map[string]ComboRule{
			"SNACK": {Items: []string{"4", "5"}, Rate: 0.15}, // crispbread + chocolate
		},
	})
}

// NewDiscountRegistryWithRules creates a registry over the given tables.
func NewDiscountRegistryWithRules(rules DiscountRules) *DiscountRegistry {
	return &DiscountRegistry{rules: rules}
}

// GetDiscount computes the combined discount for the sale: customer tier,
// volume tier, per-item and combination discounts, summed.
func (r *DiscountRegistry) GetDiscount(items []*entity.SaleLineItem, totalWithVAT money.Money, customerID string) money.Money {
	customerDiscount := r.customerDiscount(totalWithVAT, customerID)
	volumeDiscount := r.volumeDiscount(totalWithVAT)
	itemDiscount := r.itemDiscounts(items)
	comboDiscount := r.comboDiscounts(items)

	total := customerDiscount.Add(volumeDiscount).Add(itemDiscount).Add(comboDiscount)

	if total.IsPositive() {
		log.Printf("discounts: customer=%s volume=%s item=%s combo=%s total=%s",
			customerDiscount, volumeDiscount, itemDiscount, comboDiscount, total)
	}
	return total
}

// CustomerExists reports whether the customer has a configured rate.
func (r *DiscountRegistry) CustomerExists(customerID string) bool {
	_, ok := r.rules.CustomerRates[customerID]
	return ok
}

func (r *DiscountRegistry) customerDiscount(totalWithVAT money.Money, customerID string) money.Money {
	rate, ok := r.rules.CustomerRates[customerID]
	if !ok {
		return money.Zero()
	}
	return totalWithVAT.Multiply(rate)
}

func (r *DiscountRegistry) volumeDiscount(totalWithVAT money.Money) money.Money {
	switch {
	case totalWithVAT.GreaterThan(money.NewFromFloat(largePurchaseThreshold)):
		return totalWithVAT.Multiply(largePurchaseRate)
	case totalWithVAT.GreaterThan(money.NewFromFloat(mediumPurchaseThreshold)):
		return totalWithVAT.Multiply(mediumPurchaseRate)
	default:
		return money.Zero()
	}
}

func (r *DiscountRegistry) itemDiscounts(items []*entity.SaleLineItem) money.Money {
	total := money.Zero()
	for _, li := range items {
		rate, ok := r.rules.ItemRates[li.Item().ID]
		if !ok {
			continue
		}
		total = total.Add(li.Subtotal().Multiply(rate))
	}
	return total
}

func (r *DiscountRegistry) comboDiscounts(items []*entity.SaleLineItem) money.Money {
	inSale := make(map[string]bool, len(items))
	for _, li := range items {
		inSale[li.Item().ID] = true
	}

	total := money.Zero()
	for name, combo := range r.rules.Combos {
		if !containsAll(inSale, combo.Items) {
			continue
		}

		// Rate applies to the pre-tax price of the combo's items only.
		comboPrice := money.Zero()
		for _, li := range items {
			if contains(combo.Items, li.Item().ID) {
				comboPrice = comboPrice.Add(li.Subtotal())
			}
		}

		discount := comboPrice.Multiply(combo.Rate)
		log.Printf("discounts: combo %s applies, %s off", name, discount)
		total = total.Add(discount)
	}
	return total
}

func containsAll(set map[string]bool, required []string) bool {
	for _, id := range required {
		if !set[id] {
			return false
		}
	}
	return true
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
