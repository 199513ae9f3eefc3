package registry

import (
	"testing"

	"github.com/sangkips/tillpoint-api/internal/domain/entity"
	"github.com/sangkips/tillpoint-api/internal/domain/money"
	"github.com/stretchr/testify/assert"
)

func lineOf(id string, price float64, vatRate float64, quantity int) *entity.SaleLineItem {
	item := entity.Item{ID: id, Name: "Item " + id, Price: money.NewFromFloat(price), VATRate: vatRate}
	return entity.NewSaleLineItem(item, quantity)
}

func TestGetDiscountNoRulesMatch(t *testing.T) {
	registry := NewDiscountRegistry()
	items := []*entity.SaleLineItem{lineOf("1", 10.0, 0.12, 1)}

	discount := registry.GetDiscount(items, money.NewFromFloat(11.20), "9999")

	assert.True(t, discount.Equal(money.Zero()))
}

func TestCustomerDiscount(t *testing.T) {
	registry := NewDiscountRegistry()
	items := []*entity.SaleLineItem{lineOf("1", 10.0, 0.12, 2), lineOf("3", 22.0, 0.12, 1)}

	// 10% of 47.04 = 4.704, normalized to 4.70
	discount := registry.GetDiscount(items, money.NewFromFloat(47.04), "1001")
	assert.True(t, discount.Equal(money.NewFromFloat(4.70)))

	// 15% of 47.04 = 7.056, normalized to 7.06
	discount = registry.GetDiscount(items, money.NewFromFloat(47.04), "1002")
	assert.True(t, discount.Equal(money.NewFromFloat(7.06)))
}

func TestVolumeDiscountTiers(t *testing.T) {
	registry := NewDiscountRegistry()
	items := []*entity.SaleLineItem{lineOf("3", 22.0, 0.12, 1)}

	tests := []struct {
		name  string
		total float64
		want  float64
	}{
		{"below medium threshold", 500.0, 0.0},
		{"just above medium threshold", 500.01, 10.0},
		{"medium tier", 600.0, 12.0},
		{"at large threshold stays medium", 1000.0, 20.0},
		{"large tier", 1200.0, 36.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount := registry.GetDiscount(items, money.NewFromFloat(tt.total), "")
			assert.True(t, discount.Equal(money.NewFromFloat(tt.want)),
				"total %.2f: got %s", tt.total, discount)
		})
	}
}

func TestItemDiscount(t *testing.T) {
	registry := NewDiscountRegistry()

	// Item 2 carries a 5% promotion on its pre-tax line price.
	items := []*entity.SaleLineItem{lineOf("2", 15.0, 0.12, 2)}

	discount := registry.GetDiscount(items, money.NewFromFloat(33.60), "")
	assert.True(t, discount.Equal(money.NewFromFloat(1.50)))
}

func TestComboDiscount(t *testing.T) {
	registry := NewDiscountRegistry()

	// Items 4 and 5 together trigger the snack combo: 15% of the
	// combined pre-tax price 105.00 = 15.75.
	items := []*entity.SaleLineItem{
		lineOf("4", 30.0, 0.25, 1),
		lineOf("5", 75.0, 0.25, 1),
	}

	discount := registry.GetDiscount(items, money.NewFromFloat(131.25), "")
	assert.True(t, discount.Equal(money.NewFromFloat(15.75)))
}

func TestComboRequiresAllItems(t *testing.T) {
	registry := NewDiscountRegistry()
	items := []*entity.SaleLineItem{lineOf("4", 30.0, 0.25, 1)}

	discount := registry.GetDiscount(items, money.NewFromFloat(37.50), "")
	assert.True(t, discount.Equal(money.Zero()))
}

func TestDiscountsAreAdditive(t *testing.T) {
	registry := NewDiscountRegistry()
	items := []*entity.SaleLineItem{
		lineOf("4", 30.0, 0.25, 1),
		lineOf("5", 75.0, 0.25, 1),
	}

	// Customer 1001: 10% of 131.25 = 13.125, normalized to 13.13.
	// Combo: 15% of 105.00 = 15.75. Summed: 28.88.
	discount := registry.GetDiscount(items, money.NewFromFloat(131.25), "1001")
	assert.True(t, discount.Equal(money.NewFromFloat(28.88)), "got %s", discount)
}

func TestCustomRules(t *testing.T) {
	registry := NewDiscountRegistryWithRules(DiscountRules{
		CustomerRates: map[string]float64{"42": 0.50},
	})

	items := []*entity.SaleLineItem{lineOf("1", 10.0, 0.12, 1)}

	discount := registry.GetDiscount(items, money.NewFromFloat(11.20), "42")
	assert.True(t, discount.Equal(money.NewFromFloat(5.60)))
	assert.True(t, registry.CustomerExists("42"))
	assert.False(t, registry.CustomerExists("1001"))
}
