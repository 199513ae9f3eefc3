package registry

import (
	"testing"

	"github.com/sangkips/tillpoint-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindItem(t *testing.T) {
	registry := NewItemRegistry()

	item, ok := registry.FindItem("3")
	require.True(t, ok)
	assert.Equal(t, "Arla Milk", item.Name)
	assert.Equal(t, 0.12, item.VATRate)

	_, ok = registry.FindItem("999")
	assert.False(t, ok)
}

func TestItemsSortedByID(t *testing.T) {
	registry := NewItemRegistry()

	items := registry.Items()
	require.Len(t, items, 5)
	for i := 1; i < len(items); i++ {
		assert.Less(t, items[i-1].ID, items[i].ID)
	}
}

func TestCheckItemAvailability(t *testing.T) {
	registry := NewItemRegistry()

	assert.True(t, registry.CheckItemAvailability("1", 1))
	assert.True(t, registry.CheckItemAvailability("1", 50))
	assert.False(t, registry.CheckItemAvailability("1", 51))
	assert.False(t, registry.CheckItemAvailability("999", 1))
}

func TestUpdateInventoryDecrementsStock(t *testing.T) {
	registry := NewItemRegistry()
	item, _ := registry.FindItem("1")

	ok := registry.UpdateInventoryForCompletedSale([]*entity.SaleLineItem{
		entity.NewSaleLineItem(*item, 2),
	})

	assert.True(t, ok)
	assert.Equal(t, 48, registry.Stock("1"))
}

func TestUpdateInventoryInsufficientStock(t *testing.T) {
	registry := NewItemRegistry()
	item1, _ := registry.FindItem("1")
	item2, _ := registry.FindItem("2")

	ok := registry.UpdateInventoryForCompletedSale([]*entity.SaleLineItem{
		entity.NewSaleLineItem(*item1, 100),
		entity.NewSaleLineItem(*item2, 1),
	})

	// The oversized line fails and is skipped; the other line still applies.
	assert.False(t, ok)
	assert.Equal(t, 50, registry.Stock("1"))
	assert.Equal(t, 49, registry.Stock("2"))
}
