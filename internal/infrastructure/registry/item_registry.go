package registry

import (
	"log"
	"sort"
	"sync"

	"github.com/sangkips/tillpoint-api/internal/domain/entity"
	"github.com/sangkips/tillpoint-api/internal/domain/money"
)

// ItemRegistry is the in-memory stand-in for the external inventory
// system. It serves catalog lookups and decrements stock for completed
// sales.
type ItemRegistry struct {
	mu        sync.Mutex
	items     map[string]entity.Item
	inventory map[string]int
}

// NewItemRegistry creates a registry seeded with the demo catalog and a
// stock level of 50 per item.
func NewItemRegistry() *ItemRegistry {
	r := &ItemRegistry{
		items:     make(map[string]entity.Item),
		inventory: make(map[string]int),
	}
	r.seedCatalog()
	return r
}

func (r *ItemRegistry) seedCatalog() {
	catalog := []entity.Item{
		// Food items (12% VAT)
		{ID: "1", Name: "Kellogg's Cornflakes", Description: "500g, whole grain, fortified with vitamins", Price: money.NewFromFloat(10.0), VATRate: 0.12},
		{ID: "2", Name: "Barilla Pasta", Description: "500g, spaghetti, bronze cut", Price: money.NewFromFloat(15.0), VATRate: 0.12},
		{ID: "3", Name: "Arla Milk", Description: "1L, organic whole milk, pasteurized", Price: money.NewFromFloat(22.0), VATRate: 0.12},
		// Other items (25% VAT)
		{ID: "4", Name: "Wasa Crispbread", Description: "275g, whole grain, low sugar", Price: money.NewFromFloat(30.0), VATRate: 0.25},
		{ID: "5", Name: "Fazer Chocolate", Description: "200g, milk chocolate, Finnish quality", Price: money.NewFromFloat(75.0), VATRate: 0.25},
	}

	for _, item := range catalog {
		r.items[item.ID] = item
		r.inventory[item.ID] = 50
	}
}

// FindItem resolves an item identifier against the catalog.
func (r *ItemRegistry) FindItem(itemID string) (*entity.Item, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return nil, false
	}
	return &item, true
}

// CheckItemAvailability reports whether the requested quantity is in stock.
func (r *ItemRegistry) CheckItemAvailability(itemID string, quantity int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	available, ok := r.inventory[itemID]
	return ok && available >= quantity
}

// Stock returns the current stock level for an item.
func (r *ItemRegistry) Stock(itemID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inventory[itemID]
}

// Items lists the catalog in identifier order.
func (r *ItemRegistry) Items() []entity.Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]entity.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// UpdateInventoryForCompletedSale decrements stock for every line item of a
// completed sale. Items that cannot be decremented are logged and skipped;
// the return value is false if any decrement failed.
func (r *ItemRegistry) UpdateInventoryForCompletedSale(items []*entity.SaleLineItem) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	allSuccessful := true
	for _, li := range items {
		itemID := li.Item().ID
		quantity := li.Quantity()

		available, ok := r.inventory[itemID]
		if !ok || available < quantity {
			log.Printf("inventory: insufficient quantity for item %s (have %d, need %d)", itemID, available, quantity)
			allSuccessful = false
			continue
		}

		r.inventory[itemID] = available - quantity
		log.Printf("inventory: decreased item %s by %d units", itemID, quantity)
	}

	if !allSuccessful {
		log.Printf("inventory: some updates failed, manual verification required")
	}
	return allSuccessful
}
