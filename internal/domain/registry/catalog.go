package registry

import (
	"github.com/sangkips/tillpoint-api/internal/domain/entity"
)

// ItemCatalog is the contract against the external inventory system. The
// terminal treats it as an always-available synchronous collaborator; a
// networked deployment adds its own timeout/retry layer behind this
// interface.
type ItemCatalog interface {
	// FindItem resolves an item identifier. Returns (nil, false) when the
	// identifier is unknown.
	FindItem(itemID string) (*entity.Item, bool)

	// CheckItemAvailability reports whether the requested quantity is in
	// stock.
	CheckItemAvailability(itemID string, quantity int) bool

	// UpdateInventoryForCompletedSale decrements stock for every line item
	// of a completed sale. Returns false if any decrement failed; failures
	// are logged by the implementation, not surfaced per item.
	UpdateInventoryForCompletedSale(items []*entity.SaleLineItem) bool

	// Items lists the full catalog, for display at the terminal.
	Items() []entity.Item
}
