package entity

import "errors"

// Sentinel errors for precondition failures in the sale flow. These are
// expected conditions, not panics; callers check for them with errors.Is.
var (
	// ErrNoActiveSale is returned when an operation requires a sale in
	// progress and none has been started.
	ErrNoActiveSale = errors.New("no sale in progress")

	// ErrItemNotFound is returned when an item identifier cannot be
	// resolved against the catalog.
	ErrItemNotFound = errors.New("item not found")

	// ErrNotPaid is returned when a receipt is requested before payment.
	ErrNotPaid = errors.New("sale has not been paid")
)
