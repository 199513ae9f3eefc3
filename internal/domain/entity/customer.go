package entity

// Customer identifies the customer asking for a discount. The name may be
// empty when the cashier only enters an ID.
type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}
