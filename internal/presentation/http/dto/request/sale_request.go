package request

// EnterItemRequest enters a quantity of one catalog item into the sale
type EnterItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// DiscountRequest asks for the discounts a customer is eligible for
type DiscountRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}

// PaymentRequest pays the current sale with the tendered cash amount
type PaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,min=0"`
}
