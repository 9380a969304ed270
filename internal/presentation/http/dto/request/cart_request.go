package request

// CartItemRequest adds or removes one unit of a flavor in the cart
type CartItemRequest struct {
	Flavor string `json:"flavor" binding:"required,min=1,max=100"`
}

// DiscountRequest applies a flat discount to the current cart
type DiscountRequest struct {
	Amount float64 `json:"amount" binding:"min=0"`
}
