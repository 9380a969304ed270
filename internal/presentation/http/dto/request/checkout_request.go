package request

// CheckoutRequest finalizes the current cart as a sale
type CheckoutRequest struct {
	PaymentMethod string  `json:"payment_method" binding:"required"`
	VIPName       string  `json:"vip_name" binding:"omitempty,max=100"`
	CashTendered  float64 `json:"cash_tendered" binding:"min=0"`
}

// SettleRequest pays off an open VIP tab
type SettleRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// SaleFilterRequest represents ledger filter parameters
type SaleFilterRequest struct {
	Search    string `form:"search"`
	Method    string `form:"method"`
	Kind      string `form:"kind"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
