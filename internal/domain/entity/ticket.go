package entity

// Ticket is a value object describing one drink voucher handed to the
// customer. One ticket is issued per unit sold. It is NOT a database entity —
// it is composed from sale data at render time and consumed by the PNG and
// thermal-printer renderers.
type Ticket struct {
	StandName     string `json:"stand_name"`
	Flavor        string `json:"flavor"`
	SaleShortID   string `json:"sale_short_id"`
	PaymentMethod string `json:"payment_method"`
	Seq           int    `json:"seq"` // 1-based position within the sale's tickets
}
