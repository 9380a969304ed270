package entity

import (
	"encoding/json"
	"errors"
)

// ErrDiscountOutOfRange is returned when a discount is negative or exceeds
// the cart subtotal.
var ErrDiscountOutOfRange = errors.New("discount must be between 0 and the cart subtotal")

// CartLine is one flavor in the cart with the unit price snapshotted at
// add time. Quantity is always positive; lines at zero are removed.
type CartLine struct {
	Flavor    string `json:"flavor"`
	UnitPrice int64  `json:"-"` // Cents
	Quantity  int    `json:"quantity"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (l CartLine) MarshalJSON() ([]byte, error) {
	type Alias CartLine
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(l),
		UnitPrice: float64(l.UnitPrice) / 100,
		Total:     float64(l.UnitPrice*int64(l.Quantity)) / 100,
	})
}

// Cart is the ephemeral per-register checkout state. It is a plain value
// owned by one register session; it never touches the database.
type Cart struct {
	Lines    []CartLine `json:"lines"`
	Discount int64      `json:"-"` // Cents
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (c Cart) MarshalJSON() ([]byte, error) {
	type Alias Cart
	return json.Marshal(&struct {
		Alias
		Discount float64 `json:"discount"`
		SubTotal float64 `json:"sub_total"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(c),
		Discount: float64(c.Discount) / 100,
		SubTotal: float64(c.SubTotal()) / 100,
		Total:    float64(c.Total()) / 100,
	})
}

// Add increments the quantity of an existing line or appends a new one with
// the flavor's current catalog price snapshot.
func (c *Cart) Add(flavor string, unitPrice int64) {
	for i := range c.Lines {
		if c.Lines[i].Flavor == flavor {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{Flavor: flavor, UnitPrice: unitPrice, Quantity: 1})
}

// Decrement lowers the quantity of a line, removing it when it reaches zero.
// No-op when the flavor is not in the cart.
func (c *Cart) Decrement(flavor string) {
	for i := range c.Lines {
		if c.Lines[i].Flavor == flavor {
			c.Lines[i].Quantity--
			if c.Lines[i].Quantity <= 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			}
			return
		}
	}
}

// SubTotal returns the sum of unit price times quantity across all lines, in cents.
func (c *Cart) SubTotal() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.UnitPrice * int64(l.Quantity)
	}
	return sum
}

// Total returns the subtotal minus the applied discount, floored at 0.
func (c *Cart) Total() int64 {
	total := c.SubTotal() - c.Discount
	if total < 0 {
		return 0
	}
	return total
}

// ApplyDiscount sets the discount, rejecting values outside [0, subtotal].
func (c *Cart) ApplyDiscount(amount int64) error {
	if amount < 0 || amount > c.SubTotal() {
		return ErrDiscountOutOfRange
	}
	c.Discount = amount
	return nil
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// UnitCount returns the number of individual units in the cart.
func (c Cart) UnitCount() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// Clear empties all lines and resets the discount.
func (c *Cart) Clear() {
	c.Lines = nil
	c.Discount = 0
}
