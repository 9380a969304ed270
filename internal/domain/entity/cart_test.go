package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCartAddAndDecrement(t *testing.T) {
	var cart Cart

	cart.Add("Pilsen", 1000)
	cart.Add("Pilsen", 1000)
	cart.Add("IPA", 1200)

	require.Len(t, cart.Lines, 2)
	require.Equal(t, 2, cart.Lines[0].Quantity)
	require.Equal(t, 3, cart.UnitCount())
	require.Equal(t, int64(3200), cart.SubTotal())

	cart.Decrement("Pilsen")
	require.Equal(t, 1, cart.Lines[0].Quantity)

	// Decrementing to zero removes the line entirely
	cart.Decrement("Pilsen")
	require.Len(t, cart.Lines, 1)
	require.Equal(t, "IPA", cart.Lines[0].Flavor)

	// Decrementing an absent flavor is a silent no-op
	cart.Decrement("Stout")
	require.Len(t, cart.Lines, 1)
}

func TestCartPriceSnapshot(t *testing.T) {
	var cart Cart

	// The unit price is captured when the line is first added. A later Add
	// with a different price only bumps the quantity.
	cart.Add("Pilsen", 1000)
	cart.Add("Pilsen", 9999)

	require.Len(t, cart.Lines, 1)
	require.Equal(t, int64(1000), cart.Lines[0].UnitPrice)
	require.Equal(t, int64(2000), cart.SubTotal())
}

func TestCartDiscount(t *testing.T) {
	var cart Cart
	cart.Add("Pilsen", 1000)
	cart.Add("Pilsen", 1000)

	require.NoError(t, cart.ApplyDiscount(500))
	require.Equal(t, int64(1500), cart.Total())

	// Discount can equal the subtotal, zeroing the cart
	require.NoError(t, cart.ApplyDiscount(2000))
	require.Equal(t, int64(0), cart.Total())

	require.ErrorIs(t, cart.ApplyDiscount(-1), ErrDiscountOutOfRange)
	require.ErrorIs(t, cart.ApplyDiscount(2001), ErrDiscountOutOfRange)

	// Failed applies leave the previous discount in place
	require.Equal(t, int64(2000), cart.Discount)
}

func TestCartTotalFlooredAtZero(t *testing.T) {
	var cart Cart
	cart.Add("Pilsen", 1000)
	require.NoError(t, cart.ApplyDiscount(1000))

	// Removing the item after a full discount must not go negative
	cart.Decrement("Pilsen")
	require.Equal(t, int64(0), cart.Total())
}

func TestCartClear(t *testing.T) {
	var cart Cart
	cart.Add("Pilsen", 1000)
	require.NoError(t, cart.ApplyDiscount(200))

	cart.Clear()

	require.True(t, cart.IsEmpty())
	require.Equal(t, int64(0), cart.Discount)
	require.Equal(t, int64(0), cart.SubTotal())
}
