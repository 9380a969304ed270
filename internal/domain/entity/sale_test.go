package entity

import (
	"testing"
	"time"

	"github.com/caiolopes/pdv-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewProductSale(t *testing.T) {
	lines := []SaleLine{{Flavor: "Pilsen", UnitPrice: 1000, Quantity: 2, Total: 2000}}

	sale, err := NewProductSale("PDV-ABC12345", time.Now(), enum.PaymentCash, 2000, 0, 2000, nil, lines)
	require.NoError(t, err)
	require.Equal(t, enum.SaleKindProduct, sale.Kind)
	require.Equal(t, int64(2000), sale.Total)
	require.Nil(t, sale.VIPCustomer)

	_, err = NewProductSale("PDV-ABC12345", time.Now(), enum.PaymentCash, 0, 0, 0, nil, nil)
	require.ErrorIs(t, err, ErrSaleNoLines)
}

func TestNewProductSaleVIPRequiresName(t *testing.T) {
	lines := []SaleLine{{Flavor: "Pilsen", UnitPrice: 1000, Quantity: 1, Total: 1000}}

	_, err := NewProductSale("PDV-ABC12345", time.Now(), enum.PaymentVIP, 1000, 0, 1000, nil, lines)
	require.ErrorIs(t, err, ErrSaleVIPNameRequired)

	empty := ""
	_, err = NewProductSale("PDV-ABC12345", time.Now(), enum.PaymentVIP, 1000, 0, 1000, &empty, lines)
	require.ErrorIs(t, err, ErrSaleVIPNameRequired)

	name := "Alice"
	sale, err := NewProductSale("PDV-ABC12345", time.Now(), enum.PaymentVIP, 1000, 0, 1000, &name, lines)
	require.NoError(t, err)
	require.Equal(t, "Alice", *sale.VIPCustomer)
}

func TestNewSettlementSale(t *testing.T) {
	sale, err := NewSettlementSale("PDV-DEF67890", time.Now(), enum.PaymentPix, 3000, "Alice")
	require.NoError(t, err)
	require.Equal(t, enum.SaleKindSettlement, sale.Kind)
	require.Equal(t, int64(3000), sale.Total)
	require.Empty(t, sale.Lines)

	// A settlement cannot be charged back to a VIP tab
	_, err = NewSettlementSale("PDV-DEF67890", time.Now(), enum.PaymentVIP, 3000, "Alice")
	require.ErrorIs(t, err, ErrSettlementMethod)

	_, err = NewSettlementSale("PDV-DEF67890", time.Now(), enum.PaymentComplimentary, 3000, "Alice")
	require.ErrorIs(t, err, ErrSettlementMethod)

	_, err = NewSettlementSale("PDV-DEF67890", time.Now(), enum.PaymentCash, 0, "Alice")
	require.ErrorIs(t, err, ErrSettlementZeroAmount)

	_, err = NewSettlementSale("PDV-DEF67890", time.Now(), enum.PaymentCash, 3000, "")
	require.ErrorIs(t, err, ErrSaleVIPNameRequired)
}

func TestSaleShortID(t *testing.T) {
	sale := &Sale{ID: uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")}
	require.Equal(t, "abcdef", sale.ShortID())
}
