package service

import (
	"context"
	"testing"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
	"github.com/caiolopes/pdv-api/pkg/apperror"
	"github.com/stretchr/testify/require"
)

func newCartFixture() (*CartService, *memFlavorRepo) {
	flavorRepo := &memFlavorRepo{flavors: []entity.Flavor{
		{Name: "Pilsen", Price: 1000},
		{Name: "IPA", Price: 1200, Seasonal: true},
	}}
	return NewCartService(NewCartStore(), flavorRepo), flavorRepo
}

func TestAddItemSnapshotsCatalogPrice(t *testing.T) {
	svc, flavorRepo := newCartFixture()
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "reg-1", "Pilsen")
	require.NoError(t, err)
	require.Equal(t, int64(1000), cart.SubTotal())

	// A catalog price change does not touch lines already in the cart
	flavorRepo.flavors[0].Price = 9999
	cart, err = svc.AddItem(ctx, "reg-1", "Pilsen")
	require.NoError(t, err)
	require.Equal(t, int64(2000), cart.SubTotal())
}

func TestAddItemUnknownFlavor(t *testing.T) {
	svc, _ := newCartFixture()

	_, err := svc.AddItem(context.Background(), "reg-1", "Absinto")
	require.Error(t, err)
	require.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDecrementItemIsSilent(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "reg-1", "IPA")
	require.NoError(t, err)

	cart := svc.DecrementItem(ctx, "reg-1", "IPA")
	require.True(t, cart.IsEmpty())

	// Decrementing something not in the cart never errors
	cart = svc.DecrementItem(ctx, "reg-1", "Pilsen")
	require.True(t, cart.IsEmpty())
}

func TestApplyDiscountValidation(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "reg-1", "Pilsen")
	require.NoError(t, err)

	cart, err := svc.ApplyDiscount(ctx, "reg-1", 2.50)
	require.NoError(t, err)
	require.Equal(t, int64(750), cart.Total())

	_, err = svc.ApplyDiscount(ctx, "reg-1", 10.01)
	require.Error(t, err)
	require.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.ApplyDiscount(ctx, "reg-1", -1)
	require.Error(t, err)
}

func TestCartsAreSessionScoped(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "reg-1", "Pilsen")
	require.NoError(t, err)

	require.True(t, svc.Get(ctx, "reg-2").IsEmpty())
	require.False(t, svc.Get(ctx, "reg-1").IsEmpty())

	svc.Clear(ctx, "reg-1")
	require.True(t, svc.Get(ctx, "reg-1").IsEmpty())
}
