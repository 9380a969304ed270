package service

import (
	"context"
	"testing"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
	"github.com/caiolopes/pdv-api/internal/domain/enum"
	"github.com/caiolopes/pdv-api/pkg/apperror"
	"github.com/stretchr/testify/require"
)

func newConfigFixture() (*ConfigService, *memConfigRepo, *memFlavorRepo, *memSaleRepo, *memVIPRepo, *CartStore, *fakeBackup) {
	cfgRepo := &memConfigRepo{}
	flavorRepo := &memFlavorRepo{}
	saleRepo := newMemSaleRepo()
	vipRepo := newMemVIPRepo()
	carts := NewCartStore()
	bk := &fakeBackup{}
	svc := NewConfigService(cfgRepo, flavorRepo, saleRepo, vipRepo, carts, bk)
	return svc, cfgRepo, flavorRepo, saleRepo, vipRepo, carts, bk
}

func TestConfigureReplacesCatalog(t *testing.T) {
	svc, cfgRepo, flavorRepo, _, _, _, _ := newConfigFixture()

	cfg, err := svc.Configure(context.Background(), &ConfigureInput{
		StandName:    "SEVEN DWARFS",
		InitialFloat: 100.00,
		Flavors: []FlavorInput{
			{Name: "Pilsen", Price: 10.00},
			{Name: "IPA", Price: 12.00, Seasonal: true},
		},
	})
	require.NoError(t, err)
	require.True(t, cfg.Configured)
	require.Equal(t, int64(10000), cfg.InitialFloat)
	require.Equal(t, int64(10000), cfgRepo.cfg.InitialFloat)

	require.Len(t, flavorRepo.flavors, 2)
	require.Equal(t, int64(1000), flavorRepo.flavors[0].Price)
	require.Equal(t, 0, flavorRepo.flavors[0].Position)
	require.Equal(t, 1, flavorRepo.flavors[1].Position)
	require.True(t, flavorRepo.flavors[1].Seasonal)

	// Reconfiguring swaps the catalog entirely
	_, err = svc.Configure(context.Background(), &ConfigureInput{
		InitialFloat: 50,
		Flavors:      []FlavorInput{{Name: "Stout", Price: 15}},
	})
	require.NoError(t, err)
	require.Len(t, flavorRepo.flavors, 1)
	require.Equal(t, "Stout", flavorRepo.flavors[0].Name)
}

func TestConfigureValidation(t *testing.T) {
	svc, _, _, _, _, _, _ := newConfigFixture()
	ctx := context.Background()

	cases := []struct {
		name  string
		input *ConfigureInput
	}{
		{"negative float", &ConfigureInput{InitialFloat: -1, Flavors: []FlavorInput{{Name: "Pilsen", Price: 10}}}},
		{"no flavors", &ConfigureInput{InitialFloat: 100}},
		{"empty flavor name", &ConfigureInput{InitialFloat: 100, Flavors: []FlavorInput{{Name: "", Price: 10}}}},
		{"duplicate flavor", &ConfigureInput{InitialFloat: 100, Flavors: []FlavorInput{{Name: "Pilsen", Price: 10}, {Name: "Pilsen", Price: 12}}}},
		{"negative price", &ConfigureInput{InitialFloat: 100, Flavors: []FlavorInput{{Name: "Pilsen", Price: -10}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Configure(ctx, tc.input)
			require.Error(t, err)
			require.Equal(t, 400, apperror.GetAppError(err).Code)
		})
	}
}

func TestResetClearsEverything(t *testing.T) {
	svc, cfgRepo, flavorRepo, saleRepo, vipRepo, carts, bk := newConfigFixture()
	ctx := context.Background()

	_, err := svc.Configure(ctx, &ConfigureInput{
		InitialFloat: 100,
		Flavors:      []FlavorInput{{Name: "Pilsen", Price: 10}},
	})
	require.NoError(t, err)

	seedSale(t, saleRepo, enum.PaymentCash, 1000, "")
	vipRepo.balances["Alice"] = 3000
	require.NoError(t, carts.With("reg-1", func(cart *entity.Cart) error {
		cart.Add("Pilsen", 1000)
		return nil
	}))

	require.NoError(t, svc.Reset(ctx))

	require.Empty(t, saleRepo.sales)
	require.Empty(t, vipRepo.balances)
	require.Empty(t, flavorRepo.flavors)
	require.False(t, cfgRepo.cfg.Configured)
	require.True(t, carts.Snapshot("reg-1").IsEmpty())
	require.Equal(t, 1, bk.cleans)
}
