package service

import (
	"context"
	"testing"
	"time"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
	"github.com/caiolopes/pdv-api/internal/domain/enum"
	"github.com/caiolopes/pdv-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func seedSale(t *testing.T, repo *memSaleRepo, method enum.PaymentMethod, total int64, vip string) *entity.Sale {
	t.Helper()
	var vipPtr *string
	if vip != "" {
		vipPtr = &vip
	}
	lines := []entity.SaleLine{{Flavor: "Pilsen", UnitPrice: total, Quantity: 1, Total: total}}
	sale, err := entity.NewProductSale("PDV-"+uuid.New().String()[:8], time.Now(), method, total, 0, total, vipPtr, lines)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), sale))
	return sale
}

func TestReverseDeletesSale(t *testing.T) {
	saleRepo := newMemSaleRepo()
	vipRepo := newMemVIPRepo()
	bk := &fakeBackup{}
	svc := NewSaleService(saleRepo, vipRepo, bk)

	sale := seedSale(t, saleRepo, enum.PaymentCash, 2500, "")

	require.NoError(t, svc.Reverse(context.Background(), sale.ID))
	require.Empty(t, saleRepo.sales)
	require.Equal(t, 1, bk.snapshots)
}

func TestReverseVIPSaleRestoresBalance(t *testing.T) {
	saleRepo := newMemSaleRepo()
	vipRepo := newMemVIPRepo()
	vipRepo.balances["Alice"] = 3000
	svc := NewSaleService(saleRepo, vipRepo, &fakeBackup{})

	sale := seedSale(t, saleRepo, enum.PaymentVIP, 1000, "Alice")

	require.NoError(t, svc.Reverse(context.Background(), sale.ID))
	require.Equal(t, int64(2000), vipRepo.balances["Alice"])
}

func TestReverseVIPSaleClampsAtZero(t *testing.T) {
	saleRepo := newMemSaleRepo()
	vipRepo := newMemVIPRepo()
	// Tab was already settled, so there is less on it than the reversal amount
	vipRepo.balances["Alice"] = 400
	svc := NewSaleService(saleRepo, vipRepo, &fakeBackup{})

	sale := seedSale(t, saleRepo, enum.PaymentVIP, 1000, "Alice")

	require.NoError(t, svc.Reverse(context.Background(), sale.ID))
	require.Equal(t, int64(0), vipRepo.balances["Alice"])
}

func TestReverseSettlementDoesNotReopenTab(t *testing.T) {
	saleRepo := newMemSaleRepo()
	vipRepo := newMemVIPRepo()
	vipRepo.balances["Alice"] = 0
	svc := NewSaleService(saleRepo, vipRepo, &fakeBackup{})

	settlement, err := entity.NewSettlementSale("PDV-SETTLE01", time.Now(), enum.PaymentPix, 3000, "Alice")
	require.NoError(t, err)
	require.NoError(t, saleRepo.Create(context.Background(), settlement))

	require.NoError(t, svc.Reverse(context.Background(), settlement.ID))
	require.Empty(t, saleRepo.sales)
	require.Equal(t, int64(0), vipRepo.balances["Alice"])
}

func TestReverseUnknownSale(t *testing.T) {
	svc := NewSaleService(newMemSaleRepo(), newMemVIPRepo(), &fakeBackup{})

	err := svc.Reverse(context.Background(), uuid.New())
	require.Error(t, err)
	require.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestGetSale(t *testing.T) {
	saleRepo := newMemSaleRepo()
	svc := NewSaleService(saleRepo, newMemVIPRepo(), &fakeBackup{})

	sale := seedSale(t, saleRepo, enum.PaymentDebit, 1200, "")

	got, err := svc.GetSale(context.Background(), sale.ID)
	require.NoError(t, err)
	require.Equal(t, sale.SaleNo, got.SaleNo)
	require.Len(t, got.Lines, 1)

	_, err = svc.GetSale(context.Background(), uuid.New())
	require.Error(t, err)
	require.Equal(t, 404, apperror.GetAppError(err).Code)
}
