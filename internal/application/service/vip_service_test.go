package service

import (
	"context"
	"testing"

	"github.com/caiolopes/pdv-api/internal/domain/enum"
	"github.com/caiolopes/pdv-api/pkg/apperror"
	"github.com/stretchr/testify/require"
)

func TestSettleZeroesBalanceAndRecordsSale(t *testing.T) {
	saleRepo := newMemSaleRepo()
	vipRepo := newMemVIPRepo()
	vipRepo.balances["Alice"] = 3000
	bk := &fakeBackup{}
	svc := NewVIPService(vipRepo, saleRepo, bk)

	sale, err := svc.Settle(context.Background(), "Alice", enum.PaymentPix)
	require.NoError(t, err)
	require.Equal(t, enum.SaleKindSettlement, sale.Kind)
	require.Equal(t, int64(3000), sale.Total)
	require.Equal(t, "Alice", *sale.VIPCustomer)
	require.Empty(t, sale.Lines)

	require.Equal(t, int64(0), vipRepo.balances["Alice"])
	require.Len(t, saleRepo.sales, 1)
	require.Equal(t, 1, bk.snapshots)
}

func TestSettleRejectsNonSettlingMethods(t *testing.T) {
	vipRepo := newMemVIPRepo()
	vipRepo.balances["Alice"] = 3000
	svc := NewVIPService(vipRepo, newMemSaleRepo(), &fakeBackup{})

	for _, method := range []enum.PaymentMethod{enum.PaymentVIP, enum.PaymentComplimentary} {
		_, err := svc.Settle(context.Background(), "Alice", method)
		require.Error(t, err)
		require.Equal(t, 400, apperror.GetAppError(err).Code)
	}

	// Balance untouched by rejected settlements
	require.Equal(t, int64(3000), vipRepo.balances["Alice"])
}

func TestSettleUnknownAccount(t *testing.T) {
	svc := NewVIPService(newMemVIPRepo(), newMemSaleRepo(), &fakeBackup{})

	_, err := svc.Settle(context.Background(), "Nobody", enum.PaymentCash)
	require.Error(t, err)
	require.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestSettleZeroBalance(t *testing.T) {
	vipRepo := newMemVIPRepo()
	vipRepo.balances["Alice"] = 0
	svc := NewVIPService(vipRepo, newMemSaleRepo(), &fakeBackup{})

	_, err := svc.Settle(context.Background(), "Alice", enum.PaymentCash)
	require.Error(t, err)
	require.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestSettleBalanceFailureRollsBackSale(t *testing.T) {
	saleRepo := newMemSaleRepo()
	vipRepo := newMemVIPRepo()
	vipRepo.balances["Alice"] = 3000
	vipRepo.settleErr = errBackupFailed
	svc := NewVIPService(vipRepo, saleRepo, &fakeBackup{})

	_, err := svc.Settle(context.Background(), "Alice", enum.PaymentCash)
	require.Error(t, err)

	// The settlement record is dropped when zeroing the balance failed
	require.Empty(t, saleRepo.sales)
	require.Equal(t, int64(3000), vipRepo.balances["Alice"])
}
