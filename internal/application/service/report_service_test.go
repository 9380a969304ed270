package service

import (
	"context"
	"testing"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
	"github.com/caiolopes/pdv-api/internal/domain/repository"
	"github.com/stretchr/testify/require"
)

type stubReportRepo struct {
	total     float64
	count     int64
	byMethod  []repository.MethodRevenueResult
	cash      float64
	byFlavor  []repository.FlavorRevenueResult
	byHour    []repository.HourRevenueResult
	liability float64
}

func (r *stubReportRepo) GetTotalRevenue(_ context.Context) (float64, error) { return r.total, nil }
func (r *stubReportRepo) GetRevenueByMethod(_ context.Context) ([]repository.MethodRevenueResult, error) {
	return r.byMethod, nil
}
func (r *stubReportRepo) GetCashRevenue(_ context.Context) (float64, error) { return r.cash, nil }
func (r *stubReportRepo) GetRevenueByFlavor(_ context.Context) ([]repository.FlavorRevenueResult, error) {
	return r.byFlavor, nil
}
func (r *stubReportRepo) GetRevenueByHour(_ context.Context) ([]repository.HourRevenueResult, error) {
	return r.byHour, nil
}
func (r *stubReportRepo) GetSaleCount(_ context.Context) (int64, error) { return r.count, nil }
func (r *stubReportRepo) GetOpenVIPLiability(_ context.Context) (float64, error) {
	return r.liability, nil
}

func TestGetSummaryIncludesInitialFloatInDrawer(t *testing.T) {
	reportRepo := &stubReportRepo{
		total: 540.00,
		count: 42,
		byMethod: []repository.MethodRevenueResult{
			{Method: "Cash", Revenue: 200.00, SaleCount: 18},
			{Method: "PIX", Revenue: 340.00, SaleCount: 24},
		},
		cash:      200.00,
		liability: 75.00,
	}
	cfgRepo := &memConfigRepo{cfg: &entity.EventConfig{ID: 1, InitialFloat: 15000, Configured: true}}
	svc := NewReportService(reportRepo, cfgRepo)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 540.00, summary.TotalRevenue)
	require.Equal(t, int64(42), summary.SaleCount)
	require.Equal(t, 200.00, summary.CashRevenue)
	require.Equal(t, 150.00, summary.InitialFloat)
	require.Equal(t, 350.00, summary.CashDrawerTotal)
	require.Equal(t, 75.00, summary.OpenVIPLiability)
	require.Len(t, summary.RevenueByMethod, 2)
}

func TestGetSummaryUnconfigured(t *testing.T) {
	svc := NewReportService(&stubReportRepo{cash: 10}, &memConfigRepo{})

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0.00, summary.InitialFloat)
	require.Equal(t, 10.00, summary.CashDrawerTotal)
}
