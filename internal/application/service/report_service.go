package service

import (
	"context"

	"github.com/caiolopes/pdv-api/internal/domain/repository"
)

// ReportService aggregates the ledger for the closing report
type ReportService struct {
	reportRepo repository.ReportRepository
	configRepo repository.ConfigRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository, configRepo repository.ConfigRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo, configRepo: configRepo}
}

// Summary is the closing report: overall revenue, per-method breakdown and
// the expected cash drawer contents.
type Summary struct {
	TotalRevenue     float64                            `json:"total_revenue"`
	SaleCount        int64                              `json:"sale_count"`
	RevenueByMethod  []repository.MethodRevenueResult   `json:"revenue_by_method"`
	CashRevenue      float64                            `json:"cash_revenue"`
	InitialFloat     float64                            `json:"initial_float"`
	CashDrawerTotal  float64                            `json:"cash_drawer_total"`
	OpenVIPLiability float64                            `json:"open_vip_liability"`
}

// GetSummary builds the closing summary. The cash drawer total is the cash
// revenue plus the configured initial float.
func (s *ReportService) GetSummary(ctx context.Context) (*Summary, error) {
	total, err := s.reportRepo.GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	count, err := s.reportRepo.GetSaleCount(ctx)
	if err != nil {
		return nil, err
	}

	byMethod, err := s.reportRepo.GetRevenueByMethod(ctx)
	if err != nil {
		return nil, err
	}

	cash, err := s.reportRepo.GetCashRevenue(ctx)
	if err != nil {
		return nil, err
	}

	liability, err := s.reportRepo.GetOpenVIPLiability(ctx)
	if err != nil {
		return nil, err
	}

	var initialFloat float64
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		initialFloat = cfg.GetInitialFloatDecimal()
	}

	return &Summary{
		TotalRevenue:     total,
		SaleCount:        count,
		RevenueByMethod:  byMethod,
		CashRevenue:      cash,
		InitialFloat:     initialFloat,
		CashDrawerTotal:  cash + initialFloat,
		OpenVIPLiability: liability,
	}, nil
}

// RevenueByFlavor returns per-flavor quantity and revenue across all product lines.
func (s *ReportService) RevenueByFlavor(ctx context.Context) ([]repository.FlavorRevenueResult, error) {
	return s.reportRepo.GetRevenueByFlavor(ctx)
}

// RevenueByHour returns revenue grouped by the hour component of sale timestamps.
func (s *ReportService) RevenueByHour(ctx context.Context) ([]repository.HourRevenueResult, error) {
	return s.reportRepo.GetRevenueByHour(ctx)
}
