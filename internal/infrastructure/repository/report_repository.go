package repository

import (
	"context"

	"github.com/caiolopes/pdv-api/internal/domain/enum"
	domainRepo "github.com/caiolopes/pdv-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetTotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) / 100.0
		FROM sales
	`).Scan(&revenue).Error

	return revenue, err
}

func (r *reportRepository) GetRevenueByMethod(ctx context.Context) ([]domainRepo.MethodRevenueResult, error) {
	type row struct {
		Method    int
		Revenue   float64
		SaleCount int64
	}
	var rows []row

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			payment_method as method,
			COALESCE(SUM(total), 0) / 100.0 as revenue,
			COUNT(id) as sale_count
		FROM sales
		GROUP BY payment_method
		ORDER BY revenue DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.MethodRevenueResult, 0, len(rows))
	for _, rw := range rows {
		results = append(results, domainRepo.MethodRevenueResult{
			Method:    methodName(rw.Method),
			Revenue:   rw.Revenue,
			SaleCount: rw.SaleCount,
		})
	}
	return results, nil
}

func (r *reportRepository) GetCashRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) / 100.0
		FROM sales
		WHERE payment_method = ?
	`, enum.PaymentCash).Scan(&revenue).Error

	return revenue, err
}

func (r *reportRepository) GetRevenueByFlavor(ctx context.Context) ([]domainRepo.FlavorRevenueResult, error) {
	var results []domainRepo.FlavorRevenueResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			sl.flavor as flavor,
			COALESCE(SUM(sl.quantity), 0) as quantity_sold,
			COALESCE(SUM(sl.total), 0) / 100.0 as revenue
		FROM sale_lines sl
		JOIN sales s ON s.id = sl.sale_id
		GROUP BY sl.flavor
		ORDER BY revenue DESC, quantity_sold DESC
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *reportRepository) GetRevenueByHour(ctx context.Context) ([]domainRepo.HourRevenueResult, error) {
	var results []domainRepo.HourRevenueResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			EXTRACT(HOUR FROM timestamp)::int as hour,
			COALESCE(SUM(total), 0) / 100.0 as revenue,
			COUNT(id) as sale_count
		FROM sales
		GROUP BY hour
		ORDER BY hour ASC
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *reportRepository) GetSaleCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`SELECT COUNT(id) FROM sales`).Scan(&count).Error
	return count, err
}

func (r *reportRepository) GetOpenVIPLiability(ctx context.Context) (float64, error) {
	var liability float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(balance), 0) / 100.0
		FROM vip_accounts
		WHERE balance > 0
	`).Scan(&liability).Error

	return liability, err
}

// methodName maps the stored payment method ordinal to its wire name.
func methodName(m int) string {
	names := [...]string{"PIX", "Debit", "Credit", "Cash", "VIP", "Complimentary"}
	if m < 0 || m >= len(names) {
		return "PIX"
	}
	return names[m]
}
