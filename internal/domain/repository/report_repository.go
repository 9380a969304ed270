package repository

import (
	"context"
)

// MethodRevenueResult is revenue grouped by payment method
type MethodRevenueResult struct {
	Method    string  `json:"method"`
	Revenue   float64 `json:"revenue"`
	SaleCount int64   `json:"sale_count"`
}

// FlavorRevenueResult is product-line revenue grouped by flavor
type FlavorRevenueResult struct {
	Flavor       string  `json:"flavor"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// HourRevenueResult is revenue grouped by the hour component of sale timestamps
type HourRevenueResult struct {
	Hour      int     `json:"hour"`
	Revenue   float64 `json:"revenue"`
	SaleCount int64   `json:"sale_count"`
}

// ReportRepository defines read-only aggregations over the ledger
type ReportRepository interface {
	// GetTotalRevenue returns the sum of all sale totals
	GetTotalRevenue(ctx context.Context) (float64, error)
	// GetRevenueByMethod returns revenue grouped by payment method
	GetRevenueByMethod(ctx context.Context) ([]MethodRevenueResult, error)
	// GetCashRevenue returns the sum of cash-method sale totals
	GetCashRevenue(ctx context.Context) (float64, error)
	// GetRevenueByFlavor returns product-line quantity and revenue per flavor
	GetRevenueByFlavor(ctx context.Context) ([]FlavorRevenueResult, error)
	// GetRevenueByHour returns revenue per hour of day
	GetRevenueByHour(ctx context.Context) ([]HourRevenueResult, error)
	// GetSaleCount returns the number of sales in the ledger
	GetSaleCount(ctx context.Context) (int64, error)
	// GetOpenVIPLiability returns the sum of outstanding VIP balances
	GetOpenVIPLiability(ctx context.Context) (float64, error)
}
