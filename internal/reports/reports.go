package reports

import (
	"context"

	"github.com/shopspring/decimal"
)

// DailySales is the pre-aggregated sales figure for one day.
type DailySales struct {
	Date       string
	TotalSales decimal.Decimal
}

// DailyProfit is the pre-aggregated revenue/cost breakdown for one day.
type DailyProfit struct {
	Date         string
	TotalRevenue decimal.Decimal
	TotalCost    decimal.Decimal
	TotalProfit  decimal.Decimal
}

// Margin returns the profit margin as a percentage, zero when there was no
// revenue.
func (p DailyProfit) Margin() decimal.Decimal {
	if p.TotalRevenue.IsZero() {
		return decimal.Zero
	}
	return p.TotalProfit.Div(p.TotalRevenue).Mul(decimal.NewFromInt(100)).Round(1)
}

// API is the reporting side of the POS API. All aggregation happens
// server-side; the client only reads already-summed numbers.
type API interface {
	DailySales(ctx context.Context, date string) (DailySales, error)
	DailyProfit(ctx context.Context, date string) (DailyProfit, error)
}

// Snapshot is everything the reports screen shows for one day.
type Snapshot struct {
	Sales  DailySales
	Profit DailyProfit
}

// Service fetches report snapshots.
type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// Fetch loads the sales and profit figures for a day. Date is YYYY-MM-DD,
// empty for today (the server default).
func (s *Service) Fetch(ctx context.Context, date string) (Snapshot, error) {
	sales, err := s.api.DailySales(ctx, date)
	if err != nil {
		return Snapshot{}, err
	}
	profit, err := s.api.DailyProfit(ctx, date)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Sales: sales, Profit: profit}, nil
}
