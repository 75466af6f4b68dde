package reports

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	sales     DailySales
	profit    DailyProfit
	salesErr  error
	profitErr error
}

func (f *fakeAPI) DailySales(ctx context.Context, date string) (DailySales, error) {
	return f.sales, f.salesErr
}

func (f *fakeAPI) DailyProfit(ctx context.Context, date string) (DailyProfit, error) {
	return f.profit, f.profitErr
}

func TestService_Fetch(t *testing.T) {
	api := &fakeAPI{
		sales: DailySales{Date: "2026-08-31", TotalSales: decimal.RequireFromString("125.50")},
		profit: DailyProfit{
			Date:         "2026-08-31",
			TotalRevenue: decimal.RequireFromString("125.50"),
			TotalCost:    decimal.RequireFromString("50.20"),
			TotalProfit:  decimal.RequireFromString("75.30"),
		},
	}
	svc := NewService(api)

	snap, err := svc.Fetch(context.Background(), "2026-08-31")

	require.NoError(t, err)
	assert.Equal(t, "125.50", snap.Sales.TotalSales.StringFixed(2))
	assert.Equal(t, "75.30", snap.Profit.TotalProfit.StringFixed(2))
}

func TestService_Fetch_Errors(t *testing.T) {
	wantErr := errors.New("boom")

	svc := NewService(&fakeAPI{salesErr: wantErr})
	_, err := svc.Fetch(context.Background(), "")
	assert.ErrorIs(t, err, wantErr)

	svc = NewService(&fakeAPI{profitErr: wantErr})
	_, err = svc.Fetch(context.Background(), "")
	assert.ErrorIs(t, err, wantErr)
}

func TestDailyProfit_Margin(t *testing.T) {
	tests := []struct {
		name    string
		revenue string
		profit  string
		want    string
	}{
		{"sixty percent", "100.00", "60.00", "60"},
		{"rounded to one decimal", "125.50", "75.30", "60"},
		{"zero revenue", "0", "0", "0"},
		{"loss", "100.00", "-10.00", "-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DailyProfit{
				TotalRevenue: decimal.RequireFromString(tt.revenue),
				TotalProfit:  decimal.RequireFromString(tt.profit),
			}
			assert.Equal(t, tt.want, p.Margin().String())
		})
	}
}
