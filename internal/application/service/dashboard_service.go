package service

import (
	"context"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/repository"
)

// DefaultProfitWindowDays is the trailing window shown on the dashboard chart.
const DefaultProfitWindowDays = 14

// DashboardService provides the ledger-wide dashboard figures
type DashboardService struct {
	saleRepo repository.SaleRepository
	feeRepo  repository.FeeRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(saleRepo repository.SaleRepository, feeRepo repository.FeeRepository) *DashboardService {
	return &DashboardService{saleRepo: saleRepo, feeRepo: feeRepo}
}

// DashboardStats represents dashboard statistics. DailyProfit is sparse:
// days with no sales are omitted.
type DashboardStats struct {
	Totals      *repository.LedgerTotals      `json:"totals"`
	DailyProfit []repository.DailyProfitPoint `json:"daily_profit"`
	AdSpend     float64                       `json:"ad_spend"`
}

// GetStats returns the dashboard totals, the trailing daily-profit series
// (windowDays including today), and the total advertising spend. Sums over an
// empty ledger are zero.
func (s *DashboardService) GetStats(ctx context.Context, windowDays int) (*DashboardStats, error) {
	if windowDays < 1 {
		windowDays = DefaultProfitWindowDays
	}

	totals, err := s.saleRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	from := today().AddDate(0, 0, -(windowDays - 1))
	daily, err := s.saleRepo.DailyProfit(ctx, from)
	if err != nil {
		return nil, err
	}

	adSpend, err := s.feeRepo.TotalSpend(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Totals:      totals,
		DailyProfit: daily,
		AdSpend:     adSpend,
	}, nil
}
