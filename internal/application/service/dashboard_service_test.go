package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/entity"
	"github.com/boxdzair-dotcom/dzair-online/pkg/pagination"
)

type stubFeeRepo struct {
	fees   []entity.SponsoredFee
	nextID uint
}

func newStubFeeRepo() *stubFeeRepo {
	return &stubFeeRepo{nextID: 1}
}

func (r *stubFeeRepo) Create(_ context.Context, fee *entity.SponsoredFee) error {
	fee.ID = r.nextID
	r.nextID++
	r.fees = append(r.fees, *fee)
	return nil
}

func (r *stubFeeRepo) List(_ context.Context, _ *pagination.PaginationParams) ([]entity.SponsoredFee, int64, error) {
	return r.fees, int64(len(r.fees)), nil
}

func (r *stubFeeRepo) ListAll(_ context.Context) ([]entity.SponsoredFee, error) {
	return r.fees, nil
}

func (r *stubFeeRepo) TotalSpend(_ context.Context) (float64, error) {
	var total float64
	for _, fee := range r.fees {
		total += fee.AmountSpent
	}
	return total, nil
}

func TestGetStatsEmptyLedger(t *testing.T) {
	f := newSaleServiceFixture(t)
	fees := newStubFeeRepo()
	dashboard := NewDashboardService(f.sales, fees)

	stats, err := dashboard.GetStats(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.Totals.Count)
	assert.Equal(t, 0.0, stats.Totals.ProfitSum)
	assert.Equal(t, 0.0, stats.Totals.DeliverySum)
	assert.Empty(t, stats.DailyProfit)
	assert.Equal(t, 0.0, stats.AdSpend)
}

func TestGetStatsAggregates(t *testing.T) {
	f := newSaleServiceFixture(t)
	fees := newStubFeeRepo()
	dashboard := NewDashboardService(f.sales, fees)

	todayStr := time.Now().UTC().Format(dateLayout)

	// One recent sale inside the window, one old sale outside it
	_, err := f.service.RecordSale(context.Background(), &RecordSaleInput{
		ClientID: f.client.ID, ProductID: f.product.ID, Quantity: 1, Date: todayStr,
	})
	require.NoError(t, err)

	_, err = f.service.RecordSale(context.Background(), &RecordSaleInput{
		ClientID: f.client.ID, ProductID: f.product.ID, Quantity: 1, Date: "2020-01-01",
	})
	require.NoError(t, err)

	require.NoError(t, fees.Create(context.Background(), &entity.SponsoredFee{
		CampaignName: "Ramadan promo", Platform: "Facebook", AmountSpent: 1500,
	}))
	require.NoError(t, fees.Create(context.Background(), &entity.SponsoredFee{
		CampaignName: "TikTok push", Platform: "TikTok", AmountSpent: 800,
	}))

	stats, err := dashboard.GetStats(context.Background(), DefaultProfitWindowDays)
	require.NoError(t, err)

	// Totals span the whole ledger
	assert.Equal(t, int64(2), stats.Totals.Count)
	assert.Equal(t, 2400.0, stats.Totals.ProfitSum)
	assert.Equal(t, 600.0, stats.Totals.DeliverySum)

	// The daily series only covers the trailing window
	require.Len(t, stats.DailyProfit, 1)
	assert.Equal(t, 1200.0, stats.DailyProfit[0].Profit)
	assert.Equal(t, int64(1), stats.DailyProfit[0].Count)

	assert.Equal(t, 2300.0, stats.AdSpend)
}
