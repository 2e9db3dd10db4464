package repository

import (
	"context"
	"time"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/entity"
	"github.com/boxdzair-dotcom/dzair-online/pkg/pagination"
)

// SaleFilterParams holds the optional filters for listing sales. All filters
// combine with AND; a nil/empty filter imposes no constraint. A nil Pagination
// returns the full result set (used by the export path).
type SaleFilterParams struct {
	Search     string
	DateFrom   *time.Time
	DateTo     *time.Time
	Pagination *pagination.PaginationParams
}

// DailyProfitPoint is one day of the profit aggregation. Days with no sales
// are not emitted; chart consumers handle gap-filling.
type DailyProfitPoint struct {
	Date   time.Time `json:"date"`
	Profit float64   `json:"profit"`
	Count  int64     `json:"count"`
}

// LedgerTotals holds the whole-ledger dashboard sums.
type LedgerTotals struct {
	Count       int64   `json:"count"`
	ProfitSum   float64 `json:"profit_sum"`
	DeliverySum float64 `json:"delivery_sum"`
}

// SaleRepository defines the interface for sale data access.
//
// Record persists a new sale together with its side effects: it generates the
// next invoice number for the sale's year, inserts the row, adds
// selling_price*quantity to the client's total_spent, bumps the client's
// total_orders, and decrements the product's stock_qty — all inside one
// transaction that commits or rolls back as a unit. The sale's ID and
// InvoiceNo are populated on success.
type SaleRepository interface {
	Record(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uint) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	DailyProfit(ctx context.Context, from time.Time) ([]DailyProfitPoint, error)
	Totals(ctx context.Context) (*LedgerTotals, error)
}
