package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/entity"
	"github.com/boxdzair-dotcom/dzair-online/internal/domain/invoice"
	domainRepo "github.com/boxdzair-dotcom/dzair-online/internal/domain/repository"
	"github.com/boxdzair-dotcom/dzair-online/pkg/apperror"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type saleRepository struct {
	db     *gorm.DB
	prefix string
}

// NewSaleRepository creates a new sale repository. The prefix scopes every
// generated invoice number.
func NewSaleRepository(db *gorm.DB, prefix string) domainRepo.SaleRepository {
	if prefix == "" {
		prefix = invoice.DefaultPrefix
	}
	return &saleRepository{db: db, prefix: prefix}
}

// nextSeq returns the next invoice sequence for the given year. The most
// recently inserted invoice for that year wins, regardless of its sale date.
// A malformed trailing segment restarts the sequence at 1 instead of failing.
func (r *saleRepository) nextSeq(tx *gorm.DB, year int) (int, error) {
	query := tx.Model(&entity.Sale{}).
		Where("invoice_no LIKE ?", invoice.Pattern(r.prefix, year)).
		Order("id DESC").
		Limit(1)
	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var last []string
	if err := query.Pluck("invoice_no", &last).Error; err != nil {
		return 0, err
	}
	if len(last) == 0 {
		return 1, nil
	}
	seq, ok := invoice.ParseSeq(last[0])
	if !ok {
		return 1, nil
	}
	return seq + 1, nil
}

func (r *saleRepository) Record(ctx context.Context, sale *entity.Sale) error {
	year := sale.Date.Year()

	run := func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			seq, err := r.nextSeq(tx, year)
			if err != nil {
				return err
			}
			sale.ID = 0
			sale.InvoiceNo = invoice.Format(r.prefix, year, seq)

			if err := tx.Create(sale).Error; err != nil {
				return err
			}

			res := tx.Model(&entity.Client{}).
				Where("id = ?", sale.ClientID).
				Updates(map[string]interface{}{
					"total_spent":  gorm.Expr("total_spent + ?", sale.SellingPrice*float64(sale.Quantity)),
					"total_orders": gorm.Expr("total_orders + ?", 1),
				})
			if res.Error != nil {
				return res.Error
			}

			// No floor: stock may go negative.
			return tx.Model(&entity.Product{}).
				Where("id = ?", sale.ProductID).
				Update("stock_qty", gorm.Expr("stock_qty - ?", sale.Quantity)).Error
		})
	}

	err := run()
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a race on the invoice number; regenerate once.
		err = run()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.NewConflictError("invoice number collision for " + sale.InvoiceNo)
		}
	}
	return err
}

func (r *saleRepository) GetByID(ctx context.Context, id uint) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Product").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Joins("LEFT JOIN clients ON clients.id = sales.client_id").
		Joins("LEFT JOIN products ON products.id = sales.product_id")

	if params.Search != "" {
		// LOWER/LIKE instead of ILIKE so the filter behaves the same on
		// SQLite and PostgreSQL.
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(clients.name) LIKE ? OR LOWER(products.name) LIKE ? OR LOWER(sales.invoice_no) LIKE ? OR LOWER(sales.status) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if params.DateFrom != nil {
		query = query.Where("sales.date >= ?", *params.DateFrom)
	}

	if params.DateTo != nil {
		query = query.Where("sales.date <= ?", *params.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Most recent by insertion order first.
	query = query.Order("sales.id DESC")

	if params.Pagination != nil {
		params.Pagination.Validate()
		query = query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage)
	}

	err := query.
		Preload("Client").
		Preload("Product").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) DailyProfit(ctx context.Context, from time.Time) ([]domainRepo.DailyProfitPoint, error) {
	var points []domainRepo.DailyProfitPoint
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			date,
			COALESCE(SUM(fayda_safia), 0) AS profit,
			COUNT(*) AS count
		FROM sales
		WHERE date >= ?
		GROUP BY date
		ORDER BY date
	`, from).Scan(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (r *saleRepository) Totals(ctx context.Context) (*domainRepo.LedgerTotals, error) {
	var totals domainRepo.LedgerTotals
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS count,
			COALESCE(SUM(fayda_safia), 0) AS profit_sum,
			COALESCE(SUM(tot_livraison), 0) AS delivery_sum
		FROM sales
	`).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
