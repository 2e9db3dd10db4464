package service

import (
	"context"
	"time"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/entity"
	"github.com/boxdzair-dotcom/dzair-online/internal/domain/enum"
	"github.com/boxdzair-dotcom/dzair-online/internal/domain/pricing"
	"github.com/boxdzair-dotcom/dzair-online/internal/domain/repository"
	"github.com/boxdzair-dotcom/dzair-online/pkg/apperror"
	"github.com/boxdzair-dotcom/dzair-online/pkg/pagination"
)

const dateLayout = "2006-01-02"

// SaleService orchestrates sale recording and the filtered sale views.
type SaleService struct {
	saleRepo    repository.SaleRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
	}
}

// RecordSaleInput represents the record sale input. DeliveryPrice overrides
// the product's default delivery price when set. Date is YYYY-MM-DD and
// defaults to today.
type RecordSaleInput struct {
	ClientID      uint
	ProductID     uint
	Quantity      int
	DeliveryPrice *float64
	PaymentMethod enum.PaymentMethod
	Status        enum.SaleStatus
	Date          string
}

// RecordSale validates the input, snapshots the product's prices, derives the
// financial fields, and persists the sale together with the client and stock
// mutations. Validation happens before any write; the writes themselves are
// one transaction inside the repository.
func (s *SaleService) RecordSale(ctx context.Context, input *RecordSaleInput) (*entity.Sale, error) {
	if input.Quantity < 1 {
		return nil, apperror.NewFieldValidationError("quantity", "quantity must be a positive integer")
	}
	if input.DeliveryPrice != nil && *input.DeliveryPrice < 0 {
		return nil, apperror.NewFieldValidationError("delivery_price", "delivery price must be zero or greater")
	}

	payment := input.PaymentMethod
	if payment == "" {
		payment = enum.PaymentCash
	}
	if !payment.IsValid() {
		return nil, apperror.NewFieldValidationError("payment_method", "unknown payment method")
	}

	status := input.Status
	if status == "" {
		status = enum.SaleStatusPending
	}
	if !status.IsValid() {
		return nil, apperror.NewFieldValidationError("status", "unknown status")
	}

	date := today()
	if input.Date != "" {
		parsed, err := parseDay("date", input.Date)
		if err != nil {
			return nil, err
		}
		date = *parsed
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	deliveryPrice := product.DefaultDeliveryPrice
	if input.DeliveryPrice != nil {
		deliveryPrice = *input.DeliveryPrice
	}

	totLivraison := pricing.DeliveryCost(product.Weight, deliveryPrice)
	pFayda := pricing.GrossProfit(product.SellingPrice, totLivraison, product.PurchasePrice)
	faydaSafia := pricing.NetProfit(pFayda)

	sale := &entity.Sale{
		ClientID:      client.ID,
		ProductID:     product.ID,
		Quantity:      input.Quantity,
		PurchasePrice: product.PurchasePrice,
		SellingPrice:  product.SellingPrice,
		Weight:        product.Weight,
		DeliveryPrice: deliveryPrice,
		TotLivraison:  totLivraison,
		PFayda:        pFayda,
		FaydaSafia:    faydaSafia,
		PaymentMethod: payment,
		Status:        status,
		Paid:          status == enum.SaleStatusDelivered,
		Date:          date,
	}

	if err := s.saleRepo.Record(ctx, sale); err != nil {
		return nil, err
	}

	return s.saleRepo.GetByID(ctx, sale.ID)
}

// GetSale retrieves a sale by ID with its client and product loaded
func (s *SaleService) GetSale(ctx context.Context, id uint) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales returns the filtered sale history, most recent first. The date
// bounds are inclusive calendar days in YYYY-MM-DD form.
func (s *SaleService) ListSales(ctx context.Context, search, dateFrom, dateTo string, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Sale], error) {
	filters, err := buildSaleFilters(search, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}
	filters.Pagination = params

	sales, total, err := s.saleRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// buildSaleFilters validates the raw filter strings into repository filter
// params. A malformed date bound fails before any query runs.
func buildSaleFilters(search, dateFrom, dateTo string) (*repository.SaleFilterParams, error) {
	filters := &repository.SaleFilterParams{Search: search}

	if dateFrom != "" {
		from, err := parseDay("date_from", dateFrom)
		if err != nil {
			return nil, err
		}
		filters.DateFrom = from
	}

	if dateTo != "" {
		to, err := parseDay("date_to", dateTo)
		if err != nil {
			return nil, err
		}
		filters.DateTo = to
	}

	return filters, nil
}

func parseDay(field, value string) (*time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, apperror.NewFieldValidationError(field, field+" must be a valid date in YYYY-MM-DD format")
	}
	day := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	return &day, nil
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
