package service

import (
	"context"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/entity"
	"github.com/boxdzair-dotcom/dzair-online/internal/domain/repository"
)

// Table is a flat tabular projection of already-computed fields: ordered
// columns, one row per record. It is the only shape the export writers see.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]interface{}
}

// ReportService reshapes ledger data into export tables. It performs no
// computation of its own.
type ReportService struct {
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	feeRepo     repository.FeeRepository
}

// NewReportService creates a new report service
func NewReportService(
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	feeRepo repository.FeeRepository,
) *ReportService {
	return &ReportService{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		feeRepo:     feeRepo,
	}
}

// FullExport projects all four entity sets into one table each.
func (s *ReportService) FullExport(ctx context.Context) ([]Table, error) {
	clients, err := s.clientRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sales, _, err := s.saleRepo.List(ctx, &repository.SaleFilterParams{})
	if err != nil {
		return nil, err
	}
	fees, err := s.feeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return []Table{
		clientTable(clients),
		productTable(products),
		saleTable(sales),
		feeTable(fees),
	}, nil
}

// SalesExport projects the filtered sales view into a single table, using the
// same filter semantics as the sale listing.
func (s *ReportService) SalesExport(ctx context.Context, search, dateFrom, dateTo string) (*Table, error) {
	filters, err := buildSaleFilters(search, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	sales, _, err := s.saleRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	table := saleTable(sales)
	return &table, nil
}

func clientTable(clients []entity.Client) Table {
	t := Table{
		Name:    "Clients",
		Columns: []string{"client_id", "name", "phone", "address", "city", "total_spent", "total_orders"},
	}
	for _, c := range clients {
		t.Rows = append(t.Rows, []interface{}{
			c.ID, c.Name, c.Phone, c.Address, c.City, c.TotalSpent, c.TotalOrders,
		})
	}
	return t
}

func productTable(products []entity.Product) Table {
	t := Table{
		Name:    "Products",
		Columns: []string{"product_id", "name", "purchase_price", "weight", "default_delivery_price", "selling_price", "stock_qty"},
	}
	for _, p := range products {
		t.Rows = append(t.Rows, []interface{}{
			p.ID, p.Name, p.PurchasePrice, p.Weight, p.DefaultDeliveryPrice, p.SellingPrice, p.StockQty,
		})
	}
	return t
}

func saleTable(sales []entity.Sale) Table {
	t := Table{
		Name: "Sales",
		Columns: []string{
			"sale_id", "invoice_no", "date", "client_name", "product_name",
			"quantity", "purchase_price", "selling_price", "weight", "delivery_price",
			"tot_livraison", "p_fayda", "fayda_safia", "payment_method", "status", "paid",
		},
	}
	for i := range sales {
		s := &sales[i]
		t.Rows = append(t.Rows, []interface{}{
			s.ID, s.InvoiceNo, s.Date.Format(dateLayout), s.ClientName(), s.ProductName(),
			s.Quantity, s.PurchasePrice, s.SellingPrice, s.Weight, s.DeliveryPrice,
			s.TotLivraison, s.PFayda, s.FaydaSafia, string(s.PaymentMethod), string(s.Status), s.Paid,
		})
	}
	return t
}

func feeTable(fees []entity.SponsoredFee) Table {
	t := Table{
		Name:    "SponsoredFees",
		Columns: []string{"fee_id", "campaign_name", "platform", "amount_spent", "date"},
	}
	for _, f := range fees {
		t.Rows = append(t.Rows, []interface{}{
			f.ID, f.CampaignName, f.Platform, f.AmountSpent, f.Date.Format(dateLayout),
		})
	}
	return t
}
