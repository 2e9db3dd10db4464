package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/entity"
	"github.com/boxdzair-dotcom/dzair-online/pkg/apperror"
)

func TestFullExportTables(t *testing.T) {
	f := newSaleServiceFixture(t)
	fees := newStubFeeRepo()
	report := NewReportService(f.clients, f.products, f.sales, fees)

	_, err := f.service.RecordSale(context.Background(), &RecordSaleInput{
		ClientID: f.client.ID, ProductID: f.product.ID, Quantity: 2, Date: "2026-03-15",
	})
	require.NoError(t, err)

	require.NoError(t, fees.Create(context.Background(), &entity.SponsoredFee{
		CampaignName: "Launch", AmountSpent: 500,
	}))

	tables, err := report.FullExport(context.Background())
	require.NoError(t, err)
	require.Len(t, tables, 4)

	assert.Equal(t, "Clients", tables[0].Name)
	assert.Equal(t, "Products", tables[1].Name)
	assert.Equal(t, "Sales", tables[2].Name)
	assert.Equal(t, "SponsoredFees", tables[3].Name)

	// Every row is as wide as its header
	for _, table := range tables {
		require.NotEmpty(t, table.Columns, table.Name)
		for _, row := range table.Rows {
			assert.Len(t, row, len(table.Columns), table.Name)
		}
	}

	assert.Len(t, tables[0].Rows, 1)
	assert.Len(t, tables[2].Rows, 1)
	assert.Len(t, tables[3].Rows, 1)
}

func TestSalesExportFiltered(t *testing.T) {
	f := newSaleServiceFixture(t)
	report := NewReportService(f.clients, f.products, f.sales, newStubFeeRepo())

	for _, date := range []string{"2026-03-01", "2026-04-01"} {
		_, err := f.service.RecordSale(context.Background(), &RecordSaleInput{
			ClientID: f.client.ID, ProductID: f.product.ID, Quantity: 1, Date: date,
		})
		require.NoError(t, err)
	}

	table, err := report.SalesExport(context.Background(), "", "2026-03-20", "")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)

	assert.Equal(t, "Sales", table.Name)
	assert.Equal(t, "sale_id", table.Columns[0])
	assert.Equal(t, "invoice_no", table.Columns[1])

	// Joined names are resolved, not IDs
	row := table.Rows[0]
	assert.Equal(t, "2026-04-01", row[2])
	assert.Equal(t, "Amine", row[3])
	assert.Equal(t, "Montre Casio", row[4])
}

func TestSalesExportRejectsMalformedBound(t *testing.T) {
	f := newSaleServiceFixture(t)
	report := NewReportService(f.clients, f.products, f.sales, newStubFeeRepo())

	_, err := report.SalesExport(context.Background(), "", "bogus", "")
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}
