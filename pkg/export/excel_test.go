package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/boxdzair-dotcom/dzair-online/internal/application/service"
)

func TestWriteWorkbook(t *testing.T) {
	tables := []service.Table{
		{
			Name:    "Clients",
			Columns: []string{"client_id", "name"},
			Rows: [][]interface{}{
				{uint(1), "Amine"},
				{uint(2), "Sarah"},
			},
		},
		{
			Name:    "Sales",
			Columns: []string{"sale_id", "invoice_no", "fayda_safia"},
			Rows: [][]interface{}{
				{uint(1), "DZAIR-2026-001", 1200.0},
			},
		},
	}

	buf, err := WriteWorkbook(tables)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Clients", "Sales"}, f.GetSheetList())

	name, err := f.GetCellValue("Clients", "B1")
	require.NoError(t, err)
	assert.Equal(t, "name", name)

	cell, err := f.GetCellValue("Clients", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Sarah", cell)

	invoiceNo, err := f.GetCellValue("Sales", "B2")
	require.NoError(t, err)
	assert.Equal(t, "DZAIR-2026-001", invoiceNo)

	profit, err := f.GetCellValue("Sales", "C2")
	require.NoError(t, err)
	assert.Equal(t, "1200", profit)
}

func TestWriteWorkbookEmptyTable(t *testing.T) {
	tables := []service.Table{
		{Name: "SponsoredFees", Columns: []string{"fee_id", "campaign_name"}},
	}

	buf, err := WriteWorkbook(tables)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("SponsoredFees", "A1")
	require.NoError(t, err)
	assert.Equal(t, "fee_id", header)
}
