package export

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/boxdzair-dotcom/dzair-online/internal/domain/entity"
)

// InvoicePDF renders a single-page A4 invoice for a recorded sale and
// returns the PDF bytes.
func InvoicePDF(sale *entity.Sale) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, "INVOICE", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, sale.InvoiceNo, "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6, sale.Date.Format("2006-01-02"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, "Billed To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if sale.Client != nil {
		pdf.CellFormat(contentW, 5, sale.Client.Name, "", 1, "L", false, 0, "")
		if sale.Client.Phone != "" {
			pdf.CellFormat(contentW, 5, sale.Client.Phone, "", 1, "L", false, 0, "")
		}
		if sale.Client.Address != "" {
			pdf.CellFormat(contentW, 5, sale.Client.Address, "", 1, "L", false, 0, "")
		}
		if sale.Client.City != "" {
			pdf.CellFormat(contentW, 5, sale.Client.City, "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(4)

	col1 := contentW * 0.46
	col2 := contentW * 0.12
	col3 := contentW * 0.21
	col4 := contentW * 0.21

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 7, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 7, "Unit Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, "Delivery", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(col1, 7, sale.ProductName(), "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, fmt.Sprintf("x%d", sale.Quantity), "", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 7, amount(sale.SellingPrice), "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, amount(sale.DeliveryPrice), "", 1, "R", false, 0, "")

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(col1+col2+col3, 6, "Delivery cost:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, amount(sale.TotLivraison), "", 1, "R", false, 0, "")
	pdf.CellFormat(col1+col2+col3, 6, "Gross profit:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, amount(sale.PFayda), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3, 8, "Net profit:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 8, amount(sale.FaydaSafia), "", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 5, "Payment: "+string(sale.PaymentMethod), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Status: "+string(sale.Status), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: encode invoice: %w", err)
	}
	return &buf, nil
}

func amount(v float64) string {
	return fmt.Sprintf("%.2f DZD", v)
}
