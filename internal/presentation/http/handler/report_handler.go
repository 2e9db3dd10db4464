package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/boxdzair-dotcom/dzair-online/internal/application/service"
	"github.com/boxdzair-dotcom/dzair-online/internal/presentation/http/dto/response"
	"github.com/boxdzair-dotcom/dzair-online/pkg/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles export HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// FullExport streams the whole ledger as a multi-sheet workbook
func (h *ReportHandler) FullExport(c *gin.Context) {
	tables, err := h.reportService.FullExport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	buf, err := export.WriteWorkbook(tables)
	if err != nil {
		response.InternalServerError(c, "Failed to generate workbook")
		return
	}

	writeWorkbook(c, "ledger", buf.Bytes())
}

// SalesExport streams the filtered sale history as a single-sheet workbook
func (h *ReportHandler) SalesExport(c *gin.Context) {
	search := c.Query("search")
	dateFrom := c.Query("date_from")
	dateTo := c.Query("date_to")

	table, err := h.reportService.SalesExport(c.Request.Context(), search, dateFrom, dateTo)
	if err != nil {
		response.Error(c, err)
		return
	}

	buf, err := export.WriteWorkbook([]service.Table{*table})
	if err != nil {
		response.InternalServerError(c, "Failed to generate workbook")
		return
	}

	writeWorkbook(c, "sales", buf.Bytes())
}

func writeWorkbook(c *gin.Context, name string, data []byte) {
	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(200, xlsxContentType, data)
}
