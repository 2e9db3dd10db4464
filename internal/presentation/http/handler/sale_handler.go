package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/boxdzair-dotcom/dzair-online/internal/application/service"
	"github.com/boxdzair-dotcom/dzair-online/internal/domain/enum"
	"github.com/boxdzair-dotcom/dzair-online/internal/presentation/http/dto/response"
	"github.com/boxdzair-dotcom/dzair-online/pkg/export"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles recording a sale
func (h *SaleHandler) Create(c *gin.Context) {
	var req struct {
		ClientID      uint     `json:"client_id" binding:"required"`
		ProductID     uint     `json:"product_id" binding:"required"`
		Quantity      int      `json:"quantity"`
		DeliveryPrice *float64 `json:"delivery_price"`
		PaymentMethod string   `json:"payment_method"`
		Status        string   `json:"status"`
		Date          string   `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), &service.RecordSaleInput{
		ClientID:      req.ClientID,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		DeliveryPrice: req.DeliveryPrice,
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		Status:        enum.SaleStatus(req.Status),
		Date:          req.Date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", sale)
}

// List handles listing sales with search and date filters
func (h *SaleHandler) List(c *gin.Context) {
	params := pageParams(c)
	search := c.Query("search")
	dateFrom := c.Query("date_from")
	dateTo := c.Query("date_to")

	result, err := h.saleService.ListSales(c.Request.Context(), search, dateFrom, dateTo, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Get handles getting a single sale
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// InvoicePDF renders the sale's invoice as a downloadable PDF
func (h *SaleHandler) InvoicePDF(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	buf, err := export.InvoicePDF(sale)
	if err != nil {
		response.InternalServerError(c, "Failed to generate invoice PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", sale.InvoiceNo))
	c.Data(200, "application/pdf", buf.Bytes())
}
