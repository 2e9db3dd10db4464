package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/boxdzair-dotcom/dzair-online/internal/application/service"
	"github.com/boxdzair-dotcom/dzair-online/internal/presentation/http/dto/response"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req struct {
		Name                 string  `json:"name" binding:"required"`
		PurchasePrice        float64 `json:"purchase_price"`
		Weight               float64 `json:"weight"`
		DefaultDeliveryPrice float64 `json:"default_delivery_price"`
		SellingPrice         float64 `json:"selling_price"`
		StockQty             int     `json:"stock_qty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:                 req.Name,
		PurchasePrice:        req.PurchasePrice,
		Weight:               req.Weight,
		DefaultDeliveryPrice: req.DefaultDeliveryPrice,
		SellingPrice:         req.SellingPrice,
		StockQty:             req.StockQty,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// List handles listing products
func (h *ProductHandler) List(c *gin.Context) {
	params := pageParams(c)
	search := c.Query("search")

	result, err := h.productService.ListProducts(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Get handles getting a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}
