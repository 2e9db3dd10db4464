package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/boxdzair-dotcom/dzair-online/internal/application/service"
	"github.com/boxdzair-dotcom/dzair-online/internal/presentation/http/dto/response"
)

// FeeHandler handles sponsored-fee HTTP requests
type FeeHandler struct {
	feeService *service.FeeService
}

// NewFeeHandler creates a new fee handler
func NewFeeHandler(feeService *service.FeeService) *FeeHandler {
	return &FeeHandler{feeService: feeService}
}

// Create handles recording an advertising spend entry
func (h *FeeHandler) Create(c *gin.Context) {
	var req struct {
		CampaignName string  `json:"campaign_name" binding:"required"`
		Platform     string  `json:"platform"`
		AmountSpent  float64 `json:"amount_spent"`
		Date         string  `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	fee, err := h.feeService.CreateFee(c.Request.Context(), &service.CreateFeeInput{
		CampaignName: req.CampaignName,
		Platform:     req.Platform,
		AmountSpent:  req.AmountSpent,
		Date:         req.Date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sponsored fee recorded successfully", fee)
}

// List handles listing advertising spend entries
func (h *FeeHandler) List(c *gin.Context) {
	params := pageParams(c)

	result, err := h.feeService.ListFees(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sponsored fees retrieved successfully", result)
}
