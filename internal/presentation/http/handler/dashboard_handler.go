package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/boxdzair-dotcom/dzair-online/internal/application/service"
	"github.com/boxdzair-dotcom/dzair-online/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles the dashboard stats request. The optional days query
// parameter sizes the trailing daily-profit window.
func (h *DashboardHandler) Stats(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(service.DefaultProfitWindowDays)))

	stats, err := h.dashboardService.GetStats(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
