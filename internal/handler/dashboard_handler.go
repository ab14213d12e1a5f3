package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logischolar/analytics-backend/internal/response"
	"github.com/logischolar/analytics-backend/internal/service"
)

// DashboardHandler handles the dashboard view endpoint.
type DashboardHandler struct {
	analyticsService *service.AnalyticsService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(analyticsService *service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analyticsService: analyticsService}
}

// GetDashboard godoc
// GET /api/v1/dashboard
// Returns the KPI metrics plus the enrollment-share and mean-GPA-by-department
// chart series.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	response.Success(c, http.StatusOK, h.analyticsService.DashboardData())
}
