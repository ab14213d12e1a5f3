package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logischolar/analytics-backend/internal/model"
	"github.com/logischolar/analytics-backend/internal/response"
	"github.com/logischolar/analytics-backend/internal/service"
	"github.com/logischolar/analytics-backend/internal/validator"
)

// ForecastHandler handles the GPA forecast endpoint.
type ForecastHandler struct {
	forecastService *service.ForecastService
}

// NewForecastHandler creates a new ForecastHandler.
func NewForecastHandler(forecastService *service.ForecastService) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService}
}

// Forecast godoc
// POST /api/v1/forecast
// Computes the weighted GPA estimate for the submitted marks and attendance.
// The department selection only drives the subject labels on the input form;
// it does not change the formula.
func (h *ForecastHandler) Forecast(c *gin.Context) {
	var req model.ForecastRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result := h.forecastService.Forecast(req.Mark1, req.Mark2, req.Mark3, req.Attendance)

	response.Success(c, http.StatusOK, gin.H{
		"department": req.Department,
		"subjects":   model.SubjectsFor(req.Department),
		"forecast":   result,
	})
}
