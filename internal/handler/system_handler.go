package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logischolar/analytics-backend/internal/dataset"
	"github.com/logischolar/analytics-backend/internal/response"
)

// SystemHandler reports service status and dataset size.
type SystemHandler struct {
	table *dataset.Table
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(table *dataset.Table) *SystemHandler {
	return &SystemHandler{table: table}
}

// Health godoc
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"status":  "online",
		"records": h.table.Len(),
	})
}
