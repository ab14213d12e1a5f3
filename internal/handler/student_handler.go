package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logischolar/analytics-backend/internal/response"
	"github.com/logischolar/analytics-backend/internal/service"
)

// StudentHandler handles the search view: record lookup and report export.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// GetStudent godoc
// GET /api/v1/students/:register_no
// Returns the zone-annotated profile for an exact register number match.
// A miss is an expected outcome, reported as NOT_FOUND.
func (h *StudentHandler) GetStudent(c *gin.Context) {
	profile, ok := h.studentService.Profile(c.Param("register_no"))
	if !ok {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// DownloadReport godoc
// GET /api/v1/students/:register_no/report
// Streams the matched record as a single-row CSV attachment named
// Student_Report_<RegisterNo>.csv.
func (h *StudentHandler) DownloadReport(c *gin.Context) {
	filename, data, ok, err := h.studentService.Report(c.Param("register_no"))
	if !ok {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
