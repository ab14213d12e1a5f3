package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logischolar/analytics-backend/internal/model"
	"github.com/logischolar/analytics-backend/internal/response"
)

// DepartmentHandler serves the static department-subject registry that feeds
// the predictor input form.
type DepartmentHandler struct{}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler() *DepartmentHandler {
	return &DepartmentHandler{}
}

// departmentEntry pairs a department code with its core subjects.
type departmentEntry struct {
	Code     model.Department `json:"code"`
	Subjects [3]string        `json:"subjects"`
}

// ListDepartments godoc
// GET /api/v1/departments
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	codes := model.DepartmentCodes()
	departments := make([]departmentEntry, 0, len(codes))
	for _, code := range codes {
		departments = append(departments, departmentEntry{
			Code:     code,
			Subjects: model.SubjectsFor(code),
		})
	}
	response.Success(c, http.StatusOK, gin.H{"departments": departments})
}

// GetSubjects godoc
// GET /api/v1/departments/:code/subjects
func (h *DepartmentHandler) GetSubjects(c *gin.Context) {
	code := c.Param("code")
	if !model.ValidDepartment(code) {
		response.Fail(c, http.StatusNotFound, response.ErrUnknownDepartment)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"department": code,
		"subjects":   model.SubjectsFor(model.Department(code)),
	})
}
