package service

import (
	"github.com/rs/zerolog"

	"github.com/logischolar/analytics-backend/internal/dataset"
	"github.com/logischolar/analytics-backend/internal/model"
)

// RetentionRatePct is reported on the dashboard as-is. No computation for it
// exists in the dataset; it is a fixed institutional figure.
const RetentionRatePct = 98.2

// DashboardData consolidates all metrics for the dashboard view.
type DashboardData struct {
	TotalStudents          int                 `json:"total_students"`
	CampusAvgGPA           float64             `json:"campus_avg_gpa"`
	AvgAttendancePct       float64             `json:"avg_attendance_pct"`
	RetentionRatePct       float64             `json:"retention_rate_pct"`
	EnrollmentByDepartment []DepartmentCount   `json:"enrollment_by_department"`
	AvgGPAByDepartment     []DepartmentAverage `json:"avg_gpa_by_department"`
}

// DepartmentCount is one slice of the enrollment-share chart.
type DepartmentCount struct {
	Department model.Department `json:"department"`
	Count      int              `json:"count"`
	Share      float64          `json:"share"`
}

// DepartmentAverage is one bar of the mean-GPA-by-department chart.
type DepartmentAverage struct {
	Department model.Department `json:"department"`
	AvgGPA     float64          `json:"avg_gpa"`
}

// AnalyticsService derives dashboard aggregates from the loaded table.
type AnalyticsService struct {
	table *dataset.Table
	log   zerolog.Logger
}

// NewAnalyticsService creates a new AnalyticsService over the given table.
func NewAnalyticsService(table *dataset.Table, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		table: table,
		log:   log.With().Str("component", "analytics_service").Logger(),
	}
}

// DashboardData computes the four KPI metrics and the two per-department
// chart series in a single pass over the table. Departments with no
// enrolled students are omitted from the series.
func (s *AnalyticsService) DashboardData() *DashboardData {
	total := s.table.Len()

	var gpaSum, attSum float64
	counts := make(map[model.Department]int)
	gpaByDept := make(map[model.Department]float64)

	for _, rec := range s.table.Records() {
		gpaSum += rec.CurrentGPA
		attSum += rec.AttendancePct
		counts[rec.Department]++
		gpaByDept[rec.Department] += rec.CurrentGPA
	}

	data := &DashboardData{
		TotalStudents:          total,
		RetentionRatePct:       RetentionRatePct,
		EnrollmentByDepartment: []DepartmentCount{},
		AvgGPAByDepartment:     []DepartmentAverage{},
	}
	if total == 0 {
		return data
	}

	data.CampusAvgGPA = gpaSum / float64(total)
	data.AvgAttendancePct = attSum / float64(total)

	for _, dept := range model.DepartmentCodes() {
		n := counts[dept]
		if n == 0 {
			continue
		}
		data.EnrollmentByDepartment = append(data.EnrollmentByDepartment, DepartmentCount{
			Department: dept,
			Count:      n,
			Share:      float64(n) / float64(total),
		})
		data.AvgGPAByDepartment = append(data.AvgGPAByDepartment, DepartmentAverage{
			Department: dept,
			AvgGPA:     gpaByDept[dept] / float64(n),
		})
	}

	return data
}
