package model

// Department is the enumerated department code carried by every student record.
type Department string

const (
	DepartmentCSE  Department = "CSE"
	DepartmentIT   Department = "IT"
	DepartmentECE  Department = "ECE"
	DepartmentEEE  Department = "EEE"
	DepartmentMECH Department = "MECH"
)

// StudentRecord is one row of the loaded dataset. Mark1..Mark3 correspond
// positionally to the department's three core subjects. The record set is
// immutable after load; there is no write-back.
type StudentRecord struct {
	RegisterNo    string     `json:"register_no"`
	Name          string     `json:"name"`
	Department    Department `json:"department"`
	Mark1         float64    `json:"mark_1"`
	Mark2         float64    `json:"mark_2"`
	Mark3         float64    `json:"mark_3"`
	AttendancePct float64    `json:"attendance_pct"`
	CurrentGPA    float64    `json:"current_gpa"`
}
