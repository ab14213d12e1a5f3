package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logischolar/analytics-backend/internal/dataset"
	"github.com/logischolar/analytics-backend/internal/model"
)

func newStudentService() *StudentService {
	records := []model.StudentRecord{
		{RegisterNo: "12345", Name: "Asha Iyer", Department: model.DepartmentIT, Mark1: 45, Mark2: 60, Mark3: 80, AttendancePct: 81, CurrentGPA: 6.25},
		{RegisterNo: "12346", Name: "Ravi Kumar", Department: model.DepartmentEEE, Mark1: 88, Mark2: 91, Mark3: 79, AttendancePct: 96.5, CurrentGPA: 8.9},
	}
	return NewStudentService(dataset.NewTable(records), zerolog.Nop())
}

func TestFindByRegisterNo(t *testing.T) {
	s := newStudentService()

	rec, ok := s.FindByRegisterNo("12345")
	require.True(t, ok)
	assert.Equal(t, "Asha Iyer", rec.Name)
	assert.Equal(t, model.DepartmentIT, rec.Department)

	_, ok = s.FindByRegisterNo("99999")
	assert.False(t, ok)

	// Exact textual match only — no trimming or partial matching.
	_, ok = s.FindByRegisterNo(" 12345")
	assert.False(t, ok)
	_, ok = s.FindByRegisterNo("1234")
	assert.False(t, ok)
}

func TestProfile_Zones(t *testing.T) {
	s := newStudentService()

	profile, ok := s.Profile("12345")
	require.True(t, ok)

	assert.Equal(t, model.SubjectsFor(model.DepartmentIT), profile.Subjects)
	assert.Equal(t, model.ZoneRed, profile.Zones.Mark1)           // 45
	assert.Equal(t, model.ZoneOrange, profile.Zones.Mark2)        // 60
	assert.Equal(t, model.ZoneYellow, profile.Zones.Mark3)        // 80
	assert.Equal(t, model.ZoneGreen, profile.Zones.AttendancePct) // 81
	// The zone thresholds are absolute, so a 0-10 GPA always lands in Red.
	assert.Equal(t, model.ZoneRed, profile.Zones.CurrentGPA) // 6.25

	_, ok = s.Profile("99999")
	assert.False(t, ok)
}

func TestReport_RoundTrip(t *testing.T) {
	s := newStudentService()

	filename, data, ok, err := s.Report("12346")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Student_Report_12346.csv", filename)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"Register_No", "Name", "Department",
		"Mark_1", "Mark_2", "Mark_3", "Attendance_%", "Current_GPA",
	}, rows[0])
	assert.Equal(t, []string{"12346", "Ravi Kumar", "EEE", "88", "91", "79", "96.5", "8.9"}, rows[1])

	_, _, ok, err = s.Report("99999")
	require.NoError(t, err)
	assert.False(t, ok)
}
