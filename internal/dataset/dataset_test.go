package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logischolar/analytics-backend/internal/model"
)

func sampleRecords() []model.StudentRecord {
	return []model.StudentRecord{
		{RegisterNo: "10001", Name: "Asha Iyer", Department: model.DepartmentCSE, Mark1: 90, Mark2: 85, Mark3: 88, AttendancePct: 95.5, CurrentGPA: 9.12},
		{RegisterNo: "10002", Name: "Ravi Kumar", Department: model.DepartmentMECH, Mark1: 48, Mark2: 61, Mark3: 77, AttendancePct: 70, CurrentGPA: 5.9},
	}
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, WriteFile(path, sampleRecords()))
	return path
}

func TestReadFile_RoundTrip(t *testing.T) {
	path := writeSample(t)

	table, err := ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, sampleRecords(), table.Records())
}

func TestSource_LoadIsMemoized(t *testing.T) {
	path := writeSample(t)
	src := NewSource(path, zerolog.Nop())

	first, err := src.Load()
	require.NoError(t, err)

	// Removing the file proves subsequent loads never touch the disk.
	require.NoError(t, os.Remove(path))

	second, err := src.Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSource_MissingFileIsPermanent(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	src := NewSource(path, zerolog.Nop())

	_, err := src.Load()
	require.Error(t, err)
	assert.True(t, IsMissing(err))

	// Creating the file afterwards does not revive the session; the failed
	// load is cached for the process lifetime.
	require.NoError(t, WriteFile(path, sampleRecords()))
	_, err = src.Load()
	assert.Error(t, err)
}

func TestReadFile_HeaderValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad_header.csv")
	content := "Register_No,Name,Dept,Mark_1,Mark_2,Mark_3,Attendance_%,Current_GPA\n" +
		"10001,Asha Iyer,CSE,90,85,88,95.5,9.12\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := ReadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `got "Dept", want "Department"`)
	assert.False(t, IsMissing(err))
}

func TestReadFile_BadRows(t *testing.T) {
	header := "Register_No,Name,Department,Mark_1,Mark_2,Mark_3,Attendance_%,Current_GPA\n"

	tests := []struct {
		name    string
		row     string
		wantErr string
	}{
		{"unknown department", "10001,Asha Iyer,CIVIL,90,85,88,95.5,9.12\n", `unknown department "CIVIL"`},
		{"non-numeric mark", "10001,Asha Iyer,CSE,ninety,85,88,95.5,9.12\n", `column Mark_1: invalid number "ninety"`},
		{"non-numeric gpa", "10001,Asha Iyer,CSE,90,85,88,95.5,high\n", `column Current_GPA: invalid number "high"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad_rows.csv")
			require.NoError(t, os.WriteFile(path, []byte(header+tt.row), 0o644))

			_, err := ReadFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "dataset line 2")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMarshalRecord(t *testing.T) {
	data, err := MarshalRecord(sampleRecords()[0])
	require.NoError(t, err)

	want := "Register_No,Name,Department,Mark_1,Mark_2,Mark_3,Attendance_%,Current_GPA\n" +
		"10001,Asha Iyer,CSE,90,85,88,95.5,9.12\n"
	assert.Equal(t, want, string(data))
}

func TestReportFileName(t *testing.T) {
	assert.Equal(t, "Student_Report_12345.csv", ReportFileName("12345"))
}
