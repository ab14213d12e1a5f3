package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/logischolar/analytics-backend/internal/model"
)

// ReportFileName returns the deterministic export filename for a register
// number, e.g. "Student_Report_12345.csv".
func ReportFileName(registerNo string) string {
	return fmt.Sprintf("Student_Report_%s.csv", registerNo)
}

// MarshalRecord serializes a single record as a UTF-8 CSV document under the
// canonical header. Numbers keep full precision so a re-parse of the output
// reproduces the record exactly.
func MarshalRecord(rec model.StudentRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, err
	}
	if err := w.Write(recordRow(rec)); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes a complete dataset file, header included. Used by the
// generator CLI and by tests; the server itself never writes the dataset.
func WriteFile(path string, records []model.StudentRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(recordRow(rec)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func recordRow(rec model.StudentRecord) []string {
	return []string{
		rec.RegisterNo,
		rec.Name,
		string(rec.Department),
		formatNumber(rec.Mark1),
		formatNumber(rec.Mark2),
		formatNumber(rec.Mark3),
		formatNumber(rec.AttendancePct),
		formatNumber(rec.CurrentGPA),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
