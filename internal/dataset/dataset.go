package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/logischolar/analytics-backend/internal/model"
)

// DefaultFileName is the fixed name of the operator-generated dataset file,
// resolved relative to the working directory.
const DefaultFileName = "university_core_data.csv"

// columns is the exact header the dataset file must carry, in order.
var columns = []string{
	"Register_No",
	"Name",
	"Department",
	"Mark_1",
	"Mark_2",
	"Mark_3",
	"Attendance_%",
	"Current_GPA",
}

// Table is the immutable in-memory view of the loaded dataset. It is safe to
// share across concurrent requests without synchronization because nothing
// mutates it after construction.
type Table struct {
	records []model.StudentRecord
}

// NewTable builds a table over the given records. The slice is owned by the
// table afterwards and must not be modified by the caller.
func NewTable(records []model.StudentRecord) *Table {
	return &Table{records: records}
}

// Len returns the number of student records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records exposes the backing record slice for read-only iteration.
func (t *Table) Records() []model.StudentRecord {
	return t.records
}

// Source memoizes a one-time read of the dataset file. Every caller shares
// the same Table; the underlying file is read at most once per process, and
// a load failure is equally permanent for the session.
type Source struct {
	path  string
	log   zerolog.Logger
	once  sync.Once
	table *Table
	err   error
}

// NewSource creates a Source for the dataset file at path.
func NewSource(path string, log zerolog.Logger) *Source {
	return &Source{
		path: path,
		log:  log.With().Str("component", "dataset").Logger(),
	}
}

// Load reads and parses the dataset on first call and returns the cached
// result on every subsequent call.
func (s *Source) Load() (*Table, error) {
	s.once.Do(func() {
		s.table, s.err = ReadFile(s.path)
		if s.err != nil {
			s.log.Error().Err(s.err).Str("file", s.path).Msg("Dataset load failed")
			return
		}
		s.log.Info().Str("file", s.path).Int("records", s.table.Len()).Msg("Dataset loaded")
	})
	return s.table, s.err
}

// ReadFile parses a dataset file into a Table. The header and every field
// are validated up front so malformed input fails fast with a descriptive
// error instead of surfacing on first use. A missing file yields an error
// wrapping fs.ErrNotExist.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return readAll(f)
}

func readAll(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(columns)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	for i, name := range columns {
		if header[i] != name {
			return nil, fmt.Errorf("dataset header column %d: got %q, want %q", i+1, header[i], name)
		}
	}

	var records []model.StudentRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}

		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("dataset line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return NewTable(records), nil
}

func parseRow(row []string) (model.StudentRecord, error) {
	rec := model.StudentRecord{
		RegisterNo: row[0],
		Name:       row[1],
	}

	if !model.ValidDepartment(row[2]) {
		return rec, fmt.Errorf("unknown department %q", row[2])
	}
	rec.Department = model.Department(row[2])

	numeric := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"Mark_1", row[3], &rec.Mark1},
		{"Mark_2", row[4], &rec.Mark2},
		{"Mark_3", row[5], &rec.Mark3},
		{"Attendance_%", row[6], &rec.AttendancePct},
		{"Current_GPA", row[7], &rec.CurrentGPA},
	}
	for _, field := range numeric {
		v, err := strconv.ParseFloat(field.raw, 64)
		if err != nil {
			return rec, fmt.Errorf("column %s: invalid number %q", field.name, field.raw)
		}
		*field.dst = v
	}

	return rec, nil
}

// IsMissing reports whether err stems from an absent dataset file, as
// opposed to a present but malformed one.
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
