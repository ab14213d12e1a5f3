package service

import (
	"github.com/rs/zerolog"

	"github.com/logischolar/analytics-backend/internal/dataset"
	"github.com/logischolar/analytics-backend/internal/model"
)

// FieldZones carries the per-field performance zone annotations of a profile.
type FieldZones struct {
	Mark1         model.Zone `json:"mark_1"`
	Mark2         model.Zone `json:"mark_2"`
	Mark3         model.Zone `json:"mark_3"`
	AttendancePct model.Zone `json:"attendance_pct"`
	CurrentGPA    model.Zone `json:"current_gpa"`
}

// StudentProfile is a looked-up record with its zone annotations and the
// subject names behind Mark1..Mark3.
type StudentProfile struct {
	Record   model.StudentRecord `json:"record"`
	Subjects [3]string           `json:"subjects"`
	Zones    FieldZones          `json:"zones"`
}

// StudentService handles record lookup and report export.
type StudentService struct {
	table *dataset.Table
	log   zerolog.Logger
}

// NewStudentService creates a new StudentService over the given table.
func NewStudentService(table *dataset.Table, log zerolog.Logger) *StudentService {
	return &StudentService{
		table: table,
		log:   log.With().Str("component", "student_service").Logger(),
	}
}

// FindByRegisterNo returns the first record whose register number exactly
// equals registerNo, or false if none matches. Register numbers are unique
// in the dataset, so "first" is also "only".
func (s *StudentService) FindByRegisterNo(registerNo string) (model.StudentRecord, bool) {
	for _, rec := range s.table.Records() {
		if rec.RegisterNo == registerNo {
			return rec, true
		}
	}
	return model.StudentRecord{}, false
}

// Profile looks up a record and annotates each numeric field with its
// performance zone.
func (s *StudentService) Profile(registerNo string) (*StudentProfile, bool) {
	rec, ok := s.FindByRegisterNo(registerNo)
	if !ok {
		return nil, false
	}

	return &StudentProfile{
		Record:   rec,
		Subjects: model.SubjectsFor(rec.Department),
		Zones: FieldZones{
			Mark1:         model.ZoneOf(rec.Mark1),
			Mark2:         model.ZoneOf(rec.Mark2),
			Mark3:         model.ZoneOf(rec.Mark3),
			AttendancePct: model.ZoneOf(rec.AttendancePct),
			CurrentGPA:    model.ZoneOf(rec.CurrentGPA),
		},
	}, true
}

// Report serializes a looked-up record as a single-row CSV download with its
// deterministic filename. ok is false when no record matches.
func (s *StudentService) Report(registerNo string) (filename string, data []byte, ok bool, err error) {
	rec, found := s.FindByRegisterNo(registerNo)
	if !found {
		return "", nil, false, nil
	}

	data, err = dataset.MarshalRecord(rec)
	if err != nil {
		return "", nil, true, err
	}
	return dataset.ReportFileName(rec.RegisterNo), data, true, nil
}
