package service

import (
	"github.com/rs/zerolog"

	"github.com/logischolar/analytics-backend/internal/model"
)

// Fixed linear-regression weights for the GPA forecast. Marks weigh in
// descending order of subject position; attendance carries the remainder.
const (
	weightMark1      = 0.35
	weightMark2      = 0.25
	weightMark3      = 0.20
	weightAttendance = 0.20
)

// Tier boundaries. Each lower bound is inclusive.
const (
	distinctionFloor = 8.5
	standardFloor    = 6.0
)

// Analysis messages shown alongside the forecast.
const (
	msgDistinction  = "Analysis: Distinction Performance Expected."
	msgStandard     = "Analysis: Standard Passing Performance."
	msgIntervention = "Warning: Academic Support Intervention Recommended."
)

// ForecastService computes the weighted GPA forecast.
type ForecastService struct {
	log zerolog.Logger
}

// NewForecastService creates a new ForecastService.
func NewForecastService(log zerolog.Logger) *ForecastService {
	return &ForecastService{
		log: log.With().Str("component", "forecast_service").Logger(),
	}
}

// Forecast maps three subject marks and an attendance percentage to a GPA
// estimate on the 0-10 scale plus its tier. Pure and deterministic; any
// numeric input produces a result, the function never fails.
func (s *ForecastService) Forecast(mark1, mark2, mark3, attendance float64) model.ForecastResult {
	score := (mark1*weightMark1 + mark2*weightMark2 + mark3*weightMark3 + attendance*weightAttendance) / 10

	tier, msg := classify(score)
	return model.ForecastResult{
		Score:      score,
		Normalized: score / 10,
		Tier:       tier,
		Message:    msg,
	}
}

func classify(score float64) (model.Tier, string) {
	switch {
	case score >= distinctionFloor:
		return model.TierDistinction, msgDistinction
	case score >= standardFloor:
		return model.TierStandard, msgStandard
	default:
		return model.TierIntervention, msgIntervention
	}
}
