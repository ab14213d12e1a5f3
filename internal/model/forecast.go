package model

// Tier classifies a forecasted GPA into a qualitative bucket.
type Tier string

const (
	TierDistinction  Tier = "DISTINCTION"
	TierStandard     Tier = "STANDARD"
	TierIntervention Tier = "INTERVENTION"
)

// ForecastRequest is the payload for the GPA forecast endpoint. Marks and
// attendance are bounded to the 0-100 slider range of the input form;
// omitted values bind to 0 (slider at its minimum).
type ForecastRequest struct {
	Department Department `json:"department" binding:"required,department"`
	Mark1      float64    `json:"mark_1" binding:"min=0,max=100"`
	Mark2      float64    `json:"mark_2" binding:"min=0,max=100"`
	Mark3      float64    `json:"mark_3" binding:"min=0,max=100"`
	Attendance float64    `json:"attendance" binding:"min=0,max=100"`
}

// ForecastResult is the derived GPA estimate. Recomputed per request,
// never persisted.
type ForecastResult struct {
	Score      float64 `json:"score"`
	Normalized float64 `json:"normalized"`
	Tier       Tier    `json:"tier"`
	Message    string  `json:"message"`
}
