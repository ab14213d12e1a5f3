package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Dataset ───────────────────────────────────────────────────────
	ErrDatasetMissing ErrCode = "DATASET_MISSING"
	ErrDatasetInvalid ErrCode = "DATASET_INVALID"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrUnknownDepartment ErrCode = "UNKNOWN_DEPARTMENT"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrDatasetMissing:
		return "Data file not found! Please run the generate-dataset tool to create 'university_core_data.csv' first."
	case ErrDatasetInvalid:
		return "Data file could not be parsed. Please regenerate 'university_core_data.csv'."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrNotFound:
		return "No record found with that Register ID."
	case ErrUnknownDepartment:
		return "Unknown department code."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
