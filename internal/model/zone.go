package model

// Zone is the traffic-light performance bucket applied independently to each
// numeric field of a student profile. It is a presentation annotation, not a
// data transformation.
type Zone string

const (
	ZoneRed    Zone = "RED"
	ZoneOrange Zone = "ORANGE"
	ZoneYellow Zone = "YELLOW"
	ZoneGreen  Zone = "GREEN"
)

// ZoneOf buckets a numeric value. Each upper bound is inclusive.
func ZoneOf(v float64) Zone {
	switch {
	case v <= 45:
		return ZoneRed
	case v <= 60:
		return ZoneOrange
	case v <= 80:
		return ZoneYellow
	default:
		return ZoneGreen
	}
}
