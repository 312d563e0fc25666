package domain

import "strings"

// Confidence levels for a size recommendation.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// BodyMeasurements holds the measurements produced by the pose-estimation
// service, all in centimeters. Waist and hip values are front-width
// approximations, not circumferences.
type BodyMeasurements struct {
	ShouldersCM     float64 `json:"shoulders_cm"`
	WaistCM         float64 `json:"waist_cm"`
	HipsCM          float64 `json:"hips_cm"`
	WaistToHipRatio float64 `json:"waist_to_hip_ratio"`
	HeightCM        float64 `json:"height_cm"`
}

// Recommendation is a garment-size recommendation for one size chart.
type Recommendation struct {
	RecommendedSize string `json:"recommended_size"`
	Confidence      string `json:"confidence"`
	Reasoning       string `json:"reasoning"`
	AlternativeSize string `json:"alternative_size,omitempty"`
	FitNotes        string `json:"fit_notes,omitempty"`
}

// NormalizeConfidence coerces a confidence value to one of the three
// enumerated levels. Absent or unrecognized values become low.
func NormalizeConfidence(c string) string {
	switch strings.ToLower(strings.TrimSpace(c)) {
	case ConfidenceHigh:
		return ConfidenceHigh
	case ConfidenceMedium:
		return ConfidenceMedium
	case ConfidenceLow:
		return ConfidenceLow
	default:
		return ConfidenceLow
	}
}

// FallbackRecommendation returns the fixed recommendation used whenever the
// model cannot be called or its answer cannot be parsed. Size M covers the
// middle of most charts, so it is the safest blind default.
func FallbackRecommendation() Recommendation {
	return Recommendation{
		RecommendedSize: "M",
		Confidence:      ConfidenceLow,
		Reasoning:       "The size chart could not be processed automatically. M is a general-purpose starting point; please verify against the brand's own size chart.",
		AlternativeSize: "L",
		FitNotes:        "AI recommendation unavailable",
	}
}

// RecommendRequest is the payload for the recommend-size operation.
// Measurements is a pointer so a missing field can be told apart from a
// zero-valued one.
type RecommendRequest struct {
	Measurements *BodyMeasurements `json:"measurements"`
	SizeChart    SizeChart         `json:"sizeChart"`
}

// AnalyzeRequest is the payload for the combined analyze operation.
type AnalyzeRequest struct {
	URL          string            `json:"url"`
	Measurements *BodyMeasurements `json:"measurements"`
}

// AnalyzeResult combines an extraction result with the recommendation made
// from it. Recommendation is null when extraction produced no usable chart.
type AnalyzeResult struct {
	Success        bool             `json:"success"`
	ScrapeResult   ExtractionResult `json:"scrapeResult"`
	Recommendation *Recommendation  `json:"recommendation"`
	Error          string           `json:"error,omitempty"`
}
