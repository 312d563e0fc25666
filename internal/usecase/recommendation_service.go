package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/shofit/backend/internal/domain"
)

// widthToCircumference converts a front-width measurement to an estimated
// body circumference. The 2.5 factor is an approximation carried over from
// the measurement pipeline; it has no anatomical derivation and is labeled
// as an estimate inside the prompt.
const widthToCircumference = 2.5

// RecommendationService produces a garment-size recommendation from body
// measurements and an extracted size chart.
type RecommendationService struct {
	model domain.ModelClient
}

// NewRecommendationService creates a recommendation service.
func NewRecommendationService(model domain.ModelClient) *RecommendationService {
	return &RecommendationService{model: model}
}

// Recommend asks the model for a size recommendation. Callers must pass a
// chart with at least one row; empty charts are rejected before this layer.
// Any failure, from a missing API key to an unparseable answer, yields the
// fixed fallback recommendation instead of an error. One attempt, no retry.
func (s *RecommendationService) Recommend(ctx context.Context, m domain.BodyMeasurements, chart domain.SizeChart) domain.Recommendation {
	prompt, err := buildRecommendationPrompt(m, chart)
	if err != nil {
		log.Printf("[RECOMMEND] prompt build failed: %v", err)
		return domain.FallbackRecommendation()
	}

	raw, err := s.model.Complete(ctx, prompt)
	if err != nil {
		log.Printf("[RECOMMEND] model call failed: %v", err)
		return domain.FallbackRecommendation()
	}

	rec, ok := parseRecommendation(raw)
	if !ok {
		log.Printf("[RECOMMEND] model returned no parseable recommendation")
		return domain.FallbackRecommendation()
	}
	return rec
}

// buildRecommendationPrompt embeds the measurements, the derived
// circumference estimates, and the full chart as indented JSON. The chart
// goes in verbatim and uncapped so no row is hidden from the model.
func buildRecommendationPrompt(m domain.BodyMeasurements, chart domain.SizeChart) (string, error) {
	chartJSON, err := json.MarshalIndent(chart, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal size chart: %w", err)
	}

	return fmt.Sprintf(`You are a clothing size advisor. Recommend the best garment size for this person using the size chart below.

User's body measurements:
- Shoulder width: %.1f cm
- Waist width: %.1f cm (estimated circumference: %.1f cm)
- Hip width: %.1f cm (estimated circumference: %.1f cm)
- Waist-to-hip ratio: %.2f
- Height: %.1f cm

Circumference estimates use a width x 2.5 approximation and may be off for some body shapes.

Size chart:
%s

Guidelines:
- For tops, prioritize shoulder and chest measurements
- For bottoms, prioritize waist and hip measurements
- If the user falls between two sizes, prefer the larger size

Output ONLY valid JSON with this exact structure (no markdown, no explanation):
{"recommended_size": "M", "confidence": "high", "reasoning": "why this size fits", "alternative_size": "L", "fit_notes": "how the garment will fit"}

confidence must be one of: "high", "medium", "low".`,
		m.ShouldersCM,
		m.WaistCM, m.WaistCM*widthToCircumference,
		m.HipsCM, m.HipsCM*widthToCircumference,
		m.WaistToHipRatio,
		m.HeightCM,
		chartJSON,
	), nil
}

// parseRecommendation decodes the model's reply. A reply with no JSON
// object, a failed decode, or a blank recommended_size counts as a parse
// failure; confidence is coerced into the three-level enum either way.
func parseRecommendation(raw string) (domain.Recommendation, bool) {
	span := extractJSONObject(raw)
	if span == "" {
		return domain.Recommendation{}, false
	}

	var rec domain.Recommendation
	if err := json.Unmarshal([]byte(span), &rec); err != nil {
		return domain.Recommendation{}, false
	}

	rec.RecommendedSize = strings.TrimSpace(rec.RecommendedSize)
	if rec.RecommendedSize == "" {
		return domain.Recommendation{}, false
	}
	rec.Confidence = domain.NormalizeConfidence(rec.Confidence)
	return rec, true
}
