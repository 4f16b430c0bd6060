// internal/assessment/result.go
package assessment

import (
	"math"
	"math/rand"
)

// Recommendation is the three-way outcome of the assessment.
type Recommendation string

const (
	RecommendationYes   Recommendation = "Yes"
	RecommendationMaybe Recommendation = "Maybe"
	RecommendationNo    Recommendation = "No"
)

// Weighted overall score: psychometric 60%, technical 40%. The WISCAR
// dimension scores are reported alongside but not folded into the total.
const (
	psychometricWeight = 0.6
	technicalWeight    = 0.4
)

// Recommendation band lower bounds, inclusive. The three bands cover all of
// [0,100] with no gaps or overlaps.
const (
	yesThreshold   = 75
	maybeThreshold = 50
)

// Result is the final aggregate. Confidence is the one intentionally
// non-deterministic value in the system: it is drawn fresh from a
// band-specific range on every computation and should only ever be checked
// against that range, never for an exact value.
type Result struct {
	PsychometricScore int            `json:"psychometricScore"`
	TechnicalScore    int            `json:"technicalScore"`
	OverallScore      int            `json:"overallScore"`
	Recommendation    Recommendation `json:"recommendation"`
	Confidence        int            `json:"confidence"`
}

// ComputeResult combines the two stage scores into the overall score, maps
// it to a recommendation band, and draws a confidence value for that band.
// Missing stage scores are the caller's concern; passing 0 for a stage the
// user never completed is the expected degradation, not an error.
func ComputeResult(psychometricScore, technicalScore int) Result {
	overall := int(math.Round(
		float64(psychometricScore)*psychometricWeight +
			float64(technicalScore)*technicalWeight))

	rec := classify(overall)

	return Result{
		PsychometricScore: psychometricScore,
		TechnicalScore:    technicalScore,
		OverallScore:      overall,
		Recommendation:    rec,
		Confidence:        drawConfidence(rec),
	}
}

func classify(overall int) Recommendation {
	switch {
	case overall >= yesThreshold:
		return RecommendationYes
	case overall >= maybeThreshold:
		return RecommendationMaybe
	default:
		return RecommendationNo
	}
}

// drawConfidence picks an integer from the band's range: Yes [85,95],
// Maybe [60,75], No [40,55].
func drawConfidence(rec Recommendation) int {
	var base, spread float64
	switch rec {
	case RecommendationYes:
		base, spread = 85, 10
	case RecommendationMaybe:
		base, spread = 60, 15
	default:
		base, spread = 40, 15
	}
	return int(math.Round(base + rand.Float64()*spread))
}
