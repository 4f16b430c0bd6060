// internal/assessment/result_test.go
package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeResult_OverallScore(t *testing.T) {
	tests := []struct {
		name            string
		psychometric    int
		technical       int
		expectedOverall int
		expectedRec     Recommendation
	}{
		{"both perfect", 100, 100, 100, RecommendationYes},
		{"both zero", 0, 0, 0, RecommendationNo},
		{"weighted mix", 60, 50, 56, RecommendationMaybe}, // round(36+20)
		{"psychometric dominates", 100, 0, 60, RecommendationMaybe},
		{"technical alone", 0, 100, 40, RecommendationNo},
		{"rounding half up", 62, 50, 57, RecommendationMaybe}, // 37.2+20 = 57.2 -> 57
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeResult(tt.psychometric, tt.technical)

			assert.Equal(t, tt.expectedOverall, result.OverallScore)
			assert.Equal(t, tt.expectedRec, result.Recommendation)
			assert.Equal(t, tt.psychometric, result.PsychometricScore)
			assert.Equal(t, tt.technical, result.TechnicalScore)
		})
	}
}

func TestComputeResult_BandBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		overall  int
		expected Recommendation
	}{
		{"yes at 75 exactly", 75, RecommendationYes},
		{"maybe at 74", 74, RecommendationMaybe},
		{"maybe at 50 exactly", 50, RecommendationMaybe},
		{"no at 49", 49, RecommendationNo},
		{"yes at 100", 100, RecommendationYes},
		{"no at 0", 0, RecommendationNo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// equal inputs make overall == input, isolating the band rule
			result := ComputeResult(tt.overall, tt.overall)
			assert.Equal(t, tt.overall, result.OverallScore)
			assert.Equal(t, tt.expected, result.Recommendation)
		})
	}
}

func TestComputeResult_ConfidenceRanges(t *testing.T) {
	// Confidence is intentionally non-deterministic; only the band range is
	// guaranteed, so sample repeatedly and check bounds.
	tests := []struct {
		name     string
		psy      int
		tech     int
		min, max int
	}{
		{"yes band", 100, 100, 85, 95},
		{"maybe band", 60, 50, 60, 75},
		{"no band", 0, 0, 40, 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				result := ComputeResult(tt.psy, tt.tech)
				assert.GreaterOrEqual(t, result.Confidence, tt.min)
				assert.LessOrEqual(t, result.Confidence, tt.max)
			}
		})
	}
}

func TestComputeResult_Monotonic(t *testing.T) {
	// Raising either input score never lowers the overall score.
	for psy := 0; psy <= 100; psy += 10 {
		for tech := 0; tech <= 100; tech += 10 {
			base := ComputeResult(psy, tech).OverallScore
			if psy < 100 {
				assert.GreaterOrEqual(t, ComputeResult(psy+10, tech).OverallScore, base)
			}
			if tech < 100 {
				assert.GreaterOrEqual(t, ComputeResult(psy, tech+10).OverallScore, base)
			}
		}
	}
}

func TestComputeResult_EndToEnd(t *testing.T) {
	t.Run("all stages perfect", func(t *testing.T) {
		psy := ScorePsychometric(PsychometricBank(), answerAll(PsychometricBank(), "5"))
		tech := ScoreTechnical(TechnicalBank(), answerAllCorrect(TechnicalBank()))
		assert.Equal(t, 100, psy)
		assert.Equal(t, 100, tech)

		result := ComputeResult(psy, tech)
		assert.Equal(t, 100, result.OverallScore)
		assert.Equal(t, RecommendationYes, result.Recommendation)
		assert.GreaterOrEqual(t, result.Confidence, 85)
		assert.LessOrEqual(t, result.Confidence, 95)
	})

	t.Run("middling run", func(t *testing.T) {
		bank := PsychometricBank()
		psy := ScorePsychometric(bank, answerAll(bank, "3"))
		assert.Equal(t, 60, psy)

		tbank := TechnicalBank()
		answers := answerAllWrong(tbank)
		for _, q := range tbank[:3] {
			opt, _ := q.CorrectOption()
			answers.Record(q.ID, opt.Value)
		}
		tech := ScoreTechnical(tbank, answers)
		assert.Equal(t, 50, tech)

		result := ComputeResult(psy, tech)
		assert.Equal(t, 56, result.OverallScore)
		assert.Equal(t, RecommendationMaybe, result.Recommendation)
		assert.GreaterOrEqual(t, result.Confidence, 60)
		assert.LessOrEqual(t, result.Confidence, 75)
	})

	t.Run("nothing completed", func(t *testing.T) {
		result := ComputeResult(0, 0)
		assert.Equal(t, 0, result.OverallScore)
		assert.Equal(t, RecommendationNo, result.Recommendation)
		assert.GreaterOrEqual(t, result.Confidence, 40)
		assert.LessOrEqual(t, result.Confidence, 55)
	})
}
