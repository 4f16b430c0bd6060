// internal/assessment/scoring.go
package assessment

import (
	"math"
	"strconv"
)

const likertMax = 5

// ScorePsychometric reduces a Likert answer set to an integer percentage.
// Every answered option contributes its pre-encoded 1-5 agreement value; the
// denominator is the maximum attainable sum across the whole bank. Missing or
// non-numeric answers contribute 0 to the numerator, so an incomplete set
// still yields a score rather than an error.
//
// Category tags are descriptive only and do not weight the result.
func ScorePsychometric(bank []Question, answers AnswerSet) int {
	if len(bank) == 0 {
		return 0
	}
	sum := 0
	for _, q := range bank {
		sum += likertValue(answers[q.ID])
	}
	return percent(sum, len(bank)*likertMax)
}

// ScoreTechnical counts exact matches against each question's option flagged
// correct and reduces the count to an integer percentage. A question without
// a correct option can never be counted correct; that is a valid bank state,
// not an error.
func ScoreTechnical(bank []Question, answers AnswerSet) int {
	if len(bank) == 0 {
		return 0
	}
	correct := 0
	for _, q := range bank {
		opt, ok := q.CorrectOption()
		if !ok {
			continue
		}
		if answers[q.ID] == opt.Value {
			correct++
		}
	}
	return percent(correct, len(bank))
}

// ScoreWISCAR groups Likert questions by dimension tag and scores each
// dimension independently. Only dimensions that actually appear in the bank
// show up in the result, so the per-dimension denominator is never zero.
// Dimensions never interact.
func ScoreWISCAR(bank []Question, answers AnswerSet) map[string]int {
	sums := make(map[Tag]int)
	counts := make(map[Tag]int)
	for _, q := range bank {
		sums[q.Tag] += likertValue(answers[q.ID])
		counts[q.Tag]++
	}

	scores := make(map[string]int, len(counts))
	for dim, n := range counts {
		scores[string(dim)] = percent(sums[dim], n*likertMax)
	}
	return scores
}

// likertValue decodes a recorded option value on the 1-5 agreement scale.
// Anything unparseable (including the empty string for an unanswered
// question) counts as 0.
func likertValue(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// percent scales num/den to [0,100], rounding half up.
func percent(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(math.Round(float64(num) / float64(den) * 100))
}
