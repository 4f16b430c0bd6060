// internal/assessment/scoring_test.go
package assessment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func answerAll(bank []Question, value string) AnswerSet {
	answers := AnswerSet{}
	for _, q := range bank {
		answers.Record(q.ID, value)
	}
	return answers
}

func answerAllCorrect(bank []Question) AnswerSet {
	answers := AnswerSet{}
	for _, q := range bank {
		if opt, ok := q.CorrectOption(); ok {
			answers.Record(q.ID, opt.Value)
		}
	}
	return answers
}

func answerAllWrong(bank []Question) AnswerSet {
	answers := AnswerSet{}
	for _, q := range bank {
		correct, _ := q.CorrectOption()
		for _, opt := range q.Options {
			if opt.Value != correct.Value {
				answers.Record(q.ID, opt.Value)
				break
			}
		}
	}
	return answers
}

// ==========================
// Psychometric Scoring
// ==========================

func TestScorePsychometric(t *testing.T) {
	bank := PsychometricBank()

	tests := []struct {
		name     string
		answers  AnswerSet
		expected int
	}{
		{"all strongly agree", answerAll(bank, "5"), 100},
		{"all neutral", answerAll(bank, "3"), 60},
		{"all agree", answerAll(bank, "4"), 80},
		{"all strongly disagree", answerAll(bank, "1"), 20},
		{"empty answer set", AnswerSet{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScorePsychometric(bank, tt.answers))
		})
	}
}

func TestScorePsychometric_UniformValues(t *testing.T) {
	// score = round(100 * sum / (N*5)) for every uniform Likert value
	bank := PsychometricBank()
	for v := 1; v <= 5; v++ {
		answers := answerAll(bank, fmt.Sprintf("%d", v))
		score := ScorePsychometric(bank, answers)
		assert.Equal(t, v*20, score)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestScorePsychometric_Rounding(t *testing.T) {
	// 7 questions answered "5" plus one "1": sum 36 of 40 -> 90
	bank := PsychometricBank()
	answers := answerAll(bank, "5")
	answers.Record(bank[0].ID, "1")
	assert.Equal(t, 90, ScorePsychometric(bank, answers))

	// sum 29 of 40 -> 72.5 rounds up to 73
	answers = answerAll(bank, "4")
	answers.Record(bank[0].ID, "1")
	assert.Equal(t, 73, ScorePsychometric(bank, answers))
}

func TestScorePsychometric_IncompleteSet(t *testing.T) {
	// Missing answers contribute 0 to the numerator, never an error.
	bank := PsychometricBank()
	answers := AnswerSet{}
	answers.Record(bank[0].ID, "5")
	answers.Record(bank[1].ID, "5")

	assert.Equal(t, 25, ScorePsychometric(bank, answers)) // 10 of 40
	assert.False(t, answers.Complete(bank))
}

func TestScorePsychometric_GarbageValues(t *testing.T) {
	bank := PsychometricBank()
	answers := answerAll(bank, "not-a-number")
	assert.Equal(t, 0, ScorePsychometric(bank, answers))
}

// ==========================
// Technical Scoring
// ==========================

func TestScoreTechnical(t *testing.T) {
	bank := TechnicalBank()

	tests := []struct {
		name     string
		answers  AnswerSet
		expected int
	}{
		{"all correct", answerAllCorrect(bank), 100},
		{"all wrong", answerAllWrong(bank), 0},
		{"no answers", AnswerSet{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreTechnical(bank, tt.answers))
		})
	}
}

func TestScoreTechnical_PartialCorrect(t *testing.T) {
	bank := TechnicalBank()

	// 3 of 6 correct -> 50
	answers := answerAllWrong(bank)
	for _, q := range bank[:3] {
		opt, _ := q.CorrectOption()
		answers.Record(q.ID, opt.Value)
	}
	assert.Equal(t, 50, ScoreTechnical(bank, answers))

	// 1 of 6 correct -> round(16.67) = 17
	answers = answerAllWrong(bank)
	opt, _ := bank[0].CorrectOption()
	answers.Record(bank[0].ID, opt.Value)
	assert.Equal(t, 17, ScoreTechnical(bank, answers))
}

func TestScoreTechnical_NoCorrectOptionDeclared(t *testing.T) {
	// A question without a flagged correct option can never score; valid state.
	bank := []Question{
		{
			ID: "q1", Tag: "knowledge",
			Options: []Option{{Value: "a", Label: "A"}, {Value: "b", Label: "B"}},
		},
		{
			ID: "q2", Tag: "knowledge",
			Options: []Option{{Value: "a", Label: "A", Correct: true}, {Value: "b", Label: "B"}},
		},
	}
	answers := AnswerSet{"q1": "a", "q2": "a"}
	assert.Equal(t, 50, ScoreTechnical(bank, answers))
}

// ==========================
// WISCAR Scoring
// ==========================

func TestScoreWISCAR(t *testing.T) {
	bank := WISCARBank()

	scores := ScoreWISCAR(bank, answerAll(bank, "5"))
	assert.Len(t, scores, 6)
	for dim, score := range scores {
		assert.Equal(t, 100, score, "dimension %s", dim)
	}

	scores = ScoreWISCAR(bank, answerAll(bank, "3"))
	for _, score := range scores {
		assert.Equal(t, 60, score)
	}
}

func TestScoreWISCAR_DimensionsIndependent(t *testing.T) {
	// "will" has 2 questions answered 4 and 5 -> round(100*9/10) = 90; the
	// other dimensions stay untouched by it.
	bank := WISCARBank()
	answers := answerAll(bank, "3")
	answers.Record("will_1", "4")
	answers.Record("will_2", "5")

	scores := ScoreWISCAR(bank, answers)
	assert.Equal(t, 90, scores["will"])
	assert.Equal(t, 60, scores["interest"])
	assert.Equal(t, 60, scores["skill"])
	assert.Equal(t, 60, scores["cognitive"])
	assert.Equal(t, 60, scores["ability"])
	assert.Equal(t, 60, scores["realworld"])
}

func TestScoreWISCAR_OnlyPresentDimensions(t *testing.T) {
	bank := []Question{
		{ID: "will_1", Tag: DimensionWill, Options: likertOptions()},
		{ID: "skill_1", Tag: DimensionSkill, Options: likertOptions()},
	}
	scores := ScoreWISCAR(bank, AnswerSet{"will_1": "5", "skill_1": "1"})

	assert.Len(t, scores, 2)
	assert.Equal(t, 100, scores["will"])
	assert.Equal(t, 20, scores["skill"])
	_, hasCognitive := scores["cognitive"]
	assert.False(t, hasCognitive)
}

func TestScoreWISCAR_IncompleteSet(t *testing.T) {
	bank := WISCARBank()
	scores := ScoreWISCAR(bank, AnswerSet{"will_1": "5"})

	assert.Equal(t, 50, scores["will"]) // 5 of 10
	assert.Equal(t, 0, scores["interest"])
	assert.Len(t, scores, 6)
}

// ==========================
// Benchmark Tests
// ==========================

func BenchmarkScorePsychometric(b *testing.B) {
	bank := PsychometricBank()
	answers := answerAll(bank, "4")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScorePsychometric(bank, answers)
	}
}

func BenchmarkScoreWISCAR(b *testing.B) {
	bank := WISCARBank()
	answers := answerAll(bank, "4")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScoreWISCAR(bank, answers)
	}
}
