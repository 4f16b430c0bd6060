// internal/assessment/question.go
package assessment

// Tag classifies a question within its stage. For the psychometric stage it
// is a category (interest, personality, cognitive, motivation); for the
// technical stage an area (aptitude, knowledge, tools); for the WISCAR stage
// one of the six readiness dimensions.
type Tag string

// WISCAR dimensions.
const (
	DimensionWill      Tag = "will"
	DimensionInterest  Tag = "interest"
	DimensionSkill     Tag = "skill"
	DimensionCognitive Tag = "cognitive"
	DimensionAbility   Tag = "ability"
	DimensionRealWorld Tag = "realworld"
)

// Option is one selectable answer for a question. Correct is only meaningful
// on technical-stage questions; Likert options carry their 1-5 agreement
// value in Value.
type Option struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Correct bool   `json:"isCorrect,omitempty"`
}

// Question is immutable once a bank is built.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Tag     Tag      `json:"tag"`
	Options []Option `json:"options"`
}

// HasOption reports whether value is one of the question's declared options.
func (q Question) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// CorrectOption returns the option flagged correct, if any. Questions without
// a correct option are valid; they simply can never score a match.
func (q Question) CorrectOption() (Option, bool) {
	for _, opt := range q.Options {
		if opt.Correct {
			return opt, true
		}
	}
	return Option{}, false
}

// DimensionLabels maps WISCAR dimension tags to their display names, used
// when rendering the readiness profile in reports.
var DimensionLabels = map[Tag]string{
	DimensionWill:      "Will & Determination",
	DimensionInterest:  "Interest & Passion",
	DimensionSkill:     "Current Skills",
	DimensionCognitive: "Cognitive Ability",
	DimensionAbility:   "Learning Ability",
	DimensionRealWorld: "Real-World Fit",
}
