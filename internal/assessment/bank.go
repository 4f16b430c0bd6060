// internal/assessment/bank.go
package assessment

import (
	"encoding/json"
	"fmt"
	"os"
)

// likertOptions is the shared five-point agreement scale used by the
// psychometric and WISCAR stages.
func likertOptions() []Option {
	return []Option{
		{Value: "5", Label: "Strongly Agree"},
		{Value: "4", Label: "Agree"},
		{Value: "3", Label: "Neutral"},
		{Value: "2", Label: "Disagree"},
		{Value: "1", Label: "Strongly Disagree"},
	}
}

// PsychometricBank returns the built-in psychometric question set. Tags are
// the question categories; they do not currently weight the score.
func PsychometricBank() []Question {
	return []Question{
		{ID: "interest_1", Tag: "interest", Text: "I enjoy helping others navigate challenges at work.", Options: likertOptions()},
		{ID: "interest_2", Tag: "interest", Text: "I'm curious about how people decisions impact business results.", Options: likertOptions()},
		{ID: "personality_1", Tag: "personality", Text: "I tend to be compassionate and understanding with colleagues.", Options: likertOptions()},
		{ID: "personality_2", Tag: "personality", Text: "I pay attention to details and follow through on commitments.", Options: likertOptions()},
		{ID: "cognitive_1", Tag: "cognitive", Text: "I prefer to analyze data before making important decisions.", Options: likertOptions()},
		{ID: "cognitive_2", Tag: "cognitive", Text: "I work well in structured environments with clear processes.", Options: likertOptions()},
		{ID: "motivation_1", Tag: "motivation", Text: "I persist through challenges even when progress is slow.", Options: likertOptions()},
		{ID: "motivation_2", Tag: "motivation", Text: "I'm motivated by helping others grow and develop in their careers.", Options: likertOptions()},
	}
}

// TechnicalBank returns the built-in technical/aptitude question set. Exactly
// one option per question is flagged correct.
func TechnicalBank() []Question {
	return []Question{
		{
			ID: "aptitude_1", Tag: "aptitude",
			Text: "A company has 100 employees. If 15% leave in Q1 and 10 new hires join, what's the Q1 attrition rate?",
			Options: []Option{
				{Value: "a", Label: "10%"},
				{Value: "b", Label: "15%", Correct: true},
				{Value: "c", Label: "25%"},
				{Value: "d", Label: "5%"},
			},
		},
		{
			ID: "knowledge_1", Tag: "knowledge",
			Text: "What is a competency model in HR?",
			Options: []Option{
				{Value: "a", Label: "A pay structure framework"},
				{Value: "b", Label: "A framework defining skills, behaviors, and knowledge needed for success", Correct: true},
				{Value: "c", Label: "An employee scheduling tool"},
				{Value: "d", Label: "A performance review template"},
			},
		},
		{
			ID: "knowledge_2", Tag: "knowledge",
			Text: "What does EEO stand for in HR compliance?",
			Options: []Option{
				{Value: "a", Label: "Employee Engagement Optimization"},
				{Value: "b", Label: "Equal Employment Opportunity", Correct: true},
				{Value: "c", Label: "Executive Employment Operations"},
				{Value: "d", Label: "Employee Exit Overview"},
			},
		},
		{
			ID: "tools_1", Tag: "tools",
			Text: "Which metric would you use to measure recruitment effectiveness?",
			Options: []Option{
				{Value: "a", Label: "Employee satisfaction score"},
				{Value: "b", Label: "Cost-per-hire", Correct: true},
				{Value: "c", Label: "Training completion rate"},
				{Value: "d", Label: "Overtime hours"},
			},
		},
		{
			ID: "aptitude_2", Tag: "aptitude",
			Text: "If you need to analyze employee data trends, which Excel function would be most useful?",
			Options: []Option{
				{Value: "a", Label: "CONCATENATE"},
				{Value: "b", Label: "PIVOT TABLES", Correct: true},
				{Value: "c", Label: "UPPER"},
				{Value: "d", Label: "ROUND"},
			},
		},
		{
			ID: "knowledge_3", Tag: "knowledge",
			Text: "What is the primary purpose of an HRIS (Human Resource Information System)?",
			Options: []Option{
				{Value: "a", Label: "To conduct interviews"},
				{Value: "b", Label: "To centralize and manage employee data and HR processes", Correct: true},
				{Value: "c", Label: "To design office layouts"},
				{Value: "d", Label: "To calculate taxes"},
			},
		},
	}
}

// WISCARBank returns the built-in WISCAR question set. Tags are the six
// readiness dimensions; dimension membership is derived from these questions,
// never declared separately.
func WISCARBank() []Question {
	return []Question{
		{ID: "will_1", Tag: DimensionWill, Text: "I consistently set goals and work towards them, even when facing obstacles.", Options: likertOptions()},
		{ID: "will_2", Tag: DimensionWill, Text: "I maintain consistent effort over long periods to achieve important objectives.", Options: likertOptions()},
		{ID: "interest_1", Tag: DimensionInterest, Text: "I find myself genuinely curious about workplace dynamics and employee behavior.", Options: likertOptions()},
		{ID: "skill_1", Tag: DimensionSkill, Text: "I have experience working with spreadsheets and analyzing data trends.", Options: likertOptions()},
		{ID: "cognitive_1", Tag: DimensionCognitive, Text: "I can quickly identify patterns and relationships in complex information.", Options: likertOptions()},
		{ID: "ability_1", Tag: DimensionAbility, Text: "I actively seek feedback and use it to improve my performance.", Options: likertOptions()},
		{ID: "realworld_1", Tag: DimensionRealWorld, Text: "I can see myself thriving in a professional HR environment with diverse stakeholders.", Options: likertOptions()},
		{ID: "realworld_2", Tag: DimensionRealWorld, Text: "I feel confident about handling confidential employee information responsibly.", Options: likertOptions()},
	}
}

// Banks bundles one bank per scored stage.
type Banks struct {
	Psychometric []Question `json:"psychometric"`
	Technical    []Question `json:"technical"`
	WISCAR       []Question `json:"wiscar"`
}

// DefaultBanks returns the built-in question sets.
func DefaultBanks() *Banks {
	return &Banks{
		Psychometric: PsychometricBank(),
		Technical:    TechnicalBank(),
		WISCAR:       WISCARBank(),
	}
}

// ForStage returns the bank backing a scored stage, or nil for the
// introduction and results stages.
func (b *Banks) ForStage(stage Stage) []Question {
	switch stage {
	case StagePsychometric:
		return b.Psychometric
	case StageTechnical:
		return b.Technical
	case StageWISCAR:
		return b.WISCAR
	default:
		return nil
	}
}

// Find looks a question up by id within a stage's bank.
func (b *Banks) Find(stage Stage, questionID string) (Question, bool) {
	for _, q := range b.ForStage(stage) {
		if q.ID == questionID {
			return q, true
		}
	}
	return Question{}, false
}

// LoadBanks reads a question-bank file, for deployments that override the
// built-in sets. Callers are expected to validate the file with pkg/bankfile
// before trusting it.
func LoadBanks(path string) (*Banks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	var banks Banks
	if err := json.Unmarshal(data, &banks); err != nil {
		return nil, fmt.Errorf("parse bank file: %w", err)
	}
	return &banks, nil
}
