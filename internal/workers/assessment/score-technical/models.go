// internal/workers/assessment/score-technical/models.go
package scoretechnical

type Input struct {
	SessionID string `json:"sessionId"`
	// Answers, when set, is scored directly instead of the session hash.
	Answers map[string]string `json:"answers,omitempty"`
}

type Output struct {
	TechnicalScore int `json:"technicalScore"`
	Answered       int `json:"answered"`
}
