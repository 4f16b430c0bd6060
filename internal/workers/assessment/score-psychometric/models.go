// internal/workers/assessment/score-psychometric/models.go
package scorepsychometric

type Input struct {
	SessionID string `json:"sessionId"`
	// Answers, when set, is scored directly instead of the session hash.
	Answers map[string]string `json:"answers,omitempty"`
}

type Output struct {
	PsychometricScore int `json:"psychometricScore"`
	Answered          int `json:"answered"`
}
