// internal/workers/assessment/score-wiscar/models.go
package scorewiscar

type Input struct {
	SessionID string `json:"sessionId"`
	// Answers, when set, is scored directly instead of the session hash.
	Answers map[string]string `json:"answers,omitempty"`
}

type Output struct {
	WiscarScores map[string]int `json:"wiscarScores"`
	Answered     int            `json:"answered"`
}
