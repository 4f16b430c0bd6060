// internal/workers/results/compute-recommendation/models.go
package computerecommendation

type Input struct {
	SessionID string `json:"sessionId"`
}

type Output struct {
	PsychometricScore int            `json:"psychometricScore"`
	TechnicalScore    int            `json:"technicalScore"`
	WiscarScores      map[string]int `json:"wiscarScores"`
	OverallScore      int            `json:"overallScore"`
	Recommendation    string         `json:"recommendation"`
	Confidence        int            `json:"confidence"`
}
