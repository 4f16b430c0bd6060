// internal/workers/results/deliver-report/models.go
package deliverreport

type Input struct {
	SessionID         string         `json:"sessionId"`
	Email             string         `json:"email,omitempty"`
	PsychometricScore int            `json:"psychometricScore"`
	TechnicalScore    int            `json:"technicalScore"`
	WiscarScores      map[string]int `json:"wiscarScores"`
	OverallScore      int            `json:"overallScore"`
	Recommendation    string         `json:"recommendation"`
	Confidence        int            `json:"confidence"`
}

type Output struct {
	ReportID  string `json:"reportId"`
	Delivered bool   `json:"delivered"`
	Channel   string `json:"channel"`
	MessageID string `json:"messageId,omitempty"`
}
