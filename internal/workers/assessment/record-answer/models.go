// internal/workers/assessment/record-answer/models.go
package recordanswer

type Input struct {
	SessionID  string `json:"sessionId"`
	Stage      string `json:"stage"`
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

type Output struct {
	Recorded      bool   `json:"recorded"`
	Stage         string `json:"stage"`
	Answered      int    `json:"answered"`
	Total         int    `json:"total"`
	StageComplete bool   `json:"stageComplete"`
}
