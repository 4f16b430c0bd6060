// internal/workers/assessment/record-answer/validation.go
package recordanswer

import (
	"fmt"

	"github.com/bhavyasrideva22/hr-readiness-compass/internal/assessment"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/errors"
)

// validate checks the incoming answer against the stage's question bank.
// The session id itself is opaque; any non-empty value is accepted.
func validate(banks *assessment.Banks, input *Input) (assessment.Stage, *errors.StandardError) {
	if input.SessionID == "" {
		return "", errors.NewBusinessRuleError("Session id is required", "sessionId was empty")
	}

	stage, ok := assessment.ParseStage(input.Stage)
	if !ok || !stage.Scored() {
		return "", errors.NewStageUnknownError(input.Stage)
	}

	question, ok := banks.Find(stage, input.QuestionID)
	if !ok {
		return "", errors.NewQuestionNotFoundError(string(stage), input.QuestionID)
	}

	if !question.HasOption(input.Answer) {
		return "", errors.NewAnswerInvalidError(
			fmt.Sprintf("questionId: %s, answer: %q", input.QuestionID, input.Answer))
	}

	return stage, nil
}
