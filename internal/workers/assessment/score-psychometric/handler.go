// internal/workers/assessment/score-psychometric/handler.go
package scorepsychometric

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bhavyasrideva22/hr-readiness-compass/internal/assessment"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/errors"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/logger"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/metrics"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/store"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "score-psychometric"
)

type Handler struct {
	config *Config
	store  *store.ScoreStore
	banks  *assessment.Banks
	logger logger.Logger
}

func NewHandler(config *Config, scoreStore *store.ScoreStore, banks *assessment.Banks, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		store:  scoreStore,
		banks:  banks,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, string(errors.ErrCodeParseError), fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, stdErr := h.execute(ctx, &input)
	if stdErr != nil {
		bpmnErr := errors.ConvertToBPMNError(stdErr)
		h.failJob(client, job, bpmnErr.Code, bpmnErr.Message)
		return
	}

	metrics.StagesScored.WithLabelValues(string(assessment.StagePsychometric)).Inc()
	h.completeJob(client, job, output)
}

// execute scores whatever answers exist for the stage. Unanswered questions
// count zero toward the total rather than blocking the flow.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, *errors.StandardError) {
	if input.SessionID == "" {
		return nil, errors.NewBusinessRuleError("Session id is required", "sessionId was empty")
	}

	answers := assessment.AnswerSet(input.Answers)
	if len(answers) == 0 {
		var err error
		answers, err = h.store.Answers(ctx, input.SessionID, assessment.StagePsychometric)
		if err != nil {
			return nil, errors.NewScoreStoreFailedError(err)
		}
	}

	bank := h.banks.Psychometric
	score := assessment.ScorePsychometric(bank, answers)

	if err := h.store.SavePsychometricScore(ctx, input.SessionID, score); err != nil {
		return nil, errors.NewScoreStoreFailedError(err)
	}

	h.logger.Info("psychometric stage scored", map[string]interface{}{
		"sessionId": input.SessionID,
		"score":     score,
		"answered":  answers.Answered(bank),
	})

	return &Output{
		PsychometricScore: score,
		Answered:          answers.Answered(bank),
	}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, *errors.StandardError) {
	return h.execute(ctx, input)
}
