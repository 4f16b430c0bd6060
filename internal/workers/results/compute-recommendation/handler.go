// internal/workers/results/compute-recommendation/handler.go
package computerecommendation

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
	TaskType = "compute-recommendation"
)

type Handler struct {
	config *Config
	store  *store.ScoreStore
	logger logger.Logger
}

func NewHandler(config *Config, scoreStore *store.ScoreStore, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		store:  scoreStore,
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

	metrics.RecommendationsComputed.WithLabelValues(output.Recommendation).Inc()
	h.completeJob(client, job, output)
}

// execute aggregates the stored stage scores into the final recommendation.
// A stage the user skipped simply contributes 0; the WISCAR dimensions are
// reported alongside without affecting the overall score.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, *errors.StandardError) {
	if input.SessionID == "" {
		return nil, errors.NewBusinessRuleError("Session id is required", "sessionId was empty")
	}

	psychometric, havePsy, err := h.store.GetPsychometricScore(ctx, input.SessionID)
	if err != nil {
		return nil, errors.NewScoreStoreFailedError(err)
	}
	technical, haveTech, err := h.store.GetTechnicalScore(ctx, input.SessionID)
	if err != nil {
		return nil, errors.NewScoreStoreFailedError(err)
	}
	wiscar, haveWiscar, err := h.store.GetWISCARScores(ctx, input.SessionID)
	if err != nil {
		return nil, errors.NewScoreStoreFailedError(err)
	}
	if !haveWiscar {
		wiscar = map[string]int{}
	}

	result := assessment.ComputeResult(psychometric, technical)

	h.logger.Info("recommendation computed", map[string]interface{}{
		"sessionId":       input.SessionID,
		"overallScore":    result.OverallScore,
		"recommendation":  result.Recommendation,
		"psychometricSet": havePsy,
		"technicalSet":    haveTech,
	})

	return &Output{
		PsychometricScore: result.PsychometricScore,
		TechnicalScore:    result.TechnicalScore,
		WiscarScores:      wiscar,
		OverallScore:      result.OverallScore,
		Recommendation:    string(result.Recommendation),
		Confidence:        result.Confidence,
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
