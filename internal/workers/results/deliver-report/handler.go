// internal/workers/results/deliver-report/handler.go
package deliverreport

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/errors"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/logger"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "deliver-report"

	ChannelEmail = "email"
	ChannelLog   = "log"
)

// EmailSender is satisfied by aws.SESClient. Tests substitute a fake.
type EmailSender interface {
	SendText(ctx context.Context, from, to, subject, body string) (string, error)
}

type Handler struct {
	config *Config
	sender EmailSender
	logger logger.Logger
}

// NewHandler builds the delivery handler. A nil sender disables the email
// channel and every report falls back to log delivery.
func NewHandler(config *Config, sender EmailSender, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		sender: sender,
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

	metrics.ReportsDelivered.WithLabelValues(output.Channel).Inc()
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, *errors.StandardError) {
	if input.SessionID == "" {
		return nil, errors.NewBusinessRuleError("Session id is required", "sessionId was empty")
	}

	reportID := uuid.New().String()
	body := h.renderReport(input, reportID)

	if h.sender != nil && input.Email != "" {
		subject := strings.TrimSpace(h.config.SubjectPrefix + " Your readiness report")
		messageID, err := h.sender.SendText(ctx, h.config.FromEmail, input.Email, subject, body)
		if err != nil {
			return nil, errors.NewReportSendFailedError(err)
		}
		h.logger.Info("report emailed", map[string]interface{}{
			"sessionId": input.SessionID,
			"reportId":  reportID,
			"messageId": messageID,
		})
		return &Output{
			ReportID:  reportID,
			Delivered: true,
			Channel:   ChannelEmail,
			MessageID: messageID,
		}, nil
	}

	// No address or no sender configured: emit the report through the log
	// so the session still ends with a delivered result.
	h.logger.Info("report delivered via log", map[string]interface{}{
		"sessionId": input.SessionID,
		"reportId":  reportID,
		"report":    body,
	})
	return &Output{
		ReportID:  reportID,
		Delivered: true,
		Channel:   ChannelLog,
	}, nil
}

func (h *Handler) renderReport(input *Input, reportID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Report %s for session %s\n\n", reportID, input.SessionID)
	fmt.Fprintf(&b, "Recommendation: %s (confidence %d%%)\n", input.Recommendation, input.Confidence)
	fmt.Fprintf(&b, "Overall score: %d\n", input.OverallScore)
	fmt.Fprintf(&b, "Psychometric fit: %d\n", input.PsychometricScore)
	fmt.Fprintf(&b, "Technical readiness: %d\n", input.TechnicalScore)

	if len(input.WiscarScores) > 0 {
		b.WriteString("\nWISCAR dimensions:\n")
		dims := make([]string, 0, len(input.WiscarScores))
		for dim := range input.WiscarScores {
			dims = append(dims, dim)
		}
		sort.Strings(dims)
		for _, dim := range dims {
			fmt.Fprintf(&b, "  %s: %d\n", dim, input.WiscarScores[dim])
		}
	}
	return b.String()
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
