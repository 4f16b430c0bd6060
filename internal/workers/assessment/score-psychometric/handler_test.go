// internal/workers/assessment/score-psychometric/handler_test.go
package scorepsychometric

import (
	"context"
	"testing"
	"time"

	"github.com/bhavyasrideva22/hr-readiness-compass/internal/assessment"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/database"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/errors"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/logger"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func setupStore(t *testing.T) *store.ScoreStore {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	return store.NewScoreStore(client, time.Hour)
}

func newHandler(t *testing.T) (*Handler, *store.ScoreStore) {
	s := setupStore(t)
	return NewHandler(LoadConfig(), s, assessment.DefaultBanks(), newTestLogger(t)), s
}

func answerStage(t *testing.T, s *store.ScoreStore, sessionID string, value string) {
	for _, q := range assessment.PsychometricBank() {
		err := s.RecordAnswer(context.Background(), sessionID, assessment.StagePsychometric, q.ID, value)
		assert.NoError(t, err)
	}
}

type testLogger struct {
	t *testing.T
}

func (tl *testLogger) Debug(msg string, fields map[string]interface{}) {
	tl.t.Logf("DEBUG: %s %v", msg, fields)
}

func (tl *testLogger) Info(msg string, fields map[string]interface{}) {
	tl.t.Logf("INFO: %s %v", msg, fields)
}

func (tl *testLogger) Warn(msg string, fields map[string]interface{}) {
	tl.t.Logf("WARN: %s %v", msg, fields)
}

func (tl *testLogger) Error(msg string, fields map[string]interface{}) {
	tl.t.Logf("ERROR: %s %v", msg, fields)
}

func (tl *testLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return tl
}

func (tl *testLogger) WithError(err error) logger.Logger {
	return tl.WithFields(map[string]interface{}{"error": err})
}

func (tl *testLogger) With(fields map[string]interface{}) logger.Logger {
	return tl
}

func newTestLogger(t *testing.T) logger.Logger {
	return &testLogger{t: t}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_FullStage(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{"all strongly agree", "5", 100},
		{"all agree", "4", 80},
		{"all neutral", "3", 60},
		{"all strongly disagree", "1", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, s := newHandler(t)
			answerStage(t, s, "session-1", tt.value)

			output, stdErr := handler.Execute(context.Background(), &Input{SessionID: "session-1"})

			assert.Nil(t, stdErr)
			assert.Equal(t, tt.expected, output.PsychometricScore)
			assert.Equal(t, 8, output.Answered)

			// score is persisted for the results stage
			saved, ok, err := s.GetPsychometricScore(context.Background(), "session-1")
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, saved)
		})
	}
}

func TestHandler_Execute_PartialAnswers(t *testing.T) {
	handler, s := newHandler(t)
	ctx := context.Background()

	// 2 of 8 answered with the top value: 10 of 40 points
	assert.NoError(t, s.RecordAnswer(ctx, "s", assessment.StagePsychometric, "interest_1", "5"))
	assert.NoError(t, s.RecordAnswer(ctx, "s", assessment.StagePsychometric, "interest_2", "5"))

	output, stdErr := handler.Execute(ctx, &Input{SessionID: "s"})

	assert.Nil(t, stdErr)
	assert.Equal(t, 25, output.PsychometricScore)
	assert.Equal(t, 2, output.Answered)
}

func TestHandler_Execute_NoAnswers(t *testing.T) {
	handler, s := newHandler(t)

	output, stdErr := handler.Execute(context.Background(), &Input{SessionID: "empty"})

	assert.Nil(t, stdErr)
	assert.Equal(t, 0, output.PsychometricScore)
	assert.Equal(t, 0, output.Answered)

	saved, ok, err := s.GetPsychometricScore(context.Background(), "empty")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, saved)
}

func TestHandler_Execute_RescoreOverwrites(t *testing.T) {
	handler, s := newHandler(t)
	ctx := context.Background()

	answerStage(t, s, "s", "3")
	_, stdErr := handler.Execute(ctx, &Input{SessionID: "s"})
	assert.Nil(t, stdErr)

	// user went back and changed every answer
	answerStage(t, s, "s", "5")
	output, stdErr := handler.Execute(ctx, &Input{SessionID: "s"})
	assert.Nil(t, stdErr)
	assert.Equal(t, 100, output.PsychometricScore)

	saved, _, _ := s.GetPsychometricScore(ctx, "s")
	assert.Equal(t, 100, saved)
}

func TestHandler_Execute_MissingSession(t *testing.T) {
	handler, _ := newHandler(t)

	output, stdErr := handler.Execute(context.Background(), &Input{})

	assert.Nil(t, output)
	assert.NotNil(t, stdErr)
	assert.Equal(t, errors.ErrorCode("BUSINESS_RULE_VIOLATION"), stdErr.Code)
}

func TestHandler_Execute_InlineAnswers(t *testing.T) {
	handler, s := newHandler(t)

	inline := make(map[string]string)
	for _, q := range assessment.PsychometricBank() {
		inline[q.ID] = "4"
	}

	output, stdErr := handler.Execute(context.Background(), &Input{SessionID: "inline", Answers: inline})

	assert.Nil(t, stdErr)
	assert.Equal(t, 80, output.PsychometricScore)
	assert.Equal(t, 8, output.Answered)

	// inline scoring still persists for the results stage
	saved, ok, err := s.GetPsychometricScore(context.Background(), "inline")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 80, saved)
}
