// internal/workers/assessment/score-wiscar/handler_test.go
package scorewiscar

import (
	"context"
	"testing"
	"time"

	"github.com/bhavyasrideva22/hr-readiness-compass/internal/assessment"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/database"
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

func answerStage(t *testing.T, s *store.ScoreStore, sessionID, value string) {
	for _, q := range assessment.WISCARBank() {
		err := s.RecordAnswer(context.Background(), sessionID, assessment.StageWISCAR, q.ID, value)
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

func TestHandler_Execute_AllDimensions(t *testing.T) {
	handler, s := newHandler(t)
	answerStage(t, s, "session-1", "5")

	output, stdErr := handler.Execute(context.Background(), &Input{SessionID: "session-1"})

	assert.Nil(t, stdErr)
	assert.Len(t, output.WiscarScores, 6)
	for dim, score := range output.WiscarScores {
		assert.Equal(t, 100, score, "dimension %s", dim)
	}
	assert.Equal(t, 8, output.Answered)

	saved, ok, err := s.GetWISCARScores(context.Background(), "session-1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, output.WiscarScores, saved)
}

func TestHandler_Execute_MixedAnswers(t *testing.T) {
	handler, s := newHandler(t)
	ctx := context.Background()

	answerStage(t, s, "s", "3")
	// will has two questions; bump both
	assert.NoError(t, s.RecordAnswer(ctx, "s", assessment.StageWISCAR, "will_1", "5"))
	assert.NoError(t, s.RecordAnswer(ctx, "s", assessment.StageWISCAR, "will_2", "5"))

	output, stdErr := handler.Execute(ctx, &Input{SessionID: "s"})

	assert.Nil(t, stdErr)
	assert.Equal(t, 100, output.WiscarScores["will"])
	assert.Equal(t, 60, output.WiscarScores["interest"])
	assert.Equal(t, 60, output.WiscarScores["realworld"])
}

func TestHandler_Execute_NoAnswers(t *testing.T) {
	handler, s := newHandler(t)

	output, stdErr := handler.Execute(context.Background(), &Input{SessionID: "empty"})

	assert.Nil(t, stdErr)
	assert.Len(t, output.WiscarScores, 6)
	for dim, score := range output.WiscarScores {
		assert.Equal(t, 0, score, "dimension %s", dim)
	}
	assert.Equal(t, 0, output.Answered)

	// zeros are persisted too; the results stage reads them back
	saved, ok, err := s.GetWISCARScores(context.Background(), "empty")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, output.WiscarScores, saved)
}

func TestHandler_Execute_MissingSession(t *testing.T) {
	handler, _ := newHandler(t)

	output, stdErr := handler.Execute(context.Background(), &Input{})

	assert.Nil(t, output)
	assert.NotNil(t, stdErr)
	assert.False(t, stdErr.Retryable)
}

func TestHandler_Execute_InlineAnswers(t *testing.T) {
	handler, s := newHandler(t)

	inline := make(map[string]string)
	for _, q := range assessment.WISCARBank() {
		inline[q.ID] = "5"
	}

	output, stdErr := handler.Execute(context.Background(), &Input{SessionID: "inline", Answers: inline})

	assert.Nil(t, stdErr)
	for dim, score := range output.WiscarScores {
		assert.Equal(t, 100, score, "dimension %s", dim)
	}

	saved, ok, err := s.GetWISCARScores(context.Background(), "inline")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, output.WiscarScores, saved)
}
