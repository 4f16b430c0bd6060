// internal/store/scorestore.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/bhavyasrideva22/hr-readiness-compass/internal/assessment"
	"github.com/bhavyasrideva22/hr-readiness-compass/internal/common/database"

	"github.com/redis/go-redis/v9"
)

// ScoreStore holds per-session assessment state: recorded answers and the
// stage scores produced as the session moves through the flow. All keys are
// namespaced by session id, so concurrent sessions never see each other's
// data. Getters distinguish "not written yet" from real failures via the ok
// return.
type ScoreStore struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// NewScoreStore wraps a Redis client. A zero ttl means session keys never
// expire.
func NewScoreStore(redis *database.RedisClient, ttl time.Duration) *ScoreStore {
	return &ScoreStore{redis: redis, ttl: ttl}
}

func scoreKey(sessionID, name string) string {
	return fmt.Sprintf("assessment:%s:%s", sessionID, name)
}

func answersKey(sessionID string, stage assessment.Stage) string {
	return fmt.Sprintf("assessment:%s:%s:answers", sessionID, stage)
}

// SavePsychometricScore writes the psychometric stage score. Re-scoring after
// a backward navigation overwrites the previous value.
func (s *ScoreStore) SavePsychometricScore(ctx context.Context, sessionID string, score int) error {
	return s.redis.Set(ctx, scoreKey(sessionID, "psychometricScore"), strconv.Itoa(score), s.ttl)
}

// GetPsychometricScore reads the psychometric stage score. ok is false when
// the stage has not been scored yet.
func (s *ScoreStore) GetPsychometricScore(ctx context.Context, sessionID string) (int, bool, error) {
	return s.getIntScore(ctx, scoreKey(sessionID, "psychometricScore"))
}

// SaveTechnicalScore writes the technical stage score.
func (s *ScoreStore) SaveTechnicalScore(ctx context.Context, sessionID string, score int) error {
	return s.redis.Set(ctx, scoreKey(sessionID, "technicalScore"), strconv.Itoa(score), s.ttl)
}

// GetTechnicalScore reads the technical stage score.
func (s *ScoreStore) GetTechnicalScore(ctx context.Context, sessionID string) (int, bool, error) {
	return s.getIntScore(ctx, scoreKey(sessionID, "technicalScore"))
}

// SaveWISCARScores writes the per-dimension WISCAR scores as a JSON object.
func (s *ScoreStore) SaveWISCARScores(ctx context.Context, sessionID string, scores map[string]int) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("marshal wiscar scores: %w", err)
	}
	return s.redis.Set(ctx, scoreKey(sessionID, "wiscarScores"), data, s.ttl)
}

// GetWISCARScores reads the per-dimension WISCAR scores.
func (s *ScoreStore) GetWISCARScores(ctx context.Context, sessionID string) (map[string]int, bool, error) {
	raw, err := s.redis.Get(ctx, scoreKey(sessionID, "wiscarScores"))
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var scores map[string]int
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		return nil, false, fmt.Errorf("unmarshal wiscar scores: %w", err)
	}
	return scores, true, nil
}

func (s *ScoreStore) getIntScore(ctx context.Context, key string) (int, bool, error) {
	raw, err := s.redis.Get(ctx, key)
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("parse score %q: %w", raw, err)
	}
	return score, true, nil
}

// RecordAnswer stores one answer in the stage's answer hash. Answering the
// same question again overwrites the previous value.
func (s *ScoreStore) RecordAnswer(ctx context.Context, sessionID string, stage assessment.Stage, questionID, value string) error {
	key := answersKey(sessionID, stage)
	if err := s.redis.HSet(ctx, key, questionID, value); err != nil {
		return err
	}
	if s.ttl > 0 {
		return s.redis.Expire(ctx, key, s.ttl)
	}
	return nil
}

// Answers returns every answer recorded for a stage. An empty set is returned
// for a stage nothing has been recorded against.
func (s *ScoreStore) Answers(ctx context.Context, sessionID string, stage assessment.Stage) (assessment.AnswerSet, error) {
	fields, err := s.redis.HGetAll(ctx, answersKey(sessionID, stage))
	if err != nil {
		return nil, err
	}
	answers := make(assessment.AnswerSet, len(fields))
	for questionID, value := range fields {
		answers[questionID] = value
	}
	return answers, nil
}

// Reset deletes all state for a session. Used when a session is restarted
// from the introduction.
func (s *ScoreStore) Reset(ctx context.Context, sessionID string) error {
	keys := []string{
		scoreKey(sessionID, "psychometricScore"),
		scoreKey(sessionID, "technicalScore"),
		scoreKey(sessionID, "wiscarScores"),
	}
	for _, stage := range []assessment.Stage{
		assessment.StagePsychometric,
		assessment.StageTechnical,
		assessment.StageWISCAR,
	} {
		keys = append(keys, answersKey(sessionID, stage))
	}
	return s.redis.Del(ctx, keys...)
}
