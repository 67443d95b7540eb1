// Package grader grades composition answers out of band. Its verdicts are
// stored for review and never change a match score.
package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/victornm/quizduel/internal/domain"
	"github.com/victornm/quizduel/internal/event"
	"github.com/victornm/quizduel/internal/match"
)

// Evaluator decides whether a free-text answer satisfies a prompt.
type Evaluator interface {
	Evaluate(ctx context.Context, prompt, answer string) (bool, error)
}

// HTTPEvaluator calls a remote grading endpoint with
// {"prompt": ..., "answer": ...} and expects {"correct": bool}.
type HTTPEvaluator struct {
	url    string
	client *http.Client
}

func NewHTTPEvaluator(url string, timeout time.Duration) *HTTPEvaluator {
	return &HTTPEvaluator{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type evaluateRequest struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

type evaluateResponse struct {
	Correct bool `json:"correct"`
}

func (e *HTTPEvaluator) Evaluate(ctx context.Context, prompt, answer string) (bool, error) {
	body, err := json.Marshal(evaluateRequest{Prompt: prompt, Answer: answer})
	if err != nil {
		return false, fmt.Errorf("marshal evaluate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("new evaluate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("evaluate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("evaluate: unexpected status %d", resp.StatusCode)
	}

	var out evaluateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("decode evaluate response: %w", err)
	}

	return out.Correct, nil
}

// GradeStore records grading verdicts.
type GradeStore interface {
	RecordCompositionGrade(ctx context.Context, g match.CompositionGrade) error
}

type Config struct {
	EventBus  *event.Bus
	Evaluator Evaluator
	Store     GradeStore
	Now       func() time.Time
}

type Service struct {
	evaluator Evaluator
	store     GradeStore
	now       func() time.Time
}

// NewService subscribes the grader to composition submissions.
func NewService(c Config) *Service {
	s := &Service{
		evaluator: c.Evaluator,
		store:     c.Store,
		now:       c.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}

	c.EventBus.Subscribe(domain.EventNameCompositionSubmitted, func(ctx context.Context, e event.Event) error {
		return s.Grade(ctx, e.(domain.EventCompositionSubmitted))
	}, event.WithRetry(3, time.Second))

	return s
}

// Grade evaluates one composition answer and stores the verdict.
func (s *Service) Grade(ctx context.Context, e domain.EventCompositionSubmitted) error {
	correct, err := s.evaluator.Evaluate(ctx, e.Prompt, e.Answer)
	if err != nil {
		return fmt.Errorf("grade composition: match=%s user=%s question=%s: %w", e.MatchID, e.UserID, e.QuestionID, err)
	}

	err = s.store.RecordCompositionGrade(ctx, match.CompositionGrade{
		MatchID:    e.MatchID,
		UserID:     e.UserID,
		QuestionID: e.QuestionID,
		Correct:    correct,
		GradedAt:   s.now(),
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "grader: composition graded",
		"match", e.MatchID,
		"user", e.UserID,
		"question", e.QuestionID,
		"correct", correct,
	)

	return nil
}
