package match

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/victornm/quizduel/internal/domain"
	"github.com/victornm/quizduel/internal/errors"
	"github.com/victornm/quizduel/internal/event"
	"github.com/victornm/quizduel/internal/question"
	"github.com/victornm/quizduel/internal/room"
	"github.com/victornm/quizduel/internal/telemetry"
	"github.com/victornm/quizduel/internal/validator"
)

// QuizSource returns the authoritative question set of a section.
type QuizSource interface {
	GetQuiz(ctx context.Context, sectionID string) (domain.Quiz, error)
}

// Leaderboard credits the participants of a completed match.
type Leaderboard interface {
	Credit(ctx context.Context, m domain.Match) (*domain.Leaderboard, error)
}

type Config struct {
	EventBus    *event.Bus
	Store       Store
	Rooms       room.Store
	Questions   QuizSource
	Leaderboard Leaderboard
	Metrics     *telemetry.Metrics

	// SubmissionGrace is added to the match timer before submissions are
	// rejected. Matches without a timer never reject late submissions.
	SubmissionGrace time.Duration
	Now             func() time.Time
}

type Service struct {
	eb          *event.Bus
	store       Store
	rooms       room.Store
	questions   QuizSource
	leaderboard Leaderboard
	metrics     *telemetry.Metrics
	grace       time.Duration
	now         func() time.Time
}

func NewService(c Config) *Service {
	s := &Service{
		eb:          c.EventBus,
		store:       c.Store,
		rooms:       c.Rooms,
		questions:   c.Questions,
		leaderboard: c.Leaderboard,
		metrics:     c.Metrics,
		grace:       c.SubmissionGrace,
		now:         c.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}

	s.eb.Subscribe(domain.EventNameRoomFilled, func(ctx context.Context, e event.Event) error {
		_, err := s.Promote(ctx, e.(domain.EventRoomFilled).RoomID)
		return err
	}, event.WithRetry(5, 100*time.Millisecond))

	return s
}

// Promote creates the live match of a full room. It is safe to call any
// number of times for the same room: once the room points at a match, that
// match is returned and nothing is written.
func (s *Service) Promote(ctx context.Context, roomID string) (*domain.Match, error) {
	r, err := s.rooms.Get(ctx, roomID)
	if stderrors.Is(err, room.ErrNotFound) {
		return nil, errors.NotFound("room not found: room=%s", roomID)
	}
	if err != nil {
		return nil, errors.Internal(err)
	}

	if r.MatchID != "" {
		return s.getMatch(ctx, r.MatchID)
	}

	if len(r.Participants) < domain.MaxParticipants {
		return nil, errors.New(errors.CodeFailedPrecondition,
			errors.WithMessagef("room is not full: room=%s", roomID))
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("generate match ID: %w", err))
	}

	m, err := s.store.CreateForRoom(ctx, domain.Match{
		MatchID:                 id.String(),
		RoomID:                  r.RoomID,
		SectionID:               r.SectionID,
		Status:                  domain.MatchStatusLive,
		QuestionIDs:             r.QuestionIDs,
		TimerPerQuestionSeconds: r.TimerPerQuestionSeconds,
		Participants:            r.Participants,
		SectionMetadata:         r.SectionMetadata,
		CreatedAt:               s.now(),
	})
	if err != nil {
		return nil, errors.Internal(err)
	}

	// A concurrent promoter may have won; CreateForRoom then returned its match
	// and both callers point the room at the same id.
	if _, err := s.rooms.SetMatch(ctx, r.RoomID, m.MatchID); err != nil {
		return nil, errors.Internal(fmt.Errorf("set room match: %w", err))
	}

	if m.MatchID == id.String() {
		s.metrics.MatchCreated()
		slog.InfoContext(ctx, "match: promoted room",
			"room", r.RoomID,
			"match", m.MatchID,
			"section", m.SectionID,
		)
		s.eb.Publish(ctx, domain.EventMatchReady{Match: m})
	}

	return &m, nil
}

type SubmitAnswersRequest struct {
	MatchID string
	UserID  string
	// Responses maps question id to the raw answer. Its shape depends on the
	// question type: a string, an object of left to right values, or an array.
	Responses map[string]json.RawMessage
}

type SubmitAnswersResponse struct {
	Score          int
	CorrectCount   int
	TotalQuestions int
}

// SubmitAnswers scores the responses against the authoritative questions and
// stores the result once per participant. The call that completes the set of
// submissions finalizes the match.
func (s *Service) SubmitAnswers(ctx context.Context, req SubmitAnswersRequest) (*SubmitAnswersResponse, error) {
	if req.UserID == "" {
		return nil, errors.Unauthenticated("missing caller identity")
	}
	if req.MatchID == "" {
		return nil, errors.InvalidArgument("matchId is required")
	}
	// An empty map is a valid submission that answered nothing.
	if req.Responses == nil {
		return nil, errors.InvalidArgument("responses is required")
	}

	m, err := s.getMatch(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}

	if _, ok := m.Participants[req.UserID]; !ok {
		return nil, errors.New(errors.CodePermissionDenied,
			errors.WithMessagef("user is not a participant of match %s", req.MatchID))
	}

	if existing, ok := m.Submissions[req.UserID]; ok {
		s.metrics.Submission("duplicate")
		s.maybeFinalize(ctx, m)
		return toResponse(existing), nil
	}

	if m.TimerPerQuestionSeconds > 0 && s.now().After(m.Deadline(s.grace)) {
		s.metrics.Submission("late")
		return nil, errors.New(errors.CodeFailedPrecondition,
			errors.WithMessagef("submission window closed at %s", m.Deadline(s.grace).Format(time.RFC3339)))
	}

	quiz, err := s.questions.GetQuiz(ctx, m.SectionID)
	if stderrors.Is(err, question.ErrNotFound) {
		return nil, errors.NotFound("quiz not found: section=%s", m.SectionID)
	}
	if err != nil {
		return nil, errors.Internal(err)
	}

	sub, compositions := score(*m, quiz, req)
	sub.SubmittedAt = s.now()

	stored, inserted, err := s.store.AddSubmission(ctx, m.MatchID, sub)
	if err != nil {
		return nil, errors.Internal(err)
	}

	if inserted {
		s.metrics.Submission("accepted")
		slog.InfoContext(ctx, "match: submission stored",
			"match", m.MatchID,
			"user", req.UserID,
			"points", stored.TotalPoints,
			"correct", stored.CorrectCount,
		)
		for _, c := range compositions {
			s.eb.Publish(ctx, c)
		}
	} else {
		s.metrics.Submission("duplicate")
	}

	// Re-read so that of two concurrent last submissions at least the later
	// one observes both; Complete makes sure only one of them finalizes.
	if fresh, err := s.store.Get(ctx, m.MatchID); err == nil {
		m = &fresh
	} else {
		m.Submissions[stored.UserID] = stored
	}
	s.maybeFinalize(ctx, m)

	return toResponse(stored), nil
}

// score grades every question of the match. Responses for other question ids
// are ignored; missing or malformed answers count as incorrect. Compositions
// are counted in TotalQuestions only and returned for out-of-band grading.
func score(m domain.Match, quiz domain.Quiz, req SubmitAnswersRequest) (domain.Submission, []domain.EventCompositionSubmitted) {
	var (
		index        = quiz.Index()
		sub          = domain.Submission{UserID: req.UserID, TotalQuestions: len(m.QuestionIDs)}
		compositions []domain.EventCompositionSubmitted
	)

	for _, id := range m.QuestionIDs {
		q, ok := index[id]
		if !ok {
			continue
		}
		raw, ok := req.Responses[id]
		if !ok {
			continue
		}
		answer, err := domain.DecodeAnswer(q.Type, raw)
		if err != nil {
			continue
		}

		if q.Type == domain.QuestionTypeComposition {
			if validator.Validate(q, answer) {
				compositions = append(compositions, domain.EventCompositionSubmitted{
					MatchID:    m.MatchID,
					UserID:     req.UserID,
					QuestionID: q.ID,
					Prompt:     q.Prompt,
					Answer:     strings.TrimSpace(string(answer.(domain.TextAnswer))),
				})
			}
			continue
		}

		if validator.Validate(q, answer) {
			sub.CorrectCount++
			sub.TotalPoints += q.Worth()
		}
	}

	return sub, compositions
}

func (s *Service) maybeFinalize(ctx context.Context, m *domain.Match) {
	if m.Status == domain.MatchStatusCompleted || len(m.Submissions) < len(m.Participants) {
		return
	}

	if _, err := s.Finalize(ctx, m.MatchID); err != nil {
		// Submissions are durable; the next submit or a direct Finalize completes it.
		slog.ErrorContext(ctx, "match: finalize failed", "match", m.MatchID, "error", err)
	}
}

// Finalize ranks the submissions and completes the match. Only the caller
// that performs the live to completed transition credits the leaderboard and
// announces the result; everyone else gets the completed match back.
func (s *Service) Finalize(ctx context.Context, matchID string) (*domain.Match, error) {
	m, transitioned, err := s.store.Complete(ctx, matchID, s.now(), Decide)
	if stderrors.Is(err, ErrNotFound) {
		return nil, errors.NotFound("match not found: match=%s", matchID)
	}
	if err != nil {
		return nil, errors.Internal(err)
	}
	if !transitioned {
		return &m, nil
	}

	outcome := "win"
	if m.IsTie {
		outcome = "tie"
	}
	s.metrics.MatchFinalized(outcome)
	slog.InfoContext(ctx, "match: finalized",
		"match", m.MatchID,
		"winner", m.WinnerID,
		"tie", m.IsTie,
	)

	// Scoring is already durable. A failed credit is retried by the
	// match.completed subscriber without touching the match again.
	if _, err := s.leaderboard.Credit(ctx, m); err != nil {
		slog.WarnContext(ctx, "match: leaderboard credit deferred", "match", m.MatchID, "error", err)
	}

	s.eb.Publish(ctx, domain.EventMatchCompleted{Match: m})

	return &m, nil
}

// Decide ranks submissions by total points, highest first. The top
// submission wins unless the runner-up has the same points.
func Decide(m domain.Match) Outcome {
	subs := make([]domain.Submission, 0, len(m.Submissions))
	for _, sub := range m.Submissions {
		subs = append(subs, sub)
	}
	if len(subs) == 0 {
		return Outcome{IsTie: true}
	}

	sort.Slice(subs, func(i, j int) bool {
		if subs[i].TotalPoints != subs[j].TotalPoints {
			return subs[i].TotalPoints > subs[j].TotalPoints
		}
		return subs[i].UserID < subs[j].UserID
	})

	if len(subs) > 1 && subs[0].TotalPoints == subs[1].TotalPoints {
		return Outcome{IsTie: true}
	}

	return Outcome{WinnerID: subs[0].UserID}
}

type GetMatchRequest struct {
	MatchID string
}

func (s *Service) GetMatch(ctx context.Context, req GetMatchRequest) (*domain.Match, error) {
	if req.MatchID == "" {
		return nil, errors.InvalidArgument("matchId is required")
	}

	return s.getMatch(ctx, req.MatchID)
}

func (s *Service) getMatch(ctx context.Context, matchID string) (*domain.Match, error) {
	m, err := s.store.Get(ctx, matchID)
	if stderrors.Is(err, ErrNotFound) {
		return nil, errors.NotFound("match not found: match=%s", matchID)
	}
	if err != nil {
		return nil, errors.Internal(err)
	}

	return &m, nil
}

func toResponse(sub domain.Submission) *SubmitAnswersResponse {
	return &SubmitAnswersResponse{
		Score:          sub.TotalPoints,
		CorrectCount:   sub.CorrectCount,
		TotalQuestions: sub.TotalQuestions,
	}
}
