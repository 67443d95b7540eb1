// Package matchmaking pairs learners into two-player rooms. It finds or
// creates a waiting room for a section and resolves join races with a
// conditional write on the Room Store.
package matchmaking

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/victornm/quizduel/internal/domain"
	"github.com/victornm/quizduel/internal/errors"
	"github.com/victornm/quizduel/internal/event"
	"github.com/victornm/quizduel/internal/question"
	"github.com/victornm/quizduel/internal/room"
	"github.com/victornm/quizduel/internal/telemetry"
)

const (
	DefaultStaleAfter              = 2 * time.Minute
	DefaultTimerPerQuestionSeconds = 20

	minQuestions = 5
	maxQuestions = 10
)

type QuizSource interface {
	GetQuiz(ctx context.Context, sectionID string) (domain.Quiz, error)
}

// Promoter turns a full room into a live match.
type Promoter interface {
	Promote(ctx context.Context, roomID string) (*domain.Match, error)
}

type Config struct {
	EventBus  *event.Bus
	Rooms     room.Store
	Questions QuizSource
	Promoter  Promoter
	Metrics   *telemetry.Metrics

	// StaleAfter bounds the age of rooms offered to public joiners.
	StaleAfter time.Duration
	// TimerPerQuestionSeconds applies to quizzes that do not set their own.
	TimerPerQuestionSeconds int
	Now                     func() time.Time
}

type Service struct {
	eb         *event.Bus
	rooms      room.Store
	questions  QuizSource
	promoter   Promoter
	metrics    *telemetry.Metrics
	staleAfter time.Duration
	timer      int
	now        func() time.Time
}

func NewService(c Config) *Service {
	s := &Service{
		eb:         c.EventBus,
		rooms:      c.Rooms,
		questions:  c.Questions,
		promoter:   c.Promoter,
		metrics:    c.Metrics,
		staleAfter: c.StaleAfter,
		timer:      c.TimerPerQuestionSeconds,
		now:        c.Now,
	}
	if s.staleAfter <= 0 {
		s.staleAfter = DefaultStaleAfter
	}
	if s.timer <= 0 {
		s.timer = DefaultTimerPerQuestionSeconds
	}
	if s.now == nil {
		s.now = time.Now
	}

	return s
}

type CreateOrJoinRequest struct {
	SectionID string
	UserID    string
	UserName  string
	MatchType domain.MatchType
	// InvitedUserID restricts the second seat to one user. Only valid for
	// invite matches.
	InvitedUserID   string
	SectionMetadata domain.SectionMetadata
}

type RoomResponse struct {
	RoomID                  string
	Status                  domain.RoomStatus
	QuestionIDs             []string
	TimerPerQuestionSeconds int
	IsJoiningExistingRoom   bool
	// MatchID is set once the room has been promoted.
	MatchID string
}

// CreateOrJoin puts the caller in a room for the section. Public callers
// without an invitee join the oldest fresh waiting room if they win the
// conditional join; everyone else gets a new room. Losing a join race is not
// an error.
func (s *Service) CreateOrJoin(ctx context.Context, req CreateOrJoinRequest) (*RoomResponse, error) {
	if err := validateCreateOrJoin(req); err != nil {
		return nil, err
	}

	quiz, err := s.loadQuiz(ctx, req.SectionID)
	if err != nil {
		return nil, err
	}

	if req.MatchType == domain.MatchTypePublic {
		resp, joined, err := s.joinWaiting(ctx, req)
		if err != nil {
			return nil, err
		}
		if joined {
			return resp, nil
		}
	}

	return s.createRoom(ctx, req, quiz)
}

func validateCreateOrJoin(req CreateOrJoinRequest) error {
	switch {
	case req.UserID == "":
		return errors.Unauthenticated("missing caller identity")
	case req.SectionID == "":
		return errors.InvalidArgument("sectionId is required")
	case req.UserName == "":
		return errors.InvalidArgument("userName is required")
	case !req.MatchType.Valid():
		return errors.InvalidArgument("matchType must be %q or %q", domain.MatchTypePublic, domain.MatchTypeInvite)
	case req.InvitedUserID != "" && req.MatchType != domain.MatchTypeInvite:
		return errors.InvalidArgument("invitedUserId requires matchType %q", domain.MatchTypeInvite)
	case req.InvitedUserID != "" && req.InvitedUserID == req.UserID:
		return errors.InvalidArgument("cannot invite yourself")
	}

	return nil
}

func (s *Service) loadQuiz(ctx context.Context, sectionID string) (domain.Quiz, error) {
	quiz, err := s.questions.GetQuiz(ctx, sectionID)
	if stderrors.Is(err, question.ErrNotFound) {
		return domain.Quiz{}, errors.NotFound("no quiz for section %s", sectionID)
	}
	if err != nil {
		return domain.Quiz{}, errors.Internal(fmt.Errorf("load quiz: %w", err))
	}
	if len(quiz.Questions) == 0 {
		return domain.Quiz{}, errors.NotFound("section %s has no questions", sectionID)
	}

	return quiz, nil
}

// joinWaiting tries the first waiting candidate only. A lost race falls back
// to room creation rather than probing further candidates.
func (s *Service) joinWaiting(ctx context.Context, req CreateOrJoinRequest) (*RoomResponse, bool, error) {
	candidates, err := s.rooms.FindWaiting(ctx, req.SectionID, s.now().Add(-s.staleAfter))
	if err != nil {
		return nil, false, errors.Internal(fmt.Errorf("find waiting rooms: %w", err))
	}

	var candidate *domain.Room
	for i := range candidates {
		if _, mine := candidates[i].Participants[req.UserID]; !mine {
			candidate = &candidates[i]
			break
		}
	}
	if candidate == nil {
		return nil, false, nil
	}

	r, err := s.rooms.Join(ctx, candidate.RoomID, req.UserID, s.participant(req.UserName))
	if stderrors.Is(err, room.ErrConflict) || stderrors.Is(err, room.ErrNotFound) {
		s.metrics.JoinRaceLost()
		slog.InfoContext(ctx, "matchmaking: lost join race, creating a room",
			"room", candidate.RoomID,
			"user", req.UserID,
		)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Internal(fmt.Errorf("join room: %w", err))
	}

	s.metrics.RoomJoined("public")
	slog.InfoContext(ctx, "matchmaking: joined room", "room", r.RoomID, "user", req.UserID)

	return s.promote(ctx, r), true, nil
}

func (s *Service) createRoom(ctx context.Context, req CreateOrJoinRequest, quiz domain.Quiz) (*RoomResponse, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("generate room ID: %w", err))
	}

	timer := quiz.TimerPerQuestionSeconds
	if timer <= 0 {
		timer = s.timer
	}

	r := domain.Room{
		RoomID:                  id.String(),
		SectionID:               req.SectionID,
		MatchType:               req.MatchType,
		CreatedBy:               req.UserID,
		CreatedAt:               s.now(),
		Status:                  domain.RoomStatusWaiting,
		QuestionIDs:             SelectQuestions(quiz.Questions),
		TimerPerQuestionSeconds: timer,
		Participants: map[string]domain.Participant{
			req.UserID: s.participant(req.UserName),
		},
		InvitedUserID:   req.InvitedUserID,
		SectionMetadata: req.SectionMetadata,
	}

	if err := s.rooms.Create(ctx, r); err != nil {
		return nil, errors.Internal(fmt.Errorf("create room: %w", err))
	}

	s.metrics.RoomCreated(string(r.MatchType))
	slog.InfoContext(ctx, "matchmaking: created room",
		"room", r.RoomID,
		"section", r.SectionID,
		"type", r.MatchType,
		"questions", len(r.QuestionIDs),
	)

	return toResponse(r, false), nil
}

type JoinRoomRequest struct {
	RoomID   string
	UserID   string
	UserName string
}

// JoinRoom takes the second seat of a specific room, typically by an invitee.
// Unlike CreateOrJoin, a lost race is reported since the caller asked for
// this room.
func (s *Service) JoinRoom(ctx context.Context, req JoinRoomRequest) (*RoomResponse, error) {
	switch {
	case req.UserID == "":
		return nil, errors.Unauthenticated("missing caller identity")
	case req.RoomID == "":
		return nil, errors.InvalidArgument("roomId is required")
	case req.UserName == "":
		return nil, errors.InvalidArgument("userName is required")
	}

	r, err := s.getRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	if _, ok := r.Participants[req.UserID]; ok {
		return toResponse(*r, r.CreatedBy != req.UserID), nil
	}
	if r.InvitedUserID != "" && r.InvitedUserID != req.UserID {
		return nil, errors.New(errors.CodePermissionDenied,
			errors.WithMessagef("room %s is reserved for another user", req.RoomID))
	}

	joined, err := s.rooms.Join(ctx, req.RoomID, req.UserID, s.participant(req.UserName))
	if stderrors.Is(err, room.ErrConflict) {
		return nil, errors.New(errors.CodeFailedPrecondition, errors.WithMessagef("room is full"))
	}
	if stderrors.Is(err, room.ErrNotFound) {
		return nil, errors.NotFound("room not found: room=%s", req.RoomID)
	}
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("join room: %w", err))
	}

	s.metrics.RoomJoined(string(joined.MatchType))
	slog.InfoContext(ctx, "matchmaking: joined room by id", "room", joined.RoomID, "user", req.UserID)

	return s.promote(ctx, joined), nil
}

type GetRoomRequest struct {
	RoomID string
}

func (s *Service) GetRoom(ctx context.Context, req GetRoomRequest) (*domain.Room, error) {
	if req.RoomID == "" {
		return nil, errors.InvalidArgument("roomId is required")
	}

	return s.getRoom(ctx, req.RoomID)
}

func (s *Service) getRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	r, err := s.rooms.Get(ctx, roomID)
	if stderrors.Is(err, room.ErrNotFound) {
		return nil, errors.NotFound("room not found: room=%s", roomID)
	}
	if err != nil {
		return nil, errors.Internal(err)
	}

	return &r, nil
}

// promote runs the promoter inline after a successful join. When that fails
// the room.filled event hands it to the retrying subscriber; the join itself
// already succeeded so the caller still gets the room.
func (s *Service) promote(ctx context.Context, r domain.Room) *RoomResponse {
	resp := toResponse(r, true)

	m, err := s.promoter.Promote(ctx, r.RoomID)
	if err != nil {
		slog.WarnContext(ctx, "matchmaking: promotion deferred", "room", r.RoomID, "error", err)
		s.eb.Publish(ctx, domain.EventRoomFilled{RoomID: r.RoomID})
		return resp
	}

	resp.Status = domain.RoomStatusReady
	resp.MatchID = m.MatchID
	return resp
}

func (s *Service) participant(name string) domain.Participant {
	return domain.Participant{
		UserName: name,
		JoinedAt: s.now(),
		Status:   domain.ParticipantStatusJoined,
	}
}

// QuestionCount is the size of a match drawn from a quiz of n questions:
// 70% of the quiz, at least 5 and at most 10, never more than n.
func QuestionCount(n int) int {
	count := n * 7 / 10
	count = max(count, minQuestions)
	count = min(count, maxQuestions)
	return min(count, n)
}

// SelectQuestions shuffles the quiz and returns the ids of the first
// QuestionCount questions. Answer payloads never leave the server.
func SelectQuestions(questions []domain.Question) []string {
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	return ids[:QuestionCount(len(ids))]
}

func toResponse(r domain.Room, joining bool) *RoomResponse {
	return &RoomResponse{
		RoomID:                  r.RoomID,
		Status:                  r.Status,
		QuestionIDs:             r.QuestionIDs,
		TimerPerQuestionSeconds: r.TimerPerQuestionSeconds,
		IsJoiningExistingRoom:   joining,
		MatchID:                 r.MatchID,
	}
}
