package api

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	quizduelv1 "github.com/victornm/quizduel/internal/api/proto/quizduel/v1"
	"github.com/victornm/quizduel/internal/auth"
	"github.com/victornm/quizduel/internal/domain"
	"github.com/victornm/quizduel/internal/errors"
	"github.com/victornm/quizduel/internal/event"
	"github.com/victornm/quizduel/internal/leaderboard"
	"github.com/victornm/quizduel/internal/match"
	"github.com/victornm/quizduel/internal/matchmaking"
)

type Config struct {
	GRPC         *grpc.Server
	EventBus     *event.Bus
	Matchmaking  *matchmaking.Service
	Match        *match.Service
	Leaderboard  *leaderboard.Service
	Redis        Redis
	PubsubPrefix string
}

type Redis interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
}

// API exposes the engine over gRPC and HTTP. Both transports share the
// handler methods below; the caller identity always comes from the context.
type API struct {
	quizduelv1.UnimplementedQuizDuelServiceServer

	mm *matchmaking.Service
	ms *match.Service
	ls *leaderboard.Service

	redis  Redis
	prefix string
}

func New(c Config) *API {
	a := &API{
		mm:     c.Matchmaking,
		ms:     c.Match,
		ls:     c.Leaderboard,
		redis:  c.Redis,
		prefix: c.PubsubPrefix,
	}

	// gRPC APIs
	if c.GRPC != nil {
		quizduelv1.RegisterQuizDuelServiceServer(c.GRPC, a)
	}

	// Register event handlers
	c.EventBus.Subscribe(domain.EventNameMatchReady, func(ctx context.Context, e event.Event) error {
		return a.PublishMatchReady(ctx, e.(domain.EventMatchReady))
	})
	c.EventBus.Subscribe(domain.EventNameMatchCompleted, func(ctx context.Context, e event.Event) error {
		return a.PublishMatchCompleted(ctx, e.(domain.EventMatchCompleted))
	})
	c.EventBus.Subscribe(domain.EventNameLeaderboardUpdated, func(ctx context.Context, e event.Event) error {
		return a.PublishLeaderboardUpdated(ctx, e.(domain.EventLeaderboardUpdated))
	})

	return a
}

type (
	CreateRoomRequest struct {
		SectionID string           `json:"sectionId"`
		MatchType domain.MatchType `json:"matchType"`
		// UserName is used when the token carries no display name.
		UserName        string                 `json:"userName,omitempty"`
		InvitedUserID   string                 `json:"invitedUserId,omitempty"`
		SectionMetadata domain.SectionMetadata `json:"sectionMetadata,omitempty"`
	}

	RoomResponse struct {
		RoomID                  string            `json:"roomId"`
		Status                  domain.RoomStatus `json:"status"`
		QuestionIDs             []string          `json:"questionIds"`
		TimerPerQuestionSeconds int               `json:"timerPerQuestionSeconds"`
		IsJoiningExistingRoom   bool              `json:"isJoiningExistingRoom"`
		MatchID                 string            `json:"matchId,omitempty"`
	}

	JoinRoomRequest struct {
		RoomID   string `json:"roomId"`
		UserName string `json:"userName,omitempty"`
	}

	GetRoomRequest struct {
		RoomID string `json:"roomId"`
	}

	SubmitAnswersRequest struct {
		MatchID   string                     `json:"matchId"`
		Responses map[string]json.RawMessage `json:"responses"`
	}

	SubmitAnswersResponse struct {
		Score          int `json:"score"`
		CorrectCount   int `json:"correctCount"`
		TotalQuestions int `json:"totalQuestions"`
	}

	GetMatchRequest struct {
		MatchID string `json:"matchId"`
	}

	GetLeaderboardRequest struct {
		SectionID string `json:"sectionId"`
		Limit     int    `json:"limit,omitempty"`
	}
)

func (a *API) createRoom(ctx context.Context, req *CreateRoomRequest) (*RoomResponse, error) {
	id := auth.FromContext(ctx)

	resp, err := a.mm.CreateOrJoin(ctx, matchmaking.CreateOrJoinRequest{
		SectionID:       req.SectionID,
		UserID:          id.UserID,
		UserName:        userName(id, req.UserName),
		MatchType:       req.MatchType,
		InvitedUserID:   req.InvitedUserID,
		SectionMetadata: req.SectionMetadata,
	})
	if err != nil {
		return nil, err
	}

	return toRoomResponse(resp), nil
}

func (a *API) joinRoom(ctx context.Context, req *JoinRoomRequest) (*RoomResponse, error) {
	id := auth.FromContext(ctx)

	resp, err := a.mm.JoinRoom(ctx, matchmaking.JoinRoomRequest{
		RoomID:   req.RoomID,
		UserID:   id.UserID,
		UserName: userName(id, req.UserName),
	})
	if err != nil {
		return nil, err
	}

	return toRoomResponse(resp), nil
}

func (a *API) getRoom(ctx context.Context, req *GetRoomRequest) (*domain.Room, error) {
	if auth.FromContext(ctx).UserID == "" {
		return nil, errors.Unauthenticated("missing caller identity")
	}

	return a.mm.GetRoom(ctx, matchmaking.GetRoomRequest{RoomID: req.RoomID})
}

func (a *API) submitAnswers(ctx context.Context, req *SubmitAnswersRequest) (*SubmitAnswersResponse, error) {
	resp, err := a.ms.SubmitAnswers(ctx, match.SubmitAnswersRequest{
		MatchID:   req.MatchID,
		UserID:    auth.FromContext(ctx).UserID,
		Responses: req.Responses,
	})
	if err != nil {
		return nil, err
	}

	return &SubmitAnswersResponse{
		Score:          resp.Score,
		CorrectCount:   resp.CorrectCount,
		TotalQuestions: resp.TotalQuestions,
	}, nil
}

func (a *API) getMatch(ctx context.Context, req *GetMatchRequest) (*domain.Match, error) {
	if auth.FromContext(ctx).UserID == "" {
		return nil, errors.Unauthenticated("missing caller identity")
	}

	return a.ms.GetMatch(ctx, match.GetMatchRequest{MatchID: req.MatchID})
}

func (a *API) getLeaderboard(ctx context.Context, req *GetLeaderboardRequest) (*domain.Leaderboard, error) {
	return a.ls.GetLeaderboard(ctx, leaderboard.GetLeaderboardRequest{
		SectionID: req.SectionID,
		Limit:     req.Limit,
	})
}

func userName(id auth.Identity, fallback string) string {
	if id.UserName != "" {
		return id.UserName
	}
	return fallback
}

func toRoomResponse(r *matchmaking.RoomResponse) *RoomResponse {
	return &RoomResponse{
		RoomID:                  r.RoomID,
		Status:                  r.Status,
		QuestionIDs:             r.QuestionIDs,
		TimerPerQuestionSeconds: r.TimerPerQuestionSeconds,
		IsJoiningExistingRoom:   r.IsJoiningExistingRoom,
		MatchID:                 r.MatchID,
	}
}
