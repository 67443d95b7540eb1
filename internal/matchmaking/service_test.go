package matchmaking_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victornm/quizduel/internal/domain"
	"github.com/victornm/quizduel/internal/errors"
	"github.com/victornm/quizduel/internal/event"
	"github.com/victornm/quizduel/internal/leaderboard"
	"github.com/victornm/quizduel/internal/match"
	"github.com/victornm/quizduel/internal/matchmaking"
	"github.com/victornm/quizduel/internal/question"
	"github.com/victornm/quizduel/internal/room"
)

type env struct {
	bus     *event.Bus
	rooms   room.Store
	matches *match.Service
	lb      *leaderboard.Service
	mm      *matchmaking.Service

	mu  sync.Mutex
	now time.Time
}

func (e *env) Now() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.now
}

func (e *env) Advance(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = e.now.Add(d)
}

type options func(e *env)

func withRoomStore(s room.Store) options {
	return func(e *env) { e.rooms = s }
}

func newEnv(t *testing.T, opts ...options) *env {
	rs := miniredis.RunT(t)
	rc := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs: []string{rs.Addr()},
	})
	t.Cleanup(func() { rc.Close() })

	e := &env{
		bus:   event.NewBus(),
		rooms: room.NewMemoryStore(),
		now:   time.Now(),
	}
	for _, opt := range opts {
		opt(e)
	}
	t.Cleanup(e.bus.Stop)

	quizzes := question.NewCache(question.NewStaticLoader(map[string]domain.Quiz{
		"S1":    quizOf("S1", 10),
		"small": quizOf("small", 3),
		"empty": {SectionID: "empty"},
	}), time.Minute)

	e.lb = leaderboard.NewService(leaderboard.Config{
		EventBus: e.bus,
		Redis:    rc,
		Prefix:   "test",
	})
	e.matches = match.NewService(match.Config{
		EventBus:        e.bus,
		Store:           match.NewMemoryStore(),
		Rooms:           e.rooms,
		Questions:       quizzes,
		Leaderboard:     e.lb,
		SubmissionGrace: time.Minute,
		Now:             e.Now,
	})
	e.mm = matchmaking.NewService(matchmaking.Config{
		EventBus:  e.bus,
		Rooms:     e.rooms,
		Questions: quizzes,
		Promoter:  e.matches,
		Now:       e.Now,
	})

	return e
}

// quizOf builds n fill-in-the-blank questions q0..qN whose answer is a0..aN.
func quizOf(section string, n int) domain.Quiz {
	quiz := domain.Quiz{SectionID: section, TimerPerQuestionSeconds: 15}
	for i := range n {
		quiz.Questions = append(quiz.Questions, domain.Question{
			ID:      fmt.Sprintf("q%d", i),
			Type:    domain.QuestionTypeFillBlank,
			Answers: []string{fmt.Sprintf("a%d", i)},
			Points:  1,
		})
	}
	return quiz
}

func public(section, user string) matchmaking.CreateOrJoinRequest {
	return matchmaking.CreateOrJoinRequest{
		SectionID: section,
		UserID:    user,
		UserName:  "name-" + user,
		MatchType: domain.MatchTypePublic,
	}
}

func TestService_CreateOrJoin_Validation(t *testing.T) {
	tests := map[string]struct {
		arrange func(r *matchmaking.CreateOrJoinRequest)
		code    errors.Code
	}{
		"missing user": {
			arrange: func(r *matchmaking.CreateOrJoinRequest) { r.UserID = "" },
			code:    errors.CodeUnauthenticated,
		},
		"missing section": {
			arrange: func(r *matchmaking.CreateOrJoinRequest) { r.SectionID = "" },
			code:    errors.CodeInvalidArgument,
		},
		"missing user name": {
			arrange: func(r *matchmaking.CreateOrJoinRequest) { r.UserName = "" },
			code:    errors.CodeInvalidArgument,
		},
		"unknown match type": {
			arrange: func(r *matchmaking.CreateOrJoinRequest) { r.MatchType = "ranked" },
			code:    errors.CodeInvalidArgument,
		},
		"invitee on a public match": {
			arrange: func(r *matchmaking.CreateOrJoinRequest) { r.InvitedUserID = "u2" },
			code:    errors.CodeInvalidArgument,
		},
		"self invite": {
			arrange: func(r *matchmaking.CreateOrJoinRequest) {
				r.MatchType = domain.MatchTypeInvite
				r.InvitedUserID = r.UserID
			},
			code: errors.CodeInvalidArgument,
		},
		"section without quiz": {
			arrange: func(r *matchmaking.CreateOrJoinRequest) { r.SectionID = "unknown" },
			code:    errors.CodeNotFound,
		},
		"section with zero questions": {
			arrange: func(r *matchmaking.CreateOrJoinRequest) { r.SectionID = "empty" },
			code:    errors.CodeNotFound,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			e := newEnv(t)
			req := public("S1", "u1")
			tc.arrange(&req)

			_, err := e.mm.CreateOrJoin(context.Background(), req)
			assert.True(t, errors.Is(err, tc.code), "got %v", err)

			waiting, err := e.rooms.FindWaiting(context.Background(), req.SectionID, time.Time{})
			require.NoError(t, err)
			assert.Empty(t, waiting, "no room may be created")
		})
	}
}

func TestService_CreateOrJoin_PairsPublicPlayers(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	first, err := e.mm.CreateOrJoin(ctx, public("S1", "u1"))
	require.NoError(t, err)
	assert.False(t, first.IsJoiningExistingRoom)
	assert.Equal(t, domain.RoomStatusWaiting, first.Status)
	assert.Len(t, first.QuestionIDs, 7)
	assert.Equal(t, 15, first.TimerPerQuestionSeconds)
	assert.Empty(t, first.MatchID)

	second, err := e.mm.CreateOrJoin(ctx, public("S1", "u2"))
	require.NoError(t, err)
	assert.True(t, second.IsJoiningExistingRoom)
	assert.Equal(t, first.RoomID, second.RoomID)
	assert.Equal(t, first.QuestionIDs, second.QuestionIDs)
	assert.Equal(t, domain.RoomStatusReady, second.Status)
	assert.NotEmpty(t, second.MatchID)

	third, err := e.mm.CreateOrJoin(ctx, public("S1", "u3"))
	require.NoError(t, err)
	assert.False(t, third.IsJoiningExistingRoom)
	assert.NotEqual(t, first.RoomID, third.RoomID)

	r, err := e.mm.GetRoom(ctx, matchmaking.GetRoomRequest{RoomID: first.RoomID})
	require.NoError(t, err)
	assert.Equal(t, second.MatchID, r.MatchID)
	assert.Len(t, r.Participants, 2)
}

func TestService_CreateOrJoin_DoesNotJoinOwnRoom(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	first, err := e.mm.CreateOrJoin(ctx, public("S1", "u1"))
	require.NoError(t, err)

	again, err := e.mm.CreateOrJoin(ctx, public("S1", "u1"))
	require.NoError(t, err)
	assert.False(t, again.IsJoiningExistingRoom)
	assert.NotEqual(t, first.RoomID, again.RoomID)
}

func TestService_CreateOrJoin_SkipsStaleRooms(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	stale, err := e.mm.CreateOrJoin(ctx, public("S1", "u1"))
	require.NoError(t, err)

	e.Advance(matchmaking.DefaultStaleAfter + time.Second)

	fresh, err := e.mm.CreateOrJoin(ctx, public("S1", "u2"))
	require.NoError(t, err)
	assert.False(t, fresh.IsJoiningExistingRoom)
	assert.NotEqual(t, stale.RoomID, fresh.RoomID)
}

func TestService_CreateOrJoin_SmallQuizUsesAllQuestions(t *testing.T) {
	e := newEnv(t)

	resp, err := e.mm.CreateOrJoin(context.Background(), public("small", "u1"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"q0", "q1", "q2"}, resp.QuestionIDs)
}

func TestService_Invite(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	invite, err := e.mm.CreateOrJoin(ctx, matchmaking.CreateOrJoinRequest{
		SectionID:     "S1",
		UserID:        "u1",
		UserName:      "Alice",
		MatchType:     domain.MatchTypeInvite,
		InvitedUserID: "u2",
	})
	require.NoError(t, err)
	assert.False(t, invite.IsJoiningExistingRoom)

	// Invite rooms are never offered to public joiners.
	other, err := e.mm.CreateOrJoin(ctx, public("S1", "u3"))
	require.NoError(t, err)
	assert.NotEqual(t, invite.RoomID, other.RoomID)

	_, err = e.mm.JoinRoom(ctx, matchmaking.JoinRoomRequest{RoomID: invite.RoomID, UserID: "u3", UserName: "Carol"})
	assert.True(t, errors.Is(err, errors.CodePermissionDenied), "got %v", err)

	joined, err := e.mm.JoinRoom(ctx, matchmaking.JoinRoomRequest{RoomID: invite.RoomID, UserID: "u2", UserName: "Bob"})
	require.NoError(t, err)
	assert.True(t, joined.IsJoiningExistingRoom)
	assert.NotEmpty(t, joined.MatchID)

	// Joining again is a read of the same room.
	again, err := e.mm.JoinRoom(ctx, matchmaking.JoinRoomRequest{RoomID: invite.RoomID, UserID: "u2", UserName: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, joined.MatchID, again.MatchID)
}

func TestService_JoinRoom_Errors(t *testing.T) {
	tests := map[string]struct {
		arrange func(t *testing.T, e *env) matchmaking.JoinRoomRequest
		code    errors.Code
	}{
		"missing user": {
			arrange: func(*testing.T, *env) matchmaking.JoinRoomRequest {
				return matchmaking.JoinRoomRequest{RoomID: "r", UserName: "x"}
			},
			code: errors.CodeUnauthenticated,
		},
		"missing room": {
			arrange: func(*testing.T, *env) matchmaking.JoinRoomRequest {
				return matchmaking.JoinRoomRequest{UserID: "u1", UserName: "x"}
			},
			code: errors.CodeInvalidArgument,
		},
		"room not found": {
			arrange: func(*testing.T, *env) matchmaking.JoinRoomRequest {
				return matchmaking.JoinRoomRequest{RoomID: "missing", UserID: "u1", UserName: "x"}
			},
			code: errors.CodeNotFound,
		},
		"room is full": {
			arrange: func(t *testing.T, e *env) matchmaking.JoinRoomRequest {
				ctx := context.Background()
				r, err := e.mm.CreateOrJoin(ctx, public("S1", "u1"))
				require.NoError(t, err)
				_, err = e.mm.CreateOrJoin(ctx, public("S1", "u2"))
				require.NoError(t, err)
				return matchmaking.JoinRoomRequest{RoomID: r.RoomID, UserID: "u3", UserName: "x"}
			},
			code: errors.CodeFailedPrecondition,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			e := newEnv(t)
			_, err := e.mm.JoinRoom(context.Background(), tc.arrange(t, e))
			assert.True(t, errors.Is(err, tc.code), "got %v", err)
		})
	}
}

func TestService_CreateOrJoin_ConcurrentNeverOverfillsRooms(t *testing.T) {
	for name, store := range map[string]func(t *testing.T) room.Store{
		"memory": func(*testing.T) room.Store { return room.NewMemoryStore() },
		"redis": func(t *testing.T) room.Store {
			rs := miniredis.RunT(t)
			rc := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{rs.Addr()}})
			t.Cleanup(func() { rc.Close() })
			return room.NewRedisStore(rc, "test", time.Hour)
		},
	} {
		t.Run(name, func(t *testing.T) {
			e := newEnv(t, withRoomStore(store(t)))
			ctx := context.Background()

			const n = 20
			roomIDs := make([]string, n)
			var wg sync.WaitGroup
			for i := range n {
				wg.Add(1)
				go func() {
					defer wg.Done()
					resp, err := e.mm.CreateOrJoin(ctx, public("S1", fmt.Sprintf("u%d", i)))
					if assert.NoError(t, err, "a lost race must never surface") {
						roomIDs[i] = resp.RoomID
					}
				}()
			}
			wg.Wait()

			seen := make(map[string]bool)
			var participants int
			for _, id := range roomIDs {
				if seen[id] {
					continue
				}
				seen[id] = true

				r, err := e.rooms.Get(ctx, id)
				require.NoError(t, err)
				require.LessOrEqual(t, len(r.Participants), domain.MaxParticipants)
				assert.Contains(t, []domain.RoomStatus{domain.RoomStatusWaiting, domain.RoomStatusReady}, r.Status)
				participants += len(r.Participants)
			}
			assert.Equal(t, n, participants)
		})
	}
}

func TestScenario_PublicMatchCreditsLeaderboard(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.mm.CreateOrJoin(ctx, public("S1", "A"))
	require.NoError(t, err)
	joined, err := e.mm.CreateOrJoin(ctx, public("S1", "B"))
	require.NoError(t, err)
	require.NotEmpty(t, joined.MatchID)

	m, err := e.matches.GetMatch(ctx, match.GetMatchRequest{MatchID: joined.MatchID})
	require.NoError(t, err)
	assert.Equal(t, domain.MatchStatusLive, m.Status)
	assert.Len(t, m.QuestionIDs, 7)

	answers := make(map[string]json.RawMessage)
	for _, id := range m.QuestionIDs {
		answers[id] = json.RawMessage(fmt.Sprintf("%q", "a"+id[1:]))
	}

	resA, err := e.matches.SubmitAnswers(ctx, match.SubmitAnswersRequest{MatchID: m.MatchID, UserID: "A", Responses: answers})
	require.NoError(t, err)
	assert.Equal(t, &match.SubmitAnswersResponse{Score: 7, CorrectCount: 7, TotalQuestions: 7}, resA)

	resB, err := e.matches.SubmitAnswers(ctx, match.SubmitAnswersRequest{MatchID: m.MatchID, UserID: "B", Responses: map[string]json.RawMessage{}})
	require.NoError(t, err)
	assert.Equal(t, 0, resB.Score)

	// Retrying does not credit the leaderboard twice.
	_, err = e.matches.SubmitAnswers(ctx, match.SubmitAnswersRequest{MatchID: m.MatchID, UserID: "B", Responses: map[string]json.RawMessage{}})
	require.NoError(t, err)
	e.bus.Stop()

	m, err = e.matches.GetMatch(ctx, match.GetMatchRequest{MatchID: m.MatchID})
	require.NoError(t, err)
	assert.Equal(t, domain.MatchStatusCompleted, m.Status)
	assert.Equal(t, "A", m.WinnerID)

	l, err := e.lb.GetLeaderboard(ctx, leaderboard.GetLeaderboardRequest{SectionID: "S1"})
	require.NoError(t, err)
	assert.Equal(t, []domain.LeaderboardEntry{
		{UserID: "A", UserName: "name-A", Points: 10, Rank: 1},
		{UserID: "B", UserName: "name-B", Points: 5, Rank: 2},
	}, l.Entries)
}

func TestQuestionCount(t *testing.T) {
	for n, want := range map[int]int{
		1:   1,
		3:   3,
		5:   5,
		7:   5,
		8:   5,
		10:  7,
		14:  9,
		15:  10,
		100: 10,
	} {
		assert.Equal(t, want, matchmaking.QuestionCount(n), "n=%d", n)
	}
}

func TestSelectQuestions(t *testing.T) {
	quiz := quizOf("S1", 12)

	ids := matchmaking.SelectQuestions(quiz.Questions)
	require.Len(t, ids, 8)

	index := quiz.Index()
	seen := make(map[string]bool)
	for _, id := range ids {
		assert.Contains(t, index, id)
		assert.False(t, seen[id], "duplicate question %s", id)
		seen[id] = true
	}
}
