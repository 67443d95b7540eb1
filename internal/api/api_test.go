package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/victornm/quizduel/internal/api"
	quizduelv1 "github.com/victornm/quizduel/internal/api/proto/quizduel/v1"
	"github.com/victornm/quizduel/internal/auth"
	"github.com/victornm/quizduel/internal/domain"
	"github.com/victornm/quizduel/internal/event"
	"github.com/victornm/quizduel/internal/leaderboard"
	"github.com/victornm/quizduel/internal/match"
	"github.com/victornm/quizduel/internal/matchmaking"
	"github.com/victornm/quizduel/internal/question"
	"github.com/victornm/quizduel/internal/room"
)

type fixture struct {
	api      *api.API
	http     *httptest.Server
	client   quizduelv1.QuizDuelServiceClient
	redis    redis.UniversalClient
	verifier *auth.Verifier
	bus      *event.Bus
}

func setup(t *testing.T) *fixture {
	gin.SetMode(gin.TestMode)

	rs := miniredis.RunT(t)
	rc := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs: []string{rs.Addr()},
	})
	t.Cleanup(func() { rc.Close() })

	f := &fixture{
		redis:    rc,
		verifier: auth.NewVerifier("secret"),
		bus:      event.NewBus(),
	}

	quiz := domain.Quiz{SectionID: "S1"}
	for i := range 10 {
		quiz.Questions = append(quiz.Questions, domain.Question{
			ID:      fmt.Sprintf("q%d", i),
			Type:    domain.QuestionTypeFillBlank,
			Answers: []string{fmt.Sprintf("a%d", i)},
		})
	}
	mixed := domain.Quiz{
		SectionID: "mixed",
		Questions: []domain.Question{
			{ID: "fill", Type: domain.QuestionTypeFillBlank, Answers: []string{"cat"}},
			{ID: "pairs", Type: domain.QuestionTypeMatching, Pairs: map[string]string{"dog": "chien", "cat": "chat"}},
			{ID: "order", Type: domain.QuestionTypeOrderWords, Order: []string{"I", "like", "tea"}},
		},
	}
	quizzes := question.NewCache(question.NewStaticLoader(map[string]domain.Quiz{
		"S1":    quiz,
		"mixed": mixed,
		"empty": {SectionID: "empty"},
	}), time.Minute)

	rooms := room.NewMemoryStore()
	ls := leaderboard.NewService(leaderboard.Config{EventBus: f.bus, Redis: rc, Prefix: "test"})
	ms := match.NewService(match.Config{
		EventBus:        f.bus,
		Store:           match.NewMemoryStore(),
		Rooms:           rooms,
		Questions:       quizzes,
		Leaderboard:     ls,
		SubmissionGrace: time.Minute,
	})
	mm := matchmaking.NewService(matchmaking.Config{
		EventBus:  f.bus,
		Rooms:     rooms,
		Questions: quizzes,
		Promoter:  ms,
	})

	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(f.verifier.UnaryServerInterceptor()))
	f.api = api.New(api.Config{
		GRPC:         gs,
		EventBus:     f.bus,
		Matchmaking:  mm,
		Match:        ms,
		Leaderboard:  ls,
		Redis:        rc,
		PubsubPrefix: "test",
	})

	r := gin.New()
	r.Use(gin.Recovery(), f.verifier.Gin())
	f.api.RegisterHTTP(r)
	f.http = httptest.NewServer(r)
	t.Cleanup(f.http.Close)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	f.client = quizduelv1.NewQuizDuelServiceClient(conn)

	t.Cleanup(f.bus.Stop)
	return f
}

func (f *fixture) token(t *testing.T, userID, name string) string {
	s, err := f.verifier.Sign(auth.Identity{UserID: userID, UserName: name}, time.Hour)
	require.NoError(t, err)
	return s
}

func (f *fixture) do(t *testing.T, method, path, token string, body any, out any) int {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, f.http.URL+path, rd)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHTTP_MatchFlow(t *testing.T) {
	f := setup(t)
	alice, bob := f.token(t, "alice", "Alice"), f.token(t, "bob", "Bob")

	var created api.RoomResponse
	code := f.do(t, http.MethodPost, "/v1/rooms", alice, api.CreateRoomRequest{SectionID: "S1", MatchType: domain.MatchTypePublic}, &created)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, created.IsJoiningExistingRoom)
	assert.Len(t, created.QuestionIDs, 7)

	var joined api.RoomResponse
	code = f.do(t, http.MethodPost, "/v1/rooms", bob, api.CreateRoomRequest{SectionID: "S1", MatchType: domain.MatchTypePublic}, &joined)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, joined.IsJoiningExistingRoom)
	assert.Equal(t, created.RoomID, joined.RoomID)
	require.NotEmpty(t, joined.MatchID)

	var r domain.Room
	code = f.do(t, http.MethodGet, "/v1/rooms/"+created.RoomID, alice, nil, &r)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, joined.MatchID, r.MatchID)
	assert.Len(t, r.Participants, 2)

	var m domain.Match
	code = f.do(t, http.MethodGet, "/v1/matches/"+joined.MatchID, alice, nil, &m)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, domain.MatchStatusLive, m.Status)
	assert.Equal(t, created.QuestionIDs, m.QuestionIDs)

	responses := make(map[string]json.RawMessage)
	for _, id := range m.QuestionIDs {
		responses[id] = json.RawMessage(fmt.Sprintf("%q", "a"+strings.TrimPrefix(id, "q")))
	}

	var scored api.SubmitAnswersResponse
	code = f.do(t, http.MethodPost, "/v1/matches/"+m.MatchID+"/submissions", alice, api.SubmitAnswersRequest{Responses: responses}, &scored)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, api.SubmitAnswersResponse{Score: 7, CorrectCount: 7, TotalQuestions: 7}, scored)

	code = f.do(t, http.MethodPost, "/v1/matches/"+m.MatchID+"/submissions", bob, api.SubmitAnswersRequest{Responses: map[string]json.RawMessage{}}, &scored)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, api.SubmitAnswersResponse{Score: 0, CorrectCount: 0, TotalQuestions: 7}, scored)

	code = f.do(t, http.MethodGet, "/v1/matches/"+m.MatchID, alice, nil, &m)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, domain.MatchStatusCompleted, m.Status)
	assert.Equal(t, "alice", m.WinnerID)

	var l domain.Leaderboard
	code = f.do(t, http.MethodGet, "/v1/sections/S1/leaderboard", "", nil, &l)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []domain.LeaderboardEntry{
		{UserID: "alice", UserName: "Alice", Points: 10, Rank: 1},
		{UserID: "bob", UserName: "Bob", Points: 5, Rank: 2},
	}, l.Entries)
}

func TestHTTP_Errors(t *testing.T) {
	tests := map[string]struct {
		arrange  func(t *testing.T, f *fixture) (method, path, token string, body any)
		wantCode int
	}{
		"create room without token": {
			arrange: func(*testing.T, *fixture) (string, string, string, any) {
				return http.MethodPost, "/v1/rooms", "", api.CreateRoomRequest{SectionID: "S1", MatchType: domain.MatchTypePublic}
			},
			wantCode: http.StatusUnauthorized,
		},
		"create room with a bad token": {
			arrange: func(*testing.T, *fixture) (string, string, string, any) {
				return http.MethodPost, "/v1/rooms", "bogus", api.CreateRoomRequest{SectionID: "S1", MatchType: domain.MatchTypePublic}
			},
			wantCode: http.StatusUnauthorized,
		},
		"create room without section": {
			arrange: func(t *testing.T, f *fixture) (string, string, string, any) {
				return http.MethodPost, "/v1/rooms", f.token(t, "u1", "U1"), api.CreateRoomRequest{MatchType: domain.MatchTypePublic}
			},
			wantCode: http.StatusBadRequest,
		},
		"create room for a section without questions": {
			arrange: func(t *testing.T, f *fixture) (string, string, string, any) {
				return http.MethodPost, "/v1/rooms", f.token(t, "u1", "U1"), api.CreateRoomRequest{SectionID: "empty", MatchType: domain.MatchTypePublic}
			},
			wantCode: http.StatusNotFound,
		},
		"get missing match": {
			arrange: func(t *testing.T, f *fixture) (string, string, string, any) {
				return http.MethodGet, "/v1/matches/missing", f.token(t, "u1", "U1"), nil
			},
			wantCode: http.StatusNotFound,
		},
		"submit to a match the caller is not in": {
			arrange: func(t *testing.T, f *fixture) (string, string, string, any) {
				var r api.RoomResponse
				f.do(t, http.MethodPost, "/v1/rooms", f.token(t, "u1", "U1"), api.CreateRoomRequest{SectionID: "S1", MatchType: domain.MatchTypePublic}, nil)
				f.do(t, http.MethodPost, "/v1/rooms", f.token(t, "u2", "U2"), api.CreateRoomRequest{SectionID: "S1", MatchType: domain.MatchTypePublic}, &r)
				require.NotEmpty(t, r.MatchID)
				return http.MethodPost, "/v1/matches/" + r.MatchID + "/submissions", f.token(t, "u3", "U3"), api.SubmitAnswersRequest{Responses: map[string]json.RawMessage{}}
			},
			wantCode: http.StatusForbidden,
		},
		"submit without responses": {
			arrange: func(t *testing.T, f *fixture) (string, string, string, any) {
				var r api.RoomResponse
				f.do(t, http.MethodPost, "/v1/rooms", f.token(t, "u1", "U1"), api.CreateRoomRequest{SectionID: "S1", MatchType: domain.MatchTypePublic}, nil)
				f.do(t, http.MethodPost, "/v1/rooms", f.token(t, "u2", "U2"), api.CreateRoomRequest{SectionID: "S1", MatchType: domain.MatchTypePublic}, &r)
				require.NotEmpty(t, r.MatchID)
				return http.MethodPost, "/v1/matches/" + r.MatchID + "/submissions", f.token(t, "u1", "U1"), map[string]any{}
			},
			wantCode: http.StatusBadRequest,
		},
		"bad leaderboard limit": {
			arrange: func(*testing.T, *fixture) (string, string, string, any) {
				return http.MethodGet, "/v1/sections/S1/leaderboard?limit=ten", "", nil
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := setup(t)
			method, path, token, body := tt.arrange(t, f)

			var out struct {
				Error struct {
					Message string `json:"message"`
				} `json:"error"`
			}
			code := f.do(t, method, path, token, body, &out)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, out.Error.Message)
		})
	}
}

func TestHTTP_InviteFlow(t *testing.T) {
	f := setup(t)

	var invite api.RoomResponse
	code := f.do(t, http.MethodPost, "/v1/rooms", f.token(t, "alice", "Alice"), api.CreateRoomRequest{
		SectionID:     "S1",
		MatchType:     domain.MatchTypeInvite,
		InvitedUserID: "bob",
	}, &invite)
	require.Equal(t, http.StatusOK, code)

	code = f.do(t, http.MethodPost, "/v1/rooms/"+invite.RoomID+"/join", f.token(t, "carol", "Carol"), nil, nil)
	assert.Equal(t, http.StatusForbidden, code)

	var joined api.RoomResponse
	code = f.do(t, http.MethodPost, "/v1/rooms/"+invite.RoomID+"/join", f.token(t, "bob", "Bob"), nil, &joined)
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, joined.MatchID)

	var r domain.Room
	code = f.do(t, http.MethodGet, "/v1/rooms/"+invite.RoomID, f.token(t, "alice", "Alice"), nil, &r)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, domain.RoomStatusReady, r.Status)
	assert.Equal(t, joined.MatchID, r.MatchID)
}

func (f *fixture) asUser(t *testing.T, userID, name string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+f.token(t, userID, name))
}

func TestGRPC_CreateRoom(t *testing.T) {
	f := setup(t)
	req := &quizduelv1.CreateRoomRequest{SectionId: "S1", MatchType: string(domain.MatchTypePublic)}

	_, err := f.client.CreateRoom(context.Background(), req)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := f.asUser(t, "u1", "U1")
	resp, err := f.client.CreateRoom(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetRoom().GetRoomId())
	assert.Len(t, resp.GetRoom().GetQuestionIds(), 7)
	assert.False(t, resp.GetRoom().GetIsJoiningExistingRoom())

	_, err = f.client.GetLeaderboard(ctx, &quizduelv1.GetLeaderboardRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGRPC_MatchFlow(t *testing.T) {
	f := setup(t)
	alice, bob := f.asUser(t, "alice", "Alice"), f.asUser(t, "bob", "Bob")

	invite, err := f.client.CreateRoom(alice, &quizduelv1.CreateRoomRequest{
		SectionId:       "mixed",
		MatchType:       string(domain.MatchTypeInvite),
		InvitedUserId:   "bob",
		SectionMetadata: map[string]string{"lesson": "animals"},
	})
	require.NoError(t, err)
	roomID := invite.GetRoom().GetRoomId()
	assert.ElementsMatch(t, []string{"fill", "pairs", "order"}, invite.GetRoom().GetQuestionIds())

	joined, err := f.client.JoinRoom(bob, &quizduelv1.JoinRoomRequest{RoomId: roomID})
	require.NoError(t, err)
	matchID := joined.GetRoom().GetMatchId()
	require.NotEmpty(t, matchID)

	room, err := f.client.GetRoom(alice, &quizduelv1.GetRoomRequest{RoomId: roomID})
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoomStatusReady), room.GetRoom().GetStatus())
	assert.Equal(t, "animals", room.GetRoom().GetSectionMetadata()["lesson"])
	require.Len(t, room.GetRoom().GetParticipants(), 2)
	assert.Equal(t, "alice", room.GetRoom().GetParticipants()[0].GetUserId())
	assert.NotNil(t, room.GetRoom().GetCreatedAt())

	scored, err := f.client.SubmitAnswers(alice, &quizduelv1.SubmitAnswersRequest{
		MatchId: matchID,
		Answers: []*quizduelv1.Answer{
			{QuestionId: "fill", Kind: &quizduelv1.Answer_Text{Text: "cat"}},
			{QuestionId: "pairs", Kind: &quizduelv1.Answer_Matching{Matching: &quizduelv1.MatchingAnswer{
				Pairs: map[string]string{"dog": "chien", "cat": "chat"},
			}}},
			{QuestionId: "order", Kind: &quizduelv1.Answer_Order{Order: &quizduelv1.OrderAnswer{
				Words: []string{"I", "like", "tea"},
			}}},
		},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, scored.GetCorrectCount())
	assert.EqualValues(t, 3, scored.GetTotalQuestions())

	// An empty answer list is a complete, all-wrong submission.
	scored, err = f.client.SubmitAnswers(bob, &quizduelv1.SubmitAnswersRequest{MatchId: matchID})
	require.NoError(t, err)
	assert.EqualValues(t, 0, scored.GetCorrectCount())

	m, err := f.client.GetMatch(bob, &quizduelv1.GetMatchRequest{MatchId: matchID})
	require.NoError(t, err)
	assert.Equal(t, string(domain.MatchStatusCompleted), m.GetMatch().GetStatus())
	assert.Equal(t, "alice", m.GetMatch().GetWinnerId())
	assert.NotNil(t, m.GetMatch().GetFinalizedAt())
	require.Len(t, m.GetMatch().GetSubmissions(), 2)
	assert.Equal(t, "alice", m.GetMatch().GetSubmissions()[0].GetUserId())
}

func TestGRPC_SubmitAnswers_Validation(t *testing.T) {
	f := setup(t)
	ctx := f.asUser(t, "alice", "Alice")

	tests := map[string]struct {
		answers []*quizduelv1.Answer
	}{
		"missing question id": {
			answers: []*quizduelv1.Answer{{Kind: &quizduelv1.Answer_Text{Text: "cat"}}},
		},
		"duplicate question id": {
			answers: []*quizduelv1.Answer{
				{QuestionId: "fill", Kind: &quizduelv1.Answer_Text{Text: "cat"}},
				{QuestionId: "fill", Kind: &quizduelv1.Answer_Text{Text: "dog"}},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := f.client.SubmitAnswers(ctx, &quizduelv1.SubmitAnswersRequest{MatchId: "m1", Answers: tc.answers})
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestPublishLeaderboardUpdated(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	sub := f.redis.Subscribe(ctx, "test:user:u1")
	t.Cleanup(func() { sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	err = f.api.PublishLeaderboardUpdated(ctx, domain.EventLeaderboardUpdated{
		Leaderboard: domain.Leaderboard{
			SectionID: "S1",
			Entries:   []domain.LeaderboardEntry{{UserID: "u1", UserName: "U1", Points: 10, Rank: 1}},
		},
		UserIDs: []string{"u1"},
	})
	require.NoError(t, err)

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"event":"leaderboard.updated","data":{"sectionId":"S1","entries":[{"userId":"u1","userName":"U1","points":10,"rank":1}]}}`,
		msg.Payload,
	)
}

func TestWS_RelaysMatchReady(t *testing.T) {
	f := setup(t)

	u := "ws" + strings.TrimPrefix(f.http.URL, "http") + "/v1/ws?token=" + f.token(t, "alice", "Alice")
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	f.do(t, http.MethodPost, "/v1/rooms", f.token(t, "alice", "Alice"), api.CreateRoomRequest{SectionID: "S1", MatchType: domain.MatchTypePublic}, nil)
	var joined api.RoomResponse
	f.do(t, http.MethodPost, "/v1/rooms", f.token(t, "bob", "Bob"), api.CreateRoomRequest{SectionID: "S1", MatchType: domain.MatchTypePublic}, &joined)
	require.NotEmpty(t, joined.MatchID)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var n struct {
		Event string                `json:"event"`
		Data  api.MatchNotification `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&n))
	assert.Equal(t, domain.EventNameMatchReady, n.Event)
	assert.Equal(t, joined.MatchID, n.Data.MatchID)
	assert.Equal(t, domain.MatchStatusLive, n.Data.Status)
}

func TestWS_RequiresIdentity(t *testing.T) {
	f := setup(t)

	u := "ws" + strings.TrimPrefix(f.http.URL, "http") + "/v1/ws"
	_, resp, err := websocket.DefaultDialer.Dial(u, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
