//go:build integration_test

package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/victornm/quizduel/internal/api"
	quizduelv1 "github.com/victornm/quizduel/internal/api/proto/quizduel/v1"
	"github.com/victornm/quizduel/internal/auth"
	"github.com/victornm/quizduel/internal/domain"
)

// The demo runs against a local `quizduel serve` with the section below
// seeded in section_quizzes.
const (
	addr      = "localhost:8081"
	redisAddr = "localhost:6379"
	prefix    = "quizduel"
	section   = "demo-section"
)

func TestMatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		qc    = makeQuizClient(t)
		wg    = new(sync.WaitGroup)
		users = []string{"u1", "u2"}
	)

	rc := makeRedis(t)
	for _, u := range users {
		subscribeAsUser(t, rc, wg, u)
	}

	// Both players queue for the same section; the second one joins the first one's room
	var matchID string
	for _, u := range users {
		resp, err := qc.CreateRoom(asUser(ctx, u), &quizduelv1.CreateRoomRequest{
			SectionId: section,
			MatchType: string(domain.MatchTypePublic),
		})
		require.NoError(t, err)

		r := resp.GetRoom()
		t.Logf("User %q in room %s: joined=%v match=%q", u, r.GetRoomId(), r.GetIsJoiningExistingRoom(), r.GetMatchId())
		if r.GetMatchId() != "" {
			matchID = r.GetMatchId()
		}
	}
	require.NotEmpty(t, matchID, "second player should have been paired")

	// Both players submit concurrently, the last one finalizes the match
	var eg errgroup.Group
	for _, u := range users {
		eg.Go(func() error {
			resp, err := qc.SubmitAnswers(asUser(ctx, u), &quizduelv1.SubmitAnswersRequest{MatchId: matchID})
			if err != nil {
				return fmt.Errorf("user %q submit answers: %w", u, err)
			}

			t.Logf("User %q submitted: score=%d, correct=%d/%d", u, resp.GetScore(), resp.GetCorrectCount(), resp.GetTotalQuestions())
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	m, err := qc.GetMatch(asUser(ctx, users[0]), &quizduelv1.GetMatchRequest{MatchId: matchID})
	require.NoError(t, err)
	require.Equal(t, string(domain.MatchStatusCompleted), m.GetMatch().GetStatus())

	wg.Wait()
}

func asUser(ctx context.Context, u string) context.Context {
	secret := os.Getenv("AUTH_SECRET")
	if secret == "" {
		secret = "dev-secret"
	}

	token, err := auth.NewVerifier(secret).Sign(auth.Identity{UserID: u, UserName: u}, time.Hour)
	if err != nil {
		panic(err)
	}

	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func makeQuizClient(t *testing.T) quizduelv1.QuizDuelServiceClient {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return quizduelv1.NewQuizDuelServiceClient(conn)
}

// subscribeAsUser logs notifications until the user's match completes.
func subscribeAsUser(t *testing.T, rc redis.UniversalClient, wg *sync.WaitGroup, u string) {
	wg.Add(1)
	sub := subscribeRedis(t, rc, fmt.Sprintf("%s:user:%s", prefix, u))
	go func() {
		defer wg.Done()

		for msg := range sub {
			var n struct {
				Event string          `json:"event"`
				Data  json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				t.Logf("unmarshal notification: %v", err)
				continue
			}

			switch n.Event {
			case domain.EventNameMatchReady:
				t.Logf("%s: match ready", u)
			case domain.EventNameLeaderboardUpdated:
				var l domain.Leaderboard
				if err := json.Unmarshal(n.Data, &l); err != nil {
					t.Logf("unmarshal leaderboard: %v", err)
					continue
				}

				t.Logf("%s leaderboard:\n%s", u, formatLeaderboard(l))
			case domain.EventNameMatchCompleted:
				var m api.MatchNotification
				if err := json.Unmarshal(n.Data, &m); err != nil {
					t.Logf("unmarshal match: %v", err)
				}

				t.Logf("%s: match completed: winner=%q tie=%v", u, m.WinnerID, m.IsTie)
				return
			}
		}
	}()
}

func subscribeRedis(t *testing.T, rc redis.UniversalClient, channel string) <-chan *redis.Message {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	t.Cleanup(cancel)

	sub := rc.Subscribe(ctx, channel)
	t.Cleanup(func() { sub.Close() })

	c := make(chan *redis.Message)
	go func() {
		defer close(c)

		for {
			msg, err := sub.ReceiveMessage(ctx)
			if err != nil {
				t.Log(err)
				return
			}

			c <- msg
		}
	}()

	return c
}

func makeRedis(t *testing.T) redis.UniversalClient {
	r := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs: []string{redisAddr},
	})
	t.Cleanup(func() { r.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Ping(ctx).Err(); err != nil {
		t.Fatal(err)
	}

	return r
}

func formatLeaderboard(l domain.Leaderboard) string {
	var s string
	for _, e := range l.Entries {
		s += fmt.Sprintf("%d. %s: %d\n", e.Rank, e.UserName, e.Points)
	}
	return s
}
