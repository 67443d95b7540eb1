package api

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/victornm/quizduel/internal/domain"
)

const maxConcurrent = 100

type (
	Notification struct {
		Event string `json:"event"`
		Data  any    `json:"data"`
	}

	MatchNotification struct {
		MatchID     string             `json:"matchId"`
		RoomID      string             `json:"roomId"`
		SectionID   string             `json:"sectionId"`
		Status      domain.MatchStatus `json:"status"`
		QuestionIDs []string           `json:"questionIds,omitempty"`
		WinnerID    string             `json:"winnerId,omitempty"`
		IsTie       bool               `json:"isTie"`
	}
)

func (a *API) PublishMatchReady(ctx context.Context, e domain.EventMatchReady) error {
	return a.notifyParticipants(ctx, e.Match, e.Name())
}

func (a *API) PublishMatchCompleted(ctx context.Context, e domain.EventMatchCompleted) error {
	return a.notifyParticipants(ctx, e.Match, e.Name())
}

func (a *API) notifyParticipants(ctx context.Context, m domain.Match, event string) error {
	data := MatchNotification{
		MatchID:     m.MatchID,
		RoomID:      m.RoomID,
		SectionID:   m.SectionID,
		Status:      m.Status,
		QuestionIDs: m.QuestionIDs,
		WinnerID:    m.WinnerID,
		IsTie:       m.IsTie,
	}

	users := make([]string, 0, len(m.Participants))
	for userID := range m.Participants {
		users = append(users, userID)
	}

	return a.publishToUsers(ctx, users, event, data)
}

// PublishLeaderboardUpdated notifies the players whose points changed.
func (a *API) PublishLeaderboardUpdated(ctx context.Context, e domain.EventLeaderboardUpdated) error {
	return a.publishToUsers(ctx, e.UserIDs, e.Name(), e.Leaderboard)
}

func (a *API) publishToUsers(ctx context.Context, users []string, event string, data any) error {
	var eg errgroup.Group
	eg.SetLimit(maxConcurrent)

	for _, user := range users {
		eg.Go(func() error {
			return a.publishNotification(ctx, user, event, data)
		})
	}

	return eg.Wait()
}

func (a *API) publishNotification(ctx context.Context, user, event string, data any) error {
	n := Notification{
		Event: event,
		Data:  data,
	}

	b, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("pubsub: marshal %s: %v", event, err)
	}

	return a.redis.Publish(ctx, a.userChannel(user), b).Err()
}

func (a *API) userChannel(user string) string {
	return fmt.Sprintf("%s:user:%s", a.prefix, user)
}
