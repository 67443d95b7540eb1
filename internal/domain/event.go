package domain

const (
	EventNameRoomFilled           = "room.filled"
	EventNameMatchReady           = "match.ready"
	EventNameMatchCompleted       = "match.completed"
	EventNameLeaderboardUpdated   = "leaderboard.updated"
	EventNameCompositionSubmitted = "composition.submitted"
)

// EventRoomFilled is published when a room reaches two participants and the
// synchronous promotion did not succeed.
type EventRoomFilled struct {
	RoomID string
}

func (EventRoomFilled) Name() string { return EventNameRoomFilled }

type EventMatchReady struct {
	Match Match
}

func (EventMatchReady) Name() string { return EventNameMatchReady }

type EventMatchCompleted struct {
	Match Match
}

func (EventMatchCompleted) Name() string { return EventNameMatchCompleted }

type EventLeaderboardUpdated struct {
	Leaderboard Leaderboard
	// UserIDs are the participants whose points changed.
	UserIDs []string
}

func (EventLeaderboardUpdated) Name() string { return EventNameLeaderboardUpdated }

type EventCompositionSubmitted struct {
	MatchID    string
	UserID     string
	QuestionID string
	Prompt     string
	Answer     string
}

func (EventCompositionSubmitted) Name() string { return EventNameCompositionSubmitted }
