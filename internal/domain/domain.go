package domain

import (
	"time"
)

type MatchType string

const (
	MatchTypePublic MatchType = "public"
	MatchTypeInvite MatchType = "invite"
)

func (t MatchType) Valid() bool {
	return t == MatchTypePublic || t == MatchTypeInvite
}

type RoomStatus string

const (
	RoomStatusWaiting RoomStatus = "waiting"
	RoomStatusReady   RoomStatus = "ready"
)

type MatchStatus string

const (
	MatchStatusLive      MatchStatus = "live"
	MatchStatusCompleted MatchStatus = "completed"
)

// MaxParticipants is the size of a full room.
const MaxParticipants = 2

// SectionMetadata describes where a section sits in the curriculum
// (grade, unit, lesson, titles). It is copied verbatim from room to match.
type SectionMetadata map[string]string

type Participant struct {
	UserName string    `json:"userName"`
	JoinedAt time.Time `json:"joinedAt"`
	Status   string    `json:"status"`
}

const ParticipantStatusJoined = "joined"

// Room is a transient matchmaking lobby for up to two participants on one section.
type Room struct {
	RoomID                  string                 `json:"roomId"`
	SectionID               string                 `json:"sectionId"`
	MatchType               MatchType              `json:"matchType"`
	CreatedBy               string                 `json:"createdBy"`
	CreatedAt               time.Time              `json:"createdAt"`
	Status                  RoomStatus             `json:"status"`
	QuestionIDs             []string               `json:"questionIds"`
	TimerPerQuestionSeconds int                    `json:"timerPerQuestionSeconds"`
	Participants            map[string]Participant `json:"participants"`
	InvitedUserID           string                 `json:"invitedUserId,omitempty"`
	MatchID                 string                 `json:"matchId,omitempty"`
	SectionMetadata         SectionMetadata        `json:"sectionMetadata,omitempty"`
}

// Joinable reports whether userID may be added as the second participant.
func (r *Room) Joinable(userID string) bool {
	if r.Status != RoomStatusWaiting || len(r.Participants) != 1 {
		return false
	}
	if _, ok := r.Participants[userID]; ok {
		return false
	}
	return r.InvitedUserID == "" || r.InvitedUserID == userID
}

// Match is the live, scored competition created once a room fills.
type Match struct {
	MatchID                 string                 `json:"matchId"`
	RoomID                  string                 `json:"roomId"`
	SectionID               string                 `json:"sectionId"`
	Status                  MatchStatus            `json:"status"`
	QuestionIDs             []string               `json:"questionIds"`
	TimerPerQuestionSeconds int                    `json:"timerPerQuestionSeconds"`
	Participants            map[string]Participant `json:"participants"`
	SectionMetadata         SectionMetadata        `json:"sectionMetadata,omitempty"`
	Submissions             map[string]Submission  `json:"submissions"`
	WinnerID                string                 `json:"winnerId,omitempty"`
	IsTie                   bool                   `json:"isTie"`
	CreatedAt               time.Time              `json:"createdAt"`
	FinalizedAt             *time.Time             `json:"finalizedAt,omitempty"`
}

// Deadline is the last instant a submission is accepted for the match.
func (m *Match) Deadline(grace time.Duration) time.Time {
	d := time.Duration(m.TimerPerQuestionSeconds*len(m.QuestionIDs)) * time.Second
	return m.CreatedAt.Add(d + grace)
}

// Submission is a participant's final answer set and its server-computed score.
type Submission struct {
	UserID         string    `json:"userId"`
	CorrectCount   int       `json:"correctCount"`
	TotalPoints    int       `json:"totalPoints"`
	TotalQuestions int       `json:"totalQuestions"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// LeaderboardEntry is one ranked row of a section leaderboard.
type LeaderboardEntry struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Points   int    `json:"points"`
	Rank     int    `json:"rank"`
}

// Leaderboard is sorted by points in descending order, ranks start at 1.
type Leaderboard struct {
	SectionID string             `json:"sectionId"`
	Entries   []LeaderboardEntry `json:"entries"`
}
