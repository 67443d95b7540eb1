package match

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/victornm/quizduel/internal/domain"
)

// ErrNotFound is returned when a match does not exist.
var ErrNotFound = stderrors.New("match: not found")

// Outcome is the result of ranking a match's submissions.
type Outcome struct {
	WinnerID string
	IsTie    bool
}

// Store persists matches and their submissions.
type Store interface {
	// CreateForRoom inserts m unless a match already exists for m.RoomID, in
	// which case the existing match is returned. At most one match is ever
	// stored per room.
	CreateForRoom(ctx context.Context, m domain.Match) (domain.Match, error)

	// Get returns the match with all its submissions.
	Get(ctx context.Context, matchID string) (domain.Match, error)

	// AddSubmission stores sub unless the user already submitted. It returns
	// the stored submission and whether this call inserted it.
	AddSubmission(ctx context.Context, matchID string, sub domain.Submission) (domain.Submission, bool, error)

	// Complete transitions a live match to completed, using decide to rank
	// the submissions read inside the same transaction. If the match is
	// already completed it is returned unchanged with false.
	Complete(ctx context.Context, matchID string, at time.Time, decide func(domain.Match) Outcome) (domain.Match, bool, error)

	// RecordCompositionGrade stores the external grader's verdict.
	RecordCompositionGrade(ctx context.Context, g CompositionGrade) error
}

// CompositionGrade is the out-of-band verdict for one composition answer. It
// never affects the match score.
type CompositionGrade struct {
	MatchID    string
	UserID     string
	QuestionID string
	Correct    bool
	GradedAt   time.Time
}
