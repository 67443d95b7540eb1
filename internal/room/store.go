// Package room holds the Room Store: transient, low-latency state for
// matchmaking rooms and their participant sets.
package room

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/victornm/quizduel/internal/domain"
)

var (
	// ErrNotFound is returned when a room does not exist (or has expired).
	ErrNotFound = stderrors.New("room: not found")
	// ErrConflict is returned when a conditional write lost: the room is no
	// longer joinable, or it changed between read and write.
	ErrConflict = stderrors.New("room: conditional write failed")
)

// Store persists rooms. Every mutation of an existing room is a
// compare-and-swap, so concurrent writers never overwrite each other.
type Store interface {
	// Create stores a new room. Public rooms without an invitee become
	// candidates for FindWaiting.
	Create(ctx context.Context, r domain.Room) error

	Get(ctx context.Context, roomID string) (domain.Room, error)

	// FindWaiting lists public, invite-free rooms of the section that are
	// waiting with exactly one participant and were created after since,
	// oldest first.
	FindWaiting(ctx context.Context, sectionID string, since time.Time) ([]domain.Room, error)

	// Join adds userID as the second participant. It succeeds only if the
	// room is still joinable by userID at write time, otherwise ErrConflict.
	Join(ctx context.Context, roomID, userID string, p domain.Participant) (domain.Room, error)

	// SetMatch marks the room ready and points it at matchID. If the room
	// already has a match id, it is returned unchanged.
	SetMatch(ctx context.Context, roomID, matchID string) (domain.Room, error)
}

func indexable(r domain.Room) bool {
	return r.MatchType == domain.MatchTypePublic && r.InvitedUserID == ""
}
