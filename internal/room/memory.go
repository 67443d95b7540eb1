package room

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/victornm/quizduel/internal/domain"
)

// MemoryStore is an in-process Store. A single mutex makes every conditional
// write atomic.
type MemoryStore struct {
	mu    sync.Mutex
	rooms map[string]domain.Room
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: make(map[string]domain.Room),
	}
}

func (s *MemoryStore) Create(_ context.Context, r domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rooms[r.RoomID] = clone(r)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, roomID string) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[roomID]
	if !ok {
		return domain.Room{}, ErrNotFound
	}
	return clone(r), nil
}

func (s *MemoryStore) FindWaiting(_ context.Context, sectionID string, since time.Time) ([]domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rooms []domain.Room
	for _, r := range s.rooms {
		if r.SectionID != sectionID || !indexable(r) || r.CreatedAt.Before(since) {
			continue
		}
		if r.Status == domain.RoomStatusWaiting && len(r.Participants) == 1 {
			rooms = append(rooms, clone(r))
		}
	}

	slices.SortFunc(rooms, func(a, b domain.Room) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return rooms, nil
}

func (s *MemoryStore) Join(_ context.Context, roomID, userID string, p domain.Participant) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[roomID]
	if !ok {
		return domain.Room{}, ErrNotFound
	}
	if !r.Joinable(userID) {
		return domain.Room{}, ErrConflict
	}

	r = clone(r)
	r.Participants[userID] = p
	s.rooms[roomID] = r
	return clone(r), nil
}

func (s *MemoryStore) SetMatch(_ context.Context, roomID, matchID string) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[roomID]
	if !ok {
		return domain.Room{}, ErrNotFound
	}
	if r.MatchID == "" {
		r.MatchID = matchID
		r.Status = domain.RoomStatusReady
		s.rooms[roomID] = r
	}
	return clone(r), nil
}

func clone(r domain.Room) domain.Room {
	r.Participants = maps.Clone(r.Participants)
	r.QuestionIDs = slices.Clone(r.QuestionIDs)
	r.SectionMetadata = maps.Clone(r.SectionMetadata)
	return r
}
