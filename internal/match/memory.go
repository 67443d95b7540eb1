package match

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/victornm/quizduel/internal/domain"
)

// MemoryStore is an in-process Store for tests and single-node demos.
type MemoryStore struct {
	mu      sync.Mutex
	matches map[string]domain.Match
	byRoom  map[string]string
	grades  map[string]CompositionGrade
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		matches: make(map[string]domain.Match),
		byRoom:  make(map[string]string),
		grades:  make(map[string]CompositionGrade),
	}
}

func (s *MemoryStore) CreateForRoom(_ context.Context, m domain.Match) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byRoom[m.RoomID]; ok {
		return clone(s.matches[id]), nil
	}

	m = clone(m)
	if m.Submissions == nil {
		m.Submissions = make(map[string]domain.Submission)
	}
	s.matches[m.MatchID] = m
	s.byRoom[m.RoomID] = m.MatchID
	return clone(m), nil
}

func (s *MemoryStore) Get(_ context.Context, matchID string) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches[matchID]
	if !ok {
		return domain.Match{}, ErrNotFound
	}
	return clone(m), nil
}

func (s *MemoryStore) AddSubmission(_ context.Context, matchID string, sub domain.Submission) (domain.Submission, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches[matchID]
	if !ok {
		return domain.Submission{}, false, ErrNotFound
	}
	if existing, ok := m.Submissions[sub.UserID]; ok {
		return existing, false, nil
	}

	m = clone(m)
	m.Submissions[sub.UserID] = sub
	s.matches[matchID] = m
	return sub, true, nil
}

func (s *MemoryStore) Complete(_ context.Context, matchID string, at time.Time, decide func(domain.Match) Outcome) (domain.Match, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches[matchID]
	if !ok {
		return domain.Match{}, false, ErrNotFound
	}
	if m.Status == domain.MatchStatusCompleted {
		return clone(m), false, nil
	}

	m = clone(m)
	out := decide(clone(m))
	m.Status = domain.MatchStatusCompleted
	m.WinnerID = out.WinnerID
	m.IsTie = out.IsTie
	m.FinalizedAt = &at
	s.matches[matchID] = m

	return clone(m), true, nil
}

func (s *MemoryStore) RecordCompositionGrade(_ context.Context, g CompositionGrade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grades[g.MatchID+"/"+g.UserID+"/"+g.QuestionID] = g
	return nil
}

// CompositionGrades returns the recorded grades of a match.
func (s *MemoryStore) CompositionGrades(matchID string) []CompositionGrade {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []CompositionGrade
	for _, g := range s.grades {
		if g.MatchID == matchID {
			out = append(out, g)
		}
	}
	return out
}

func clone(m domain.Match) domain.Match {
	m.QuestionIDs = slices.Clone(m.QuestionIDs)
	m.Participants = maps.Clone(m.Participants)
	m.SectionMetadata = maps.Clone(m.SectionMetadata)
	m.Submissions = maps.Clone(m.Submissions)
	if m.Submissions == nil {
		m.Submissions = make(map[string]domain.Submission)
	}
	return m
}
