// Package question is the read-only Question Source: it provides the quiz of
// a curriculum section to the matchmaking and scoring paths.
package question

import (
	"context"
	stderrors "errors"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/victornm/quizduel/internal/domain"
)

// ErrNotFound is returned when a section has no quiz.
var ErrNotFound = stderrors.New("question: quiz not found")

// Loader fetches a section's quiz from a backing store.
type Loader interface {
	LoadQuiz(ctx context.Context, sectionID string) (domain.Quiz, error)
}

// Cache fronts a Loader with a TTL cache. Concurrent misses for the same
// section share one load.
type Cache struct {
	loader Loader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group

	mu      sync.RWMutex
	rnd     *rand.Rand
	entries map[string]cachedQuiz
}

type cachedQuiz struct {
	quiz      domain.Quiz
	expiresAt time.Time
}

func NewCache(loader Loader, ttl time.Duration) *Cache {
	return &Cache{
		loader:  loader,
		ttl:     ttl,
		clock:   time.Now,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		entries: make(map[string]cachedQuiz),
	}
}

// GetQuiz returns the quiz of the section, loading it on a cache miss.
func (c *Cache) GetQuiz(ctx context.Context, sectionID string) (domain.Quiz, error) {
	if quiz, ok := c.lookup(sectionID); ok {
		return quiz, nil
	}

	result, err, _ := c.sf.Do(sectionID, func() (any, error) {
		if quiz, ok := c.lookup(sectionID); ok {
			return quiz, nil
		}

		quiz, err := c.loader.LoadQuiz(ctx, sectionID)
		if err != nil {
			return domain.Quiz{}, err
		}

		c.mu.Lock()
		c.entries[sectionID] = cachedQuiz{
			quiz:      quiz,
			expiresAt: c.clock().Add(c.ttlWithJitterLocked()),
		}
		c.mu.Unlock()
		return quiz, nil
	})
	if err != nil {
		return domain.Quiz{}, err
	}
	return result.(domain.Quiz), nil
}

func (c *Cache) lookup(sectionID string) (domain.Quiz, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[sectionID]
	if !ok || !entry.expiresAt.After(c.clock()) {
		return domain.Quiz{}, false
	}
	return entry.quiz, true
}

// ttlWithJitterLocked adds up to 10% to the ttl so entries loaded together
// do not expire together. c.mu must be held.
func (c *Cache) ttlWithJitterLocked() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}

// StaticLoader serves quizzes from an in-memory map (tests, demos).
type StaticLoader struct {
	quizzes map[string]domain.Quiz
}

func NewStaticLoader(quizzes map[string]domain.Quiz) *StaticLoader {
	return &StaticLoader{quizzes: quizzes}
}

func (l *StaticLoader) LoadQuiz(_ context.Context, sectionID string) (domain.Quiz, error) {
	if quiz, ok := l.quizzes[sectionID]; ok {
		return quiz, nil
	}
	return domain.Quiz{}, ErrNotFound
}
