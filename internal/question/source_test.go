package question_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victornm/quizduel/internal/domain"
	"github.com/victornm/quizduel/internal/question"
)

func TestCache_GetQuiz(t *testing.T) {
	loader := &countingLoader{Loader: question.NewStaticLoader(map[string]domain.Quiz{
		"s1": sampleQuiz(),
	})}
	c := question.NewCache(loader, time.Minute)

	for i := 0; i < 3; i++ {
		quiz, err := c.GetQuiz(context.Background(), "s1")
		require.NoError(t, err)
		assert.Len(t, quiz.Questions, 2)
	}
	assert.EqualValues(t, 1, loader.calls.Load(), "loader should be called once")
}

func TestCache_ReloadsAfterTTL(t *testing.T) {
	loader := &countingLoader{Loader: question.NewStaticLoader(map[string]domain.Quiz{
		"s1": sampleQuiz(),
	})}
	c := question.NewCache(loader, 10*time.Millisecond)

	_, err := c.GetQuiz(context.Background(), "s1")
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)
	_, err = c.GetQuiz(context.Background(), "s1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, loader.calls.Load(), "expired entry should be reloaded")
}

func TestCache_ConcurrentMissesShareOneLoad(t *testing.T) {
	release := make(chan struct{})
	loader := &countingLoader{
		Loader: question.NewStaticLoader(map[string]domain.Quiz{"s1": sampleQuiz()}),
		gate:   release,
	}
	c := question.NewCache(loader, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.GetQuiz(context.Background(), "s1")
			assert.NoError(t, err)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, loader.calls.Load())
}

func TestCache_NotFoundIsNotCached(t *testing.T) {
	loader := &countingLoader{Loader: question.NewStaticLoader(nil)}
	c := question.NewCache(loader, time.Minute)

	_, err := c.GetQuiz(context.Background(), "missing")
	require.ErrorIs(t, err, question.ErrNotFound)

	_, err = c.GetQuiz(context.Background(), "missing")
	require.ErrorIs(t, err, question.ErrNotFound)
	assert.EqualValues(t, 2, loader.calls.Load())
}

type countingLoader struct {
	question.Loader
	calls atomic.Int32
	gate  chan struct{}
}

func (l *countingLoader) LoadQuiz(ctx context.Context, sectionID string) (domain.Quiz, error) {
	l.calls.Add(1)
	if l.gate != nil {
		<-l.gate
	}
	return l.Loader.LoadQuiz(ctx, sectionID)
}

func sampleQuiz() domain.Quiz {
	return domain.Quiz{
		SectionID: "s1",
		Questions: []domain.Question{
			{ID: "q1", Type: domain.QuestionTypeFillBlank, Answers: []string{"cat"}, Points: 1},
			{ID: "q2", Type: domain.QuestionTypeOrderWords, Order: []string{"the", "cat"}, Points: 2},
		},
	}
}
