package event_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/victornm/quizduel/internal/event"
)

func TestBus_PublishSubscribe(t *testing.T) {
	const (
		filled    = "room.filled"
		ready     = "match.ready"
		completed = "match.completed"
	)

	tests := map[string]struct {
		published     []string
		subscriptions map[string][]string // handler -> event names
		assert        func(t *testing.T, received map[string][]string)
	}{
		"handler only receives the events it subscribed to": {
			published:     []string{filled, ready},
			subscriptions: map[string][]string{"promoter": {filled}},
			assert: func(t *testing.T, received map[string][]string) {
				assert.Equal(t, []string{filled}, received["promoter"])
			},
		},
		"repeated events are delivered every time": {
			published:     []string{completed, completed},
			subscriptions: map[string][]string{"leaderboard": {completed}},
			assert: func(t *testing.T, received map[string][]string) {
				assert.Equal(t, []string{completed, completed}, received["leaderboard"])
			},
		},
		"every subscriber of an event receives it": {
			published: []string{completed, ready, filled, completed},
			subscriptions: map[string][]string{
				"leaderboard": {completed},
				"notifier":    {ready, completed},
				"promoter":    {filled},
			},
			assert: func(t *testing.T, received map[string][]string) {
				assert.ElementsMatch(t, []string{completed, completed}, received["leaderboard"])
				assert.ElementsMatch(t, []string{ready, completed, completed}, received["notifier"])
				assert.ElementsMatch(t, []string{filled}, received["promoter"])
			},
		},
		"events without subscribers are dropped": {
			published:     []string{ready},
			subscriptions: map[string][]string{},
			assert: func(t *testing.T, received map[string][]string) {
				assert.Empty(t, received)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var mu sync.Mutex
			received := make(map[string][]string)

			b := event.NewBus()
			for handler, names := range tt.subscriptions {
				for _, n := range names {
					b.Subscribe(n, func(ctx context.Context, e event.Event) error {
						mu.Lock()
						received[handler] = append(received[handler], e.Name())
						mu.Unlock()
						return nil
					})
				}
			}

			for _, n := range tt.published {
				b.Publish(context.Background(), eventWithName(n))
				// Delivery is asynchronous; wait so per-handler order follows publish order.
				b.Stop()
			}

			tt.assert(t, received)
		})
	}
}

func TestBus_Retry(t *testing.T) {
	tests := map[string]struct {
		failures    int32
		attempts    int
		panics      bool
		wantCalls   int32
		wantHandled bool
	}{
		"handler succeeding on the second attempt is called twice": {
			failures:    1,
			attempts:    3,
			wantCalls:   2,
			wantHandled: true,
		},
		"handler is not called more than the attempt budget": {
			failures:    5,
			attempts:    3,
			wantCalls:   3,
			wantHandled: false,
		},
		"handler without retry is called once": {
			failures:    1,
			attempts:    1,
			wantCalls:   1,
			wantHandled: false,
		},
		"panicking handler is retried": {
			failures:    1,
			attempts:    2,
			panics:      true,
			wantCalls:   2,
			wantHandled: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var calls, handled atomic.Int32
			b := event.NewBus()
			b.Subscribe("e1", func(ctx context.Context, e event.Event) error {
				n := calls.Add(1)
				if n <= tt.failures {
					if tt.panics {
						panic("boom")
					}
					return errors.New("transient")
				}
				handled.Add(1)
				return nil
			}, event.WithRetry(tt.attempts, time.Millisecond))

			b.Publish(context.Background(), eventWithName("e1"))
			b.Stop()

			assert.Equal(t, tt.wantCalls, calls.Load())
			assert.Equal(t, tt.wantHandled, handled.Load() == 1)
		})
	}
}

func TestBus_HandlerOutlivesPublisherContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var got error
	b := event.NewBus()
	b.Subscribe("e1", func(ctx context.Context, e event.Event) error {
		got = ctx.Err()
		return nil
	})

	cancel()
	b.Publish(ctx, eventWithName("e1"))
	b.Stop()

	assert.NoError(t, got)
}

type eventWithName string

func (e eventWithName) Name() string {
	return string(e)
}
