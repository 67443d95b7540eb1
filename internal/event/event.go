package event

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

const (
	defaultPoolSize = 1000
	defaultTimeout  = 30 * time.Second
)

type Event interface {
	Name() string
}

type Handler func(ctx context.Context, e Event) error

// SubscribeOption tunes how a single handler is delivered to.
type SubscribeOption func(*subscription)

// WithRetry redelivers an event to the handler up to attempts times in total,
// sleeping backoff, 2*backoff, 4*backoff... between tries. Handlers subscribed
// with retry must be idempotent since they may observe the same event twice.
func WithRetry(attempts int, backoff time.Duration) SubscribeOption {
	return func(s *subscription) {
		if attempts > 0 {
			s.attempts = attempts
		}
		s.backoff = backoff
	}
}

type subscription struct {
	handler  Handler
	attempts int
	backoff  time.Duration
}

// Bus is an in-memory event bus. Handlers run asynchronously, bounded by a
// shared worker pool.
type Bus struct {
	pool     chan struct{}
	wg       *sync.WaitGroup
	mu       sync.RWMutex
	handlers map[string][]subscription
}

// NewBus create a new event bus. Caller should call Stop for graceful shutdown the bus.
func NewBus() *Bus {
	return &Bus{
		pool:     make(chan struct{}, defaultPoolSize),
		wg:       new(sync.WaitGroup),
		handlers: make(map[string][]subscription),
	}
}

// Subscribe to an event
func (b *Bus) Subscribe(name string, h Handler, opts ...SubscribeOption) {
	s := subscription{handler: h, attempts: 1}
	for _, opt := range opts {
		opt(&s)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], s)
}

// Publish an event
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, s := range b.handlers[e.Name()] {
		b.dispatch(ctx, s, e)
	}
}

func (b *Bus) dispatch(ctx context.Context, s subscription, e Event) {
	b.wg.Add(1)

	b.pool <- struct{}{}

	go func() {
		ctx := context.WithoutCancel(ctx)
		defer func() {
			<-b.pool
			b.wg.Done()
		}()

		backoff := s.backoff
		for attempt := 1; attempt <= s.attempts; attempt++ {
			err := b.run(ctx, s.handler, e)
			if err == nil {
				return
			}

			slog.ErrorContext(ctx, "event: handle event failed",
				"event", e.Name(),
				"attempt", attempt,
				"error", err,
			)

			if attempt < s.attempts && backoff > 0 {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
	}()
}

func (b *Bus) run(ctx context.Context, h Handler, e Event) (err error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v, stack: %s", r, debug.Stack())
		}
		cancel()
	}()

	return h(ctx, e)
}

// Stop waits for all handlers to finish
func (b *Bus) Stop() {
	b.wg.Wait()
}
