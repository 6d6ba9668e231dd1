// Package clock delivers periodic "now" instants to subscribers.
package clock

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/logger"
)

// DefaultInterval is used when Subscribe is given a non-positive interval.
const DefaultInterval = constants.DefaultTickInterval

type subscription struct {
	id     uuid.UUID
	ticker clockwork.Ticker
	done   chan struct{}

	// mu is held while the callback runs; closed is only read under it.
	mu     sync.Mutex
	closed bool
	once   sync.Once
}

// Source fans out ticks from a clockwork.Clock. Each subscription has its own
// ticker and goroutine, so callbacks of one subscription never overlap.
type Source struct {
	clock clockwork.Clock

	mu   sync.Mutex
	subs map[uuid.UUID]*subscription
}

// NewSource creates a Source reading time from clk. A nil clock means the
// real wall clock.
func NewSource(clk clockwork.Clock) *Source {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &Source{
		clock: clk,
		subs:  make(map[uuid.UUID]*subscription),
	}
}

// Now returns the current instant of the underlying clock.
func (s *Source) Now() time.Time {
	return s.clock.Now()
}

// Subscribe calls cb with the current instant every interval, starting one
// interval from now. The returned function stops delivery; it may be called
// more than once, and once it returns no further callback starts. It waits for
// a callback that is already running, so it must not be called from inside cb.
func (s *Source) Subscribe(cb func(time.Time), interval time.Duration) func() {
	if interval <= 0 {
		interval = DefaultInterval
	}

	sub := &subscription{
		id:     uuid.New(),
		ticker: s.clock.NewTicker(interval),
		done:   make(chan struct{}),
	}

	s.mu.Lock()
	s.subs[sub.id] = sub
	s.mu.Unlock()

	logger.Debug("Time source subscription added", "id", sub.id, "interval", interval)

	go sub.run(cb)

	return func() { s.unsubscribe(sub) }
}

func (sub *subscription) run(cb func(time.Time)) {
	for {
		select {
		case <-sub.done:
			return
		case t := <-sub.ticker.Chan():
			sub.mu.Lock()
			if !sub.closed {
				cb(t)
			}
			sub.mu.Unlock()
		}
	}
}

func (s *Source) unsubscribe(sub *subscription) {
	sub.once.Do(func() {
		sub.mu.Lock()
		sub.closed = true
		sub.mu.Unlock()

		sub.ticker.Stop()
		close(sub.done)

		s.mu.Lock()
		delete(s.subs, sub.id)
		s.mu.Unlock()

		logger.Debug("Time source subscription removed", "id", sub.id)
	})
}

// Len reports the number of active subscriptions.
func (s *Source) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Close stops every subscription.
func (s *Source) Close() {
	s.mu.Lock()
	subs := make([]*subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		s.unsubscribe(sub)
	}
}
