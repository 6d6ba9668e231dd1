package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/clockface/internal/clock"
)

// TickMsg carries an instant delivered by the time source.
type TickMsg time.Time

// tickBridge moves ticks from the time source goroutine into the bubbletea
// loop. The slot holds only the latest instant; a slow render skips ticks
// instead of queueing them.
type tickBridge struct {
	ch chan time.Time

	mu          sync.Mutex
	unsubscribe func()
	stopped     bool
}

func newTickBridge() *tickBridge {
	return &tickBridge{ch: make(chan time.Time, 1)}
}

func (b *tickBridge) start(src *clock.Source, interval time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.unsubscribe != nil || b.stopped {
		return
	}
	b.unsubscribe = src.Subscribe(func(t time.Time) {
		select {
		case <-b.ch:
		default:
		}
		select {
		case b.ch <- t:
		default:
		}
	}, interval)
}

// wait returns a command that blocks until the next tick.
func (b *tickBridge) wait() tea.Cmd {
	return func() tea.Msg {
		t, ok := <-b.ch
		if !ok {
			return nil
		}
		return TickMsg(t)
	}
}

// stop unsubscribes and releases any pending wait.
func (b *tickBridge) stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return
	}
	b.stopped = true
	if b.unsubscribe != nil {
		b.unsubscribe()
	}
	close(b.ch)
}
