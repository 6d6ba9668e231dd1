package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

const wait = time.Second

func receive(t *testing.T, ch <-chan time.Time) time.Time {
	t.Helper()
	select {
	case got := <-ch:
		return got
	case <-time.After(wait):
		t.Fatal("timed out waiting for tick")
	}
	return time.Time{}
}

func expectNone(t *testing.T, ch <-chan time.Time) {
	t.Helper()
	select {
	case got := <-ch:
		t.Fatalf("unexpected tick at %v", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscribeFiresAfterInterval(t *testing.T) {
	fc := clockwork.NewFakeClock()
	src := NewSource(fc)
	start := fc.Now()

	ticks := make(chan time.Time, 10)
	unsubscribe := src.Subscribe(func(now time.Time) { ticks <- now }, time.Second)
	defer unsubscribe()

	// No immediate fire
	fc.Advance(999 * time.Millisecond)
	expectNone(t, ticks)

	fc.Advance(time.Millisecond)
	got := receive(t, ticks)
	if want := start.Add(time.Second); !got.Equal(want) {
		t.Errorf("first tick = %v, want %v", got, want)
	}

	fc.Advance(time.Second)
	got = receive(t, ticks)
	if want := start.Add(2 * time.Second); !got.Equal(want) {
		t.Errorf("second tick = %v, want %v", got, want)
	}
}

func TestSubscribeDefaultInterval(t *testing.T) {
	fc := clockwork.NewFakeClock()
	src := NewSource(fc)

	ticks := make(chan time.Time, 10)
	unsubscribe := src.Subscribe(func(now time.Time) { ticks <- now }, 0)
	defer unsubscribe()

	fc.Advance(DefaultInterval / 2)
	expectNone(t, ticks)
	fc.Advance(DefaultInterval / 2)
	receive(t, ticks)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	fc := clockwork.NewFakeClock()
	src := NewSource(fc)

	ticks := make(chan time.Time, 10)
	unsubscribe := src.Subscribe(func(now time.Time) { ticks <- now }, time.Second)

	fc.Advance(time.Second)
	receive(t, ticks)

	unsubscribe()
	if src.Len() != 0 {
		t.Errorf("Len() = %d after unsubscribe, want 0", src.Len())
	}

	fc.Advance(5 * time.Second)
	expectNone(t, ticks)

	// Idempotent
	unsubscribe()
}

func TestUnsubscribeWaitsForRunningCallback(t *testing.T) {
	fc := clockwork.NewFakeClock()
	src := NewSource(fc)

	entered := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool

	unsubscribe := src.Subscribe(func(time.Time) {
		close(entered)
		<-release
		finished.Store(true)
	}, time.Second)

	fc.Advance(time.Second)
	<-entered

	done := make(chan struct{})
	go func() {
		unsubscribe()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("unsubscribe returned while callback was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-done:
	case <-time.After(wait):
		t.Fatal("unsubscribe did not return")
	}
	if !finished.Load() {
		t.Error("callback did not finish before unsubscribe returned")
	}
}

func TestIndependentSubscriptions(t *testing.T) {
	fc := clockwork.NewFakeClock()
	src := NewSource(fc)

	fast := make(chan time.Time, 10)
	slow := make(chan time.Time, 10)
	stopFast := src.Subscribe(func(now time.Time) { fast <- now }, time.Second)
	stopSlow := src.Subscribe(func(now time.Time) { slow <- now }, 2*time.Second)
	defer stopSlow()

	if src.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", src.Len())
	}

	fc.Advance(time.Second)
	receive(t, fast)
	expectNone(t, slow)

	stopFast()
	fc.Advance(time.Second)
	receive(t, slow)
	expectNone(t, fast)
}

func TestClose(t *testing.T) {
	fc := clockwork.NewFakeClock()
	src := NewSource(fc)

	ticks := make(chan time.Time, 10)
	for i := 0; i < 3; i++ {
		src.Subscribe(func(now time.Time) { ticks <- now }, time.Second)
	}
	src.Close()

	if src.Len() != 0 {
		t.Errorf("Len() = %d after Close, want 0", src.Len())
	}
	fc.Advance(time.Second)
	expectNone(t, ticks)
}

func TestNow(t *testing.T) {
	fc := clockwork.NewFakeClockAt(time.Date(2024, 1, 5, 14, 5, 9, 0, time.UTC))
	src := NewSource(fc)
	if got := src.Now(); got.Hour() != 14 || got.Minute() != 5 {
		t.Errorf("Now() = %v", got)
	}
	if NewSource(nil).Now().IsZero() {
		t.Error("nil clock should fall back to the real clock")
	}
}
