package ticker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRun_StopsWhenFnReturnsFalse(t *testing.T) {
	var calls int
	err := Run(context.Background(), time.Millisecond, func(time.Time) bool {
		calls++
		return calls < 3
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, time.Hour, func(time.Time) bool {
		t.Error("fn called after cancel")
		return true
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestGroup_StopHaltsEveryTimer(t *testing.T) {
	g := NewGroup(context.Background())
	var ticks atomic.Int64
	g.Go(time.Millisecond, func(time.Time) bool { ticks.Add(1); return true })
	g.Go(time.Millisecond, func(time.Time) bool { ticks.Add(1); return true })

	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() < 4 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	g.Stop()
	if n := g.Active(); n != 0 {
		t.Fatalf("Active() = %d after Stop", n)
	}
	after := ticks.Load()
	time.Sleep(10 * time.Millisecond)
	if ticks.Load() != after {
		t.Error("a timer ticked after Stop returned")
	}
	g.Stop()
}

func TestGroup_ParentCancelStopsTimers(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	g := NewGroup(parent)
	g.Go(time.Hour, func(time.Time) bool { return true })
	cancel()
	g.Stop()
	if n := g.Active(); n != 0 {
		t.Errorf("Active() = %d", n)
	}
}

func TestGroup_SelfFinishingTimer(t *testing.T) {
	g := NewGroup(context.Background())
	defer g.Stop()
	done := make(chan struct{})
	g.Go(time.Millisecond, func(time.Time) bool {
		close(done)
		return false
	})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
}

func TestTypewriter(t *testing.T) {
	tw := NewTypewriter("héllo")
	if tw.String() != "" || tw.Done() {
		t.Fatalf("fresh typewriter = %q done=%v", tw.String(), tw.Done())
	}
	want := []string{"h", "hé", "hél", "héll", "héllo"}
	for i, w := range want {
		var done bool
		tw, done = tw.Next()
		if tw.String() != w {
			t.Errorf("step %d = %q, want %q", i, tw.String(), w)
		}
		if done != (i == len(want)-1) {
			t.Errorf("step %d done = %v", i, done)
		}
	}
	tw, done := tw.Next()
	if !done || tw.String() != "héllo" {
		t.Errorf("past the end = %q done=%v", tw.String(), done)
	}
}

func TestClock(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	c := NewClock(start).Tick(start.Add(3*time.Minute + 5*time.Second))
	if got := c.Time(); got != "09:03:05" {
		t.Errorf("Time() = %q", got)
	}
	if got := c.Date(); got != "Sat 1 Mar 2025" {
		t.Errorf("Date() = %q", got)
	}
	if got := c.Age(); got != "3 minutes ago" {
		t.Errorf("Age() = %q", got)
	}
}
