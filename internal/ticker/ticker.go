// Package ticker runs the decorative interval timers (typewriter banner,
// live clock). Each timer belongs to a Group and is stopped when the group
// stops, whichever way its owner exits.
package ticker

import (
	"context"
	"sync"
	"time"
)

// Run calls fn on every tick until ctx is done or fn returns false. The
// underlying time.Ticker is stopped on every return path.
func Run(ctx context.Context, every time.Duration, fn func(time.Time) bool) error {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			if !fn(now) {
				return nil
			}
		}
	}
}

// Group owns a set of timers started with Go.
type Group struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	active int
}

// NewGroup returns a Group whose timers also stop when parent is done.
func NewGroup(parent context.Context) *Group {
	ctx, cancel := context.WithCancel(parent)
	return &Group{ctx: ctx, cancel: cancel}
}

// Go starts a timer calling fn every interval; see Run.
func (g *Group) Go(every time.Duration, fn func(time.Time) bool) {
	g.mu.Lock()
	g.active++
	g.mu.Unlock()
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			g.mu.Lock()
			g.active--
			g.mu.Unlock()
		}()
		_ = Run(g.ctx, every, fn)
	}()
}

// Active returns the number of timers still running.
func (g *Group) Active() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// Stop cancels every timer and waits for them to return. It is safe to call
// more than once.
func (g *Group) Stop() {
	g.cancel()
	g.wg.Wait()
}
