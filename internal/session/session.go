// Package session holds the state of one running demo: the todo store, the
// item list, the counter and the chart. Events are applied one at a time;
// a Session is not safe for concurrent use.
package session

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/statelab/internal/chart"
	"github.com/idilsaglam/statelab/internal/listeditor"
	"github.com/idilsaglam/statelab/internal/model"
	"github.com/idilsaglam/statelab/internal/todostore"
)

// Options configure a new Session.
type Options struct {
	// Seed starts the todo list from model.Seed instead of empty.
	Seed bool
	// ChartSeed makes chart regeneration repeatable; 0 means random.
	ChartSeed uint64
	// Logger receives debug events; nil discards.
	Logger *slog.Logger
	// Now overrides the clock used for Started.
	Now func() time.Time
}

// Session is one running instance of the demos.
type Session struct {
	ID      string
	Started time.Time

	todos *todostore.Store
	items []string
	count int
	chart []int
	rng   *rand.Rand
	log   *slog.Logger
}

// New starts a session.
func New(opt Options) *Session {
	now := time.Now
	if opt.Now != nil {
		now = opt.Now
	}
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	id := uuid.NewString()
	log = log.With("session", id)

	var initial model.Todos
	if opt.Seed {
		initial = model.Seed()
	}
	s := &Session{
		ID:      id,
		Started: now(),
		todos:   todostore.NewStore(initial, log),
		items:   []string{},
		chart:   chart.Default(),
		rng:     chart.NewRand(opt.ChartSeed),
		log:     log,
	}
	log.Info("session started", "todos", len(initial))
	return s
}

// Todos returns the current todo list.
func (s *Session) Todos() model.Todos { return s.todos.State() }

// Items returns the current item list.
func (s *Session) Items() []string { return s.items }

// Counter returns the counter value.
func (s *Session) Counter() int { return s.count }

// Chart returns the current chart dataset.
func (s *Session) Chart() []int { return s.chart }

// Handle applies ev and reports whether anything changed. Unknown events
// are ignored.
func (s *Session) Handle(ev Event) bool {
	changed := false
	switch ev := ev.(type) {
	case Todo:
		_, changed = s.todos.Dispatch(ev.Action)
	case AddItem:
		next := listeditor.AddItem(s.items, ev.Value)
		changed = len(next) != len(s.items)
		s.items = next
	case RemoveItem:
		next := listeditor.RemoveItem(s.items, ev.Index)
		changed = len(next) != len(s.items)
		s.items = next
	case Count:
		next := listeditor.Count(s.count, ev.Op)
		changed = next != s.count
		s.count = next
	case RegenerateChart:
		s.chart = chart.Regenerate(s.rng)
		changed = true
	default:
		s.log.Warn("ignored event", "event", ev)
		return false
	}
	s.log.Debug("event", "event", ev, "changed", changed)
	return changed
}

// Close logs the end of the session.
func (s *Session) Close() {
	s.log.Info("session closed",
		"todos", len(s.todos.State()),
		"items", len(s.items),
		"counter", s.count,
		"duration", time.Since(s.Started).Round(time.Millisecond))
}
