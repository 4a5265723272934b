package todostore

import (
	"log/slog"

	"github.com/idilsaglam/statelab/internal/model"
)

// Store holds the current todo list of one session and replaces it on every
// dispatched action.
type Store struct {
	reducer Reducer
	state   model.Todos
	log     *slog.Logger
}

// NewStore returns a Store starting from initial. Ids continue after the
// largest id in initial. A nil logger discards.
func NewStore(initial model.Todos, log *slog.Logger) *Store {
	return NewStoreWithIDs(initial, NewCounter(initial.MaxID()), log)
}

// NewStoreWithIDs is NewStore with an explicit id source.
func NewStoreWithIDs(initial model.Todos, ids IDSource, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{
		reducer: NewReducer(ids),
		state:   initial.Clone(),
		log:     log,
	}
}

// State returns the current list. Callers must treat it as read-only.
func (s *Store) State() model.Todos { return s.state }

// Dispatch applies a and reports whether the list was replaced.
func (s *Store) Dispatch(a Action) (model.Todos, bool) {
	a = normalize(a)
	next := s.reducer.Apply(s.state, a)
	changed := !model.Same(s.state, next)
	s.state = next
	if a != nil {
		s.log.Debug("todo dispatch", "action", a.Kind().String(), "changed", changed, "len", len(next))
	}
	return next, changed
}
