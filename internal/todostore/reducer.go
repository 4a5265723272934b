package todostore

import (
	"strings"

	"github.com/idilsaglam/statelab/internal/model"
)

// Reducer applies actions to a todo list. The only dependency is the id
// source, so a Reducer fed a deterministic Counter is deterministic too.
type Reducer struct {
	ids IDSource
}

// NewReducer returns a Reducer drawing ids from ids.
func NewReducer(ids IDSource) Reducer {
	return Reducer{ids: ids}
}

// Apply returns the state that results from a. It never mutates state: a
// no-op returns state itself and any change returns a new slice. Apply never
// fails; an empty add, an unknown id or a nil action leave state as is.
// Pointer variants are applied as their values; a nil pointer is a no-op.
func (r Reducer) Apply(state model.Todos, a Action) model.Todos {
	switch a := normalize(a).(type) {
	case AddTodo:
		return r.add(state, a.Text)
	case ToggleTodo:
		return toggle(state, a.ID)
	case DeleteTodo:
		return remove(state, a.ID)
	default:
		return state
	}
}

// normalize dereferences pointer variants. It returns nil for a nil action
// or a nil pointer.
func normalize(a Action) Action {
	switch a := a.(type) {
	case AddTodo, ToggleTodo, DeleteTodo:
		return a
	case *AddTodo:
		if a != nil {
			return *a
		}
	case *ToggleTodo:
		if a != nil {
			return *a
		}
	case *DeleteTodo:
		if a != nil {
			return *a
		}
	}
	return nil
}

func (r Reducer) add(state model.Todos, text string) model.Todos {
	text = strings.TrimSpace(text)
	if text == "" {
		return state
	}
	out := make(model.Todos, len(state), len(state)+1)
	copy(out, state)
	return append(out, model.Todo{ID: r.ids.Next(), Text: text})
}

func toggle(state model.Todos, id int) model.Todos {
	i := state.Index(id)
	if i < 0 {
		return state
	}
	out := state.Clone()
	out[i].Completed = !out[i].Completed
	return out
}

func remove(state model.Todos, id int) model.Todos {
	i := state.Index(id)
	if i < 0 {
		return state
	}
	out := make(model.Todos, 0, len(state)-1)
	out = append(out, state[:i]...)
	return append(out, state[i+1:]...)
}
