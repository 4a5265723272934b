package model

// Todo is the domain model for a todo entry.
// ID is assigned once by the store and never reused within a session.
type Todo struct {
	ID        int    `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Todos is an ordered todo list. Insertion order is display order.
type Todos []Todo

// Index returns the position of the todo with the given id, or -1.
func (ts Todos) Index(id int) int {
	for i, t := range ts {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// MaxID returns the largest id in the list, 0 when empty.
func (ts Todos) MaxID() int {
	n := 0
	for _, t := range ts {
		if t.ID > n {
			n = t.ID
		}
	}
	return n
}

// Stats counts completed and pending todos.
func (ts Todos) Stats() (done, pending int) {
	for _, t := range ts {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// Clone returns a copy that shares no backing array with ts.
func (ts Todos) Clone() Todos {
	if ts == nil {
		return nil
	}
	out := make(Todos, len(ts))
	copy(out, ts)
	return out
}

// Seed is the list a fresh session starts with.
func Seed() Todos {
	return Todos{
		{ID: 1, Text: "Learn state basics", Completed: false},
		{ID: 2, Text: "Build a todo app", Completed: true},
	}
}

// Same reports whether a and b are the same list value, not merely equal.
// Transitions return their input untouched on a no-op and a fresh slice
// otherwise, so Same is enough to decide whether to redraw.
func Same(a, b Todos) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
