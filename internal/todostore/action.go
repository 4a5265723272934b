package todostore

import (
	"fmt"
	"strings"
)

// Kind tags an Action variant.
type Kind int

const (
	KindAdd Kind = iota + 1
	KindToggle
	KindDelete
)

var kindNames = map[Kind]string{
	KindAdd:    "add",
	KindToggle: "toggle",
	KindDelete: "delete",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Kinds lists every action kind in declaration order.
func Kinds() []Kind { return []Kind{KindAdd, KindToggle, KindDelete} }

// ParseKind maps a case-insensitive name to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("todostore: invalid action kind: %q", s)
}

// Action is a request to transition the todo list. The set of variants is
// closed: only AddTodo, ToggleTodo and DeleteTodo implement it.
type Action interface {
	Kind() Kind
	sealed()
}

// AddTodo appends a new, pending todo with the trimmed text.
type AddTodo struct{ Text string }

// ToggleTodo flips the completed flag of the todo with ID.
type ToggleTodo struct{ ID int }

// DeleteTodo removes the todo with ID.
type DeleteTodo struct{ ID int }

func (AddTodo) Kind() Kind    { return KindAdd }
func (ToggleTodo) Kind() Kind { return KindToggle }
func (DeleteTodo) Kind() Kind { return KindDelete }

func (AddTodo) sealed()    {}
func (ToggleTodo) sealed() {}
func (DeleteTodo) sealed() {}

func (a AddTodo) String() string    { return fmt.Sprintf("add(%q)", a.Text) }
func (a ToggleTodo) String() string { return fmt.Sprintf("toggle(%d)", a.ID) }
func (a DeleteTodo) String() string { return fmt.Sprintf("delete(%d)", a.ID) }
