package session

import (
	"fmt"

	"github.com/idilsaglam/statelab/internal/listeditor"
	"github.com/idilsaglam/statelab/internal/todostore"
)

// Event is the semantic payload of one user input, stripped of whatever
// key press or script line produced it.
type Event interface {
	event()
}

// Todo forwards an action to the todo store.
type Todo struct{ Action todostore.Action }

// AddItem appends to the item list.
type AddItem struct{ Value string }

// RemoveItem drops the item at Index.
type RemoveItem struct{ Index int }

// Count presses a counter button.
type Count struct{ Op listeditor.CounterOp }

// RegenerateChart draws a new chart dataset.
type RegenerateChart struct{}

func (Todo) event()            {}
func (AddItem) event()         {}
func (RemoveItem) event()      {}
func (Count) event()           {}
func (RegenerateChart) event() {}

func (e Todo) String() string          { return fmt.Sprint(e.Action) }
func (e AddItem) String() string       { return fmt.Sprintf("item(%q)", e.Value) }
func (e RemoveItem) String() string    { return fmt.Sprintf("remove(%d)", e.Index) }
func (e Count) String() string         { return "count(" + e.Op.String() + ")" }
func (RegenerateChart) String() string { return "chart(regenerate)" }
