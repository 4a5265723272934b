// Package script reads replay scripts: a list of steps, each naming one
// action for a session. Scripts are YAML; JSON is accepted as the YAML
// subset it is.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/statelab/internal/listeditor"
	"github.com/idilsaglam/statelab/internal/session"
	"github.com/idilsaglam/statelab/internal/todostore"
)

// Script is a decoded replay script.
type Script struct {
	// Seed starts the session from the seeded todo list.
	Seed  bool   `yaml:"seed"`
	Steps []Step `yaml:"steps"`
}

// Step names exactly one action.
type Step struct {
	Add    *string `yaml:"add,omitempty"`
	Toggle *int    `yaml:"toggle,omitempty"`
	Delete *int    `yaml:"delete,omitempty"`
	Item   *string `yaml:"item,omitempty"`
	Remove *int    `yaml:"remove,omitempty"`
	Count  *string `yaml:"count,omitempty"`
	Chart  *string `yaml:"chart,omitempty"`
}

// Keys lists the step keys a script may use, with a short description.
var Keys = [][2]string{
	{"add", "add a todo with the given text"},
	{"toggle", "toggle the todo with the given id"},
	{"delete", "delete the todo with the given id"},
	{"item", "append a value to the item list"},
	{"remove", "remove the item at a zero-based index"},
	{"count", "press a counter button: inc, dec or reset"},
	{"chart", "regenerate the chart data: regenerate"},
}

// Load reads and validates the script at path.
func Load(path string) (Script, []session.Event, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Script{}, nil, fmt.Errorf("script not found: %s", path)
		}
		return Script{}, nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(bytes.NewReader(b))
}

// Parse decodes a script from r and compiles its steps into events. Every
// invalid step is reported; the returned error combines them.
func Parse(r io.Reader) (Script, []session.Event, error) {
	var sc Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return Script{}, nil, nil
		}
		return Script{}, nil, fmt.Errorf("yaml decode: %w", err)
	}
	events, err := Compile(sc.Steps)
	if err != nil {
		return Script{}, nil, err
	}
	return sc, events, nil
}

// Compile turns steps into session events.
func Compile(steps []Step) ([]session.Event, error) {
	var errs error
	events := make([]session.Event, 0, len(steps))
	for i, st := range steps {
		ev, err := st.event()
		if err != nil {
			errs = multierr.Append(errs, &StepError{Index: i, Err: err})
			continue
		}
		events = append(events, ev)
	}
	if errs != nil {
		return nil, errs
	}
	return events, nil
}

func (st Step) event() (session.Event, error) {
	var set []string
	var ev session.Event
	var err error
	if st.Add != nil {
		set = append(set, "add")
		if strings.TrimSpace(*st.Add) == "" {
			err = errors.New("add: empty text")
		}
		ev = session.Todo{Action: todostore.AddTodo{Text: *st.Add}}
	}
	if st.Toggle != nil {
		set = append(set, "toggle")
		ev = session.Todo{Action: todostore.ToggleTodo{ID: *st.Toggle}}
	}
	if st.Delete != nil {
		set = append(set, "delete")
		ev = session.Todo{Action: todostore.DeleteTodo{ID: *st.Delete}}
	}
	if st.Item != nil {
		set = append(set, "item")
		ev = session.AddItem{Value: *st.Item}
	}
	if st.Remove != nil {
		set = append(set, "remove")
		ev = session.RemoveItem{Index: *st.Remove}
	}
	if st.Count != nil {
		set = append(set, "count")
		op, ok := listeditor.ParseCounterOp(strings.ToLower(strings.TrimSpace(*st.Count)))
		if !ok {
			err = &ParseError{Type: "counter op", Value: *st.Count}
		}
		ev = session.Count{Op: op}
	}
	if st.Chart != nil {
		set = append(set, "chart")
		if strings.ToLower(strings.TrimSpace(*st.Chart)) != "regenerate" {
			err = &ParseError{Type: "chart", Value: *st.Chart}
		}
		ev = session.RegenerateChart{}
	}
	switch {
	case len(set) == 0:
		return nil, errors.New("no action")
	case len(set) > 1:
		return nil, fmt.Errorf("more than one action: %s", strings.Join(set, ", "))
	case err != nil:
		return nil, err
	}
	return ev, nil
}

// Replay applies events to s in order and returns how many changed state.
func Replay(s *session.Session, events []session.Event) int {
	n := 0
	for _, ev := range events {
		if s.Handle(ev) {
			n++
		}
	}
	return n
}
