package script

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/idilsaglam/statelab/internal/listeditor"
	"github.com/idilsaglam/statelab/internal/model"
	"github.com/idilsaglam/statelab/internal/session"
	"github.com/idilsaglam/statelab/internal/todostore"
)

const sample = `
seed: true
steps:
  - toggle: 2
  - delete: 1
  - add: "  Write tests "
  - item: "  milk "
  - item: eggs
  - remove: 0
  - count: inc
  - count: INC
  - count: dec
  - chart: regenerate
`

func TestParse(t *testing.T) {
	sc, events, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !sc.Seed || len(sc.Steps) != 10 {
		t.Fatalf("script = %+v", sc)
	}
	want := []session.Event{
		session.Todo{Action: todostore.ToggleTodo{ID: 2}},
		session.Todo{Action: todostore.DeleteTodo{ID: 1}},
		session.Todo{Action: todostore.AddTodo{Text: "  Write tests "}},
		session.AddItem{Value: "  milk "},
		session.AddItem{Value: "eggs"},
		session.RemoveItem{Index: 0},
		session.Count{Op: listeditor.Increment},
		session.Count{Op: listeditor.Increment},
		session.Count{Op: listeditor.Decrement},
		session.RegenerateChart{},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %v\nwant %v", events, want)
	}
}

func TestParse_JSON(t *testing.T) {
	_, events, err := Parse(strings.NewReader(`{"steps": [{"add": "a"}, {"toggle": 1}]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(events) != 2 {
		t.Errorf("events = %v", events)
	}
}

func TestParse_Empty(t *testing.T) {
	sc, events, err := Parse(strings.NewReader(""))
	if err != nil || sc.Seed || len(events) != 0 {
		t.Errorf("Parse(empty) = %+v, %v, %v", sc, events, err)
	}
}

func TestParse_UnknownKey(t *testing.T) {
	_, _, err := Parse(strings.NewReader("steps:\n  - rename: 1\n"))
	if err == nil {
		t.Fatal("Parse() accepted an unknown step key")
	}
}

func TestParse_ReportsEveryBadStep(t *testing.T) {
	src := `
steps:
  - add: "   "
  - add: ok
  - {}
  - count: double
  - toggle: 1
    delete: 1
  - chart: flip
`
	_, events, err := Parse(strings.NewReader(src))
	if err == nil {
		t.Fatal("Parse() error = nil")
	}
	if events != nil {
		t.Errorf("events = %v, want nil on error", events)
	}
	errs := multierr.Errors(err)
	if len(errs) != 5 {
		t.Fatalf("got %d errors, want 5: %v", len(errs), err)
	}
	wantIdx := []int{0, 2, 3, 4, 5}
	for i, e := range errs {
		var se *StepError
		if !errors.As(e, &se) {
			t.Fatalf("error %d is %T, want *StepError", i, e)
		}
		if se.Index != wantIdx[i] {
			t.Errorf("error %d index = %d, want %d", i, se.Index, wantIdx[i])
		}
	}
	var pe *ParseError
	if !errors.As(errs[2], &pe) || pe.Type != "counter op" || pe.Value != "double" {
		t.Errorf("errs[2] = %v, want a counter op ParseError", errs[2])
	}
	if !strings.Contains(errs[3].Error(), "more than one action: toggle, delete") {
		t.Errorf("errs[3] = %v", errs[3])
	}
}

func TestLoadAndReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	sc, events, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	s := session.New(session.Options{Seed: sc.Seed, ChartSeed: 1})
	if n := Replay(s, events); n != len(events) {
		t.Errorf("Replay() changed %d times, want %d", n, len(events))
	}
	wantTodos := model.Todos{
		{ID: 2, Text: "Build a todo app", Completed: false},
		{ID: 3, Text: "Write tests"},
	}
	if !reflect.DeepEqual(s.Todos(), wantTodos) {
		t.Errorf("Todos() = %v, want %v", s.Todos(), wantTodos)
	}
	if !reflect.DeepEqual(s.Items(), []string{"eggs"}) {
		t.Errorf("Items() = %q", s.Items())
	}
	if s.Counter() != 1 {
		t.Errorf("Counter() = %d, want 1", s.Counter())
	}
}

func TestLoad_Missing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "script not found") {
		t.Errorf("Load(missing) error = %v", err)
	}
}
