package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next, Prev, Quit key.Binding

	// ForceQuit also quits while the input has focus.
	ForceQuit key.Binding

	Add, Toggle, Delete key.Binding

	Inc, Dec, Reset key.Binding

	Regenerate, Props, Fetch key.Binding

	Submit, Cancel key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next section")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev section")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter", "t"), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),

		Inc:   key.NewBinding(key.WithKeys("+", "=", "up", "k"), key.WithHelp("+", "increment")),
		Dec:   key.NewBinding(key.WithKeys("-", "down", "j"), key.WithHelp("-", "decrement")),
		Reset: key.NewBinding(key.WithKeys("r", "0"), key.WithHelp("r", "reset")),

		Regenerate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "regenerate chart")),
		Props:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "show/hide props")),
		Fetch:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "fetch user")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// bindings is a help.KeyMap over a fixed set of keys.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

// helpFor returns the keys that do something in the current mode.
func (m Model) helpFor() bindings {
	k := m.keys
	if m.adding {
		return bindings{k.Submit, k.Cancel, k.ForceQuit}
	}
	var b bindings
	switch m.section {
	case sectionTodos:
		b = bindings{k.Add, k.Toggle, k.Delete}
	case sectionItems:
		b = bindings{k.Add, k.Delete}
	case sectionCounter:
		b = bindings{k.Inc, k.Dec, k.Reset}
	case sectionExamples:
		b = bindings{k.Regenerate, k.Props, k.Fetch}
	}
	return append(b, k.Next, k.Quit)
}
