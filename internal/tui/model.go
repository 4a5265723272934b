// Package tui hosts the demos in a Bubble Tea program. The model turns key
// presses into session events and redraws from the session's state; it never
// edits that state itself.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/statelab/internal/listeditor"
	"github.com/idilsaglam/statelab/internal/session"
	"github.com/idilsaglam/statelab/internal/ticker"
	"github.com/idilsaglam/statelab/internal/todostore"
	"github.com/idilsaglam/statelab/internal/ui"
)

type section int

const (
	sectionTodos section = iota
	sectionItems
	sectionCounter
	sectionExamples
	numSections
)

var sectionNames = [numSections]string{"Todos", "Items", "Counter", "Examples"}

func (s section) String() string { return sectionNames[s] }

// bannerMsg carries the typewriter's revealed text.
type bannerMsg struct{ Text string }

// clockMsg is one clock tick.
type clockMsg struct{ Now time.Time }

// user is what the simulated fetch returns.
type user struct {
	Name, Email string
}

// userMsg delivers a fetched user.
type userMsg struct{ User user }

// fetchDelay stands in for the latency of a remote lookup.
const fetchDelay = time.Second

var demoUser = user{Name: "John Doe", Email: "john@example.com"}

// fetchUser resolves to demoUser after fetchDelay. Nothing leaves the process.
func fetchUser() tea.Cmd {
	return tea.Tick(fetchDelay, func(time.Time) tea.Msg { return userMsg{User: demoUser} })
}

// Model is the Bubble Tea model.
type Model struct {
	session *session.Session
	theme   ui.Theme
	keys    keyMap
	help    help.Model

	section  section
	todos    list.Model
	items    list.Model
	input    textinput.Model
	adding   bool
	inputErr string

	banner string
	clock  ticker.Clock

	showProps bool
	loading   bool
	user      *user

	width, height int
}

// New returns a model over s.
func New(s *session.Session, t ui.Theme, now time.Time) Model {
	m := Model{
		session: s,
		theme:   t,
		keys:    defaultKeys(),
		help:    help.New(),
		todos:   newList(todoRows(s.Todos()), t, "Todos", "todo", "todos"),
		items:   newList(itemRows(s.Items()), t, "Items", "item", "items"),
		clock:   ticker.NewClock(now),
		width:   80,
		height:  24,
	}
	m.help.Styles.ShortKey = t.Accent
	m.help.Styles.ShortDesc = t.Help
	m.help.Styles.ShortSeparator = t.Help

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.CharLimit = 200
	m.resize()
	return m
}

func (m Model) Init() tea.Cmd { return tea.SetWindowTitle("statelab") }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case bannerMsg:
		m.banner = msg.Text
		return m, nil
	case clockMsg:
		m.clock = m.clock.Tick(msg.Now)
		return m, nil
	case userMsg:
		u := msg.User
		m.user, m.loading = &u, false
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.adding {
			return m.updateInput(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.section = (m.section + 1) % numSections
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.section = (m.section + numSections - 1) % numSections
			return m, nil
		}
		return m.updateSection(msg)
	}

	var cmd tea.Cmd
	if m.adding {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) updateSection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.section {
	case sectionTodos:
		switch {
		case key.Matches(msg, m.keys.Add):
			return m.startAdding("Add a new todo...")
		case key.Matches(msg, m.keys.Toggle):
			if r, ok := m.todos.SelectedItem().(todoRow); ok {
				m.handle(session.Todo{Action: todostore.ToggleTodo{ID: r.todo.ID}})
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if r, ok := m.todos.SelectedItem().(todoRow); ok {
				m.handle(session.Todo{Action: todostore.DeleteTodo{ID: r.todo.ID}})
			}
			return m, nil
		}
		m.todos, cmd = m.todos.Update(msg)

	case sectionItems:
		switch {
		case key.Matches(msg, m.keys.Add):
			return m.startAdding("Enter an item...")
		case key.Matches(msg, m.keys.Delete):
			if r, ok := m.items.SelectedItem().(itemRow); ok {
				m.handle(session.RemoveItem{Index: r.index})
			}
			return m, nil
		}
		m.items, cmd = m.items.Update(msg)

	case sectionCounter:
		switch {
		case key.Matches(msg, m.keys.Inc):
			m.handle(session.Count{Op: listeditor.Increment})
		case key.Matches(msg, m.keys.Dec):
			m.handle(session.Count{Op: listeditor.Decrement})
		case key.Matches(msg, m.keys.Reset):
			m.handle(session.Count{Op: listeditor.Reset})
		}

	case sectionExamples:
		switch {
		case key.Matches(msg, m.keys.Regenerate):
			m.handle(session.RegenerateChart{})
		case key.Matches(msg, m.keys.Props):
			m.showProps = !m.showProps
		case key.Matches(msg, m.keys.Fetch):
			if !m.loading {
				m.loading = true
				return m, fetchUser()
			}
		}
	}
	return m, cmd
}

func (m Model) startAdding(placeholder string) (tea.Model, tea.Cmd) {
	m.adding = true
	m.inputErr = ""
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	return m, m.input.Focus()
}

func (m Model) stopAdding() Model {
	m.adding = false
	m.inputErr = ""
	m.input.SetValue("")
	m.input.Blur()
	return m
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		text := m.input.Value()
		// blank text never reaches the store
		if strings.TrimSpace(text) == "" {
			m.inputErr = "Text cannot be empty"
			return m, nil
		}
		switch m.section {
		case sectionTodos:
			m.handle(session.Todo{Action: todostore.AddTodo{Text: text}})
			m.todos.Select(len(m.todos.Items()) - 1)
		case sectionItems:
			m.handle(session.AddItem{Value: text})
			m.items.Select(len(m.items.Items()) - 1)
		}
		return m.stopAdding(), nil
	case key.Matches(msg, m.keys.Cancel):
		return m.stopAdding(), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handle applies ev and refreshes the lists when the session changed.
func (m *Model) handle(ev session.Event) {
	if !m.session.Handle(ev) {
		return
	}
	m.todos.SetItems(todoRows(m.session.Todos()))
	m.items.SetItems(itemRows(m.session.Items()))
	clamp(&m.todos)
	clamp(&m.items)
}

func clamp(l *list.Model) {
	if n := len(l.Items()); n > 0 && l.Index() >= n {
		l.Select(n - 1)
	}
}

func (m *Model) resize() {
	w := m.width - 4
	h := m.height - 14
	if w < 20 {
		w = 20
	}
	if h < 3 {
		h = 3
	}
	m.todos.SetSize(w, h)
	m.items.SetSize(w, h)
	m.help.Width = w
}
