package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/statelab/internal/model"
	"github.com/idilsaglam/statelab/internal/ui"
)

// todoRow adapts a todo to list.Item.
type todoRow struct{ todo model.Todo }

func (r todoRow) FilterValue() string { return r.todo.Text }

// itemRow adapts an item list entry to list.Item.
type itemRow struct {
	index int
	value string
}

func (r itemRow) FilterValue() string { return r.value }

func todoRows(ts model.Todos) []list.Item {
	out := make([]list.Item, 0, len(ts))
	for _, t := range ts {
		out = append(out, todoRow{todo: t})
	}
	return out
}

func itemRows(items []string) []list.Item {
	out := make([]list.Item, 0, len(items))
	for i, v := range items {
		out = append(out, itemRow{index: i, value: v})
	}
	return out
}

// rowDelegate renders both row kinds on a single line.
type rowDelegate struct{ theme ui.Theme }

func (d rowDelegate) Height() int                             { return 1 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	var line string
	switch r := item.(type) {
	case todoRow:
		text := r.todo.Text
		if r.todo.Completed {
			text = d.theme.Done.Render(text)
		}
		line = fmt.Sprintf("%s %s", ui.Checkbox(d.theme, r.todo.Completed), text)
	case itemRow:
		line = fmt.Sprintf("%s %s", d.theme.Muted.Render(fmt.Sprintf("%2d.", r.index+1)), r.value)
	default:
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+line)
}

func newList(items []list.Item, t ui.Theme, title, singular, plural string) list.Model {
	l := list.New(items, rowDelegate{theme: t}, 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName(singular, plural)
	l.DisableQuitKeybindings()
	l.Styles.Title = t.Title
	l.Styles.PaginationStyle = t.Help
	l.Styles.NoItems = t.Muted
	return l
}
