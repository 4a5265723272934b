package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/idilsaglam/statelab/internal/ui"
)

func (m Model) View() string {
	t := m.theme
	parts := []string{
		t.Title.Render(m.banner) + t.Accent.Render("|"),
		m.navView(),
		"",
		m.sectionView(),
	}
	if m.adding {
		parts = append(parts, m.inputView())
	}
	parts = append(parts, "", m.help.View(m.helpFor()))
	return ui.Panel(t, parts)
}

func (m Model) navView() string {
	t := m.theme
	tabs := make([]string, 0, numSections)
	for s := section(0); s < numSections; s++ {
		label := fmt.Sprintf(" %s ", s)
		if s == m.section {
			label = t.Selected.Render(label)
		} else {
			label = t.Muted.Render(label)
		}
		tabs = append(tabs, label)
	}
	return strings.Join(tabs, " ")
}

func (m Model) sectionView() string {
	t := m.theme
	switch m.section {
	case sectionTodos:
		todos := m.session.Todos()
		done, pending := todos.Stats()
		header := fmt.Sprintf("%s %d  %s %d  %s %d",
			t.Success.Render(t.SymDone), done,
			t.Pending.Render(t.SymPending), pending,
			t.Accent.Render("Total"), len(todos))
		return strings.Join([]string{
			header,
			t.Muted.Render(ui.ProgressBar(t, done, done+pending, 28)),
			m.todos.View(),
		}, "\n")

	case sectionItems:
		n := len(m.session.Items())
		if n == 0 {
			return t.Muted.Render("No items yet. Press a to add one.")
		}
		return m.items.View() + "\n" + t.Muted.Render(humanize.Comma(int64(n))+" in the list")

	case sectionCounter:
		return strings.Join([]string{
			t.Title.Render("Count:") + " " + t.Accent.Render(fmt.Sprint(m.session.Counter())),
			t.Muted.Render("State lives in the session; every press is one transition."),
		}, "\n")

	case sectionExamples:
		card := lipgloss.NewStyle().
			Border(t.Border).
			BorderForeground(t.BorderColor).
			Padding(0, 1).
			MarginRight(1)
		themeCard := card.Render(strings.Join([]string{
			t.Title.Render("Theme"),
			"Current theme: " + t.Accent.Render(t.Name),
			t.Muted.Render("passed down explicitly"),
		}, "\n"))
		clockCard := card.Render(strings.Join([]string{
			t.Title.Render("Clock"),
			t.Accent.Render(m.clock.Time()),
			m.clock.Date(),
			t.Muted.Render("started " + m.clock.Age()),
		}, "\n"))
		chartCard := card.Render(strings.Join([]string{
			t.Title.Render("Chart"),
			ui.Bars(t, m.session.Chart(), 5),
		}, "\n"))
		top := lipgloss.JoinHorizontal(lipgloss.Top, themeCard, clockCard, chartCard)

		props := []string{t.Title.Render("Props")}
		if m.showProps {
			props = append(props, greeting(t, "Statelab Learner", "Terminal Engineer"))
		}
		props = append(props, t.Muted.Render(showHide(m.showProps)+" with p"))

		fetch := []string{t.Title.Render("User")}
		switch {
		case m.loading:
			fetch = append(fetch, t.Pending.Render("Loading..."))
		case m.user != nil:
			fetch = append(fetch, t.Accent.Render(m.user.Name), m.user.Email)
		default:
			fetch = append(fetch, t.Muted.Render("Fetch User with u"))
		}
		bottom := lipgloss.JoinHorizontal(lipgloss.Top,
			card.Render(strings.Join(props, "\n")),
			card.Render(strings.Join(fetch, "\n")))
		return top + "\n" + bottom
	}
	return ""
}

// greeting renders only from its arguments.
func greeting(t ui.Theme, name, role string) string {
	return strings.Join([]string{
		t.Accent.Render("Hello, " + name + "!"),
		"Role: " + role,
		t.Success.Render("Active User"),
	}, "\n")
}

func showHide(shown bool) string {
	if shown {
		return "Hide"
	}
	return "Show"
}

func (m Model) inputView() string {
	t := m.theme
	title := "Add todo"
	if m.section == sectionItems {
		title = "Add item"
	}
	if m.inputErr != "" {
		title += " - " + t.Error.Render(m.inputErr)
	}
	bar := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return bar.Render(title + "\n" + m.input.View())
}
