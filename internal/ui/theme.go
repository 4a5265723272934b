package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, symbols and box borders. It is passed to every
// renderer explicitly; there is no package-level current theme.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Pending, Error lipgloss.Style
	Selected, Done, Help                          lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxChecked, BoxUnchecked string
	SymDone, SymPending      string
	SymOK, SymFail           string
	BarFull, BarEmpty        string
}

// ThemeNames lists the accepted theme names.
var ThemeNames = []string{"classic", "neon", "mono"}

// ThemeByName returns the named theme. noColor strips every color but keeps
// the theme's symbols and borders.
func ThemeByName(name string, noColor bool) (Theme, error) {
	var t Theme
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		t = Theme{
			Name:     "classic",
			Title:    lipgloss.NewStyle().Bold(true),
			Muted:    lipgloss.NewStyle().Faint(true),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:     lipgloss.NewStyle().Faint(true),

			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("8"),
			BoxChecked:   "☑",
			BoxUnchecked: "☐",
			SymDone:      "✔",
			SymPending:   "•",
			SymOK:        "✔",
			SymFail:      "✖",
			BarFull:      "█",
			BarEmpty:     "░",
		}
	case "neon":
		t = Theme{
			Name:     "neon",
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")),
			Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
			Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("13"),
			BoxChecked:   "◼",
			BoxUnchecked: "◻",
			SymDone:      "✔",
			SymPending:   "•",
			SymOK:        "✔",
			SymFail:      "✖",
			BarFull:      "▇",
			BarEmpty:     " ",
		}
	case "mono":
		t = plain(Theme{
			Name:         "mono",
			Border:       lipgloss.NormalBorder(),
			BoxChecked:   "[x]",
			BoxUnchecked: "[ ]",
			SymDone:      "x",
			SymPending:   "-",
			SymOK:        "ok:",
			SymFail:      "error:",
			BarFull:      "#",
			BarEmpty:     ".",
		})
		t.Selected = lipgloss.NewStyle().Bold(true)
		return t, nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(ThemeNames, ", "))
	}
	if noColor {
		t = plain(t)
	}
	return t, nil
}

// plain drops every color from t.
func plain(t Theme) Theme {
	s := lipgloss.NewStyle()
	t.Title, t.Muted, t.Accent = s, s, s
	t.Success, t.Pending, t.Error = s, s, s
	t.Selected, t.Done, t.Help = s.Reverse(true), s, s
	t.BorderColor = lipgloss.NoColor{}
	return t
}
