package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel frames lines in the theme's border.
func Panel(t Theme, lines []string) string {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// ProgressBar renders "[████░░░░] done/total".
func ProgressBar(t Theme, done, total, width int) string {
	if width <= 0 {
		width = 28
	}
	filled := 0
	if total > 0 {
		filled = int(float64(done) / float64(total) * float64(width))
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled) + fmt.Sprintf("] %d/%d", done, total)
}

// Bars renders values in [0, 100] as vertical bars height rows tall, with the
// value printed under each bar.
func Bars(t Theme, values []int, height int) string {
	if height < 1 {
		height = 1
	}
	const col = 4
	var rows []string
	for row := height; row >= 1; row-- {
		var b strings.Builder
		for _, v := range values {
			cell := strings.Repeat(" ", col)
			// a bar covers row if its scaled height reaches it
			if v*height >= row*100-50 {
				cell = t.Accent.Render(strings.Repeat(t.BarFull, col-1)) + " "
			}
			b.WriteString(cell)
		}
		rows = append(rows, strings.TrimRight(b.String(), " "))
	}
	var labels strings.Builder
	for _, v := range values {
		labels.WriteString(fmt.Sprintf("%-*d", col, v))
	}
	rows = append(rows, t.Muted.Render(strings.TrimRight(labels.String(), " ")))
	return strings.Join(rows, "\n")
}

// OK prints a success line to w.
func OK(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Success.Render(t.SymOK+" "+msg))
}

// Fail prints an error line to w.
func Fail(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Error.Render(t.SymFail+" "+msg))
}

// Checkbox returns the themed box for a completed flag.
func Checkbox(t Theme, done bool) string {
	if done {
		return t.Success.Render(t.BoxChecked)
	}
	return t.Muted.Render(t.BoxUnchecked)
}
