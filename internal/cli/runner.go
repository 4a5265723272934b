package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/idilsaglam/statelab/internal/config"
	"github.com/idilsaglam/statelab/internal/model"
	"github.com/idilsaglam/statelab/internal/script"
	"github.com/idilsaglam/statelab/internal/session"
	"github.com/idilsaglam/statelab/internal/todostore"
	"github.com/idilsaglam/statelab/internal/tui"
	"github.com/idilsaglam/statelab/internal/ui"
)

// Options carry the resolved config and output streams.
type Options struct {
	Config config.Config
	Out    io.Writer
	Err    io.Writer

	// runTUI replaces tui.Run in tests.
	runTUI func(context.Context, *session.Session, ui.Theme, *slog.Logger) error
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	theme := opt.Config.UITheme()
	if len(args) == 0 {
		PrintHelp(opt.Err)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "tui":
		if len(a) != 0 {
			ui.Fail(opt.Err, theme, "usage: statelab tui")
			return 2
		}
		return doTUI(ctx, opt, theme)

	case "replay":
		fs := flag.NewFlagSet("replay", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		group := fs.Bool("group", false, "group todos by pending/done")
		if err := fs.Parse(a); err != nil || fs.NArg() != 1 {
			ui.Fail(opt.Err, theme, "usage: statelab replay [-group] <script.yaml>")
			return 2
		}
		return doReplay(opt, theme, fs.Arg(0), *group)

	case "actions":
		return doActions(opt, theme)
	}

	ui.Fail(opt.Err, theme, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

// PrintHelp writes usage to w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `statelab - state, events and reducers in the terminal

Usage:
  statelab [flags] <subcommand> [args]

Subcommands:
  tui                        Open the interactive demos
  replay [-group] <script>   Apply a YAML/JSON script and print the result
  actions                    List the steps a script may use

Flags:
  -theme classic|neon|mono   Color theme (env STATELAB_THEME)
  -log-level LEVEL           debug, info, warn, error (env STATELAB_LOG_LEVEL)
  -log-file PATH             Write logs to PATH (env STATELAB_LOG_FILE)
  -no-color                  Disable colors (env NO_COLOR)
  -seed N                    Chart random seed (env STATELAB_SEED)

Examples:
  statelab tui
  statelab -theme neon tui
  statelab replay -group session.yaml
`)
}

// -------------- subcommand impls ----------------

func doTUI(ctx context.Context, opt Options, theme ui.Theme) int {
	// the terminal belongs to the TUI; logs go to the log file or nowhere
	log, closeLog, err := opt.Config.NewLogger(io.Discard)
	if err != nil {
		ui.Fail(opt.Err, theme, err.Error())
		return 1
	}
	defer closeLog()

	s := session.New(session.Options{Seed: true, ChartSeed: opt.Config.Seed, Logger: log})
	defer s.Close()

	run := opt.runTUI
	if run == nil {
		run = func(ctx context.Context, s *session.Session, t ui.Theme, l *slog.Logger) error {
			return tui.Run(ctx, s, t, l)
		}
	}
	if err := run(ctx, s, theme, log); err != nil {
		log.Error("tui failed", "error", err)
		ui.Fail(opt.Err, theme, err.Error())
		return 1
	}
	return 0
}

func doReplay(opt Options, theme ui.Theme, path string, group bool) int {
	log, closeLog, err := opt.Config.NewLogger(opt.Err)
	if err != nil {
		ui.Fail(opt.Err, theme, err.Error())
		return 1
	}
	defer closeLog()

	sc, events, err := script.Load(path)
	if err != nil {
		log.Error("replay failed", "script", path, "error", err)
		ui.Fail(opt.Err, theme, "replay: "+err.Error())
		return 1
	}

	s := session.New(session.Options{Seed: sc.Seed, ChartSeed: opt.Config.Seed, Logger: log})
	defer s.Close()
	changed := script.Replay(s, events)

	fmt.Fprintln(opt.Out, ui.Panel(theme, sessionLines(theme, s, group)))
	ui.OK(opt.Out, theme, fmt.Sprintf("replayed %s, %s changed state",
		english.Plural(len(events), "step", ""), humanize.Comma(int64(changed))))
	return 0
}

func doActions(opt Options, theme ui.Theme) int {
	kinds := make([]string, 0, len(todostore.Kinds()))
	for _, k := range todostore.Kinds() {
		kinds = append(kinds, k.String())
	}
	lines := []string{
		theme.Title.Render("Script steps"),
		theme.Muted.Render("todo actions: " + strings.Join(kinds, ", ")),
		"",
	}
	for _, kv := range script.Keys {
		lines = append(lines, fmt.Sprintf("%s %s", theme.Accent.Render(fmt.Sprintf("%-7s", kv[0])), kv[1]))
	}
	fmt.Fprintln(opt.Out, ui.Panel(theme, lines))
	return 0
}

// -------------- rendering helpers --------------

func sessionLines(t ui.Theme, s *session.Session, group bool) []string {
	todos := s.Todos()
	d, p := todos.Stats()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(todos),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(t, d, d+p, 28)))
	lines = append(lines, "")
	if group {
		lines = append(lines, groupLines(t, todos)...)
	} else {
		lines = append(lines, flatLines(t, todos)...)
	}

	lines = append(lines, "", t.Title.Render("Items"))
	if len(s.Items()) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	}
	for i, it := range s.Items() {
		lines = append(lines, fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("%2d.", i+1)), it))
	}

	lines = append(lines, "", fmt.Sprintf("%s %d", t.Title.Render("Counter"), s.Counter()))
	lines = append(lines, "", t.Title.Render("Chart"), ui.Bars(t, s.Chart(), 5))
	return lines
}

func flatLines(t ui.Theme, todos model.Todos) []string {
	if len(todos) == 0 {
		return []string{t.Muted.Render("no todos")}
	}
	out := make([]string, 0, len(todos))
	for _, td := range todos {
		text := td.Text
		if r := []rune(text); len(r) > 80 {
			text = string(r[:77]) + "..."
		}
		if td.Completed {
			text = t.Done.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			t.Muted.Render(fmt.Sprintf("#%-3d", td.ID)), ui.Checkbox(t, td.Completed), text))
	}
	return out
}

func groupLines(t ui.Theme, todos model.Todos) []string {
	var pend, done model.Todos
	for _, td := range todos {
		if td.Completed {
			done = append(done, td)
		} else {
			pend = append(pend, td)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(t, pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(t, done)...)
	}
	return lines
}
