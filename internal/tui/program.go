package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/statelab/internal/session"
	"github.com/idilsaglam/statelab/internal/ticker"
	"github.com/idilsaglam/statelab/internal/ui"
)

// Banner is the text the typewriter reveals.
const Banner = "Learn state"

// sender is the part of *tea.Program the timers need.
type sender interface {
	Send(msg tea.Msg)
}

type intervals struct {
	typewriter, clock time.Duration
}

var defaultIntervals = intervals{
	typewriter: ticker.TypewriterInterval,
	clock:      ticker.ClockInterval,
}

// startTimers starts the typewriter and the clock in g. The typewriter stops
// on its own once the banner is complete; the clock runs until g stops.
func startTimers(g *ticker.Group, p sender, banner string, iv intervals) {
	tw := ticker.NewTypewriter(banner)
	g.Go(iv.typewriter, func(time.Time) bool {
		var done bool
		tw, done = tw.Next()
		p.Send(bannerMsg{Text: tw.String()})
		return !done
	})
	g.Go(iv.clock, func(now time.Time) bool {
		p.Send(clockMsg{Now: now})
		return true
	})
}

// Run shows the demos until the user quits or ctx is done. Both timers are
// stopped before Run returns, on every path.
func Run(ctx context.Context, s *session.Session, t ui.Theme, log *slog.Logger, opts ...tea.ProgramOption) error {
	timers := ticker.NewGroup(ctx)
	defer func() {
		timers.Stop()
		log.Debug("timers stopped", "active", timers.Active())
	}()

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(s, t, time.Now()), opts...)
	startTimers(timers, p, Banner, defaultIntervals)

	log.Info("tui started", "theme", t.Name)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			log.Info("tui interrupted", "reason", ctx.Err())
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	log.Info("tui stopped")
	return nil
}
