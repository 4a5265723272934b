package ticker

import (
	"time"

	"github.com/dustin/go-humanize"
)

// TypewriterInterval is the delay between two revealed runes.
const TypewriterInterval = 150 * time.Millisecond

// ClockInterval is the live clock's refresh rate.
const ClockInterval = time.Second

// Typewriter reveals a banner one rune at a time.
type Typewriter struct {
	text  []rune
	shown int
}

// NewTypewriter returns a Typewriter with nothing revealed yet.
func NewTypewriter(text string) Typewriter {
	return Typewriter{text: []rune(text)}
}

// Next reveals one more rune. done is true once the whole text is shown.
func (t Typewriter) Next() (next Typewriter, done bool) {
	if t.shown < len(t.text) {
		t.shown++
	}
	return t, t.shown >= len(t.text)
}

// Done reports whether the whole text is shown.
func (t Typewriter) Done() bool { return t.shown >= len(t.text) }

// String returns the revealed prefix.
func (t Typewriter) String() string { return string(t.text[:t.shown]) }

// Clock is the live clock's state: when the session started and the last
// tick.
type Clock struct {
	Started time.Time
	Now     time.Time
}

// NewClock returns a Clock started at now.
func NewClock(now time.Time) Clock { return Clock{Started: now, Now: now} }

// Tick records a new time.
func (c Clock) Tick(now time.Time) Clock {
	c.Now = now
	return c
}

// Time formats the current time of day.
func (c Clock) Time() string { return c.Now.Format("15:04:05") }

// Date formats the current date.
func (c Clock) Date() string { return c.Now.Format("Mon 2 Jan 2006") }

// Age describes how long ago the session started, e.g. "3 minutes ago".
func (c Clock) Age() string { return humanize.RelTime(c.Started, c.Now, "ago", "from now") }
