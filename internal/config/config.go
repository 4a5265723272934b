// Package config resolves statelab's settings from flags, the environment
// and an optional .env file, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/idilsaglam/statelab/internal/ui"
)

// Config holds every setting.
type Config struct {
	Theme    string
	LogLevel slog.Level
	LogFile  string
	NoColor  bool
	Seed     uint64
}

// Getenv looks up an environment variable.
type Getenv func(string) string

// Load parses args (without the program name) and falls back to the
// environment. Remaining positional args are returned.
func Load(args []string, getenv Getenv) (Config, []string, error) {
	var cfg Config
	var level, seed string

	fs := flag.NewFlagSet("statelab", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Theme, "theme", "", "color theme: classic, neon or mono")
	fs.StringVar(&level, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFile, "log-file", "", "write logs to this file")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colors")
	fs.StringVar(&seed, "seed", "", "chart random seed (0 = random)")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	if cfg.Theme == "" {
		cfg.Theme = getenv("STATELAB_THEME")
	}
	if cfg.Theme == "" {
		cfg.Theme = "classic"
	}
	if _, err := ui.ThemeByName(cfg.Theme, false); err != nil {
		return Config{}, nil, err
	}

	if level == "" {
		level = getenv("STATELAB_LOG_LEVEL")
	}
	if level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, nil, fmt.Errorf("invalid log level %q", level)
		}
	}

	if cfg.LogFile == "" {
		cfg.LogFile = getenv("STATELAB_LOG_FILE")
	}

	// NO_COLOR disables color when set to any non-empty value.
	if !cfg.NoColor && getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	if seed == "" {
		seed = getenv("STATELAB_SEED")
	}
	if seed != "" {
		n, err := strconv.ParseUint(strings.TrimSpace(seed), 10, 64)
		if err != nil {
			return Config{}, nil, errors.New("invalid seed: want a non-negative integer")
		}
		cfg.Seed = n
	}

	return cfg, fs.Args(), nil
}

// LoadDotEnv reads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// UITheme resolves the configured theme.
func (c Config) UITheme() ui.Theme {
	t, err := ui.ThemeByName(c.Theme, c.NoColor)
	if err != nil {
		t, _ = ui.ThemeByName("classic", c.NoColor)
	}
	return t
}

// NewLogger builds the logger. Logs go to LogFile when set, otherwise to
// fallback. The returned close func releases the file.
func (c Config) NewLogger(fallback io.Writer) (*slog.Logger, func() error, error) {
	w := fallback
	closeFn := func() error { return nil }
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}
	if w == nil {
		w = io.Discard
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel})
	return slog.New(h), closeFn, nil
}
