package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func env(m map[string]string) Getenv {
	return func(k string) string { return m[k] }
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		env      map[string]string
		want     Config
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "defaults",
			args:     []string{"tui"},
			want:     Config{Theme: "classic", LogLevel: slog.LevelInfo},
			wantArgs: []string{"tui"},
		},
		{
			name: "env fallback",
			args: []string{"replay", "x.yaml"},
			env: map[string]string{
				"STATELAB_THEME":     "neon",
				"STATELAB_LOG_LEVEL": "debug",
				"STATELAB_LOG_FILE":  "/tmp/s.log",
				"STATELAB_SEED":      "9",
				"NO_COLOR":           "1",
			},
			want:     Config{Theme: "neon", LogLevel: slog.LevelDebug, LogFile: "/tmp/s.log", NoColor: true, Seed: 9},
			wantArgs: []string{"replay", "x.yaml"},
		},
		{
			name:     "flags win over env",
			args:     []string{"-theme", "mono", "-log-level", "warn", "-seed", "3"},
			env:      map[string]string{"STATELAB_THEME": "neon", "STATELAB_SEED": "9"},
			want:     Config{Theme: "mono", LogLevel: slog.LevelWarn, Seed: 3},
			wantArgs: []string{},
		},
		{name: "bad theme", args: []string{"-theme", "sepia"}, wantErr: true},
		{name: "bad level", env: map[string]string{"STATELAB_LOG_LEVEL": "loud"}, wantErr: true},
		{name: "bad seed", args: []string{"-seed", "-1"}, wantErr: true},
		{name: "unknown flag", args: []string{"-verbose"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest, err := Load(tt.args, env(tt.env))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
			if !reflect.DeepEqual(rest, tt.wantArgs) {
				t.Errorf("args = %q, want %q", rest, tt.wantArgs)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := LoadDotEnv(filepath.Join(dir, ".env")); err != nil {
		t.Errorf("missing .env error = %v", err)
	}

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("STATELAB_TEST_THEME=neon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STATELAB_TEST_THEME", "")
	os.Unsetenv("STATELAB_TEST_THEME")
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("STATELAB_TEST_THEME"); got != "neon" {
		t.Errorf("STATELAB_TEST_THEME = %q, want neon", got)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{LogLevel: slog.LevelWarn}
	log, closeFn, err := cfg.NewLogger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "msg=shown k=1") {
		t.Errorf("log output = %q", out)
	}

	file := filepath.Join(t.TempDir(), "statelab.log")
	cfg.LogFile = file
	log, closeFn, err = cfg.NewLogger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	log.Error("to file")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "msg=\"to file\"") {
		t.Errorf("log file = %q", b)
	}
}

func TestUITheme(t *testing.T) {
	if got := (Config{Theme: "neon"}).UITheme().Name; got != "neon" {
		t.Errorf("UITheme().Name = %q", got)
	}
	if got := (Config{Theme: "nope"}).UITheme().Name; got != "classic" {
		t.Errorf("UITheme() fallback = %q", got)
	}
}
