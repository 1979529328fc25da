package telemetry

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// --- LogLevel Tests ---

func TestLogLevel(t *testing.T) {
	tests := []struct {
		env  string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", tt.env)
		if got := LogLevel(); got != tt.want {
			t.Errorf("LogLevel() with %q = %v, want %v", tt.env, got, tt.want)
		}
	}
}

// --- Logger Helpers Tests ---

func TestLoggerHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	WithMode(WithRunID(WithProcess(logger, "bot"), "run-1"), "test").Info("hello")

	out := buf.String()
	for _, want := range []string{`"process":"bot"`, `"run_id":"run-1"`, `"mode":"test"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log line missing %s: %s", want, out)
		}
	}
}
