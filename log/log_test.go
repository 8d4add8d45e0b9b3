package log

import (
	"bytes"
	"strings"
	"testing"

	"log/slog"
)

func TestMakeDefaults(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level %v, got %v",
			DefaultLevel, logger.Level())
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("expected default format %v, got %v",
			DefaultFormat, logger.Format())
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		logFn   func(Logger)
		wantLog bool
	}{
		{
			name:    "debug suppressed at info",
			level:   LevelInfo,
			logFn:   func(l Logger) { l.Debug("hidden") },
			wantLog: false,
		},
		{
			name:    "info emitted at info",
			level:   LevelInfo,
			logFn:   func(l Logger) { l.Info("visible") },
			wantLog: true,
		},
		{
			name:    "trace emitted at trace",
			level:   LevelTrace,
			logFn:   func(l Logger) { l.Trace("visible") },
			wantLog: true,
		},
		{
			name:    "trace suppressed at debug",
			level:   LevelDebug,
			logFn:   func(l Logger) { l.Trace("hidden") },
			wantLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger := Make(&buf, WithLevel(tt.level))
			tt.logFn(logger)

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("wantLog=%v, output=%q", tt.wantLog, buf.String())
			}
		})
	}
}

func TestTraceLevelLabel(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace))
	logger.Trace("tokens", slog.Int("count", 2))

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("expected TRACE label in output, got %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON))
	logger.Info("hello")

	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestWrapOverridesLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelError))
	wrapped := logger.Wrap(WithLevel(LevelDebug))

	wrapped.Debug("now visible")

	if buf.Len() == 0 {
		t.Error("expected wrapped logger to emit debug output")
	}
}

func TestZeroValueLoggerIsSilent(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("into the void")
	logger.Error("into the void")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{" JSON ", FormatJSON},
		{"text", FormatText},
		{"bogus", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v",
					tt.input, got, tt.want)
			}
		})
	}
}
