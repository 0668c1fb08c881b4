package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{" debug ", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"\twarn\n", LevelWarn},
		{"error", LevelError},
		{" ERROR ", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q",
				tt.level, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"bogus", DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithLevel(LevelWarn),
		WithPretty(false),
		WithTimeLayout("none"))

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message emitted below warn threshold: %q", out)
	}

	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing from output: %q", out)
	}
}

func TestLoggerTraceLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithLevel(LevelTrace),
		WithPretty(false),
		WithTimeLayout("none"))

	logger.Trace("deep detail", slog.Int("n", 1))

	out := buf.String()
	if !strings.Contains(out, "deep detail") {
		t.Fatalf("trace message missing from output: %q", out)
	}

	if !strings.Contains(out, "TRACE") {
		t.Errorf("trace level not labeled in output: %q", out)
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithTimeLayout("none"))

	logger.Info("structured", slog.String("key", "value"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v: %q", err, buf.String())
	}

	if record["msg"] != "structured" {
		t.Errorf("msg = %v, want %q", record["msg"], "structured")
	}

	if record["key"] != "value" {
		t.Errorf("key = %v, want %q", record["key"], "value")
	}
}

func TestLoggerPrettyOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithTimeLayout("none"))

	logger.Info("colorized", slog.String("key", "value"))

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("pretty output has no escape sequences: %q", out)
	}

	if !strings.Contains(out, "colorized") || !strings.Contains(out, "value") {
		t.Errorf("pretty output missing message or attr: %q", out)
	}
}

func TestZeroLoggerDiscards(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("dropped")
	logger.Error("dropped", slog.String("key", "value"))

	if logger.Enabled(t.Context(), LevelError) {
		t.Error("zero Logger reports enabled")
	}
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf, WithLevel(LevelError), WithPretty(false))

	derived := base.With(WithLevel(LevelDebug))

	if !derived.Enabled(t.Context(), LevelDebug) {
		t.Error("derived logger did not apply new level")
	}

	if base.Enabled(t.Context(), LevelDebug) {
		t.Error("original logger mutated by With")
	}
}
