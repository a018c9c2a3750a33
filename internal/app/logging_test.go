package app

import (
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tc := range cases {
		if got := ParseLogLevel(tc.in); got != tc.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf strings.Builder
	l := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "test"})

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("also shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low-severity messages leaked: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "shown") {
		t.Errorf("warn output missing: %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("prefix missing: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf strings.Builder
	l := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	l.WithComponent("registry").WithField("tag", "first").Info("focused")
	out := buf.String()
	if !strings.Contains(out, "component=registry") || !strings.Contains(out, "tag=first") {
		t.Errorf("fields missing: %q", out)
	}
}

func TestLoggerFormatArgs(t *testing.T) {
	var buf strings.Builder
	l := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})
	l.Info("resize to %dx%d", 80, 24)
	if !strings.Contains(buf.String(), "resize to 80x24") {
		t.Errorf("formatted message missing: %q", buf.String())
	}
}

func TestLoggerDisable(t *testing.T) {
	var buf strings.Builder
	l := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})
	l.Disable()
	l.Error("nope")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote output: %q", buf.String())
	}
}
