package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	cases := map[LogLevel]string{
		LogLevelDebug: "DEBUG",
		LogLevelInfo:  "INFO",
		LogLevelWarn:  "WARN",
		LogLevelError: "ERROR",
		LogLevel(42):  "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerWithOutput(LogLevelWarn, "text", false, &buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("below-level messages leaked: %s", out)
	}
	if !strings.Contains(out, "warn message") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestSlogLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerWithOutput(LogLevelInfo, "json", false, &buf)

	logger.Info("hello", "viewer", "v1")
	if !strings.Contains(buf.String(), `"viewer":"v1"`) {
		t.Errorf("expected JSON attribute in output: %s", buf.String())
	}
}

func TestNoOpLogger(t *testing.T) {
	var l Logger = NoOpLogger{}
	// Must not panic.
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
}
