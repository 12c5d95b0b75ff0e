// internal/logging/logger_test.go
package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger_WithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("text", "info", &buf)
	logger.Info("test message")

	if buf.Len() == 0 {
		t.Error("expected logger to write to provided writer")
	}
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("json", "info", &buf)
	logger.Info("hello")

	out := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("expected JSON output, got %q", out)
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("text", "warn", &buf)

	logger.Info("should be dropped")
	if buf.Len() != 0 {
		t.Errorf("info record leaked through warn level: %q", buf.String())
	}

	logger.Warn("should appear")
	if buf.Len() == 0 {
		t.Error("warn record was dropped")
	}
}

func TestNewLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("text", "chatty", &buf)

	logger.Debug("dropped at info")
	if buf.Len() != 0 {
		t.Errorf("debug record leaked through default level: %q", buf.String())
	}
	logger.Info("kept")
	if buf.Len() == 0 {
		t.Error("info record was dropped at default level")
	}
}

func TestWithFile(t *testing.T) {
	var buf bytes.Buffer
	logger := WithFile(NewLogger("text", "info", &buf), "config.toml")
	logger.Info("processing")

	if !strings.Contains(buf.String(), "config.toml") {
		t.Errorf("expected file attribute in output: %q", buf.String())
	}
}

func TestWithFixture(t *testing.T) {
	var buf bytes.Buffer
	logger := WithFixture(NewLogger("text", "info", &buf), "simple_text")
	logger.Info("building")

	if !strings.Contains(buf.String(), "simple_text") {
		t.Errorf("expected fixture attribute in output: %q", buf.String())
	}
}
