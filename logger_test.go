package sculpt

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() must never return nil")
	}
	// The nop handler reports disabled for every level.
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("brush imported", "name", "star")

	if !strings.Contains(buf.String(), "brush imported") {
		t.Errorf("expected log output, got %q", buf.String())
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)
	if Logger().Enabled(nil, slog.LevelError) {
		t.Error("nil should restore the silent logger")
	}
}
