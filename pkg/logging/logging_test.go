package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tableflip.dev/missioncontrol/pkg/store"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, closeFn, err := New(store.StaticConfig("", store.ClockDemo, "", "info"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeFn()
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("expected a no-op logger")
	}
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mission.log")
	logger, closeFn, err := New(store.StaticConfig("", store.ClockDemo, path, "debug"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("task started", zap.String("id", "3"))
	closeFn()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{`"msg":"task started"`, `"id":"3"`, `"app":"mission"`} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("expected %s in log output:\n%s", want, b)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if _, _, err := New(store.StaticConfig("", store.ClockDemo, filepath.Join(t.TempDir(), "x.log"), "chatty")); err == nil {
		t.Fatalf("expected error for unknown level in config")
	}
}
