// Package logging builds the zap logger shared by the CLI and the TUI. The TUI
// owns the terminal, so logs only ever go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tableflip.dev/missioncontrol/pkg/store"
)

// New returns a JSON file logger for cfg, or a no-op logger when no log file
// is configured. The returned close func flushes and closes the file.
func New(cfg store.Config) (*zap.Logger, func(), error) {
	if cfg == nil || strings.TrimSpace(cfg.LogFile()) == "" {
		return zap.NewNop(), func() {}, nil
	}

	level, err := ParseLevel(cfg.LogLevel())
	if err != nil {
		return nil, nil, err
	}

	path := cfg.LogFile()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zap.NewAtomicLevelAt(level))
	logger := zap.New(core).With(zap.String("app", "mission"))

	closer := func() {
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, closer, nil
}

// ParseLevel maps a config level name to a zap level. Blank is info.
func ParseLevel(name string) (zapcore.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("logging: unknown level %q", name)
	}
	return level, nil
}
