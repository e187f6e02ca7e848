package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// ClockMode selects what the dashboard treats as "today".
type ClockMode string

const (
	// ClockDemo pins today to DemoDate so the sample data lines up.
	ClockDemo ClockMode = "demo"
	// ClockSystem uses the wall clock.
	ClockSystem ClockMode = "system"
)

var ErrUnknownClock = errors.New("store: unknown clock mode")

// Config is the runtime configuration.
type Config interface {
	// VaultRoot is the notes vault location. It is reported but not read.
	VaultRoot() string
	Clock() ClockMode
	LogFile() string
	LogLevel() string
}

// LoadConfig reads .mission config files and MISSION_* environment variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("vault_root", "~/.openclaw")
	v.SetDefault("clock", string(ClockDemo))
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetConfigName(".mission") // .yaml is implicit
	v.SetEnvPrefix("MISSION")
	v.AutomaticEnv()
	// Older installs export the vault root under this name.
	if err := v.BindEnv("vault_root", "OBSIDIAN_VAULT_ROOT"); err != nil {
		return nil, err
	}

	if override := os.Getenv("MISSION_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	clock, err := ParseClock(v.GetString("clock"))
	if err != nil {
		return nil, err
	}

	vault, err := homedir.Expand(v.GetString("vault_root"))
	if err != nil {
		return nil, fmt.Errorf("expand vault_root: %w", err)
	}
	logFile, err := homedir.Expand(v.GetString("log_file"))
	if err != nil {
		return nil, fmt.Errorf("expand log_file: %w", err)
	}

	return &fileConfig{
		Vault: vault,
		Mode:  clock,
		Log:   logFile,
		Level: strings.ToLower(v.GetString("log_level")),
	}, nil
}

// ParseClock resolves a clock mode name; blank means demo.
func ParseClock(name string) (ClockMode, error) {
	switch ClockMode(strings.ToLower(strings.TrimSpace(name))) {
	case "", ClockDemo:
		return ClockDemo, nil
	case ClockSystem:
		return ClockSystem, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownClock, name)
}

// Now returns the clock for mode.
func Now(mode ClockMode) func() time.Time {
	if mode == ClockSystem {
		return time.Now
	}
	return func() time.Time { return DemoDate }
}

// StaticConfig is a Config built in code, used when no files are wanted.
func StaticConfig(vaultRoot string, clock ClockMode, logFile, logLevel string) Config {
	return &fileConfig{Vault: vaultRoot, Mode: clock, Log: logFile, Level: logLevel}
}

type fileConfig struct {
	Vault string    `json:"vault_root"`
	Mode  ClockMode `json:"clock"`
	Log   string    `json:"log_file"`
	Level string    `json:"log_level"`
}

func (f *fileConfig) VaultRoot() string { return f.Vault }
func (f *fileConfig) Clock() ClockMode { return f.Mode }
func (f *fileConfig) LogFile() string { return f.Log }
func (f *fileConfig) LogLevel() string { return f.Level }
