// Package config resolves runtime options from a .env file, the process
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvSeed          = "LEADDESK_SEED"
	EnvLogFile       = "LEADDESK_LOG_FILE"
	EnvDebug         = "LEADDESK_DEBUG"
	EnvNoAltScreen   = "LEADDESK_NO_ALT_SCREEN"
	EnvDesktopNotify = "LEADDESK_DESKTOP_NOTIFY"
	EnvToastDuration = "LEADDESK_TOAST_DURATION"
)

// DefaultToastDuration is how long a notification stays on screen.
const DefaultToastDuration = 4 * time.Second

// Config holds every runtime option.
type Config struct {
	SeedPath      string
	LogFile       string
	Debug         bool
	NoAltScreen   bool
	DesktopNotify bool
	ToastDuration time.Duration
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{ToastDuration: DefaultToastDuration}
}

// Load reads envFile when it exists, then the process environment. Values
// already present in the environment are not overwritten by the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, starting from Default.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if v, ok := lookup(EnvSeed); ok {
		cfg.SeedPath = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}
	var err error
	if cfg.Debug, err = boolEnv(lookup, EnvDebug, cfg.Debug); err != nil {
		return Config{}, err
	}
	if cfg.NoAltScreen, err = boolEnv(lookup, EnvNoAltScreen, cfg.NoAltScreen); err != nil {
		return Config{}, err
	}
	if cfg.DesktopNotify, err = boolEnv(lookup, EnvDesktopNotify, cfg.DesktopNotify); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvToastDuration); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvToastDuration, err)
		}
		cfg.ToastDuration = d
	}
	return cfg, cfg.Validate()
}

// Validate checks values that cannot be expressed by the field types.
func (c Config) Validate() error {
	if c.ToastDuration <= 0 {
		return fmt.Errorf("toast duration must be positive, got %s", c.ToastDuration)
	}
	return nil
}

func boolEnv(lookup func(string) (string, bool), name string, fallback bool) (bool, error) {
	v, ok := lookup(name)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
