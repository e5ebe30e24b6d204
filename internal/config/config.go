// Package config provides configuration types, defaults, and persistence
// for the eventide demo viewer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/eventide/internal/log"
)

// InputConfig controls the keyboard source.
type InputConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"` // port polling cadence
}

// WatchConfig controls the file-watch source.
type WatchConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Paths    []string      `mapstructure:"paths"`
	Debounce time.Duration `mapstructure:"debounce"`
	Interval time.Duration `mapstructure:"interval"` // port polling cadence
}

// LogConfig controls debug logging.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Config holds all options for the demo viewer.
type Config struct {
	PollTimeout  time.Duration `mapstructure:"poll_timeout"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
	StopTimeout  time.Duration `mapstructure:"stop_timeout"`
	Input        InputConfig   `mapstructure:"input"`
	Watch        WatchConfig   `mapstructure:"watch"`
	Log          LogConfig     `mapstructure:"log"`
}

// Defaults returns the configuration used when no file or flags are present.
func Defaults() Config {
	return Config{
		PollTimeout:  10 * time.Millisecond,
		TickInterval: time.Second,
		StopTimeout:  0,
		Input: InputConfig{
			Enabled:  true,
			Interval: 10 * time.Millisecond,
		},
		Watch: WatchConfig{
			Enabled:  false,
			Debounce: 500 * time.Millisecond,
			Interval: 250 * time.Millisecond,
		},
		Log: LogConfig{
			Enabled: false,
			Path:    "eventide.log",
		},
	}
}

// Validate rejects configurations the listener would refuse or that make no
// sense for the demo.
func Validate(cfg Config) error {
	if cfg.PollTimeout <= 0 {
		return fmt.Errorf("poll_timeout must be positive, got %s", cfg.PollTimeout)
	}
	if cfg.TickInterval < 0 {
		return fmt.Errorf("tick_interval must not be negative, got %s", cfg.TickInterval)
	}
	if cfg.StopTimeout < 0 {
		return fmt.Errorf("stop_timeout must not be negative, got %s", cfg.StopTimeout)
	}
	if cfg.Input.Interval < 0 {
		return fmt.Errorf("input.interval must not be negative, got %s", cfg.Input.Interval)
	}
	if cfg.Watch.Interval < 0 {
		return fmt.Errorf("watch.interval must not be negative, got %s", cfg.Watch.Interval)
	}
	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", cfg.Watch.Debounce)
	}
	if cfg.Watch.Enabled && len(cfg.Watch.Paths) == 0 {
		return fmt.Errorf("watch.enabled requires at least one entry in watch.paths")
	}
	if cfg.Log.Enabled && cfg.Log.Path == "" {
		return fmt.Errorf("log.enabled requires log.path")
	}
	return nil
}

// DefaultConfigTemplate returns the commented YAML written for new users.
func DefaultConfigTemplate() string {
	return `# eventide demo configuration

# Upper bound for every consumer poll call. Must be positive.
poll_timeout: 10ms

# Cadence of the periodic tick event. 0 disables ticks.
tick_interval: 1s

# How long stop waits for the worker before giving up. 0 waits forever.
stop_timeout: 0

input:
  # Keyboard source (requires a terminal on stdin).
  enabled: true
  interval: 10ms

watch:
  # File-watch source.
  enabled: false
  paths: []
  debounce: 500ms
  interval: 250ms

log:
  # Debug log file. The viewer owns the terminal, so logs never go there.
  enabled: false
  path: eventide.log
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
