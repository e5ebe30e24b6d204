package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.Equal(t, 10*time.Millisecond, cfg.PollTimeout)
	require.Equal(t, time.Second, cfg.TickInterval)
	require.Equal(t, time.Duration(0), cfg.StopTimeout)
	require.True(t, cfg.Input.Enabled)
	require.False(t, cfg.Watch.Enabled)
	require.False(t, cfg.Log.Enabled)
	require.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero poll timeout", func(c *Config) { c.PollTimeout = 0 }, "poll_timeout"},
		{"negative tick", func(c *Config) { c.TickInterval = -time.Second }, "tick_interval"},
		{"negative stop timeout", func(c *Config) { c.StopTimeout = -1 }, "stop_timeout"},
		{"negative input interval", func(c *Config) { c.Input.Interval = -1 }, "input.interval"},
		{"negative watch interval", func(c *Config) { c.Watch.Interval = -1 }, "watch.interval"},
		{"negative debounce", func(c *Config) { c.Watch.Debounce = -1 }, "watch.debounce"},
		{"watch without paths", func(c *Config) { c.Watch.Enabled = true }, "watch.paths"},
		{"log without path", func(c *Config) { c.Log.Enabled = true; c.Log.Path = "" }, "log.path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteDefaultConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".eventide", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	want := Defaults()
	require.Equal(t, want.PollTimeout, cfg.PollTimeout)
	require.Equal(t, want.TickInterval, cfg.TickInterval)
	require.Equal(t, want.StopTimeout, cfg.StopTimeout)
	require.Equal(t, want.Input, cfg.Input)
	require.Equal(t, want.Watch.Enabled, cfg.Watch.Enabled)
	require.Empty(t, cfg.Watch.Paths)
	require.Equal(t, want.Watch.Debounce, cfg.Watch.Debounce)
	require.Equal(t, want.Watch.Interval, cfg.Watch.Interval)
	require.Equal(t, want.Log, cfg.Log)
	require.NoError(t, Validate(cfg))
}

func TestSaveWatchPaths_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveWatchPaths(path, []string{"/tmp/a", "/tmp/b"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got struct {
		Watch struct {
			Paths []string `yaml:"paths"`
		} `yaml:"watch"`
	}
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Equal(t, []string{"/tmp/a", "/tmp/b"}, got.Watch.Paths)
}

func TestSaveWatchPaths_PreservesOtherSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SaveWatchPaths(path, []string{"/tmp/watched"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# eventide demo configuration",
		"comments outside watch.paths should survive the rewrite")

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	require.Equal(t, []string{"/tmp/watched"}, cfg.Watch.Paths)
	require.Equal(t, 10*time.Millisecond, cfg.PollTimeout)
	require.Equal(t, time.Second, cfg.TickInterval)
}

func TestSaveWatchPaths_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveWatchPaths(path, []string{"/tmp/old"}))
	require.NoError(t, SaveWatchPaths(path, []string{"/tmp/new"}))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	require.Equal(t, []string{"/tmp/new"}, v.GetStringSlice("watch.paths"))
}