// Package cmd implements the eventide demo viewer CLI.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/eventide/internal/config"
	"github.com/zjrosen/eventide/internal/log"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "eventide",
	Short:   "A terminal event stream viewer",
	Long:    `Streams keyboard, tick and file-watch events from the eventide listener to the terminal. Useful for inspecting what a component framework built on eventide would receive.`,
	Version: version,
	RunE:    runDemo,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/eventide/config.yaml)")
	rootCmd.Flags().Duration("tick", 0,
		"tick interval (0 disables ticks)")
	rootCmd.Flags().Duration("timeout", 0,
		"consumer poll timeout")
	rootCmd.Flags().StringSlice("watch", nil,
		"paths to watch for file events")
	rootCmd.Flags().Bool("save-watch", false,
		"persist the --watch paths into the config file")
	rootCmd.Flags().Bool("no-input", false,
		"disable the keyboard source")
	rootCmd.Flags().Bool("debug", false,
		"write debug logs to the configured log file")

	// Bind flags to viper
	_ = viper.BindPFlag("tick_interval", rootCmd.Flags().Lookup("tick"))
	_ = viper.BindPFlag("poll_timeout", rootCmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("watch.paths", rootCmd.Flags().Lookup("watch"))
	_ = viper.BindPFlag("log.enabled", rootCmd.Flags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("poll_timeout", defaults.PollTimeout)
	viper.SetDefault("tick_interval", defaults.TickInterval)
	viper.SetDefault("stop_timeout", defaults.StopTimeout)
	viper.SetDefault("input.enabled", defaults.Input.Enabled)
	viper.SetDefault("input.interval", defaults.Input.Interval)
	viper.SetDefault("watch.enabled", defaults.Watch.Enabled)
	viper.SetDefault("watch.debounce", defaults.Watch.Debounce)
	viper.SetDefault("watch.interval", defaults.Watch.Interval)
	viper.SetDefault("log.enabled", defaults.Log.Enabled)
	viper.SetDefault("log.path", defaults.Log.Path)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .eventide/config.yaml (current directory)
		// 2. ~/.config/eventide/config.yaml (user config)
		if _, err := os.Stat(".eventide/config.yaml"); err == nil {
			viper.SetConfigFile(".eventide/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "eventide"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .eventide/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".eventide/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runDemo(cmd *cobra.Command, args []string) error {
	if watched, _ := cmd.Flags().GetStringSlice("watch"); len(watched) > 0 {
		cfg.Watch.Enabled = true
		if save, _ := cmd.Flags().GetBool("save-watch"); save && viper.ConfigFileUsed() != "" {
			if err := config.SaveWatchPaths(viper.ConfigFileUsed(), watched); err != nil {
				return fmt.Errorf("saving watch paths: %w", err)
			}
		}
	}
	if noInput, _ := cmd.Flags().GetBool("no-input"); noInput {
		cfg.Input.Enabled = false
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Log.Enabled {
		closeLog, err := log.Init(cfg.Log.Path)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer closeLog()
	}

	return runViewer(cfg)
}

// SetVersion updates the version string shown by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
