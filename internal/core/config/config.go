// Package config handles configuration loading and validation for tracker.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// TaskFile is the path of the task file commands load and save.
	// Defaults to <data-dir>/tasks.json.
	TaskFile string `yaml:"task_file"`
	// AutoSave controls whether mutating commands write the task file
	// back immediately. Defaults to true.
	AutoSave *bool `yaml:"auto_save"`
	// Recent is the default number of tasks shown by "tracker recent".
	Recent int `yaml:"recent"`
	// Log configures the file logger.
	Log LogConfig `yaml:"log"`

	DataDir string `yaml:"-"` // set by caller, not from config file
}

// LogConfig holds the logging configuration.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // defaults to <data-dir>/tracker.log
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	autoSave := true
	return Config{
		AutoSave: &autoSave,
		Recent:   5,
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the
// provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// SaveAfterMutation reports whether mutating commands should write the
// task file back after a successful change.
func (c *Config) SaveAfterMutation() bool {
	return c.AutoSave == nil || *c.AutoSave
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TaskFile == "" {
		c.TaskFile = filepath.Join(c.DataDir, "tasks.json")
	} else if !filepath.IsAbs(c.TaskFile) && c.DataDir != "" {
		// Relative paths resolve against the data directory, not
		// whatever directory the command happens to run from.
		c.TaskFile = filepath.Join(c.DataDir, c.TaskFile)
	}
	if c.Recent == 0 {
		c.Recent = defaults.Recent
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(c.DataDir, "tracker.log")
	}
	if c.AutoSave == nil {
		c.AutoSave = defaults.AutoSave
	}
}
