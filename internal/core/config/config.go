// Package config handles configuration loading and validation for gitlad.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	GitPath      string    `yaml:"git_path"`
	GhPath       string    `yaml:"gh_path"`
	ContextLines int       `yaml:"context_lines"`
	Theme        string    `yaml:"theme"`
	Ignore       []string  `yaml:"ignore"`
	Review       Review    `yaml:"review"`
	Log          LogConfig `yaml:"log"`
}

// Review holds review-overlay behavior settings.
type Review struct {
	// CollapseThreads starts all comment threads collapsed to one line.
	CollapseThreads bool `yaml:"collapse_threads"`
	// HideResolved drops resolved threads from the overlay entirely.
	HideResolved bool `yaml:"hide_resolved"`
}

// LogConfig holds log output settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		GitPath:      "git",
		GhPath:       "gh",
		ContextLines: 3,
		Theme:        "tokyo-night",
		Review: Review{
			CollapseThreads: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.GitPath == "" {
		c.GitPath = defaults.GitPath
	}
	if c.GhPath == "" {
		c.GhPath = defaults.GhPath
	}
	if c.ContextLines == 0 {
		c.ContextLines = defaults.ContextLines
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.GitPath == "" {
		return fmt.Errorf("git_path cannot be empty")
	}

	if c.GhPath == "" {
		return fmt.Errorf("gh_path cannot be empty")
	}

	if c.ContextLines < 0 {
		return fmt.Errorf("context_lines cannot be negative")
	}

	return nil
}
