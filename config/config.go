// Package config provides configuration loading and management for ontoview.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the complete ontoview configuration
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Output   OutputConfig  `yaml:"output"`
	View     ViewConfig    `yaml:"view"`
	Watch    WatchConfig   `yaml:"watch"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

// OutputConfig configures where exports are written
type OutputConfig struct {
	// Dir is the directory CSV files and reports are written to
	Dir string `yaml:"dir"`
	// ReportFormat is the metadata report serialization (json or yaml)
	ReportFormat string `yaml:"report_format"`
}

// ViewConfig configures the default table view
type ViewConfig struct {
	// SortColumn is the column index to sort by (-1 = unsorted)
	SortColumn int `yaml:"sort_column"`
	// SortDirection is asc or desc
	SortDirection string `yaml:"sort_direction"`
}

// WatchConfig configures the file watcher
type WatchConfig struct {
	// DebounceDelay is the quiet period before a changed file is processed
	DebounceDelay time.Duration `yaml:"debounce_delay"`
	// Extensions are the file extensions to watch (with dot)
	Extensions []string `yaml:"extensions"`
	// ExcludeDirs are directory names never descended into
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// MetricsConfig configures the Prometheus endpoint
type MetricsConfig struct {
	// Addr is the listen address (empty = disabled)
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Output: OutputConfig{
			Dir:          ".",
			ReportFormat: "json",
		},
		View: ViewConfig{
			SortColumn:    -1,
			SortDirection: "asc",
		},
		Watch: WatchConfig{
			DebounceDelay: 500 * time.Millisecond,
			Extensions:    []string{".ttl", ".n3", ".nt", ".nq", ".trig"},
			ExcludeDirs:   []string{".git", "node_modules", "vendor"},
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be debug, info, warn or error", ErrInvalidConfig)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("%w: output.dir is required", ErrInvalidConfig)
	}
	switch strings.ToLower(c.Output.ReportFormat) {
	case "json", "yaml":
	default:
		return fmt.Errorf("%w: output.report_format must be json or yaml", ErrInvalidConfig)
	}
	if c.View.SortColumn < -1 {
		return fmt.Errorf("%w: view.sort_column must be -1 or a column index", ErrInvalidConfig)
	}
	switch strings.ToLower(c.View.SortDirection) {
	case "asc", "desc":
	default:
		return fmt.Errorf("%w: view.sort_direction must be asc or desc", ErrInvalidConfig)
	}
	if c.Watch.DebounceDelay <= 0 {
		return fmt.Errorf("%w: watch.debounce_delay must be positive", ErrInvalidConfig)
	}
	if len(c.Watch.Extensions) == 0 {
		return fmt.Errorf("%w: watch.extensions must not be empty", ErrInvalidConfig)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Merge merges another config into this one (other takes precedence for non-default values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	defaults := DefaultConfig()

	if other.LogLevel != "" && other.LogLevel != defaults.LogLevel {
		c.LogLevel = other.LogLevel
	}

	// Output
	if other.Output.Dir != "" && other.Output.Dir != defaults.Output.Dir {
		c.Output.Dir = other.Output.Dir
	}
	if other.Output.ReportFormat != "" && other.Output.ReportFormat != defaults.Output.ReportFormat {
		c.Output.ReportFormat = other.Output.ReportFormat
	}

	// View
	if other.View.SortColumn != defaults.View.SortColumn {
		c.View.SortColumn = other.View.SortColumn
	}
	if other.View.SortDirection != "" && other.View.SortDirection != defaults.View.SortDirection {
		c.View.SortDirection = other.View.SortDirection
	}

	// Watch
	if other.Watch.DebounceDelay != 0 && other.Watch.DebounceDelay != defaults.Watch.DebounceDelay {
		c.Watch.DebounceDelay = other.Watch.DebounceDelay
	}
	if len(other.Watch.Extensions) > 0 && !slices.Equal(other.Watch.Extensions, defaults.Watch.Extensions) {
		c.Watch.Extensions = other.Watch.Extensions
	}
	if len(other.Watch.ExcludeDirs) > 0 && !slices.Equal(other.Watch.ExcludeDirs, defaults.Watch.ExcludeDirs) {
		c.Watch.ExcludeDirs = other.Watch.ExcludeDirs
	}

	// Metrics
	if other.Metrics.Addr != "" {
		c.Metrics.Addr = other.Metrics.Addr
	}
}
