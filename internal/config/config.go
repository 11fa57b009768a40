// Package config provides configuration loading for segdash.
//
// Precedence (highest to lowest): environment variables (SEGDASH_*), the
// YAML config file, hardcoded defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "SEGDASH_"

// Config holds the dashboard defaults and bounds.
type Config struct {
	// Clustering controls
	DefaultK      int   `koanf:"default_k"`
	KMin          int   `koanf:"k_min"`
	KMax          int   `koanf:"k_max"`
	DefaultSeed   int64 `koanf:"default_seed"`
	MaxIterations int   `koanf:"max_iterations"`

	// Presentation
	ChartWidth  int `koanf:"chart_width"`
	ChartHeight int `koanf:"chart_height"`

	// LogFile receives structured logs while the TUI owns the terminal.
	LogFile string `koanf:"log_file"`
}

// Default returns the hardcoded defaults.
func Default() *Config {
	return &Config{
		DefaultK:      3,
		KMin:          2,
		KMax:          10,
		DefaultSeed:   42,
		MaxIterations: 300,
		ChartWidth:    64,
		ChartHeight:   16,
		LogFile:       defaultLogPath(),
	}
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "segdash.log"
	}
	return filepath.Join(home, ".local", "state", "segdash", "segdash.log")
}

// Load reads the YAML file at path (skipped when empty or absent), applies
// SEGDASH_* environment overrides, and validates the result.
//
// Environment variables map to lowercased keys: SEGDASH_DEFAULT_K ->
// default_k, SEGDASH_LOG_FILE -> log_file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else {
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the clustering bounds and chart geometry.
func (c *Config) Validate() error {
	if c.KMin < 2 {
		return fmt.Errorf("k_min must be at least 2, got %d", c.KMin)
	}
	if c.KMax < c.KMin {
		return fmt.Errorf("k_max (%d) must not be below k_min (%d)", c.KMax, c.KMin)
	}
	if c.DefaultK < c.KMin || c.DefaultK > c.KMax {
		return fmt.Errorf("default_k (%d) must be within [%d, %d]", c.DefaultK, c.KMin, c.KMax)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive, got %d", c.MaxIterations)
	}
	if c.ChartWidth < 20 || c.ChartHeight < 8 {
		return fmt.Errorf("chart size %dx%d is too small to draw", c.ChartWidth, c.ChartHeight)
	}
	return nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "segdash", "config.yaml")
}
