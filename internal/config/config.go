// Package config defines the RAGFramework configuration schema and its
// validation. Configuration is read from YAML; zero values fall back to
// defaults so a missing file or empty section is always usable.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/montraydavis/RAGFramework/internal/errors"
)

// Config is the complete RAGFramework configuration.
type Config struct {
	Fuzzy   FuzzyConfig   `yaml:"fuzzy"`
	Index   IndexConfig   `yaml:"index"`
	Logging LoggingConfig `yaml:"logging"`
}

// FuzzyConfig configures query-term expansion.
type FuzzyConfig struct {
	// Threshold is the minimum similarity for a vocabulary token to join
	// an expansion (0.0-1.0).
	Threshold float64 `yaml:"threshold"`

	// MaxExpansions caps the number of near matches per term.
	MaxExpansions int `yaml:"max_expansions"`

	// CacheEnabled toggles expansion memoization.
	CacheEnabled bool `yaml:"cache_enabled"`
}

// IndexConfig configures the concept index build.
type IndexConfig struct {
	// Workers is the build fan-out width. Zero means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// StopWords are filtered out during fitting and transformation.
	StopWords []string `yaml:"stop_words"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Fuzzy: FuzzyConfig{
			Threshold:     0.8,
			MaxExpansions: 3,
			CacheEnabled:  true,
		},
		Index: IndexConfig{
			Workers: runtime.GOMAXPROCS(0),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file, layering it over defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Index.Workers == 0 {
		cfg.Index.Workers = runtime.GOMAXPROCS(0)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks all configuration values, returning InvalidConfiguration
// for the first violation found.
func (c Config) Validate() error {
	if c.Fuzzy.Threshold < 0 || c.Fuzzy.Threshold > 1 {
		return errors.InvalidConfiguration("fuzzy.threshold", "must be within [0,1]")
	}
	if c.Fuzzy.MaxExpansions <= 0 {
		return errors.InvalidConfiguration("fuzzy.max_expansions", "must be positive")
	}
	if c.Index.Workers < 0 {
		return errors.InvalidConfiguration("index.workers", "must not be negative")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.InvalidConfiguration("logging.level", "must be one of debug, info, warn, error")
	}
	return nil
}
