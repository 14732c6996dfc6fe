// =============================================================================
// Beer Review Extractor - Configuration Module
// =============================================================================
//
// This module is responsible for loading the application configuration.
// Every setting has a default, so the tool runs without any config file at
// all; a YAML file only needs to name the values it wants to change.
//
// CONFIGURATION SECTIONS:
//   1. layout   : Positional contract of a data line (boundary and indices)
//   2. input    : How the dump file is decoded
//   3. output   : Output file names and optional extras
//   4. logging  : Log level
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "config.yaml"

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the global application configuration.
type Config struct {
	Layout  Layout         `yaml:"layout"`
	Input   InputSettings  `yaml:"input"`
	Output  OutputSettings `yaml:"output"`
	Logging Logging        `yaml:"logging"`

	// ProgressInterval is how many lines are parsed between progress log
	// lines. Zero takes the default.
	// Default: 100000
	ProgressInterval int `yaml:"progress_interval"`
}

// Layout describes where the parser finds things in a data line. Format drift
// in the dump is a change here, not in code.
type Layout struct {
	// ReviewStartIndex is the first pair that belongs to the review. Every
	// pair before it is a beer attribute.
	// Default: 5
	ReviewStartIndex int `yaml:"review_start_index"`

	// ProfileNameIndex is the position of the reviewer's username. A line
	// with no pair at this position is treated as truncated.
	// Default: 11
	ProfileNameIndex int `yaml:"profile_name_index"`

	// BeerNameIndex is the position of the beer name within the beer prefix.
	// Default: 0
	BeerNameIndex int `yaml:"beer_name_index"`

	// VerifyKeys makes a data line fatal when its keys drift from the keys
	// declared on line 0.
	// Default: true
	VerifyKeys *bool `yaml:"verify_keys"`
}

// InputSettings controls how the input file is read.
type InputSettings struct {
	// Encoding is the character encoding of the dump file.
	// Supported: "UTF-8", "ISO-8859-1", "Windows-1252"
	// Default: "UTF-8"
	Encoding string `yaml:"encoding"`
}

// OutputSettings controls where and what is written.
type OutputSettings struct {
	BeersFile   string `yaml:"beers_file"`
	ReviewsFile string `yaml:"reviews_file"`
	UsersFile   string `yaml:"users_file"`

	// WriteToCWD writes the CSV files into the working directory instead of
	// the output directory given on the command line.
	// Default: false
	WriteToCWD bool `yaml:"write_to_cwd"`

	// Workbook, when set, is the file name of an .xlsx copy of all three
	// tables, written next to the CSV files.
	Workbook string `yaml:"workbook"`

	// Summary writes a plain-text run summary next to the CSV files.
	Summary bool `yaml:"summary"`
}

// Logging holds log settings.
type Logging struct {
	// Level is one of "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns a Config with every default applied.
//
// Layout indices are seeded here rather than in applyDefaults because 0 is a
// meaningful index: a value written in the file must survive decoding, even
// when it is 0, so that validation can reject it.
func Default() *Config {
	cfg := &Config{
		Layout: Layout{
			ReviewStartIndex: 5,
			ProfileNameIndex: 11,
		},
	}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file.
//
// A missing file at DefaultPath is not an error: defaults are returned. Any
// other missing path is, because the caller asked for it explicitly.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes over the defaults, fills anything left empty and
// validates. Layout indices are checked later by validation.ValidateLayout.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.Layout.VerifyKeys == nil {
		verify := true
		cfg.Layout.VerifyKeys = &verify
	}
	if cfg.Input.Encoding == "" {
		cfg.Input.Encoding = "UTF-8"
	}
	if cfg.Output.BeersFile == "" {
		cfg.Output.BeersFile = "beers.csv"
	}
	if cfg.Output.ReviewsFile == "" {
		cfg.Output.ReviewsFile = "reviews.csv"
	}
	if cfg.Output.UsersFile == "" {
		cfg.Output.UsersFile = "users.csv"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.ProgressInterval == 0 {
		cfg.ProgressInterval = 100000
	}
}

// validate checks values that defaults cannot repair.
func validate(cfg *Config) error {
	if cfg.ProgressInterval < 0 {
		return fmt.Errorf("progress_interval must not be negative, got %d", cfg.ProgressInterval)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.Logging.Level)
	}

	return nil
}

// ShouldVerifyKeys reports whether data-line keys are checked against line 0.
func (l Layout) ShouldVerifyKeys() bool {
	return l.VerifyKeys == nil || *l.VerifyKeys
}

// MinPairs is the smallest number of pairs a data line needs to be parsed.
func (l Layout) MinPairs() int {
	return l.ProfileNameIndex + 1
}
