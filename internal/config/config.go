// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags.
type Config struct {
	// Paths
	Catalog string `json:"catalog,omitempty"` // Path to a skill catalog file (defaults to the embedded catalog)
	Resume  string `json:"resume,omitempty"`  // Path to a resume snapshot JSON file
	Job     string `json:"job,omitempty"`     // Path to a single job snapshot JSON file

	// Batch
	Workers  int     `json:"workers,omitempty"`   // Worker pool size for batch evaluation
	MinScore float64 `json:"min_score,omitempty"` // Drop batch results scoring below this (0.0-1.0)

	// Output
	Verbose  bool `json:"verbose,omitempty"`   // Print a human-readable result summary
	JSONLogs bool `json:"json_logs,omitempty"` // Emit logs as JSON instead of console format
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are not checked here; CLI flag validation handles those after merging.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.MinScore < 0 || c.MinScore > 1 {
		return fmt.Errorf("config error: 'min_score' must be between 0.0 and 1.0")
	}

	for name, path := range map[string]string{
		"catalog": c.Catalog,
		"resume":  c.Resume,
		"job":     c.Job,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Used to apply config file values underneath CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.JSONLogs {
		result.JSONLogs = defaults.JSONLogs
	}

	return result
}
