// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"`  // Path to resume text file
	Job    string `json:"job,omitempty"`     // Path to job description text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch job description from
	Output string `json:"output,omitempty"`  // Path to write optimized resume

	// Limits
	MaxKeywords  int     `json:"max_keywords,omitempty"`  // Maximum keywords inserted per run
	DensityLimit float64 `json:"density_limit,omitempty"` // Keyword density ceiling (0.0-1.0)

	// Per-section insertion caps keyed by section label
	SectionCaps map[string]int `json:"section_caps,omitempty"`

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA sites
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

	if err := schemas.ValidateConfig(data); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.MaxKeywords < 0 {
		return fmt.Errorf("config error: 'max_keywords' must be non-negative")
	}
	if c.DensityLimit < 0 || c.DensityLimit > 1 {
		return fmt.Errorf("config error: 'density_limit' must be between 0.0 and 1.0")
	}
	for label, cap := range c.SectionCaps {
		if cap < 0 {
			return fmt.Errorf("config error: 'section_caps.%s' must be non-negative", label)
		}
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: use default if zero
	if result.MaxKeywords == 0 {
		result.MaxKeywords = defaults.MaxKeywords
	}
	if result.DensityLimit == 0 {
		result.DensityLimit = defaults.DensityLimit
	}

	if result.SectionCaps == nil {
		result.SectionCaps = defaults.SectionCaps
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Settings converts the configuration into engine optimization settings,
// filling unset values with the engine defaults.
func (c *Config) Settings() types.OptimizationSettings {
	settings := types.DefaultSettings()

	if c.MaxKeywords > 0 {
		settings.GlobalKeywordLimit = c.MaxKeywords
	}
	if c.DensityLimit > 0 {
		settings.KeywordDensityLimit = c.DensityLimit
	}
	if len(c.SectionCaps) > 0 {
		caps := make(map[types.SectionLabel]int, len(c.SectionCaps))
		for label, cap := range c.SectionCaps {
			caps[types.SectionLabel(label)] = cap
		}
		settings.MaxKeywordsPerSection = caps
	}

	return settings
}
