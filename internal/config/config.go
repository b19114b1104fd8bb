// Package config loads and saves cashcare.yaml.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cashcare-dev/cashcare/internal/log"
)

// FileName is the config file at the repo root.
const FileName = "cashcare.yaml"

// Environment variables that override config values.
const (
	EnvRepo     = "CASHCARE_REPO"
	EnvLogLevel = "CASHCARE_LOG_LEVEL"
)

// DefaultRulesPath is where user categorization rules live, relative to the
// repo root.
const DefaultRulesPath = "rules/categorization-rules.yaml"

// maxWindow bounds every month window in the dashboard section.
const maxWindow = 120

// Config represents the top-level cashcare.yaml configuration.
type Config struct {
	Profile   ProfileConfig   `yaml:"profile"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Import    ImportConfig    `yaml:"import"`
	Rules     RulesConfig     `yaml:"rules"`
	Log       LogConfig       `yaml:"log"`
	Git       GitConfig       `yaml:"git"`
}

// ProfileConfig identifies whose money this is.
type ProfileConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // ISO 4217, e.g. "INR"
}

// DashboardConfig sizes the dashboard windows. Zero means the built-in
// default.
type DashboardConfig struct {
	TrailingMonths   int `yaml:"trailing_months"`
	TopCategories    int `yaml:"top_categories"`
	ReportMonths     int `yaml:"report_months"`
	ProjectionMonths int `yaml:"projection_months"`
}

// ImportConfig supplies defaults for the import command.
type ImportConfig struct {
	DefaultFormat  string `yaml:"default_format"`
	DefaultAccount string `yaml:"default_account"`
}

// RulesConfig points at the user categorization rules.
type RulesConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// GitConfig controls commits of ledger changes.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a cashcare.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new repo.
func Default(name, currency string) *Config {
	return &Config{
		Profile: ProfileConfig{
			Name:     name,
			Currency: currency,
		},
		Dashboard: DashboardConfig{
			TrailingMonths:   7,
			TopCategories:    7,
			ReportMonths:     6,
			ProjectionMonths: 6,
		},
		Import: ImportConfig{
			DefaultFormat: "generic",
		},
		Rules: RulesConfig{
			Path: DefaultRulesPath,
		},
		Log: LogConfig{
			Level: "info",
		},
		Git: GitConfig{
			AuthorName:  "CashCare",
			AuthorEmail: "cashcare@localhost",
		},
	}
}

// ApplyEnv overrides values from the environment. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []string

	if cur := c.Profile.Currency; cur != "" && !isCurrencyCode(cur) {
		errs = append(errs, fmt.Sprintf("invalid currency %q: must be a three-letter upper-case code", cur))
	}

	windows := []struct {
		name  string
		value int
	}{
		{"dashboard.trailing_months", c.Dashboard.TrailingMonths},
		{"dashboard.top_categories", c.Dashboard.TopCategories},
		{"dashboard.report_months", c.Dashboard.ReportMonths},
		{"dashboard.projection_months", c.Dashboard.ProjectionMonths},
	}
	for _, w := range windows {
		if w.value < 0 || w.value > maxWindow {
			errs = append(errs, fmt.Sprintf("invalid %s %d: must be between 0 and %d", w.name, w.value, maxWindow))
		}
	}

	if c.Git.AutoCommit && (c.Git.AuthorName == "" || c.Git.AuthorEmail == "") {
		errs = append(errs, "git.auto_commit requires git.author_name and git.author_email")
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
