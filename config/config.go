// Package config loads pagekit site configuration.
//
// Configuration is read from a YAML or TOML file, then overridden by
// PAGEKIT_* environment variables (optionally loaded from a .env file).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/randalmurphal/pagekit/summary"
	"github.com/randalmurphal/pagekit/truncate"
)

// Sentinel errors for configuration loading.
var (
	// ErrUnsupportedFormat is returned for config files that are neither
	// YAML nor TOML.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalid is returned when a configuration fails validation.
	ErrInvalid = errors.New("invalid config")
)

// Environment variable names.
const (
	EnvSummaryEnabled   = "PAGEKIT_SUMMARY_ENABLED"
	EnvSummaryFormat    = "PAGEKIT_SUMMARY_FORMAT"
	EnvSummarySize      = "PAGEKIT_SUMMARY_SIZE"
	EnvSummaryDelimiter = "PAGEKIT_SUMMARY_DELIMITER"
	EnvTruncateLength   = "PAGEKIT_TRUNCATE_LENGTH"
	EnvTruncateMarker   = "PAGEKIT_TRUNCATE_MARKER"
	EnvTruncateExact    = "PAGEKIT_TRUNCATE_EXACT"
	EnvTruncateHTML     = "PAGEKIT_TRUNCATE_HTML"
	EnvPagesDir         = "PAGEKIT_PAGES_DIR"
)

// DefaultPagesDir is where pages are discovered when none is configured.
const DefaultPagesDir = "pages"

// Config is the site configuration.
type Config struct {
	// Summary controls page summaries.
	Summary summary.Config `json:"summary" yaml:"summary" toml:"summary"`

	// Truncate holds the defaults for ad-hoc truncation and template helpers.
	Truncate truncate.Options `json:"truncate" yaml:"truncate" toml:"truncate"`

	// PagesDir is the directory holding content pages.
	PagesDir string `json:"pages_dir" yaml:"pages_dir" toml:"pages_dir" jsonschema:"default=pages"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Summary:  summary.DefaultConfig(),
		Truncate: truncate.DefaultOptions(),
		PagesDir: DefaultPagesDir,
	}
}

// LoadFromEnv applies PAGEKIT_* environment variables on top of the
// current values. Unparseable values are ignored.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv(EnvSummaryEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Summary.Enabled = b
		}
	}
	if v := os.Getenv(EnvSummaryFormat); v != "" {
		c.Summary.Format = v
	}
	if v := os.Getenv(EnvSummarySize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Summary.Size = n
		}
	}
	if v := os.Getenv(EnvSummaryDelimiter); v != "" {
		c.Summary.Delimiter = v
	}
	if v := os.Getenv(EnvTruncateLength); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Truncate.MaxLength = n
		}
	}
	if v, ok := os.LookupEnv(EnvTruncateMarker); ok {
		c.Truncate.Marker = v
	}
	if v := os.Getenv(EnvTruncateExact); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Truncate.Exact = b
		}
	}
	if v := os.Getenv(EnvTruncateHTML); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Truncate.HTMLAware = b
		}
	}
	if v := os.Getenv(EnvPagesDir); v != "" {
		c.PagesDir = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.Summary.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Truncate.MaxLength < 0 {
		return fmt.Errorf("%w: truncate.max_length must be >= 0, got %d", ErrInvalid, c.Truncate.MaxLength)
	}
	return nil
}

// Truncator returns a truncator configured with the truncate defaults.
func (c *Config) Truncator() *truncate.Truncator {
	return truncate.New(c.Truncate)
}

// Summarizer returns a summarizer using the summary settings and the
// configured marker and word handling.
func (c *Config) Summarizer() *summary.Summarizer {
	opts := c.Truncate
	opts.HTMLAware = true
	return summary.New(c.Summary).WithTruncator(truncate.New(opts))
}
