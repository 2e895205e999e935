package summary

import (
	"errors"
	"fmt"
)

// Summary formats.
const (
	// FormatShort uses the text before the delimiter when the page has one,
	// and falls back to truncation otherwise.
	FormatShort = "short"

	// FormatLong always truncates the full content by size.
	FormatLong = "long"
)

// DefaultSize is the default visible-character budget for summaries.
const DefaultSize = 300

// DefaultDelimiter separates the summary from the rest of a page.
const DefaultDelimiter = "==="

// ErrInvalidConfig is returned when a summary configuration is unusable.
var ErrInvalidConfig = errors.New("invalid summary config")

// Config controls how page summaries are produced.
type Config struct {
	// Enabled turns summaries on. A disabled summary is the full content.
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled" jsonschema:"default=true"`

	// Format is FormatShort or FormatLong.
	Format string `json:"format" yaml:"format" toml:"format" jsonschema:"enum=short,enum=long,default=short"`

	// Size is the visible-character budget when truncating.
	Size int `json:"size" yaml:"size" toml:"size" jsonschema:"minimum=0,default=300"`

	// Delimiter marks the end of a hand-written summary.
	Delimiter string `json:"delimiter" yaml:"delimiter" toml:"delimiter" jsonschema:"default===="`
}

// DefaultConfig returns an enabled short-format configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:   true,
		Format:    FormatShort,
		Size:      DefaultSize,
		Delimiter: DefaultDelimiter,
	}
}

// Validate checks that the configuration can be applied.
func (c Config) Validate() error {
	if c.Format != FormatShort && c.Format != FormatLong {
		return fmt.Errorf("%w: format must be %q or %q, got %q", ErrInvalidConfig, FormatShort, FormatLong, c.Format)
	}
	if c.Size < 0 {
		return fmt.Errorf("%w: size must be >= 0, got %d", ErrInvalidConfig, c.Size)
	}
	if c.Format == FormatShort && c.Delimiter == "" {
		return fmt.Errorf("%w: delimiter is required for %q format", ErrInvalidConfig, FormatShort)
	}
	return nil
}

// Override holds per-page summary settings. Nil fields keep the site value.
type Override struct {
	Enabled   *bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Format    *string `json:"format,omitempty" yaml:"format,omitempty"`
	Size      *int    `json:"size,omitempty" yaml:"size,omitempty"`
	Delimiter *string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
}

// Merge returns a copy of c with every field set in o applied on top.
func (c Config) Merge(o *Override) Config {
	if o == nil {
		return c
	}
	if o.Enabled != nil {
		c.Enabled = *o.Enabled
	}
	if o.Format != nil {
		c.Format = *o.Format
	}
	if o.Size != nil {
		c.Size = *o.Size
	}
	if o.Delimiter != nil {
		c.Delimiter = *o.Delimiter
	}
	return c
}
