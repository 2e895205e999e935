package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/pagekit/summary"
	"github.com/randalmurphal/pagekit/truncate"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, summary.DefaultConfig(), cfg.Summary)
	assert.Equal(t, truncate.DefaultOptions(), cfg.Truncate)
	assert.Equal(t, DefaultPagesDir, cfg.PagesDir)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    func() Config
		wantErr string
	}{
		{
			name: "yaml",
			file: "site.yaml",
			content: `summary:
  format: long
  size: 120
truncate:
  max_length: 50
  marker: " [more]"
  exact: true
pages_dir: content
`,
			want: func() Config {
				c := Default()
				c.Summary.Format = summary.FormatLong
				c.Summary.Size = 120
				c.Truncate.MaxLength = 50
				c.Truncate.Marker = " [more]"
				c.Truncate.Exact = true
				c.PagesDir = "content"
				return c
			},
		},
		{
			name: "yml extension",
			file: "site.yml",
			content: `summary:
  enabled: false
`,
			want: func() Config {
				c := Default()
				c.Summary.Enabled = false
				return c
			},
		},
		{
			name: "toml",
			file: "site.toml",
			content: `pages_dir = "posts"

[summary]
delimiter = "<!--more-->"

[truncate]
html_aware = false
`,
			want: func() Config {
				c := Default()
				c.PagesDir = "posts"
				c.Summary.Delimiter = "<!--more-->"
				c.Truncate.HTMLAware = false
				return c
			},
		},
		{
			name:    "empty yaml keeps defaults",
			file:    "empty.yaml",
			content: "",
			want:    Default,
		},
		{
			name:    "unknown yaml key",
			file:    "bad.yaml",
			content: "summery:\n  size: 10\n",
			wantErr: "summery",
		},
		{
			name:    "unknown toml key",
			file:    "bad.toml",
			content: "[truncate]\nlength = 10\n",
			wantErr: "unknown keys: truncate.length",
		},
		{
			name:    "malformed yaml",
			file:    "broken.yaml",
			content: "summary: [\n",
			wantErr: "parse broken.yaml",
		},
		{
			name:    "unsupported extension",
			file:    "site.json",
			content: "{}",
			wantErr: "unsupported config format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			cfg, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want(), *cfg)
		})
	}
}

func TestLoad_UnsupportedFormatIsSentinel(t *testing.T) {
	path := writeFile(t, t.TempDir(), "site.ini", "")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvSummaryEnabled, "false")
	t.Setenv(EnvSummaryFormat, "long")
	t.Setenv(EnvSummarySize, "42")
	t.Setenv(EnvSummaryDelimiter, "---")
	t.Setenv(EnvTruncateLength, "64")
	t.Setenv(EnvTruncateMarker, "")
	t.Setenv(EnvTruncateExact, "true")
	t.Setenv(EnvTruncateHTML, "0")
	t.Setenv(EnvPagesDir, "site/pages")

	cfg := Default()
	cfg.LoadFromEnv()

	assert.False(t, cfg.Summary.Enabled)
	assert.Equal(t, summary.FormatLong, cfg.Summary.Format)
	assert.Equal(t, 42, cfg.Summary.Size)
	assert.Equal(t, "---", cfg.Summary.Delimiter)
	assert.Equal(t, 64, cfg.Truncate.MaxLength)
	assert.Equal(t, "", cfg.Truncate.Marker, "an empty marker is a valid override")
	assert.True(t, cfg.Truncate.Exact)
	assert.False(t, cfg.Truncate.HTMLAware)
	assert.Equal(t, "site/pages", cfg.PagesDir)
}

func TestLoadFromEnv_IgnoresUnparseableValues(t *testing.T) {
	t.Setenv(EnvSummaryEnabled, "maybe")
	t.Setenv(EnvSummarySize, "lots")
	t.Setenv(EnvTruncateLength, "1e3")
	t.Setenv(EnvTruncateExact, "sometimes")

	cfg := Default()
	cfg.LoadFromEnv()

	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "default", modify: func(*Config) {}},
		{name: "zero budget", modify: func(c *Config) { c.Truncate.MaxLength = 0 }},
		{name: "negative budget", modify: func(c *Config) { c.Truncate.MaxLength = -5 }, wantErr: "truncate.max_length"},
		{name: "bad summary format", modify: func(c *Config) { c.Summary.Format = "tiny" }, wantErr: "format must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_WrapsSummaryError(t *testing.T) {
	cfg := Default()
	cfg.Summary.Size = -1

	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, summary.ErrInvalidConfig)
}

func TestResolve(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := Resolve("")
		require.NoError(t, err)
		assert.Equal(t, Default(), *cfg)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "site.yaml", "summary:\n  size: 10\n")
		t.Setenv(EnvSummarySize, "20")

		cfg, err := Resolve(path)
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.Summary.Size)
	})

	t.Run("invalid result is rejected", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "site.yaml", "summary:\n  format: medium\n")

		_, err := Resolve(path)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("load errors pass through", func(t *testing.T) {
		_, err := Resolve(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Error(t, err)
	})
}

func TestConfig_Truncator(t *testing.T) {
	cfg := Default()
	cfg.Truncate.MaxLength = 5
	cfg.Truncate.Exact = true
	cfg.Truncate.Marker = "~"

	assert.Equal(t, "<b>Hello~</b>", cfg.Truncator().Apply("<b>Hello world</b>"))
}

func TestConfig_Summarizer(t *testing.T) {
	cfg := Default()
	cfg.Summary.Format = summary.FormatLong
	cfg.Summary.Size = 5
	cfg.Truncate.Exact = true
	cfg.Truncate.Marker = "~"
	cfg.Truncate.HTMLAware = false

	s := cfg.Summarizer()

	assert.Equal(t, cfg.Summary, s.Config())
	assert.Equal(t, "<p>Hello~</p>", s.Summarize("<p>Hello world</p>"), "summaries are always HTML-aware")
}

func TestLoadDotEnv(t *testing.T) {
	const key = "PAGEKIT_TEST_DOTENV_VALUE"
	t.Cleanup(func() { os.Unsetenv(key) })

	path := writeFile(t, t.TempDir(), "test.env", key+"=from-file\n")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv(key))
}

func TestLoadDotEnv_KeepsExistingValues(t *testing.T) {
	t.Setenv(EnvPagesDir, "from-process")
	path := writeFile(t, t.TempDir(), "test.env", EnvPagesDir+"=from-file\n")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-process", os.Getenv(EnvPagesDir))
}

func TestLoadDotEnv_MissingExplicitFile(t *testing.T) {
	err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load env file")
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, SchemaID, doc["$id"])
	assert.Equal(t, "pagekit site configuration", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "schema has properties")
	assert.Contains(t, props, "summary")
	assert.Contains(t, props, "truncate")
	assert.Contains(t, props, "pages_dir")

	tr, ok := props["truncate"].(map[string]any)
	require.True(t, ok)
	trProps, ok := tr["properties"].(map[string]any)
	require.True(t, ok, "nested structs are inlined")
	assert.Contains(t, trProps, "max_length")
	assert.Contains(t, trProps, "html_aware")
}
