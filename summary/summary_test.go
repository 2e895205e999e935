package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/pagekit/truncate"
)

func ptr[T any](v T) *T { return &v }

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, FormatShort, cfg.Format)
	assert.Equal(t, DefaultSize, cfg.Size)
	assert.Equal(t, DefaultDelimiter, cfg.Delimiter)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "default is valid", modify: func(*Config) {}},
		{name: "long format without delimiter", modify: func(c *Config) { c.Format = FormatLong; c.Delimiter = "" }},
		{name: "unknown format", modify: func(c *Config) { c.Format = "medium" }, wantErr: "format must be"},
		{name: "negative size", modify: func(c *Config) { c.Size = -1 }, wantErr: "size must be >= 0"},
		{name: "short format without delimiter", modify: func(c *Config) { c.Delimiter = "" }, wantErr: "delimiter is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	site := DefaultConfig()

	assert.Equal(t, site, site.Merge(nil))
	assert.Equal(t, site, site.Merge(&Override{}))

	merged := site.Merge(&Override{
		Enabled: ptr(false),
		Size:    ptr(50),
	})
	assert.False(t, merged.Enabled)
	assert.Equal(t, 50, merged.Size)
	assert.Equal(t, site.Format, merged.Format)
	assert.Equal(t, site.Delimiter, merged.Delimiter)

	merged = site.Merge(&Override{Format: ptr(FormatLong), Delimiter: ptr("<!--more-->")})
	assert.Equal(t, FormatLong, merged.Format)
	assert.Equal(t, "<!--more-->", merged.Delimiter)

	// the receiver is a copy
	assert.True(t, site.Enabled)
	assert.Equal(t, DefaultSize, site.Size)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		delimiter string
		head      string
		tail      string
		found     bool
	}{
		{
			name:      "delimiter line",
			content:   "<p>Intro</p>\n===\n<p>Body</p>",
			delimiter: "===",
			head:      "<p>Intro</p>",
			tail:      "<p>Body</p>",
			found:     true,
		},
		{
			name:      "indented delimiter line with CRLF",
			content:   "Intro\r\n  ===  \r\nBody",
			delimiter: "===",
			head:      "Intro",
			tail:      "Body",
			found:     true,
		},
		{
			name:      "rendered delimiter paragraph",
			content:   "<p>Intro</p><p>===</p><p>Body</p>",
			delimiter: "===",
			head:      "<p>Intro</p>",
			tail:      "<p>Body</p>",
			found:     true,
		},
		{
			name:      "delimiter inside a line is ignored",
			content:   "a === b",
			delimiter: "===",
			head:      "a === b",
			found:     false,
		},
		{
			name:      "empty delimiter",
			content:   "a\n\nb",
			delimiter: "",
			head:      "a\n\nb",
			found:     false,
		},
		{
			name:      "delimiter on the last line",
			content:   "Intro\n===",
			delimiter: "===",
			head:      "Intro",
			tail:      "",
			found:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			head, tail, found := Split(tt.content, tt.delimiter)
			assert.Equal(t, tt.head, head)
			assert.Equal(t, tt.tail, tail)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "Intro\n\nBody", Strip("Intro\n===\nBody", "==="))
	assert.Equal(t, "Intro", Strip("Intro\n===\n", "==="))
	assert.Equal(t, "Body", Strip("===\nBody", "==="))
	assert.Equal(t, "no delimiter", Strip("no delimiter", "==="))
}

func TestSummarize(t *testing.T) {
	long := "<p>" + strings.Repeat("lorem ipsum ", 10) + "</p>"
	withDelimiter := "<p>Hand written intro.</p>\n===\n" + long

	tests := []struct {
		name     string
		content  string
		cfg      Config
		expected string
	}{
		{
			name:     "disabled returns content",
			content:  long,
			cfg:      Config{Enabled: false, Format: FormatShort, Size: 5, Delimiter: "==="},
			expected: long,
		},
		{
			name:     "short format uses delimiter",
			content:  withDelimiter,
			cfg:      Config{Enabled: true, Format: FormatShort, Size: 5, Delimiter: "==="},
			expected: "<p>Hand written intro.</p>",
		},
		{
			name:     "short format falls back to truncation",
			content:  long,
			cfg:      Config{Enabled: true, Format: FormatShort, Size: 14, Delimiter: "==="},
			expected: "<p>lorem ipsum...</p>",
		},
		{
			name:     "long format ignores delimiter",
			content:  withDelimiter,
			cfg:      Config{Enabled: true, Format: FormatLong, Size: 11, Delimiter: "==="},
			expected: "<p>Hand...</p>",
		},
		{
			name:     "fitting content is unchanged",
			content:  "<p>Short.</p>",
			cfg:      DefaultConfig(),
			expected: "<p>Short.</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Summarize(tt.content, tt.cfg))
		})
	}
}

func TestSummarizer_WithTruncator(t *testing.T) {
	cfg := Config{Enabled: true, Format: FormatLong, Size: 7}
	s := New(cfg).WithTruncator(truncate.NewHTML().WithMarker("…").WithExact(true))

	assert.Equal(t, cfg, s.Config())
	assert.Equal(t, "<p>Hello w…</p>", s.Summarize("<p>Hello world</p>"))
}

func TestSummarizer_WithOverride(t *testing.T) {
	content := "<p>Hello world</p>\n===\n<p>More.</p>"
	base := New(DefaultConfig()).WithTruncator(truncate.NewHTML().WithMarker("…").WithExact(true))

	long := base.WithOverride(&Override{Format: ptr(FormatLong), Size: ptr(7)})
	assert.Equal(t, FormatLong, long.Config().Format)
	assert.Equal(t, "<p>Hello w…</p>", long.Summarize(content), "override keeps the truncator")

	assert.Equal(t, DefaultConfig(), base.Config())
	assert.Equal(t, "<p>Hello world</p>", base.Summarize(content))
	assert.Equal(t, "<p>Hello world</p>", base.WithOverride(nil).Summarize(content))
}

func TestPlain(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		expected string
	}{
		{name: "empty", fragment: "", expected: ""},
		{name: "text", fragment: "Hello", expected: "Hello"},
		{name: "inline tags", fragment: "<p>Hello <b>bold</b> world</p>", expected: "Hello bold world"},
		{name: "block tags separate words", fragment: "<p>one</p><p>two</p><ul><li>a</li><li>b</li></ul>", expected: "one two a b"},
		{name: "line break separates words", fragment: "one<br>two<br/>three", expected: "one two three"},
		{name: "entities decoded", fragment: "Fish &amp; Chips &#169;", expected: "Fish & Chips ©"},
		{name: "whitespace collapsed", fragment: "  a \n\t b  ", expected: "a b"},
		{name: "script and style skipped", fragment: "<style>p{}</style>a<script>var x = '<b>';</script>b", expected: "ab"},
		{name: "comments skipped", fragment: "a<!-- hidden -->b", expected: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Plain(tt.fragment))
		})
	}
}

func TestDescription(t *testing.T) {
	fragment := "<h1>Title</h1><p>The quick brown fox jumps over the lazy dog.</p>"

	assert.Equal(t, "Title The quick...", Description(fragment, 18))
	assert.Equal(t, "Title The quick brown fox jumps over the lazy dog.", Description(fragment, 200))
}
