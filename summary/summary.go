package summary

import (
	"strings"

	"github.com/randalmurphal/pagekit/truncate"
)

// Summarizer produces page summaries.
type Summarizer struct {
	cfg Config
	tr  *truncate.Truncator
}

// New creates a summarizer that truncates with the default HTML truncator.
func New(cfg Config) *Summarizer {
	return &Summarizer{
		cfg: cfg,
		tr:  truncate.NewHTML(),
	}
}

// WithTruncator sets the truncator used when a summary is cut by size.
func (s *Summarizer) WithTruncator(tr *truncate.Truncator) *Summarizer {
	s.tr = tr
	return s
}

// WithOverride returns a copy of the summarizer with o applied on top of its
// configuration. The truncator is shared.
func (s *Summarizer) WithOverride(o *Override) *Summarizer {
	return &Summarizer{
		cfg: s.cfg.Merge(o),
		tr:  s.tr,
	}
}

// Config returns the summarizer's configuration.
func (s *Summarizer) Config() Config {
	return s.cfg
}

// Summarize returns the summary of content.
//
// A disabled summary is the whole content. In the short format a delimiter
// line ends the summary; without one, and always in the long format, the
// content is truncated to Size visible characters.
func (s *Summarizer) Summarize(content string) string {
	if !s.cfg.Enabled {
		return content
	}
	if s.cfg.Format == FormatShort {
		if head, _, found := Split(content, s.cfg.Delimiter); found {
			return head
		}
	}
	result, _ := s.tr.Truncate(content, s.cfg.Size)
	return result
}

// Summarize is a convenience function using the default truncator.
func Summarize(content string, cfg Config) string {
	return New(cfg).Summarize(content)
}

// Split cuts content at the summary delimiter. The delimiter is recognized
// on a line of its own or as a rendered paragraph (<p>===</p>). head and
// tail are trimmed of surrounding whitespace. When the delimiter is absent,
// head is the whole content and found is false.
func Split(content, delimiter string) (head, tail string, found bool) {
	if delimiter == "" {
		return content, "", false
	}

	if i := strings.Index(content, "<p>"+delimiter+"</p>"); i >= 0 {
		rest := content[i+len("<p>"+delimiter+"</p>"):]
		return strings.TrimSpace(content[:i]), strings.TrimSpace(rest), true
	}

	offset := 0
	for _, line := range strings.SplitAfter(content, "\n") {
		if strings.TrimSpace(line) == delimiter {
			rest := content[offset+len(line):]
			return strings.TrimSpace(content[:offset]), strings.TrimSpace(rest), true
		}
		offset += len(line)
	}

	return content, "", false
}

// Strip removes the summary delimiter from content, joining the summary and
// the rest with a blank line.
func Strip(content, delimiter string) string {
	head, tail, found := Split(content, delimiter)
	if !found {
		return content
	}
	if tail == "" {
		return head
	}
	if head == "" {
		return tail
	}
	return head + "\n\n" + tail
}
