package truncate

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength is the default visible-character budget.
const DefaultMaxLength = 100

// DefaultMarker is appended where text was cut.
const DefaultMarker = "..."

// Options configures a Truncator.
type Options struct {
	// MaxLength is the visible-character budget. Negative values act as 0.
	MaxLength int `json:"max_length" yaml:"max_length" toml:"max_length" jsonschema:"minimum=0,default=100"`

	// Marker is appended at the cut point when truncation occurs.
	Marker string `json:"marker" yaml:"marker" toml:"marker" jsonschema:"default=..."`

	// Exact cuts exactly at the budget. When false the cut backs off to the
	// previous space so no word is split.
	Exact bool `json:"exact" yaml:"exact" toml:"exact"`

	// HTMLAware skips tags when counting, counts each character reference
	// as one character, and re-closes tags left open by the cut. When false
	// the text is cut as a plain string.
	HTMLAware bool `json:"html_aware" yaml:"html_aware" toml:"html_aware" jsonschema:"default=true"`
}

// DefaultOptions returns HTML-aware, word-preserving options with a budget
// of DefaultMaxLength and the DefaultMarker.
func DefaultOptions() Options {
	return Options{
		MaxLength: DefaultMaxLength,
		Marker:    DefaultMarker,
		Exact:     false,
		HTMLAware: true,
	}
}

// Truncator shortens text to a visible-character budget.
// A Truncator is safe for concurrent use once configured.
type Truncator struct {
	opts Options
}

// New creates a truncator with the given options.
func New(opts Options) *Truncator {
	return &Truncator{opts: opts}
}

// NewHTML creates an HTML-aware truncator with default options.
func NewHTML() *Truncator {
	return New(DefaultOptions())
}

// NewPlain creates a truncator that treats its input as plain text.
func NewPlain() *Truncator {
	opts := DefaultOptions()
	opts.HTMLAware = false
	return New(opts)
}

// WithMarker sets the string appended at the cut point.
func (t *Truncator) WithMarker(marker string) *Truncator {
	t.opts.Marker = marker
	return t
}

// WithExact sets whether the cut may split a word.
func (t *Truncator) WithExact(exact bool) *Truncator {
	t.opts.Exact = exact
	return t
}

// WithMaxLength sets the budget used by Apply.
func (t *Truncator) WithMaxLength(maxLength int) *Truncator {
	t.opts.MaxLength = maxLength
	return t
}

// Options returns the truncator's configuration.
func (t *Truncator) Options() Options {
	return t.opts
}

// Apply truncates text to the configured MaxLength.
func (t *Truncator) Apply(text string) string {
	result, _ := t.Truncate(text, t.opts.MaxLength)
	return result
}

// Truncate shortens text to at most maxLength visible characters.
// Returns the result and whether truncation occurred. Text that already
// fits is returned unmodified, without a marker.
func (t *Truncator) Truncate(text string, maxLength int) (string, bool) {
	if maxLength < 0 {
		maxLength = 0
	}
	if t.opts.HTMLAware {
		return t.truncateHTML(text, maxLength)
	}
	return t.truncatePlain(text, maxLength)
}

// truncateHTML cuts markup by visible length and re-closes open tags.
func (t *Truncator) truncateHTML(text string, maxLength int) (string, bool) {
	segments := scan(text)
	if visibleLength(segments) <= maxLength {
		return text, false
	}

	kept := make([]segment, 0, len(segments))
	count := 0
	full := false
	cut := false
	for _, seg := range segments {
		if seg.kind == segmentTag {
			// Once the budget is spent only closing tags are kept, so the
			// marker never lands in an element opened after the last text.
			if !full || isClosingTag(seg.raw) {
				kept = append(kept, seg)
			}
			continue
		}

		n := textLength(seg.raw)
		if count+n <= maxLength {
			kept = append(kept, seg)
			count += n
			full = count == maxLength
			continue
		}

		end := cutIndex(seg.raw, maxLength-count)
		kept = append(kept, segment{kind: segmentText, raw: seg.raw[:end]})
		cut = true
		break
	}

	if !cut {
		return text, false
	}
	if !t.opts.Exact {
		kept = trimToWord(kept)
	}

	var stack openTags
	var sb strings.Builder
	sb.Grow(len(text) + len(t.opts.Marker))
	for _, seg := range kept {
		if seg.kind == segmentTag {
			stack.apply(seg.raw)
		}
		sb.WriteString(seg.raw)
	}
	sb.WriteString(t.opts.Marker)
	stack.writeClosing(&sb)

	return sb.String(), true
}

// truncatePlain cuts text by character count, ignoring markup.
func (t *Truncator) truncatePlain(text string, maxLength int) (string, bool) {
	if utf8.RuneCountInString(text) <= maxLength {
		return text, false
	}

	end := 0
	for i := 0; i < maxLength; i++ {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}

	kept := []segment{{kind: segmentText, raw: text[:end]}}
	if !t.opts.Exact {
		kept = trimToWord(kept)
	}

	var sb strings.Builder
	for _, seg := range kept {
		sb.WriteString(seg.raw)
	}
	sb.WriteString(t.opts.Marker)
	return sb.String(), true
}

// trimToWord backs the kept output off to its last space. The text segment
// holding that space loses everything from the space on, and every later
// segment is dropped. Trailing spaces are then trimmed back across earlier
// text segments, and opening tags left with no text after them are dropped,
// so the visible text ends on a non-space. Without a space the segments are
// returned unchanged.
func trimToWord(segments []segment) []segment {
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i].kind != segmentText {
			continue
		}
		j := strings.LastIndexByte(segments[i].raw, ' ')
		if j < 0 {
			continue
		}
		segments = segments[:i+1]
		segments[i].raw = segments[i].raw[:j]
		return trimTrailing(segments)
	}
	return segments
}

// trimTrailing removes trailing spaces from the visible text, then drops
// empty text segments and dangling opening tags from the end.
func trimTrailing(segments []segment) []segment {
	for k := len(segments) - 1; k >= 0; k-- {
		if segments[k].kind != segmentText {
			continue
		}
		segments[k].raw = strings.TrimRight(segments[k].raw, " ")
		if segments[k].raw != "" {
			break
		}
	}

	for len(segments) > 0 {
		last := segments[len(segments)-1]
		if last.kind == segmentText && last.raw != "" {
			break
		}
		if last.kind == segmentTag {
			if kind, _ := classifyTag(last.raw); kind != tagOpening {
				break
			}
		}
		segments = segments[:len(segments)-1]
	}
	return segments
}

// visibleLength sums the visible length of all text segments.
func visibleLength(segments []segment) int {
	total := 0
	for _, seg := range segments {
		if seg.kind == segmentText {
			total += textLength(seg.raw)
		}
	}
	return total
}
