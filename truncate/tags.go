package truncate

import (
	"slices"
	"strings"
)

// tagKind is the role a tag segment plays in open-tag bookkeeping.
type tagKind int

const (
	// tagOpaque is emitted verbatim with no stack effect: comments,
	// declarations, processing instructions, unterminated or nameless tags.
	tagOpaque tagKind = iota

	// tagVoid never has a closing tag: a void element name or a <.../> form.
	tagVoid

	// tagClosing is a </name> tag.
	tagClosing

	// tagOpening is a <name ...> tag that expects a matching </name>.
	tagOpening
)

// voidElements are the element names that never take a closing tag.
var voidElements = map[string]struct{}{
	"img":      {},
	"br":       {},
	"input":    {},
	"hr":       {},
	"area":     {},
	"base":     {},
	"basefont": {},
	"col":      {},
	"frame":    {},
	"isindex":  {},
	"link":     {},
	"meta":     {},
	"param":    {},
}

// classifyTag reports the kind of a tag segment and, for opening and
// closing tags, its lowercased element name.
func classifyTag(raw string) (tagKind, string) {
	if len(raw) < 2 || raw[len(raw)-1] != '>' {
		return tagOpaque, ""
	}

	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	if inner == "" {
		return tagOpaque, ""
	}

	if before, ok := strings.CutSuffix(inner, "/"); ok && strings.TrimSpace(before) != "" {
		return tagVoid, ""
	}

	if rest, ok := strings.CutPrefix(inner, "/"); ok {
		name := strings.TrimSpace(rest)
		if !isTagName(name) || strings.ContainsFunc(name, isSpace) {
			return tagOpaque, ""
		}
		return tagClosing, strings.ToLower(name)
	}

	name := inner
	if i := strings.IndexFunc(inner, func(r rune) bool { return isSpace(r) || r == '/' }); i >= 0 {
		name = inner[:i]
	}
	if !isTagName(name) {
		return tagOpaque, ""
	}

	name = strings.ToLower(name)
	if _, ok := voidElements[name]; ok {
		return tagVoid, ""
	}
	return tagOpening, name
}

// isClosingTag reports whether raw is a </name> tag.
func isClosingTag(raw string) bool {
	kind, _ := classifyTag(raw)
	return kind == tagClosing
}

// isTagName reports whether s starts like an element name. Names starting
// with '!' or '?' are declarations and processing instructions.
func isTagName(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}

// openTags holds names of elements opened but not yet closed, most recently
// opened first.
type openTags []string

// push records a newly opened element at the front.
func (s *openTags) push(name string) {
	*s = slices.Insert(*s, 0, name)
}

// remove drops the first occurrence of name, wherever it sits. A closing
// tag therefore matches the nearest open element with that name, not
// necessarily the innermost one. Names that are not open are ignored.
func (s *openTags) remove(name string) {
	if i := slices.Index(*s, name); i >= 0 {
		*s = slices.Delete(*s, i, i+1)
	}
}

// apply updates the stack for one tag segment.
func (s *openTags) apply(raw string) {
	switch kind, name := classifyTag(raw); kind {
	case tagOpening:
		s.push(name)
	case tagClosing:
		s.remove(name)
	}
}

// writeClosing appends a closing tag for every open element, front to back.
func (s openTags) writeClosing(sb *strings.Builder) {
	for _, name := range s {
		sb.WriteString("</")
		sb.WriteString(name)
		sb.WriteString(">")
	}
}
