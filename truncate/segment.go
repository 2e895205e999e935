package truncate

import "strings"

// segmentKind distinguishes markup from literal text.
type segmentKind int

const (
	segmentText segmentKind = iota
	segmentTag
)

// segment is one piece of the input: a single <...> construct or the run of
// text between two of them. Concatenating the segments of a scan in order
// reproduces the input exactly.
type segment struct {
	kind segmentKind
	raw  string
}

// scan splits text into tag and text segments in a single forward pass.
//
// A tag runs from '<' to the first following '>'. A '<' with no '>' anywhere
// after it cannot start a tag, so it and everything after it is text. Text
// runs are maximal: two text segments are never adjacent.
func scan(text string) []segment {
	var segments []segment
	lastClose := strings.LastIndexByte(text, '>')

	for i := 0; i < len(text); {
		lt := strings.IndexByte(text[i:], '<')
		if lt < 0 || i+lt > lastClose {
			segments = append(segments, segment{kind: segmentText, raw: text[i:]})
			break
		}
		lt += i
		if lt > i {
			segments = append(segments, segment{kind: segmentText, raw: text[i:lt]})
		}

		end := lt + strings.IndexByte(text[lt:], '>') + 1
		segments = append(segments, segment{kind: segmentTag, raw: text[lt:end]})
		i = end
	}

	return segments
}
