package truncate

import "unicode/utf8"

// Entity grammar limits. A named reference is &name; with 2-8 alphanumerics,
// a decimal reference &#digits; with 1-7 digits, a hex reference &#xhex; with
// 1-6 hex digits.
const (
	minNamedEntity = 2
	maxNamedEntity = 8
	maxDecimalRef  = 7
	maxHexRef      = 6
)

// entityLen returns the byte length of the character reference starting at
// text[i], or 0 if none starts there.
func entityLen(text string, i int) int {
	if text[i] != '&' {
		return 0
	}

	j := i + 1
	var n int
	switch {
	case j < len(text) && text[j] == '#':
		j++
		if j < len(text) && (text[j] == 'x' || text[j] == 'X') {
			j++
			n = runLen(text[j:], isHexDigit, maxHexRef)
		} else {
			n = runLen(text[j:], isDigit, maxDecimalRef)
		}
		if n == 0 {
			return 0
		}
	default:
		n = runLen(text[j:], isAlnum, maxNamedEntity)
		if n < minNamedEntity {
			return 0
		}
	}

	j += n
	if j >= len(text) || text[j] != ';' {
		return 0
	}
	return j + 1 - i
}

// runLen counts leading bytes of s matching pred, stopping after max.
func runLen(s string, pred func(byte) bool, max int) int {
	n := 0
	for n < len(s) && n < max && pred(s[n]) {
		n++
	}
	return n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// unitLen returns the byte length of the visible unit at text[i]: a whole
// character reference, or a single UTF-8 encoded character.
func unitLen(text string, i int) int {
	if n := entityLen(text, i); n > 0 {
		return n
	}
	_, size := utf8.DecodeRuneInString(text[i:])
	return size
}

// textLength counts the visible units in a run of text.
func textLength(text string) int {
	count := 0
	for i := 0; i < len(text); i += unitLen(text, i) {
		count++
	}
	return count
}

// cutIndex returns the byte offset just past the first budget visible units
// of text. The offset never falls inside a character reference.
func cutIndex(text string, budget int) int {
	i := 0
	for ; i < len(text) && budget > 0; budget-- {
		i += unitLen(text, i)
	}
	return i
}
