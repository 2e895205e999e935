package truncate

import "unicode/utf8"

// String truncates text in a single call.
//
// With htmlAware set, tags cost nothing, character references count as one
// character, and tags left open by the cut are closed after the marker.
// Without it, text is cut as a plain string. When exact is false the cut
// backs off to the previous space.
func String(text string, maxLength int, marker string, exact, htmlAware bool) string {
	result, _ := New(Options{
		Marker:    marker,
		Exact:     exact,
		HTMLAware: htmlAware,
	}).Truncate(text, maxLength)
	return result
}

// HTML truncates markup to maxLength visible characters using the default
// marker and word-boundary trimming.
func HTML(text string, maxLength int) string {
	result, _ := NewHTML().Truncate(text, maxLength)
	return result
}

// Text truncates plain text to maxLength characters using the default
// marker and word-boundary trimming.
func Text(text string, maxLength int) string {
	result, _ := NewPlain().Truncate(text, maxLength)
	return result
}

// VisibleLength returns the number of characters a reader would see in
// markup: tags are skipped and each character reference counts once.
func VisibleLength(text string) int {
	return visibleLength(scan(text))
}

// Length returns the length the truncator measures text by: VisibleLength
// when htmlAware is set, the character count otherwise.
func Length(text string, htmlAware bool) int {
	if htmlAware {
		return VisibleLength(text)
	}
	return utf8.RuneCountInString(text)
}
