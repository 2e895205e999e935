// Package truncate shortens page content to a visible-character budget.
//
// Content is usually HTML, so the default truncator reads it as a stream of
// tags and text. Tags cost nothing, a character reference such as &amp; or
// &#169; counts as a single character and is never split, and every element
// still open at the cut point is closed after the marker.
//
// # Basic Usage
//
//	tr := truncate.NewHTML()
//	result, truncated := tr.Truncate("<p>Hello <b>world</b></p>", 5)
//	// result == "<p>Hello...</p>"
//
// Configure the marker and word handling:
//
//	tr := truncate.NewHTML().WithMarker("…").WithExact(true)
//
// Or pass everything at once:
//
//	result := truncate.String(text, 200, "...", false, true)
//
// # Word Boundaries
//
// Unless Exact is set, the cut backs off to the last space in the kept text
// so no word is split. Tags after that space are dropped with the partial
// word. Text with no space is kept as cut.
//
// # Tag Closing
//
// Void elements (img, br, hr, meta and the like) and self-closing <.../>
// tags are copied through without bookkeeping. A closing tag cancels the
// most recently opened element of the same name, even if other elements
// were opened after it. Unknown constructs such as comments are copied
// verbatim and otherwise ignored.
//
// # Plain Text
//
// NewPlain and Text cut by character count without looking at markup.
//
// Lengths are counted in Unicode code points, so multi-byte characters are
// never split.
package truncate
