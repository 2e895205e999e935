package summary

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/randalmurphal/pagekit/truncate"
)

// breakingTags separate words in rendered output even when the markup
// places no whitespace around them.
var breakingTags = map[string]bool{
	"p": true, "br": true, "div": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "tr": true, "td": true, "th": true,
	"table": true, "hr": true, "section": true, "article": true,
}

// skippedTags hold content that is never shown as text.
var skippedTags = map[string]bool{
	"script": true, "style": true, "template": true, "noscript": true,
}

// Plain extracts the visible text of an HTML fragment. Character references
// are decoded and runs of whitespace collapse to a single space.
func Plain(fragment string) string {
	var sb strings.Builder
	skipDepth := 0

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skippedTags[tag] && tt == html.StartTagToken {
				skipDepth++
			}
			if breakingTags[tag] {
				sb.WriteByte(' ')
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skippedTags[tag] && skipDepth > 0 {
				skipDepth--
			}
			if breakingTags[tag] {
				sb.WriteByte(' ')
			}

		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(z.Text())
			}
		}
	}
}

// Description returns a plain-text excerpt of an HTML fragment suitable for
// a meta description, cut to maxLength characters at a word boundary.
func Description(fragment string, maxLength int) string {
	return truncate.Text(Plain(fragment), maxLength)
}
