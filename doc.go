// Package pagekit shortens HTML without breaking it and builds page
// summaries for static content.
//
// Each subpackage can be used independently:
//
//   - truncate: HTML-aware truncation by visible length
//   - summary: page summaries, delimiters and plain-text descriptions
//   - page: content pages with YAML frontmatter
//   - config: site configuration from YAML, TOML and the environment
//   - template: page templates with truncation helpers
//
// # Quick Start
//
// Truncating markup:
//
//	import "github.com/randalmurphal/pagekit/truncate"
//	out := truncate.HTML("<p>Hello <b>World</b></p>", 8)
//	// out: "<p>Hello...</p>"
//
// Summarizing a page:
//
//	import "github.com/randalmurphal/pagekit/page"
//	import "github.com/randalmurphal/pagekit/summary"
//	p, _ := page.Load("pages/release.md")
//	html := p.SummaryHTML(summary.New(summary.DefaultConfig()))
//
// The pagekit command in cmd/pagekit exposes the same operations.
package pagekit
