// Package summary builds page summaries and descriptions from HTML content.
//
// A summary is either the hand-written text before a delimiter line or the
// content truncated to a visible-character budget with open tags re-closed:
//
//	s := summary.New(summary.DefaultConfig())
//	intro := s.Summarize(page.Content)
//
// Pages can override site settings field by field:
//
//	cfg := site.Merge(&summary.Override{Size: &size})
//
// Plain and Description produce text without markup for feeds and meta tags.
package summary
