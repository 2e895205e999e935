package template

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/randalmurphal/pagekit/summary"
	"github.com/randalmurphal/pagekit/truncate"
)

// defaultFuncs returns the built-in helpers. Helpers that take a length
// take it first so they read naturally in pipelines:
//
//	{{.content | truncate 50}}
func (e *Engine) defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate":      e.truncateHTML,
		"truncateText":  e.truncateText,
		"summary":       e.summarize,
		"striptags":     summary.Plain,
		"visibleLength": truncate.VisibleLength,
		"json":          toJSON,
		"upper":         strings.ToUpper,
		"lower":         strings.ToLower,
		"trim":          strings.TrimSpace,
		"default":       defaultValue,
	}
}

func (e *Engine) truncator(htmlAware bool) *truncate.Truncator {
	opts := e.opts
	opts.HTMLAware = htmlAware
	return truncate.New(opts)
}

// truncateHTML cuts markup to maxLength visible characters and closes any
// tags left open.
func (e *Engine) truncateHTML(maxLength int, s string) string {
	result, _ := e.truncator(true).Truncate(s, maxLength)
	return result
}

// truncateText cuts s as plain text.
func (e *Engine) truncateText(maxLength int, s string) string {
	result, _ := e.truncator(false).Truncate(s, maxLength)
	return result
}

// summarize returns the summary of content: the text before the summary
// delimiter, or the content truncated to size visible characters.
func (e *Engine) summarize(size int, content string) string {
	cfg := summary.DefaultConfig()
	cfg.Size = size
	return summary.New(cfg).WithTruncator(e.truncator(true)).Summarize(content)
}

// toJSON converts a value to a pretty-printed JSON string.
// If marshaling fails, returns the value's default string representation.
func toJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// defaultValue returns def if val is nil or an empty string.
// Other zero values, like 0 or false, are returned as is.
func defaultValue(def, val any) any {
	if val == nil {
		return def
	}
	if s, ok := val.(string); ok && s == "" {
		return def
	}
	return val
}
