// Package template renders page templates with HTML-aware truncation
// helpers.
//
// Templates use text/template syntax. Output is not escaped, so markup in
// page content passes through unchanged.
//
//	engine := template.NewEngine()
//	out, err := engine.Render(`<h2>{{.title}}</h2>{{.content | truncate 120}}`, vars)
//
// # Built-in Functions
//
//   - truncate(n int, s string) string - Cut markup to n visible characters, closing open tags
//   - truncateText(n int, s string) string - Cut plain text to n characters
//   - summary(n int, s string) string - Text before the summary delimiter, or truncate n
//   - striptags(s string) string - Visible text of markup
//   - visibleLength(s string) int - Characters a reader would see
//   - json(v any) string - Convert value to pretty-printed JSON
//   - upper(s string) string - Convert to uppercase
//   - lower(s string) string - Convert to lowercase
//   - trim(s string) string - Remove leading/trailing whitespace
//   - default(def, val any) any - Return def if val is nil/empty
//
// The truncating helpers use the marker and word handling the engine was
// created with; see NewEngineWithOptions.
//
// # Custom Functions
//
// Add custom functions using AddFunc:
//
//	engine.AddFunc("double", func(s string) string { return s + s })
//	result, _ := engine.Render("{{double .name}}", map[string]any{"name": "ha"})
//	// result: "haha"
package template
