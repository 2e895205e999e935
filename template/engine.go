package template

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/randalmurphal/pagekit/truncate"
)

// Engine renders page templates. Templates use text/template syntax and
// output is not escaped.
type Engine struct {
	funcs template.FuncMap
	opts  truncate.Options
}

// NewEngine creates an engine whose truncation helpers use
// truncate.DefaultOptions.
func NewEngine() *Engine {
	return NewEngineWithOptions(truncate.DefaultOptions())
}

// NewEngineWithOptions creates an engine whose truncation helpers use the
// marker and word handling of opts.
func NewEngineWithOptions(opts truncate.Options) *Engine {
	e := &Engine{opts: opts}
	e.funcs = e.defaultFuncs()
	return e
}

// Options returns the truncation options the helpers use.
func (e *Engine) Options() truncate.Options {
	return e.opts
}

// Render executes the template with the given variables.
func (e *Engine) Render(templateStr string, variables map[string]any) (string, error) {
	if templateStr == "" {
		return "", ErrEmpty
	}

	tmpl, parseErr := template.New("page").Funcs(e.funcs).Parse(templateStr)
	if parseErr != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, parseErr)
	}

	var buf strings.Builder
	if execErr := tmpl.Execute(&buf, variables); execErr != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, execErr)
	}

	return buf.String(), nil
}

// AddFunc adds a custom template function, replacing any helper with the
// same name.
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
}

// ValidateVariables checks that all required variables are provided.
// Returns an error wrapping ErrVariable if any required variable is missing.
func ValidateVariables(required []string, provided map[string]any) error {
	for _, name := range required {
		if _, ok := provided[name]; !ok {
			return fmt.Errorf("%w: %s", ErrVariable, name)
		}
	}
	return nil
}
