// Package template provides template rendering functionality.
package template

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Engine provides template rendering capabilities.
type Engine struct {
	funcMap template.FuncMap
}

// NewEngine creates a new template engine.
func NewEngine() *Engine {
	return &Engine{
		funcMap: template.FuncMap{
			"upper":   strings.ToUpper,
			"lower":   strings.ToLower,
			"replace": strings.ReplaceAll,
		},
	}
}

// Render renders a template string with the given data.
func (e *Engine) Render(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("template").Funcs(e.funcMap).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
