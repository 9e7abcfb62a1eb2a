// Package catalog holds the fixed text templates for every generated
// artifact, plus the closed registries of optional library and snippet
// stubs. All registries are built once at init and never mutated.
package catalog

import (
	"github.com/plugsmith/plugsmith-cli/internal/template"
)

// Data is the resolved value set the templates interpolate. The generator
// builds it once per run from normalized options; every field is inserted
// into the templates as literal text. Apart from the settings snippet,
// values are not escaped, so quote characters in free-text fields can
// corrupt the generated source. That mirrors the tool's documented
// behavior and is not treated as an error.
type Data struct {
	Name          string
	Slug          string
	Namespace     string
	FunctionToken string
	ConstantToken string

	Description     string
	Version         string
	Author          string
	AuthorURI       string
	PluginURI       string
	RequiresAtLeast string
	TestedUpTo      string
	RequiresPHP     string
	RepositoryURL   string
	Branch          string

	// Selected identifiers, already filtered to the known catalogs,
	// in selection order.
	Libraries []string
	Snippets  []string
}

// Catalog renders generated artifacts.
type Catalog struct {
	engine *template.Engine
}

// New creates a catalog backed by a fresh template engine.
func New() *Catalog {
	return &Catalog{engine: template.NewEngine()}
}
