// Package generator provides the generator framework for scaffolding
// plugin projects.
package generator

import (
	"context"
	"fmt"

	"github.com/plugsmith/plugsmith-cli/internal/config"
	"github.com/plugsmith/plugsmith-cli/internal/plugin"
)

// Generator defines the interface for all generators.
type Generator interface {
	// Name returns the name of the generator.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// Generate executes the generator with the given context and options.
	Generate(ctx context.Context, opts Options) (*Result, error)
}

// Options contains common options for all generators.
type Options struct {
	// Plugin is the options record describing what to scaffold.
	Plugin *plugin.Options

	// Defaults supplies the tool-level fallback identity. Nil means the
	// compiled-in defaults.
	Defaults *config.Config

	// DryRun computes the artifact list without touching the filesystem.
	DryRun bool

	// Observer, when set, is invoked after each artifact is written with
	// its path relative to the plugin root.
	Observer func(relPath string)
}

// Result reports what a generation run produced.
type Result struct {
	// PluginPath is the root of the generated plugin.
	PluginPath string

	// Artifacts lists the written file paths relative to PluginPath, in
	// write order.
	Artifacts []string
}

// Registry manages available generators.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates a new generator registry.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// Register adds a generator to the registry.
func (r *Registry) Register(generator Generator) error {
	name := generator.Name()
	if _, exists := r.generators[name]; exists {
		return fmt.Errorf("generator %q already registered", name)
	}

	r.generators[name] = generator
	return nil
}

// Get retrieves a generator by name.
func (r *Registry) Get(name string) (Generator, error) {
	generator, exists := r.generators[name]
	if !exists {
		return nil, fmt.Errorf("generator %q not found", name)
	}

	return generator, nil
}

// List returns all registered generator names.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the global generator registry.
var DefaultRegistry = NewRegistry()

// Get retrieves a generator from the default registry.
func Get(name string) (Generator, error) {
	return DefaultRegistry.Get(name)
}
