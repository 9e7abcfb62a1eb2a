// Package plugin defines the options record a generation run consumes.
package plugin

import "fmt"

// Options describes one plugin to scaffold. It is built fresh per
// invocation, from the interactive form or a manifest file, and consumed
// exactly once by the generator.
type Options struct {
	Name            string          `yaml:"name"`
	Slug            string          `yaml:"slug,omitempty"`
	Description     string          `yaml:"description,omitempty"`
	Version         string          `yaml:"version,omitempty"`
	Author          string          `yaml:"author,omitempty"`
	AuthorURI       string          `yaml:"authorUri,omitempty"`
	PluginURI       string          `yaml:"pluginUri,omitempty"`
	RequiresAtLeast string          `yaml:"requiresAtLeast,omitempty"`
	TestedUpTo      string          `yaml:"testedUpTo,omitempty"`
	RequiresPHP     string          `yaml:"requiresPhp,omitempty"`
	RepositoryURL   string          `yaml:"repositoryUrl,omitempty"`
	Branch          string          `yaml:"branch,omitempty"`
	Composer        bool            `yaml:"composer,omitempty"`
	OutputDir       string          `yaml:"outputDir,omitempty"`
	Libraries       []string        `yaml:"libraries,omitempty"`
	Snippets        []string        `yaml:"snippets,omitempty"`
	Settings        *SettingsConfig `yaml:"settings,omitempty"`
}

// SettingsConfig configures the generated settings page when the "settings"
// snippet is selected. Empty fields fall back to fixed defaults at render
// time; they are never filled in here.
type SettingsConfig struct {
	PageTitle  string `yaml:"pageTitle,omitempty"`
	MenuSlug   string `yaml:"menuSlug,omitempty"`
	Capability string `yaml:"capability,omitempty"`
	ParentMenu string `yaml:"parentMenu,omitempty"`
	Format     string `yaml:"format,omitempty"`
}

// Validate checks the fields that must be present before any filesystem
// work starts. Slug emptiness is checked by the generator after derivation.
func (o *Options) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if o.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}
