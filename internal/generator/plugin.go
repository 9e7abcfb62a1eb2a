package generator

import (
	"context"
	"fmt"
	"os"

	"github.com/plugsmith/plugsmith-cli/internal/catalog"
	"github.com/plugsmith/plugsmith-cli/internal/config"
	"github.com/plugsmith/plugsmith-cli/internal/layout"
	"github.com/plugsmith/plugsmith-cli/internal/naming"
	"github.com/plugsmith/plugsmith-cli/internal/output"
)

// Fallback header values applied when the options leave them blank.
const (
	defaultVersion         = "1.0.0"
	defaultBranch          = "main"
	defaultRequiresAtLeast = "6.2"
	defaultTestedUpTo      = "6.6"
	defaultRequiresPHP     = "7.4"
)

// PluginGenerator scaffolds a complete WordPress plugin tree.
type PluginGenerator struct {
	catalog *catalog.Catalog
}

// NewPluginGenerator creates a new plugin generator.
func NewPluginGenerator() *PluginGenerator {
	return &PluginGenerator{
		catalog: catalog.New(),
	}
}

// Name returns the generator name.
func (g *PluginGenerator) Name() string {
	return "plugin"
}

// Description returns the generator description.
func (g *PluginGenerator) Description() string {
	return "Generate a WordPress plugin boilerplate"
}

type artifact struct {
	rel     string
	content string
}

// Generate validates the options, resolves defaults, and writes the plugin
// tree in a fixed order. Validation and the destination-emptiness check
// both run before the first write; a failure mid-write aborts the run and
// leaves earlier artifacts on disk.
func (g *PluginGenerator) Generate(ctx context.Context, opts Options) (*Result, error) {
	o := opts.Plugin
	if o == nil {
		return nil, validationErrorf("plugin options are required")
	}
	if err := o.Validate(); err != nil {
		return nil, &ValidationError{msg: err.Error()}
	}

	slug := o.Slug
	if slug == "" {
		slug = naming.Slugify(o.Name)
	}
	if slug == "" {
		return nil, validationErrorf("plugin name %q yields an empty slug", o.Name)
	}

	d := g.resolve(slug, opts)

	plan := layout.NewPlan(o.OutputDir, slug)
	entries, err := os.ReadDir(plan.Root)
	switch {
	case err == nil && len(entries) > 0:
		return nil, &DestinationConflictError{Path: plan.Root}
	case err != nil && !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to inspect destination %s: %w", plan.Root, err)
	}

	artifacts, err := g.assemble(d, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{PluginPath: plan.Root}
	for _, a := range artifacts {
		result.Artifacts = append(result.Artifacts, a.rel)
	}

	if opts.DryRun {
		return result, nil
	}

	if err := plan.EnsureTree(); err != nil {
		return nil, err
	}

	for _, a := range artifacts {
		if err := layout.Write(plan.Path(a.rel), a.content); err != nil {
			return nil, err
		}
		output.Debug("wrote artifact", "path", a.rel)
		if opts.Observer != nil {
			opts.Observer(a.rel)
		}
	}

	return result, nil
}

// resolve applies the fallback chain to the raw options and produces the
// value set the templates consume.
func (g *PluginGenerator) resolve(slug string, opts Options) *catalog.Data {
	o := opts.Plugin

	defaults := opts.Defaults
	if defaults == nil {
		defaults = &config.Config{
			Author:    config.DefaultAuthor,
			AuthorURI: config.DefaultAuthorURI,
		}
	}

	d := &catalog.Data{
		Name:            o.Name,
		Slug:            slug,
		Namespace:       naming.Namespace(slug),
		FunctionToken:   naming.FunctionToken(slug),
		ConstantToken:   naming.ConstantToken(slug),
		Description:     o.Description,
		Version:         o.Version,
		Author:          o.Author,
		AuthorURI:       o.AuthorURI,
		PluginURI:       o.PluginURI,
		RequiresAtLeast: o.RequiresAtLeast,
		TestedUpTo:      o.TestedUpTo,
		RequiresPHP:     o.RequiresPHP,
		RepositoryURL:   o.RepositoryURL,
		Branch:          o.Branch,
		Libraries:       catalog.FilterLibraries(o.Libraries),
		Snippets:        catalog.FilterSnippets(o.Snippets),
	}

	if d.Version == "" {
		d.Version = defaultVersion
	}
	if d.Author == "" {
		d.Author = defaults.Author
	}
	if d.AuthorURI == "" {
		d.AuthorURI = defaults.AuthorURI
	}
	if d.PluginURI == "" {
		d.PluginURI = config.PluginURIBase + slug + "/"
	}
	if d.Branch == "" {
		d.Branch = defaultBranch
	}
	if d.RequiresAtLeast == "" {
		d.RequiresAtLeast = defaultRequiresAtLeast
	}
	if d.TestedUpTo == "" {
		d.TestedUpTo = defaultTestedUpTo
	}
	if d.RequiresPHP == "" {
		d.RequiresPHP = defaultRequiresPHP
	}

	return d
}

// assemble renders every artifact in write order.
func (g *PluginGenerator) assemble(d *catalog.Data, opts Options) ([]artifact, error) {
	var artifacts []artifact
	add := func(rel string, render func(*catalog.Data) (string, error)) error {
		content, err := render(d)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", rel, err)
		}
		artifacts = append(artifacts, artifact{rel: rel, content: content})
		return nil
	}

	slug := d.Slug
	fixed := []struct {
		rel    string
		render func(*catalog.Data) (string, error)
	}{
		{slug + ".php", g.catalog.EntryFile},
		{"includes/class-" + slug + "-activator.php", g.catalog.Activator},
		{"includes/class-" + slug + "-deactivator.php", g.catalog.Deactivator},
		{"includes/class-" + slug + ".php", g.catalog.CoreClass},
		{"includes/class-" + slug + "-loader.php", g.catalog.Loader},
		{"admin/class-" + slug + "-admin.php", g.catalog.Admin},
		{"public/class-" + slug + "-public.php", g.catalog.Public},
		{"readme.txt", g.catalog.Readme},
	}
	for _, f := range fixed {
		if err := add(f.rel, f.render); err != nil {
			return nil, err
		}
	}

	if opts.Plugin.Composer {
		if err := add("composer.json", g.catalog.Composer); err != nil {
			return nil, err
		}
	}

	for _, rel := range []string{
		"admin/css/" + slug + "-admin.css",
		"admin/js/" + slug + "-admin.js",
		"public/css/" + slug + "-public.css",
		"public/js/" + slug + "-public.js",
	} {
		artifacts = append(artifacts, artifact{rel: rel})
	}

	for _, id := range d.Libraries {
		content, known, err := g.catalog.Library(id, d)
		if err != nil {
			return nil, fmt.Errorf("failed to render library %s: %w", id, err)
		}
		if !known {
			continue
		}
		artifacts = append(artifacts, artifact{
			rel:     "includes/class-" + slug + "-" + id + ".php",
			content: content,
		})
	}

	for _, id := range d.Snippets {
		content, known, err := g.catalog.Snippet(id, d, opts.Plugin.Settings)
		if err != nil {
			return nil, fmt.Errorf("failed to render snippet %s: %w", id, err)
		}
		if !known {
			continue
		}
		artifacts = append(artifacts, artifact{
			rel:     "includes/class-" + slug + "-" + id + ".php",
			content: content,
		})
	}

	return artifacts, nil
}

func init() {
	if err := DefaultRegistry.Register(NewPluginGenerator()); err != nil {
		panic(err)
	}
}
