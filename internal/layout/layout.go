// Package layout computes the on-disk shape of a generated plugin and owns
// all directory creation and file writing.
package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Subdirectories is the fixed directory skeleton under the plugin root, in
// creation order.
var Subdirectories = []string{
	"includes",
	"admin",
	"admin/css",
	"admin/js",
	"public",
	"public/css",
	"public/js",
	"languages",
}

// Plan describes where a plugin's artifacts land.
type Plan struct {
	Root string
	Slug string
}

// NewPlan computes the plan for a slug under an output directory.
func NewPlan(outputDir, slug string) *Plan {
	return &Plan{
		Root: filepath.Join(outputDir, slug),
		Slug: slug,
	}
}

// Path resolves a path relative to the plugin root.
func (p *Plan) Path(rel string) string {
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}

// IncludeFile returns the conventional includes/ path for a class suffix,
// e.g. suffix "loader" -> includes/class-<slug>-loader.php.
func (p *Plan) IncludeFile(suffix string) string {
	return p.Path("includes/class-" + p.Slug + "-" + suffix + ".php")
}

// EnsureTree creates the plugin root and every fixed subdirectory.
func (p *Plan) EnsureTree() error {
	if err := EnsureDir(p.Root); err != nil {
		return err
	}
	for _, dir := range Subdirectories {
		if err := EnsureDir(p.Path(dir)); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir creates a directory and all missing ancestors. It is idempotent.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// Write replaces the full contents of path with text, creating the parent
// directory if needed. The write is atomic: downstream tooling never
// observes a half-written artifact.
func Write(path, text string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := renameio.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
