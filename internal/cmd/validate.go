package cmd

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/plugsmith/plugsmith-cli/internal/catalog"
	"github.com/plugsmith/plugsmith-cli/internal/output"
	"github.com/plugsmith/plugsmith-cli/internal/plugin"
	"github.com/plugsmith/plugsmith-cli/internal/ui"
)

//go:embed schemas/plugin-manifest.v1.schema.json
var schemaFS embed.FS

var validateManifest string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a plugin manifest",
	Long: `Validates a plugin manifest against the manifest JSON Schema, then
runs the same semantic checks generation would: required fields, and
library or snippet identifiers outside the fixed catalogs (which would be
silently skipped).`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateManifest, "manifest", "m", plugin.ManifestFileName, "Path to the plugin manifest")
}

func runValidate(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(validateManifest)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse manifest %s: %w", validateManifest, err)
	}

	schemaBytes, err := schemaFS.ReadFile("schemas/plugin-manifest.v1.schema.json")
	if err != nil {
		return fmt.Errorf("failed to load manifest schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		output.Println(ui.ErrorStyle.Render("Validation failed with the following errors:"))
		for i, desc := range result.Errors() {
			output.Println(fmt.Sprintf("%d. %s (field: %s)", i+1, desc.String(), desc.Field()))
		}
		return fmt.Errorf("validation failed with %d errors", len(result.Errors()))
	}

	opts, err := plugin.LoadManifest(validateManifest)
	if err != nil {
		return err
	}

	if opts.OutputDir == "" {
		output.Debug("manifest has no outputDir; it must come from a flag or configuration at generate time")
	}

	for _, id := range opts.Libraries {
		if !catalog.IsLibrary(id) {
			output.Warn("unknown library will be skipped", "id", id)
		}
	}
	for _, id := range opts.Snippets {
		if !catalog.IsSnippet(id) {
			output.Warn("unknown snippet will be skipped", "id", id)
		}
	}

	output.Println(ui.SuccessStyle.Render("✔ Manifest is valid."))
	return nil
}
