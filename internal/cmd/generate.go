package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith-cli/internal/config"
	"github.com/plugsmith/plugsmith-cli/internal/generator"
	"github.com/plugsmith/plugsmith-cli/internal/output"
	"github.com/plugsmith/plugsmith-cli/internal/plugin"
)

var (
	generateManifest string
	generateOutput   string
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"g"},
	Short:   "Generate a plugin from a manifest file",
	Long: `Generate a WordPress plugin non-interactively from a manifest file.

The manifest is a YAML document mirroring the interactive form. Run
'plugsmith validate' to check one before generating.

Examples:
  plugsmith generate --manifest plugsmith.yaml
  plugsmith g --manifest plugsmith.yaml --output ~/plugins`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateManifest, "manifest", "m", plugin.ManifestFileName, "Path to the plugin manifest")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Directory the plugin folder is created in (overrides the manifest)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := plugin.LoadManifest(generateManifest)
	if err != nil {
		return err
	}

	if generateOutput != "" {
		opts.OutputDir = generateOutput
	}

	cfg, err := config.NewLoader().Load("")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.OutputDir == "" {
		opts.OutputDir = cfg.OutputDir
	}

	result, err := runGenerator(context.Background(), generator.Options{
		Plugin:   opts,
		Defaults: cfg,
	})
	if err != nil {
		return fmt.Errorf("failed to generate plugin: %w", err)
	}

	output.Info("plugin generated", "path", result.PluginPath, "files", len(result.Artifacts))
	return nil
}
