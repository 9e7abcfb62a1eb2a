package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith-cli/internal/catalog"
	"github.com/plugsmith/plugsmith-cli/internal/config"
	"github.com/plugsmith/plugsmith-cli/internal/generator"
	"github.com/plugsmith/plugsmith-cli/internal/output"
	"github.com/plugsmith/plugsmith-cli/internal/plugin"
	"github.com/plugsmith/plugsmith-cli/internal/ui"
)

var (
	newSlug          string
	newDescription   string
	newPluginVersion string
	newAuthor        string
	newAuthorURI     string
	newPluginURI     string
	newRepositoryURL string
	newBranch        string
	newOutputDir     string
	newComposer      bool
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new WordPress plugin interactively",
	Long: `Create a new WordPress plugin with the specified name.

Fields not given as flags are collected interactively, including the
output directory via a terminal directory picker.

Examples:
  plugsmith new
  plugsmith new "My Cool Plugin"
  plugsmith new "My Cool Plugin" --output ~/plugins --composer`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVar(&newSlug, "slug", "", "Plugin slug (derived from the name when omitted)")
	newCmd.Flags().StringVar(&newDescription, "description", "", "Plugin description")
	newCmd.Flags().StringVar(&newPluginVersion, "plugin-version", "", "Initial plugin version (default 1.0.0)")
	newCmd.Flags().StringVar(&newAuthor, "author", "", "Plugin author")
	newCmd.Flags().StringVar(&newAuthorURI, "author-uri", "", "Author URI")
	newCmd.Flags().StringVar(&newPluginURI, "plugin-uri", "", "Plugin URI")
	newCmd.Flags().StringVar(&newRepositoryURL, "repository-url", "", "Git repository URL for update-checker integration")
	newCmd.Flags().StringVar(&newBranch, "branch", "", "Repository branch for updates (default main)")
	newCmd.Flags().StringVar(&newOutputDir, "output", "", "Directory the plugin folder is created in")
	newCmd.Flags().BoolVar(&newComposer, "composer", false, "Generate a composer.json dependency manifest")
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().Load("")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	prompter := ui.NewPrompter()

	opts := &plugin.Options{
		Slug:          newSlug,
		Description:   newDescription,
		Version:       newPluginVersion,
		Author:        newAuthor,
		AuthorURI:     newAuthorURI,
		PluginURI:     newPluginURI,
		RepositoryURL: newRepositoryURL,
		Branch:        newBranch,
		OutputDir:     newOutputDir,
		Composer:      newComposer,
	}

	if len(args) > 0 {
		opts.Name = args[0]
	} else {
		opts.Name, err = prompter.AskText("What is the plugin called?", "My Cool Plugin")
		if err != nil {
			return cancelled()
		}
	}

	if opts.Description == "" {
		opts.Description, err = prompter.AskText("Describe the plugin in one sentence", "")
		if err != nil {
			return cancelled()
		}
	}

	if opts.Author == "" {
		opts.Author, err = prompter.AskText("Author name", cfg.Author)
		if err != nil {
			return cancelled()
		}
	}

	if opts.RepositoryURL == "" {
		opts.RepositoryURL, err = prompter.AskText("Git repository URL for updates (leave empty to skip)", "")
		if err != nil {
			return cancelled()
		}
	}

	if !cmd.Flags().Changed("composer") {
		opts.Composer, err = prompter.AskConfirm("Generate a composer.json dependency manifest?", opts.RepositoryURL != "")
		if err != nil {
			return cancelled()
		}
	}

	opts.Libraries, err = prompter.AskMultiSelect("Which libraries should be integrated?",
		catalog.LibraryIDs(), catalogLabels(catalog.LibraryIDs(), catalog.LibraryDescription))
	if err != nil {
		return cancelled()
	}

	opts.Snippets, err = prompter.AskMultiSelect("Which snippets should be included?",
		catalog.SnippetIDs(), catalogLabels(catalog.SnippetIDs(), catalog.SnippetDescription))
	if err != nil {
		return cancelled()
	}

	if containsID(opts.Snippets, "settings") {
		opts.Settings, err = askSettings(prompter)
		if err != nil {
			return cancelled()
		}
	}

	if opts.OutputDir == "" {
		opts.OutputDir = cfg.OutputDir
	}
	if opts.OutputDir == "" {
		start, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		dir, ok, err := prompter.AskDirectory("Where should the plugin folder be created?", start)
		if err != nil {
			return fmt.Errorf("directory picker failed: %w", err)
		}
		if !ok {
			return cancelled()
		}
		opts.OutputDir = dir
	}

	printSummary(opts)

	proceed, err := prompter.AskConfirm("Would you like to proceed?", true)
	if err != nil || !proceed {
		return cancelled()
	}

	result, err := runGenerator(context.Background(), generator.Options{
		Plugin:   opts,
		Defaults: cfg,
	})
	if err != nil {
		return fmt.Errorf("failed to create plugin: %w", err)
	}

	output.Println(ui.SuccessStyle.Render("✔ Plugin created successfully."))
	output.Println("")
	output.Println("Next steps:")
	output.Println(fmt.Sprintf("  $ cd %s", result.PluginPath))
	if opts.Composer {
		output.Println("  $ composer install")
	}

	return nil
}

// askSettings collects the settings-page configuration. Empty answers are
// kept empty; the renderer applies the fixed defaults.
func askSettings(prompter *ui.Prompter) (*plugin.SettingsConfig, error) {
	cfg := &plugin.SettingsConfig{}
	var err error

	if cfg.PageTitle, err = prompter.AskText("Settings page title", "Plugin Settings"); err != nil {
		return nil, err
	}
	if cfg.MenuSlug, err = prompter.AskText("Settings menu slug (leave empty for <slug>-settings)", ""); err != nil {
		return nil, err
	}
	if cfg.Capability, err = prompter.AskText("Required capability", "manage_options"); err != nil {
		return nil, err
	}
	if cfg.ParentMenu, err = prompter.AskText("Parent menu file", "options-general.php"); err != nil {
		return nil, err
	}
	if cfg.Format, err = prompter.AskSelect("Settings storage format", []string{"json", "serialized", "array"}); err != nil {
		return nil, err
	}

	return cfg, nil
}

func catalogLabels(ids []string, describe func(string) string) []string {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = fmt.Sprintf("%s (%s)", id, describe(id))
	}
	return labels
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func printSummary(opts *plugin.Options) {
	output.Println("")
	output.Println(ui.TitleStyle.Render("Plugin Configuration"))
	output.Println(fmt.Sprintf("  Name: %s", opts.Name))
	if opts.Slug != "" {
		output.Println(fmt.Sprintf("  Slug: %s", opts.Slug))
	}
	if opts.Description != "" {
		output.Println(fmt.Sprintf("  Description: %s", opts.Description))
	}
	if opts.RepositoryURL != "" {
		output.Println(fmt.Sprintf("  Repository: %s", opts.RepositoryURL))
	}
	output.Println(fmt.Sprintf("  Composer manifest: %t", opts.Composer))
	if len(opts.Libraries) > 0 {
		output.Println(fmt.Sprintf("  Libraries: %v", opts.Libraries))
	}
	if len(opts.Snippets) > 0 {
		output.Println(fmt.Sprintf("  Snippets: %v", opts.Snippets))
	}
	output.Println(fmt.Sprintf("  Output: %s", opts.OutputDir))
	output.Println("")
}

func cancelled() error {
	output.Println("Plugin creation cancelled.")
	return nil
}
