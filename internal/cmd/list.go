package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith-cli/internal/catalog"
	"github.com/plugsmith/plugsmith-cli/internal/output"
	"github.com/plugsmith/plugsmith-cli/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available libraries and snippets",
}

var listLibrariesCmd = &cobra.Command{
	Use:   "libraries",
	Short: "List the library integrations a plugin can include",
	Run: func(cmd *cobra.Command, args []string) {
		output.Println(ui.TitleStyle.Render("Libraries"))
		for _, id := range catalog.LibraryIDs() {
			output.Println(fmt.Sprintf("  %-18s %s", id, catalog.LibraryDescription(id)))
		}
	},
}

var listSnippetsCmd = &cobra.Command{
	Use:   "snippets",
	Short: "List the code snippets a plugin can include",
	Run: func(cmd *cobra.Command, args []string) {
		output.Println(ui.TitleStyle.Render("Snippets"))
		for _, id := range catalog.SnippetIDs() {
			output.Println(fmt.Sprintf("  %-18s %s", id, catalog.SnippetDescription(id)))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listLibrariesCmd)
	listCmd.AddCommand(listSnippetsCmd)
}
