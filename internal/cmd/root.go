// Package cmd wires the plugsmith commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith-cli/internal/output"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "plugsmith",
	Short: "Plugsmith - WordPress plugin boilerplate generator",
	Long: `Plugsmith scaffolds a complete WordPress plugin from a short form:
an entry file, activation and deactivation hooks, admin and public stubs,
and optional library integrations and code snippets.

Run it interactively with 'plugsmith new', or drive it from a manifest
file with 'plugsmith generate'.`,
	Version: "1.0.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLogging(rootVerbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable verbose logging")
}
