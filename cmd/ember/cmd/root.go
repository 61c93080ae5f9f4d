// Package cmd implements the ember CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ember",
	Short: "Ember - immediate-mode UI interaction engine",
	Long: `Ember is an immediate-mode UI interaction engine: widgets are
redeclared every frame, and the engine derives focus, drags, and
animations from recomputed identities plus minimal cross-frame state.

The CLI runs the engine headless for demos and validates project
manifests.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ember %s (built %s)\n", Version, BuildTime)
	},
}
