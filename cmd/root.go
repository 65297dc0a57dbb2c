package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var version string

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "dropdown",
	Short: "Anchored dropdown menus for terminal UIs",
	Long: `dropdown - a dropdown menu controller for Bubble Tea applications.

The library manages open/close state, anchor-relative menu placement with
flip-on-overflow, and keyboard focus transfer between a toggle control and
the menu's items. Run the demo subcommand to try it interactively.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
