package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dropdown version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dropdown %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
