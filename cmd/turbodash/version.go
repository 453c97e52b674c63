package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the turbodash version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version of the turbodash binary.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "turbodash %s\n", Version)
	},
}
