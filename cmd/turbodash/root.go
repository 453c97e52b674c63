package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	dashlog "github.com/davetashner/turbodash/internal/log"
)

// Global flag values.
var (
	verbose   bool
	quiet     bool
	noColor   bool
	logFormat string
)

// rootCmd is the base command for turbodash.
var rootCmd = &cobra.Command{
	Use:   "turbodash",
	Short: "Serve declarative data dashboards",
	Long: `Turbodash turns a declaration file into an interactive web dashboard.
Each page binds a table to menu filters and charts; changing a filter or a
chart input recomputes the affected figures on the server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		format, err := dashlog.ParseFormat(logFormat)
		if err != nil {
			return exitError(ExitInvalidArgs, "turbodash: %v", err)
		}
		dashlog.Setup(verbose, quiet, format)
		if noColor {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
