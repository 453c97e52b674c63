package main

import (
	"github.com/spf13/cobra"

	"github.com/davetashner/turbodash/internal/summary"
)

var routesTemplate string

// routesCmd prints the routing table of a dashboard.
var routesCmd = &cobra.Command{
	Use:   "routes <file>",
	Short: "List the pages a dashboard serves",
	Long: `Assemble a dashboard and print its routing table in routing order,
including the generated homepage and not-found page of built-in templates.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := load(cmd.Context(), args[0], routesTemplate)
		if err != nil {
			return err
		}
		return summary.Routes(cmd.OutOrStdout(), l.app)
	},
}

func init() {
	routesCmd.Flags().StringVar(&routesTemplate, "template", "", "override the declared template")
}
