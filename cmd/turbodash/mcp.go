package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/davetashner/turbodash/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for exposing a dashboard to AI agents as MCP tools.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Run the MCP server over stdio",
	Long: `Assemble a dashboard and start an MCP server on stdin/stdout, exposing:
  - list_pages:   Pages in routing order with their filters and charts
  - route:        Page content for a URL path
  - render_chart: Recompute a chart figure from input values

Logs go to stderr so they never mix with the protocol stream.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := load(cmd.Context(), args[0], "")
		if err != nil {
			return err
		}
		return mcpserver.Run(cmd.Context(), Version, l.app, &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
