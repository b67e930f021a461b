package cmd

import (
	"github.com/spf13/cobra"
	"github.com/transitlab/transitscope/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Transitscope MCP server",
	Long:  `Launch an MCP server that allows AI agents to fuse stellar profiles and generate transit signals via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Header logs are suppressed per request by the tool handlers
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, client)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
