package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	unconflictmcp "github.com/gorewood/unconflict/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run unconflict as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "unconflict": {
        "command": "unconflict",
        "args": ["serve"]
      }
    }
  }

Available tools: inspect, resolve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			server := unconflictmcp.NewServer(buildVersion(), cfg)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
