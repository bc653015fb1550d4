// Package mcp provides a Model Context Protocol server for unconflict.
// It exposes conflict inspection and resolution as MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/unconflict/internal/config"
)

// NewServer creates an MCP server with the inspect and resolve tools
// registered. Relative paths are resolved through cfg.
func NewServer(version string, cfg config.Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "unconflict",
		Version: version,
	}, nil)
	registerTools(server, cfg)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

func registerTools(server *mcp.Server, cfg config.Config) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "List the merge-conflict blocks in a file (line numbers, ours/theirs line counts) without modifying it.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		},
	}, handleInspect(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name: "resolve",
		Description: "Strip merge-conflict markers from a file, keeping the incoming (theirs) side of every block " +
			"and discarding ours. Overwrites the file unless dry_run is set.",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolPtr(true),
			IdempotentHint:  true,
			OpenWorldHint:   boolPtr(false),
		},
	}, handleResolve(cfg))
}
