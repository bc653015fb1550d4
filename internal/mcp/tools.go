package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/unconflict/internal/config"
	"github.com/gorewood/unconflict/internal/conflict"
)

// InspectInput is the input for the inspect tool.
type InspectInput struct {
	Path string `json:"path,omitempty" jsonschema:"file to inspect; relative paths use the configured base dir, empty uses the default path"`
}

// ResolveInput is the input for the resolve tool.
type ResolveInput struct {
	Path   string `json:"path,omitempty"    jsonschema:"file to resolve; relative paths use the configured base dir, empty uses the default path"`
	DryRun bool   `json:"dry_run,omitempty" jsonschema:"return the resolved content instead of writing it"`
}

// FileReport is the output of both tools.
type FileReport struct {
	Path     string           `json:"path"               jsonschema:"absolute path of the file"`
	Blocks   []conflict.Block `json:"blocks"             jsonschema:"conflict blocks found, with 1-based line numbers"`
	Stats    conflict.Stats   `json:"stats"              jsonschema:"totals for the resolution"`
	Written  bool             `json:"written"            jsonschema:"whether the file was rewritten"`
	Unclosed int              `json:"unclosed,omitempty" jsonschema:"start line of a block left open at end of file"`
	Content  string           `json:"content,omitempty"  jsonschema:"resolved content (dry_run only)"`
}

func toFileReport(r *conflict.Report) FileReport {
	return FileReport{
		Path:     r.Path,
		Blocks:   r.Blocks,
		Stats:    r.Stats,
		Written:  r.Written,
		Unclosed: r.Unclosed,
		Content:  r.Content,
	}
}

func handleInspect(cfg config.Config) mcp.ToolHandlerFor[InspectInput, FileReport] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input InspectInput) (*mcp.CallToolResult, FileReport, error) {
		path, err := cfg.ResolvePath(input.Path)
		if err != nil {
			return nil, FileReport{}, err
		}
		report, err := conflict.Inspect(path)
		if err != nil {
			return nil, FileReport{}, err
		}
		return nil, toFileReport(report), nil
	}
}

func handleResolve(cfg config.Config) mcp.ToolHandlerFor[ResolveInput, FileReport] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ResolveInput) (*mcp.CallToolResult, FileReport, error) {
		path, err := cfg.ResolvePath(input.Path)
		if err != nil {
			return nil, FileReport{}, err
		}
		report, err := conflict.ResolveFile(path, conflict.Options{DryRun: input.DryRun})
		if err != nil {
			return nil, FileReport{}, err
		}
		return nil, toFileReport(report), nil
	}
}
