package mcp

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/unconflict/internal/config"
)

const conflicted = "A\n<<<<<<< HEAD\nours1\n=======\ntheirs1\n>>>>>>> main\nB\n"

// makeTestConfig returns a config rooted at a temp dir holding one conflicted file.
func makeTestConfig(t *testing.T) (config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "app.js")
	if err := os.WriteFile(path, []byte(conflicted), 0o600); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	return config.Config{DefaultPath: "app.js", BaseDir: dir}, path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestNewServer(t *testing.T) {
	cfg, _ := makeTestConfig(t)
	if NewServer("test", cfg) == nil {
		t.Fatal("NewServer() returned nil")
	}
}

func TestHandleInspect_DefaultPath(t *testing.T) {
	cfg, path := makeTestConfig(t)
	handler := handleInspect(cfg)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, InspectInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Path != path {
		t.Errorf("Path = %q, want %q", out.Path, path)
	}
	if out.Stats.Blocks != 1 {
		t.Errorf("Stats.Blocks = %d, want 1", out.Stats.Blocks)
	}
	if out.Written {
		t.Error("inspect must not write")
	}
	if got := readFile(t, path); got != conflicted {
		t.Errorf("inspect modified the file: %q", got)
	}
}

func TestHandleResolve_Writes(t *testing.T) {
	cfg, path := makeTestConfig(t)
	handler := handleResolve(cfg)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ResolveInput{Path: "app.js"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Written {
		t.Error("Written = false, want true")
	}
	if out.Content != "" {
		t.Errorf("Content = %q, want empty", out.Content)
	}
	if got := readFile(t, path); got != "A\ntheirs1\nB\n" {
		t.Errorf("file = %q", got)
	}
}

func TestHandleResolve_DryRun(t *testing.T) {
	cfg, path := makeTestConfig(t)
	handler := handleResolve(cfg)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ResolveInput{DryRun: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Content != "A\ntheirs1\nB\n" {
		t.Errorf("Content = %q", out.Content)
	}
	if got := readFile(t, path); got != conflicted {
		t.Errorf("dry run modified the file: %q", got)
	}
}

func TestHandleResolve_NotFound(t *testing.T) {
	cfg, _ := makeTestConfig(t)
	handler := handleResolve(cfg)

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, ResolveInput{Path: "missing.js"})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
}
