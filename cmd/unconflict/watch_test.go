package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewWatchCmd(t *testing.T) {
	cmd := newWatchCmd()

	if cmd.Name() != "watch" {
		t.Errorf("Name() = %q, want %q", cmd.Name(), "watch")
	}
	if err := cmd.Args(cmd, []string{"a", "b"}); err == nil {
		t.Error("watch should reject more than one path")
	}
}

// TestWatchCommand_ResolvesBeforeWatching runs watch with a cancelled
// context: the initial resolution happens and the watch loop exits at once.
func TestWatchCommand_ResolvesBeforeWatching(t *testing.T) {
	isolateConfig(t)
	path := writeTestFile(t, t.TempDir(), "app.js", conflicted)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"watch", path})

	if err := cmd.ExecuteContext(ctx); err != nil {
		t.Fatalf("watch failed: %v\nstderr: %s", err, stderr.String())
	}
	if got := readTestFile(t, path); got != "A\ntheirs1\nB\n" {
		t.Errorf("file = %q", got)
	}
	if !strings.Contains(stdout.String(), "Resolved 1 conflict block") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Watching "+path) {
		t.Errorf("stderr = %q", stderr.String())
	}
}
