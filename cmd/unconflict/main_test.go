package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/unconflict/internal/config"
	"github.com/gorewood/unconflict/internal/output"
)

const conflicted = "A\n<<<<<<< HEAD\nours1\n=======\ntheirs1\n>>>>>>> main\nB\n"

// isolateConfig points configuration at an empty temp dir so the user's own
// config.yaml and env never leak into a test.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvConfigHome, dir)
	t.Setenv(config.EnvDefaultPath, "")
	t.Setenv(config.EnvBaseDir, "")
	return dir
}

// runCommand runs the root command with args and returns stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeTestFile creates name inside dir with content.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestRootCommand_Version(t *testing.T) {
	version = "1.2.3"
	t.Cleanup(func() { version = "dev" })

	stdout, _, err := runCommand(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "1.2.3") {
		t.Errorf("--version output should contain version: %q", stdout)
	}
	if !strings.Contains(stdout, "unconflict") {
		t.Errorf("--version output should contain 'unconflict': %q", stdout)
	}
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := runCommand(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{"unconflict", "Usage:", "--dry-run", "--json", "check", "watch", "serve"} {
		if !strings.Contains(stdout, expected) {
			t.Errorf("--help output should contain %q", expected)
		}
	}
}

func TestRootCommand_TooManyArgs(t *testing.T) {
	isolateConfig(t)

	_, _, err := runCommand(t, "a.txt", "b.txt")
	if err == nil {
		t.Fatal("expected error for two positional arguments")
	}
}

func TestBuildVersion(t *testing.T) {
	oldVersion, oldCommit, oldDate := version, commit, date
	t.Cleanup(func() { version, commit, date = oldVersion, oldCommit, oldDate })

	version, commit, date = "1.0.0", "none", "unknown"
	if got := buildVersion(); got != "1.0.0" {
		t.Errorf("buildVersion() = %q, want %q", got, "1.0.0")
	}

	commit, date = "abcdef0123456", "2026-01-01"
	if got := buildVersion(); got != "1.0.0 (abcdef0, 2026-01-01)" {
		t.Errorf("buildVersion() = %q", got)
	}
}

func TestJSONErrorOutput(t *testing.T) {
	isolateConfig(t)
	missing := filepath.Join(t.TempDir(), "missing.txt")

	stdout, _, err := runCommand(t, missing, "--json")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var result map[string]any
	if jsonErr := json.Unmarshal([]byte(stdout), &result); jsonErr != nil {
		t.Fatalf("failed to parse JSON error output: %v\nOutput: %s", jsonErr, stdout)
	}
	if code, _ := result["code"].(float64); code != 1 {
		t.Errorf("code = %v, want 1", result["code"])
	}
	if msg, _ := result["error"].(string); !strings.Contains(msg, "missing.txt") {
		t.Errorf("error = %q, want it to name the file", msg)
	}
}

func TestExecute_ReportsErrorOnce(t *testing.T) {
	isolateConfig(t)
	missing := filepath.Join(t.TempDir(), "missing.txt")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr []string // exact lines
		wantStdout string   // substring
	}{
		{
			name:       "missing file",
			args:       []string{missing},
			wantCode:   output.ExitUserError,
			wantStderr: []string{"Error: file not found: " + missing},
		},
		{
			name:       "too many args",
			args:       []string{"a.txt", "b.txt"},
			wantCode:   output.ExitUserError,
			wantStderr: []string{"Error: accepts at most 1 arg(s), received 2"},
		},
		{
			name:       "missing file as JSON",
			args:       []string{missing, "--json"},
			wantCode:   output.ExitUserError,
			wantStdout: `"code":1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&stdout)
			cmd.SetErr(&stderr)
			cmd.SetArgs(tt.args)

			err := execute(context.Background(), cmd)
			if got := output.GetExitCode(err); got != tt.wantCode {
				t.Errorf("exit code = %d, want %d (err: %v)", got, tt.wantCode, err)
			}

			var lines []string
			if trimmed := strings.TrimSpace(stderr.String()); trimmed != "" {
				lines = strings.Split(trimmed, "\n")
			}
			if len(lines) != len(tt.wantStderr) {
				t.Fatalf("stderr has %d lines, want %d:\n%s", len(lines), len(tt.wantStderr), stderr.String())
			}
			for i, want := range tt.wantStderr {
				if lines[i] != want {
					t.Errorf("stderr line %d = %q, want %q", i, lines[i], want)
				}
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.wantStdout)
			}
		})
	}
}

func TestConfigFlag(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	path := writeTestFile(t, dir, "picked.txt", conflicted)
	cfgFile := writeTestFile(t, t.TempDir(), "alt.yaml", "default_path: picked.txt\nbase_dir: "+dir+"\n")

	if _, stderr, err := runCommand(t, "--config", cfgFile); err != nil {
		t.Fatalf("command failed: %v\nstderr: %s", err, stderr)
	}
	if got := readTestFile(t, path); got != "A\ntheirs1\nB\n" {
		t.Errorf("file = %q", got)
	}

	_, _, err := runCommand(t, "--config", filepath.Join(dir, "absent.yaml"))
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("missing --config file: exit code = %d, want %d", code, output.ExitUserError)
	}
}
