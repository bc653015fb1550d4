// Package main provides the entry point for the unconflict CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/unconflict/internal/config"
	"github.com/gorewood/unconflict/internal/envfile"
	"github.com/gorewood/unconflict/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor combines the --color flag with TTY detection on the command's stdout.
func useColor(cmd *cobra.Command) bool {
	mode := output.ColorAuto
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter returns the printer every command reports through.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return output.GetExitCode(execute(ctx, newRootCmd()))
}

// execute runs cmd through fang. Commands print their own *output.ExitError
// failures, so fang only reports the rest (usage errors, MCP transport
// failures), as one plain line.
func execute(ctx context.Context, cmd *cobra.Command) error {
	return fang.Execute(ctx, cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(reportUnprinted),
	)
}

func reportUnprinted(w io.Writer, _ fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	_, _ = fmt.Fprintf(w, "Error: %s\n", err)
}

// newRootCmd creates the root command. Run without a subcommand it resolves
// the conflicts in one file.
func newRootCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "unconflict [path]",
		Short: "Strip merge-conflict markers from a file, keeping theirs",
		Long: `Unconflict removes Git merge-conflict markers from a single text file.

For every block

  <<<<<<< HEAD
  ours
  =======
  theirs
  >>>>>>> main

the "ours" side and the three marker lines are dropped and the "theirs" side
is kept. Lines outside conflict blocks are untouched. The file is rewritten in
place.

The path is optional. Without it the default path is used: default_path from
config.yaml in the config directory, or $UNCONFLICT_DEFAULT_PATH, or
"conflicted.txt". Relative paths are resolved against base_dir
($UNCONFLICT_BASE_DIR), or the working directory when unset.

Examples:
  unconflict src/app.js            # Resolve src/app.js in place
  unconflict                       # Resolve the configured default path
  unconflict --dry-run app.js      # Print the resolved content, do not write
  unconflict app.js --json         # Report blocks and stats as JSON`,
		Version:       buildVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, dryRun)
		},
	}

	// Env files may set UNCONFLICT_* overrides; the environment always wins.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		_ = envfile.LoadAll(".env.local", ".env", config.EnvFilePath())
		return nil
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the resolved content instead of writing the file")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always, never")
	cmd.PersistentFlags().String("config", "", "Config file to use instead of config.yaml in the config directory")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newWatchCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// loadConfig loads the --config file when given, otherwise the default config.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if flag := cmd.Root().PersistentFlags().Lookup("config"); flag != nil && flag.Value.String() != "" {
		return config.LoadFile(flag.Value.String())
	}
	return config.Load()
}

// targetPath loads configuration and resolves the optional path argument.
func targetPath(cmd *cobra.Command, args []string) (string, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return "", err
	}
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	return cfg.ResolvePath(arg)
}
