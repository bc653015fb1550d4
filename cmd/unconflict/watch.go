package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/unconflict/internal/conflict"
	"github.com/gorewood/unconflict/internal/output"
	"github.com/gorewood/unconflict/internal/watch"
)

// newWatchCmd creates the watch command.
func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [path]",
		Short: "Resolve a file now and again every time it changes",
		Long: `Resolve the conflicts in a file, then keep watching it and resolve again
whenever it is written or replaced, until interrupted.

Useful during a long rebase where the same generated file conflicts on every
step. Errors (for example a nested block) are reported and watching continues.

Examples:
  unconflict watch dist/bundle.js
  unconflict watch --json             # One JSON report per resolution`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	path, err := targetPath(cmd, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	resolveOnce := func(path string) error {
		report, err := conflict.ResolveFile(path, conflict.Options{})
		if err != nil {
			return err
		}
		if !report.Changed {
			return nil
		}
		if printer.IsJSON() {
			return printer.WriteJSON(report)
		}
		warnUnclosed(printer, report)
		printResolved(printer, report)
		return nil
	}

	if err := resolveOnce(path); err != nil {
		printer.Error(err)
		if output.GetExitCode(err) != output.ExitMalformed {
			return err
		}
	}

	printer.Stderr("Watching %s (Ctrl+C to stop)\n", path)
	err = watch.File(cmd.Context(), path, resolveOnce, printer.Error)
	if err != nil {
		err = output.NewSystemErrorWithCause("watch failed: "+err.Error(), err)
		printer.Error(err)
		return err
	}
	return nil
}
