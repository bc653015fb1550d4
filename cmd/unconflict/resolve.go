package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/unconflict/internal/conflict"
	"github.com/gorewood/unconflict/internal/output"
)

// runResolve resolves the target file and prints a one-line result.
func runResolve(cmd *cobra.Command, args []string, dryRun bool) error {
	printer := newPrinter(cmd)

	path, err := targetPath(cmd, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	report, err := conflict.ResolveFile(path, conflict.Options{DryRun: dryRun})
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(report)
	}

	warnUnclosed(printer, report)
	if dryRun {
		printer.Print("%s", report.Content)
		printer.Stderr("Dry run: %s in %s, file not modified\n", blockCount(report.Stats.Blocks), path)
		return nil
	}

	printResolved(printer, report)
	return nil
}

func printResolved(printer *output.Printer, report *conflict.Report) {
	if !report.Changed {
		_ = printer.Success(map[string]any{"message": "No conflict markers in " + report.Path})
		return
	}
	_ = printer.Success(map[string]any{
		"message": fmt.Sprintf("Resolved %s in %s", blockCount(report.Stats.Blocks), report.Path),
	})
}

// blockCount renders "1 conflict block" / "N conflict blocks".
func blockCount(n int) string {
	if n == 1 {
		return "1 conflict block"
	}
	return fmt.Sprintf("%d conflict blocks", n)
}

// warnUnclosed notes a block that runs to end of file. JSON reports carry it
// as the unclosed field instead.
func warnUnclosed(printer *output.Printer, report *conflict.Report) {
	if report.Unclosed == 0 || printer.IsJSON() {
		return
	}
	printer.Warn("conflict block opened at line %d in %s is never closed", report.Unclosed, report.Path)
}
