package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/unconflict/internal/conflict"
	"github.com/gorewood/unconflict/internal/output"
)

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [path]",
		Short: "List conflict blocks without modifying the file",
		Long: `List the merge-conflict blocks in a file without modifying it.

Shows the line numbers of each block's markers and how many ours and theirs
lines it holds. Nested blocks are reported as errors and unterminated blocks as
warnings, exactly as a real run would report them.

Examples:
  unconflict check src/app.js         # Show blocks in src/app.js
  unconflict check --json             # Blocks in the default path as JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	path, err := targetPath(cmd, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	report, err := conflict.Inspect(path)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(report)
	}

	printHumanCheck(printer, report)
	warnUnclosed(printer, report)
	return nil
}

func printHumanCheck(printer *output.Printer, report *conflict.Report) {
	printer.Section("Conflicts")
	printer.KeyValue("File", report.Path)
	printer.KeyValue("Blocks", strconv.Itoa(report.Stats.Blocks))
	if report.Stats.Blocks == 0 {
		return
	}
	printer.KeyValue("Ours lines", strconv.Itoa(report.Stats.Dropped))
	printer.KeyValue("Theirs lines", strconv.Itoa(report.Stats.Kept))
	printer.Println()

	rows := make([][]string, 0, len(report.Blocks))
	for _, b := range report.Blocks {
		rows = append(rows, []string{
			strconv.Itoa(b.Start),
			lineOrDash(b.Divider),
			lineOrDash(b.End),
			strconv.Itoa(b.Ours),
			strconv.Itoa(b.Theirs),
		})
	}
	printer.Table([]string{"START", "DIVIDER", "END", "OURS", "THEIRS"}, rows)
}

func lineOrDash(line int) string {
	if line == 0 {
		return "-"
	}
	return strconv.Itoa(line)
}
