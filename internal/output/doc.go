// Package output provides structured output handling for the unconflict CLI.
//
// Every command reports through a Printer, which renders either one-line
// human messages styled with lipgloss or JSON for scripts and agents:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Resolved 2 conflict blocks in a.txt"})
//	printer.Error(err)
//
// In JSON mode errors are written as {"error": "message", "code": N}.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad arguments, file not found, bad config
//	output.ExitSystemError // 2: read or write failure
//	output.ExitMalformed   // 3: conflict markers the resolver refuses to rewrite
//
// Errors built with NewUserError, NewSystemErrorWithCause, NewMalformedError
// and friends carry their code, and GetExitCode extracts it for os.Exit.
package output
