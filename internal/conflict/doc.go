// Package conflict strips Git merge-conflict markers from text, keeping the
// "theirs" side of every block.
//
// A block looks like this:
//
//	<<<<<<< HEAD
//	ours
//	=======
//	theirs
//	>>>>>>> main
//
// and resolves to just the theirs lines. Markers are matched on the trimmed
// line by prefix, so labels and indentation are accepted. Divider and end
// markers outside an open block are ordinary text.
//
// # Resolving
//
// Use ResolveLines or Resolve for in-memory text and ResolveFile to rewrite a
// file in place:
//
//	report, err := conflict.ResolveFile(path, conflict.Options{})
//	if err != nil {
//	    return err // already an *output.ExitError
//	}
//	fmt.Printf("resolved %d blocks\n", report.Stats.Blocks)
//
// Inspect reports the blocks in a file without modifying it.
//
// # Malformed Input
//
// A start marker inside an open block (nested conflict) is rejected with a
// *MalformedError and the file is not written. A block still open at end of
// input is resolved as far as it goes and reported through Report.Unclosed.
package conflict
