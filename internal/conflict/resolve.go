package conflict

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is matched by every *MalformedError.
var ErrMalformed = errors.New("malformed conflict block")

// MalformedError describes a conflict block the resolver refuses to rewrite.
type MalformedError struct {
	Line   int // 1-based line of the offending marker or of the unclosed start
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Is lets errors.Is(err, ErrMalformed) match.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// Block locates one resolved conflict block. Line numbers are 1-based.
type Block struct {
	Start   int `json:"start"`
	Divider int `json:"divider,omitempty"` // 0 when the block had no divider
	End     int `json:"end,omitempty"`     // 0 when the block runs to end of input
	Ours    int `json:"ours_lines"`
	Theirs  int `json:"theirs_lines"`
}

// Stats totals a resolution.
type Stats struct {
	Blocks  int `json:"blocks"`
	Dropped int `json:"ours_lines_dropped"`
	Kept    int `json:"theirs_lines_kept"`
	Markers int `json:"marker_lines_removed"`
}

// Result is the outcome of ResolveLines.
type Result struct {
	Lines  []string
	Blocks []Block
	Stats  Stats
	// Unclosed is the start line of a block still open at end of input, or 0.
	Unclosed int
}

// ResolveLines removes every conflict block's markers and ours lines in a
// single pass. Lines outside blocks, and theirs lines, are returned in order.
// A block still open at end of input is resolved as far as it goes: its
// theirs lines are kept and Result.Unclosed records where it started.
func ResolveLines(lines []string) (*Result, error) {
	res := &Result{Lines: make([]string, 0, len(lines))}

	var (
		inBlock  bool
		skipping bool
		current  Block
	)

	for i, line := range lines {
		lineNo := i + 1

		switch classify(line) {
		case startMarker:
			if inBlock {
				return nil, &MalformedError{
					Line:   lineNo,
					Reason: fmt.Sprintf("nested conflict start marker (block opened at line %d)", current.Start),
				}
			}
			inBlock, skipping = true, true
			current = Block{Start: lineNo}
			res.Stats.Markers++
			continue
		case dividerMarker:
			if inBlock {
				skipping = false
				if current.Divider == 0 {
					current.Divider = lineNo
				}
				res.Stats.Markers++
				continue
			}
		case endMarker:
			if inBlock {
				inBlock, skipping = false, false
				current.End = lineNo
				res.Blocks = append(res.Blocks, current)
				res.Stats.Markers++
				continue
			}
		case notMarker:
		}

		if skipping {
			current.Ours++
			res.Stats.Dropped++
			continue
		}
		if inBlock {
			current.Theirs++
			res.Stats.Kept++
		}
		res.Lines = append(res.Lines, line)
	}

	if inBlock {
		res.Blocks = append(res.Blocks, current)
		res.Unclosed = current.Start
	}

	res.Stats.Blocks = len(res.Blocks)
	return res, nil
}

// Resolve applies ResolveLines to text and joins the surviving lines. Text
// without markers is returned unchanged.
func Resolve(text string) (string, *Result, error) {
	res, err := ResolveLines(SplitLines(text))
	if err != nil {
		return "", nil, err
	}
	if res.Stats.Blocks == 0 {
		return text, res, nil
	}
	return strings.Join(res.Lines, ""), res, nil
}
