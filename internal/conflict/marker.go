package conflict

import "strings"

// Marker prefixes written by git merge.
const (
	StartMarker   = "<<<<<<<"
	DividerMarker = "======="
	EndMarker     = ">>>>>>>"
)

type markerKind int

const (
	notMarker markerKind = iota
	startMarker
	dividerMarker
	endMarker
)

func (k markerKind) String() string {
	switch k {
	case startMarker:
		return "start"
	case dividerMarker:
		return "divider"
	case endMarker:
		return "end"
	default:
		return "text"
	}
}

// classify reports which marker, if any, line is.
func classify(line string) markerKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, StartMarker):
		return startMarker
	case strings.HasPrefix(trimmed, DividerMarker):
		return dividerMarker
	case strings.HasPrefix(trimmed, EndMarker):
		return endMarker
	default:
		return notMarker
	}
}

// SplitLines splits text into lines that keep their terminators. Joining the
// result reproduces text exactly.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
