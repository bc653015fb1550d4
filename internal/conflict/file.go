package conflict

import (
	"errors"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/gorewood/unconflict/internal/output"
)

// ErrNotText is returned (wrapped) when a file is not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// Options controls ResolveFile.
type Options struct {
	// DryRun resolves without writing and returns the content in the Report.
	DryRun bool
}

// Report describes what ResolveFile did to one file.
type Report struct {
	Path    string  `json:"path"`
	Blocks  []Block `json:"blocks"`
	Stats   Stats   `json:"stats"`
	Changed bool    `json:"changed"`
	Written bool    `json:"written"`

	// Unclosed is the start line of a block left open at end of file, or 0.
	Unclosed int    `json:"unclosed,omitempty"`
	Content  string `json:"content,omitempty"`
}

// ResolveFile resolves the conflict blocks in the file at path and overwrites
// it, keeping its permission bits. Files without blocks are not rewritten.
//
// Errors are *output.ExitError values: a missing file is a user error whose
// cause matches fs.ErrNotExist, read and write failures are system errors and
// malformed blocks or non-UTF-8 content are malformed errors. The file is not
// modified on any error except a failing write.
func ResolveFile(path string, opts Options) (*Report, error) {
	info, text, err := readText(path)
	if err != nil {
		return nil, err
	}

	resolved, res, err := Resolve(text)
	if err != nil {
		return nil, output.NewMalformedError("malformed conflict in "+path+": "+err.Error(), err)
	}

	report := &Report{
		Path:     path,
		Blocks:   res.Blocks,
		Stats:    res.Stats,
		Changed:  res.Stats.Blocks > 0,
		Unclosed: res.Unclosed,
	}
	if report.Blocks == nil {
		report.Blocks = []Block{}
	}

	if opts.DryRun {
		report.Content = resolved
		return report, nil
	}

	if report.Changed {
		if err := os.WriteFile(path, []byte(resolved), info.Mode().Perm()); err != nil {
			return nil, output.NewSystemErrorWithCause("failed to write "+path, err)
		}
		report.Written = true
	}
	return report, nil
}

// Inspect reports the conflict blocks in the file at path without modifying it.
func Inspect(path string) (*Report, error) {
	report, err := ResolveFile(path, Options{DryRun: true})
	if err != nil {
		return nil, err
	}
	report.Content = ""
	return report, nil
}

func readText(path string) (fs.FileInfo, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", output.NewUserErrorWithCause("file not found: "+path, err)
		}
		return nil, "", output.NewSystemErrorWithCause("failed to stat "+path, err)
	}
	if info.IsDir() {
		return nil, "", output.NewUserError("not a file: " + path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", output.NewSystemErrorWithCause("failed to read "+path, err)
	}
	if !utf8.Valid(data) {
		return nil, "", output.NewMalformedError(ErrNotText.Error()+": "+path, ErrNotText)
	}
	return info, string(data), nil
}
