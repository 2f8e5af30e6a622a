// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives a single-file conversion: it validates the
// input path, duplicates the file to a sibling -converted output, runs
// the link rewriter, and reports the result to an injected log sink.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/mdinline/internal/rewrite"
	"github.com/pdiddy/mdinline/pkg/types"
)

// outputSuffix is appended to the input file stem to form the output name.
const outputSuffix = "-converted"

// markdownExt is the only accepted input extension.
const markdownExt = ".md"

// Sentinel errors for input validation.
var (
	ErrNotFound    = errors.New("file not found")
	ErrNotMarkdown = errors.New("not a markdown file")
)

// Sink receives the input and output identifiers of a completed
// conversion. The driver reports; the sink decides where the entry
// goes (text log, history index, both).
type Sink interface {
	Converted(source, output string, refs int) error
}

// Validate confirms that path names an existing regular file with a
// markdown extension.
func Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if filepath.Ext(path) != markdownExt {
		return fmt.Errorf("%w (expected %s): %s", ErrNotMarkdown, markdownExt, path)
	}
	return nil
}

// OutputPath returns the sibling path the converted file is written to:
// the input stem with -converted appended, same extension, same directory.
func OutputPath(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	return filepath.Join(filepath.Dir(path), stem+outputSuffix+ext)
}

// Duplicate copies the input file to its output path and returns that
// path. An existing output file is overwritten.
func Duplicate(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer src.Close()

	outPath := OutputPath(path)
	dst, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", outPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("copying to %s: %w", outPath, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	return outPath, nil
}

// File converts one markdown file, printing per-run status to w. When
// the file holds no reference definitions the duplicate is left as a
// verbatim copy, nothing is reported to the sink, and the status is
// ConversionNone. Validation and I/O failures are fatal to the run.
func File(path string, sink Sink, w io.Writer) (types.ConversionStatus, error) {
	if err := Validate(path); err != nil {
		return types.ConversionFailed, err
	}

	outPath, err := Duplicate(path)
	if err != nil {
		return types.ConversionFailed, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.ConversionFailed, fmt.Errorf("reading %s: %w", path, err)
	}

	table := rewrite.References(string(data))
	if len(table) == 0 {
		fmt.Fprintln(w, "no reference links found to convert")
		return types.ConversionNone, nil
	}

	content := rewrite.Apply(string(data), table)
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return types.ConversionFailed, fmt.Errorf("writing %s: %w", outPath, err)
	}

	if sink != nil {
		if err := sink.Converted(path, outPath, len(table)); err != nil {
			return types.ConversionFailed, fmt.Errorf("recording conversion: %w", err)
		}
	}

	fmt.Fprintf(w, "converted: %s -> %s (%d references)\n", path, outPath, len(table))
	return types.ConversionDone, nil
}
