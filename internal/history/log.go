// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"fmt"
	"os"
	"path/filepath"
)

// Log appends one line per conversion to an append-only plain-text
// file. The file and its parent directory are created on first use.
type Log struct {
	path string
}

// NewLog returns a Log writing to path.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file location.
func (l *Log) Path() string {
	return l.path
}

// Converted appends a "Processed file" line recording one conversion.
func (l *Log) Converted(source, output string, refs int) error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log %s: %w", l.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "Processed file: %s -> %s\n", source, output); err != nil {
		return fmt.Errorf("appending to log %s: %w", l.path, err)
	}
	return nil
}
