// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of a single-file conversion run.
type ConversionStatus string

const (
	// ConversionNone means the file held no reference definitions;
	// the output is a verbatim copy of the input.
	ConversionNone ConversionStatus = "none"

	// ConversionDone means reference-style links were rewritten and
	// the output file holds the inline-style result.
	ConversionDone ConversionStatus = "converted"

	// ConversionFailed means validation or I/O failed before an
	// output could be produced.
	ConversionFailed ConversionStatus = "failed"
)

// ConversionRecord describes one completed conversion as stored in the
// history index and exported to YAML/JSON.
type ConversionRecord struct {
	// ID is the history store row identifier. Zero before insertion.
	ID int64 `json:"id" yaml:"id"`

	// Source is the input markdown file path.
	Source string `json:"source" yaml:"source"`

	// Output is the path the converted file was written to.
	Output string `json:"output" yaml:"output"`

	// Refs is the number of reference definitions resolved in the run.
	Refs int `json:"refs" yaml:"refs"`

	// ConvertedAt is the completion time of the conversion.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
