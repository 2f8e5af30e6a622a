// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings for the convert command.
type ConvertConfig struct {
	// LogFile is the append-only plain-text conversion log
	// (default ~/.mdinline/convert.log).
	LogFile string `json:"log_file" yaml:"log_file"`

	// HistoryDir is the directory holding the conversion history index
	// (default ~/.mdinline).
	HistoryDir string `json:"history_dir" yaml:"history_dir"`

	// DisableHistory skips recording the conversion in the history
	// index. The text log is always written.
	DisableHistory bool `json:"disable_history" yaml:"disable_history"`
}

// HistoryConfig holds settings for the history command and store.
type HistoryConfig struct {
	// HistoryDir is the directory holding history.db and export files.
	HistoryDir string `json:"history_dir" yaml:"history_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
