// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mdinline/internal/convert"
	"github.com/pdiddy/mdinline/internal/history"
	"github.com/pdiddy/mdinline/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.md>",
	Short: "Convert reference-style links in a markdown file",
	Long: `Convert rewrites reference-style links in a single markdown file into
inline-style links and strips the reference definition lines. The
result is written next to the input as <name>-converted.md; an existing
file of that name is overwritten. A file with no reference definitions
is copied verbatim and reported as having nothing to convert.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := convertConfig(cmd)

		sink := &history.Recorder{Log: history.NewLog(cfg.LogFile)}
		if !cfg.DisableHistory {
			store, err := history.NewStore(types.HistoryConfig{HistoryDir: cfg.HistoryDir})
			if err != nil {
				return err
			}
			defer store.Close()
			sink.Store = store
		}

		if _, err := convert.File(args[0], sink, os.Stdout); err != nil {
			return err
		}
		return nil
	},
}

// convertConfig resolves convert settings from flags, the config file,
// and built-in defaults, in that order.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	disableHistory, _ := cmd.Flags().GetBool("no-history")
	if !cmd.Flags().Changed("no-history") && viper.IsSet("convert.disable_history") {
		disableHistory = viper.GetBool("convert.disable_history")
	}

	return types.ConvertConfig{
		LogFile:        stringSetting(cmd, "log-file", "convert.log_file", filepath.Join(stateDir(), "convert.log")),
		HistoryDir:     stringSetting(cmd, "history-dir", "convert.history_dir", stateDir()),
		DisableHistory: disableHistory,
	}
}

func init() {
	convertCmd.Flags().String("log-file", "", "append-only conversion log (default ~/.mdinline/convert.log)")
	convertCmd.Flags().String("history-dir", "", "directory for the history index (default ~/.mdinline)")
	convertCmd.Flags().Bool("no-history", false, "skip recording the conversion in the history index")

	rootCmd.AddCommand(convertCmd)
}
