// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdinline/internal/history"
	"github.com/pdiddy/mdinline/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Query past conversions",
	Long: `History lists past conversions recorded in the local history index,
newest first. Results can be filtered by source file, printed as JSON,
or exported to YAML and JSON files in the history directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := types.HistoryConfig{
			HistoryDir: stringSetting(cmd, "history-dir", "history.history_dir", stateDir()),
			MaxResults: intSetting(cmd, "max-results", "history.max_results", 20),
		}

		store, err := history.NewStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		source, _ := cmd.Flags().GetString("source")
		opts := history.QueryOptions{Source: source}

		if export, _ := cmd.Flags().GetBool("export"); export {
			if err := store.ExportYAML(ctx, opts); err != nil {
				return err
			}
			if err := store.ExportJSON(ctx, opts); err != nil {
				return err
			}
			fmt.Printf("Exported history to %s/export.{yaml,json}\n", cfg.HistoryDir)
			return nil
		}

		opts.MaxResults = cfg.MaxResults
		records, err := store.Recent(ctx, opts)
		if err != nil {
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}

		if len(records) == 0 {
			fmt.Println("no conversions recorded")
			return nil
		}
		for _, rec := range records {
			fmt.Printf("%s  %s -> %s (%d references)\n",
				rec.ConvertedAt.Format("2006-01-02 15:04:05"), rec.Source, rec.Output, rec.Refs)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("history-dir", "", "directory for the history index (default ~/.mdinline)")
	historyCmd.Flags().String("source", "", "filter by source file path")
	historyCmd.Flags().Int("max-results", 20, "maximum number of results")
	historyCmd.Flags().Bool("json", false, "output results as JSON")
	historyCmd.Flags().Bool("export", false, "export history to YAML and JSON files")

	rootCmd.AddCommand(historyCmd)
}
