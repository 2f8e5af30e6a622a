// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mdinline CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the mdinline CLI.
var rootCmd = &cobra.Command{
	Use:   "mdinline",
	Short: "Convert reference-style markdown links to inline style",
	Long: `mdinline rewrites reference-style markdown links ([text][ref] paired with
a separate [ref]: url definition line) into inline-style links ([text](url)).

It processes one file per run, writes the result to a sibling file with
-converted appended to the name, appends a line to the conversion log,
and records the run in a local history index queryable with the history
subcommand.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mdinline.yaml or ~/.config/mdinline/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mdinline")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mdinline"))
		}
	}

	viper.SetEnvPrefix("MDINLINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stateDir returns the default directory for the log file and history
// index: ~/.mdinline, falling back to .mdinline in the working
// directory when the home directory cannot be resolved.
func stateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mdinline"
	}
	return filepath.Join(home, ".mdinline")
}

// stringSetting resolves a string setting: an explicitly set flag wins,
// then the config file key, then the fallback.
func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}

// intSetting resolves an integer setting with the same precedence as
// stringSetting.
func intSetting(cmd *cobra.Command, flag, key string, fallback int) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
