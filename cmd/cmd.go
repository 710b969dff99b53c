// Package cmd defines the command-line interface for monthly-file-diff.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tyaso777/monthly-file-diff/internal/contract"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored warnings on stderr (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scanCmd to Viper
	scanCmd.Flags().String("template", "", "Path template with {yyyy}/{mm}/{dd} placeholders")
	scanCmd.Flags().StringP("dates", "d", "", "Comma-separated explicit dates (e.g. 2024-12-01,2025-01-01)")
	scanCmd.Flags().StringP("encoding", "e", "utf8", "CSV output encoding: utf8, shift_jis, utf16le")
	scanCmd.Flags().Int("max-depth", contract.DefaultMaxDepth, "Max folder depth to search")
	scanCmd.Flags().StringP("output", "o", "csv", "Output format: csv, table, json, parquet")
	scanCmd.Flags().String("output-file", "", "Optional path to write tabular output to")
	scanCmd.Flags().String("report-file", "", "Optional path to write the HTML chart report to")
	if err := viper.BindPFlags(scanCmd.Flags()); err != nil {
		contract.LogFatal("Error binding scan flags", err)
	}
}
