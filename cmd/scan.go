package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tyaso777/monthly-file-diff/core"
	"github.com/tyaso777/monthly-file-diff/internal/contract"
)

// scanCmd enumerates period folders and emits records or a chart report.
var scanCmd = &cobra.Command{
	Use:   "scan [template]",
	Short: "Scan date-parameterized folders and group files across periods.",
	Long: `Expand a path template like 'Data/{yyyy}_{mm}/Main' into each period folder
found on disk, list the files inside, and normalize embedded dates in file
names back to placeholders so the same logical file can be tracked across
periods.

The flat record output lists every discovered file with its rounded
created/modified timestamps. The HTML report groups records by normalized
name and charts size and timestamps over time per group.

Examples:
  # Discover periods from disk and print CSV to stdout
  monthly-file-diff scan 'Data/{yyyy}_{mm}/Main'

  # Restrict to explicit months and write Shift_JIS CSV for Excel
  monthly-file-diff scan 'Data/{yyyy}_{mm}/Main' -d 2024-12-01,2025-01-01 -e shift_jis --output-file diff.csv

  # Human-readable table, two folder levels deep
  monthly-file-diff scan 'Data/{yyyy}_{mm}/Main' -o table --max-depth 2

  # Produce the per-file chart report next to a parquet export
  monthly-file-diff scan 'Data/{yyyy}_{mm}/Main' -o parquet --output-file records.parquet --report-file report.html`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScan(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run scan", err)
		}
	},
}
