// Package outwriter has output and writer logic for scan results.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tyaso777/monthly-file-diff/internal/contract"
	"github.com/tyaso777/monthly-file-diff/internal/parquet"
	"github.com/tyaso777/monthly-file-diff/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the tabular formats and the HTML report path.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRecords serializes the flat record list using the configured output
// format. The CSV path honors the configured byte encoding.
func (ow *OutWriter) WriteRecords(records []schema.FileRecord, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONRecords(records, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.TableOut:
		if err := printRecordsTable(records, cfg, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteFileRecordsParquet(parquet.FromRecords(records), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet records to %s\n", cfg.OutputFile)
	default:
		if err := printCSVRecords(records, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	}
	return nil
}

// printJSONRecords handles opening the file and calling the JSON writer.
func printJSONRecords(records []schema.FileRecord, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, records)
	}, "Wrote JSON records")
}

// printCSVRecords handles opening the file and calling the CSV writer.
func printCSVRecords(records []schema.FileRecord, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVRecords(w, records, cfg.Encoding)
	}, "Wrote CSV records")
}

// GetMaxTablePathWidth calculates the maximum width for identity keys in
// table output based on terminal width.
func GetMaxTablePathWidth(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the date, size and timestamp columns plus borders.
	available := termWidth - 55
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}
