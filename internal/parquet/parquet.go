// Package parquet exports flat scan records to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/tyaso777/monthly-file-diff/schema"
)

// FileRecordRow maps a FileRecord to a flat Parquet row. The column set
// mirrors the CSV shape so both exports stay interchangeable.
type FileRecordRow struct {
	// NormalizedRelPath is the period-independent identity key
	NormalizedRelPath string `parquet:"normalized_rel_path,snappy"`

	// Date is the period label (YYYY-MM or YYYY-MM-DD)
	Date string `parquet:"date,snappy"`

	// ActualName is the file name as found on disk
	ActualName string `parquet:"actual_name,snappy"`

	// SizeBytes is the file size in bytes
	SizeBytes int64 `parquet:"size,snappy"`

	// Created is the rounded creation time (nullable; absent on platforms
	// without birth-time support)
	Created *string `parquet:"created,optional,snappy"`

	// Modified is the rounded modification time (nullable)
	Modified *string `parquet:"modified,optional,snappy"`

	// RelPath is the path relative to the resolved period folder
	RelPath string `parquet:"rel_path,snappy"`
}

// FromRecords converts schema.FileRecord values to Parquet rows.
func FromRecords(records []schema.FileRecord) []FileRecordRow {
	rows := make([]FileRecordRow, len(records))
	for i, r := range records {
		rows[i] = FileRecordRow{
			NormalizedRelPath: r.NormalizedRelPath,
			Date:              r.Period.Label(),
			ActualName:        r.ActualName,
			SizeBytes:         r.SizeBytes,
			Created:           displayOrNil(r.Created),
			Modified:          displayOrNil(r.Modified),
			RelPath:           r.RelPath,
		}
	}
	return rows
}

// displayOrNil renders the rounded display form, nil for missing timestamps.
func displayOrNil(ts schema.Timestamp) *string {
	if ts.IsZero() {
		return nil
	}
	s := ts.Display()
	return &s
}

// WriteFileRecordsParquet writes a slice of FileRecordRow structs to a
// Parquet file. The schema is inferred from the struct tags.
func WriteFileRecordsParquet(data []FileRecordRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[FileRecordRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
