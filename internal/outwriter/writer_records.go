package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/tyaso777/monthly-file-diff/internal/contract"
	"github.com/tyaso777/monthly-file-diff/schema"
)

// csvHeader is the flat record shape: one row per discovered file.
var csvHeader = []string{"normalized_rel_path", "date", "actual_name", "size", "created", "modified", "rel_path"}

// recordRow formats one FileRecord as a CSV row.
func recordRow(r schema.FileRecord) []string {
	return []string{
		r.NormalizedRelPath,
		r.Period.Label(),
		r.ActualName,
		strconv.FormatInt(r.SizeBytes, 10),
		r.Created.Display(),
		r.Modified.Display(),
		r.RelPath,
	}
}

// writeCSVRecords writes the record list as CSV in the requested byte
// encoding.
func writeCSVRecords(w io.Writer, records []schema.FileRecord, enc schema.EncodingMode) error {
	ew, closeEnc := encodedWriter(w, enc)
	csvWriter := csv.NewWriter(ew)

	if err := csvWriter.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		if err := csvWriter.Write(recordRow(r)); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return err
	}
	return closeEnc()
}

// printRecordsTable handles opening the file and calling the table renderer.
func printRecordsTable(records []schema.FileRecord, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return renderRecordsTable(w, records, cfg, duration)
	}, "Wrote table records")
}

// renderRecordsTable writes the records as a human-readable table.
func renderRecordsTable(w io.Writer, records []schema.FileRecord, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	headers := []string{"Normalized Path", "Date", "Name", "Size", "Created", "Modified"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTablePathWidth(cfg)
	var data [][]string
	for _, r := range records {
		row := []string{
			contract.TruncatePath(r.NormalizedRelPath, maxWidth),
			r.Period.Label(),
			r.ActualName,
			strconv.FormatInt(r.SizeBytes, 10),
			r.Created.Display(),
			r.Modified.Display(),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Scan completed in %v with %d records\n", duration, len(records))
	return nil
}
