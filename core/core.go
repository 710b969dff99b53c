package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tyaso777/monthly-file-diff/internal/contract"
	"github.com/tyaso777/monthly-file-diff/internal/outwriter"
	"github.com/tyaso777/monthly-file-diff/schema"
)

// ExecuteScan runs the full scan and writes the configured outputs. It is
// the entry point for the 'scan' command: warnings go to stderr, the tabular
// output goes to stdout or --output-file, and the HTML report is written
// when --report-file is set.
func ExecuteScan(_ context.Context, cfg *contract.Config) error {
	start := time.Now()
	contract.SetUseColors(cfg.UseColors)

	output, err := RunScan(cfg)
	if err != nil {
		return err
	}
	for _, w := range output.Warnings {
		contract.Warn(string(w.Kind), w.Message)
	}

	duration := time.Since(start)
	ow := outwriter.NewOutWriter()
	if err := ow.WriteRecords(output.Records, cfg, duration); err != nil {
		return fmt.Errorf("cannot write records: %w", err)
	}
	if cfg.ReportFile != "" {
		if err := ow.WriteReport(output.Series, cfg.ReportFile); err != nil {
			return fmt.Errorf("cannot write report: %w", err)
		}
	}
	return nil
}

// RunScan performs the scan itself and returns the accumulated run state.
// The scan is sequential and deterministic: periods in resolver order, files
// in lexical walk order. Only a malformed explicit date aborts the run;
// every filesystem-level failure degrades to a warning in the output.
func RunScan(cfg *contract.Config) (*schema.ScanOutput, error) {
	ph := TemplatePlaceholders(cfg.Template)
	out := &schema.ScanOutput{}

	var periods []schema.Period
	if len(cfg.Dates) > 0 {
		parsed, err := ParsePeriods(cfg.Dates, ph)
		if err != nil {
			return nil, err
		}
		periods = parsed
	} else {
		discovered, err := DiscoverPeriods(cfg.Template)
		if err != nil {
			out.Warnings = append(out.Warnings, schema.Warning{
				Kind:    schema.WarnFolderUnreadable,
				Message: fmt.Sprintf("period discovery failed: %v", err),
			})
		}
		periods = discovered
	}

	if len(periods) == 0 {
		out.Warnings = append(out.Warnings, schema.Warning{
			Kind:    schema.WarnNoPeriods,
			Message: fmt.Sprintf("no periods resolved for template %s", cfg.Template),
		})
		return out, nil
	}

	for _, p := range periods {
		folder := ResolveTemplate(cfg.Template, p)
		info, err := os.Stat(folder)
		if err != nil || !info.IsDir() {
			out.Warnings = append(out.Warnings, schema.Warning{
				Kind:    schema.WarnTemplateNotFound,
				Message: fmt.Sprintf("skipping %s: folder %s does not exist", p.Label(), folder),
			})
			continue
		}
		records, warnings := CollectFiles(folder, p, ph, cfg.MaxDepth)
		out.Records = append(out.Records, records...)
		out.Warnings = append(out.Warnings, warnings...)
	}

	series, kept, collisions := GroupRecords(out.Records)
	out.Series = series
	out.Records = kept
	out.Warnings = append(out.Warnings, collisions...)
	return out, nil
}
