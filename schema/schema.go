// Package schema has the shared models, enums and helpers for all parts of
// monthly-file-diff.
package schema

// FileRecord describes one file discovered under a period folder.
// Records are immutable once built by the collector.
type FileRecord struct {
	NormalizedRelPath string    `json:"normalized_rel_path"` // Identity key shared across periods
	Period            Period    `json:"date"`
	ActualName        string    `json:"actual_name"`
	RelPath           string    `json:"rel_path"` // Relative to the resolved period folder, slash-separated
	SizeBytes         int64     `json:"size"`
	Created           Timestamp `json:"created"`
	Modified          Timestamp `json:"modified"`
}

// SeriesPoint is one period's observation of a grouped file.
type SeriesPoint struct {
	Period    Period    `json:"date"`
	SizeBytes int64     `json:"size"`
	Created   Timestamp `json:"created"`
	Modified  Timestamp `json:"modified"`
}

// FileSeries is the per-identity-key time series built by the aggregator.
// Points are sorted ascending by period and contain at most one point per period.
type FileSeries struct {
	Key    string        `json:"key"`
	Points []SeriesPoint `json:"points"`
}

// Warning is a non-fatal diagnostic raised during a scan. Warnings go to the
// stderr channel; primary output only contains successfully resolved records.
type Warning struct {
	Kind    WarningKind
	Message string
}

// ScanOutput is the complete result of one scan run. It is owned by the
// orchestration call; nothing in the scan mutates package-level state.
type ScanOutput struct {
	Records  []FileRecord
	Series   []FileSeries
	Warnings []Warning
}
