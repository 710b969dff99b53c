package core

import (
	"fmt"
	"sort"

	"github.com/tyaso777/monthly-file-diff/schema"
)

// GroupRecords builds one FileSeries per identity key. Key ordering follows
// the insertion order of each key's first appearance. Within a series the
// points are sorted ascending by period, with at most one point per period:
// when two records of the same period collide on a key, the first one
// encountered wins and the discard is reported as a warning. The surviving
// records are returned alongside the series so the flat output honors the
// same policy.
func GroupRecords(records []schema.FileRecord) ([]schema.FileSeries, []schema.FileRecord, []schema.Warning) {
	var order []string
	points := make(map[string][]schema.SeriesPoint)
	seen := make(map[string]map[string]bool)
	kept := make([]schema.FileRecord, 0, len(records))
	var warnings []schema.Warning

	for _, rec := range records {
		key := rec.NormalizedRelPath
		if _, ok := points[key]; !ok {
			order = append(order, key)
			points[key] = nil
			seen[key] = make(map[string]bool)
		}
		label := rec.Period.Label()
		if seen[key][label] {
			warnings = append(warnings, schema.Warning{
				Kind:    schema.WarnIdentityCollision,
				Message: fmt.Sprintf("%s also normalizes to %q in %s; keeping the first record", rec.RelPath, key, label),
			})
			continue
		}
		seen[key][label] = true
		kept = append(kept, rec)
		points[key] = append(points[key], schema.SeriesPoint{
			Period:    rec.Period,
			SizeBytes: rec.SizeBytes,
			Created:   rec.Created,
			Modified:  rec.Modified,
		})
	}

	series := make([]schema.FileSeries, 0, len(order))
	for _, key := range order {
		pts := points[key]
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].Period.Before(pts[j].Period) })
		series = append(series, schema.FileSeries{Key: key, Points: pts})
	}
	return series, kept, warnings
}
