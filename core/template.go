// Package core has the scan logic: template resolution, file collection,
// name normalization and time-series aggregation.
package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tyaso777/monthly-file-diff/schema"
)

// Path template placeholders understood by the resolver.
const (
	YearToken  = "{yyyy}"
	MonthToken = "{mm}"
	DayToken   = "{dd}"
)

// ErrInvalidDate reports a malformed explicit date argument. This is the only
// per-input condition that aborts a run.
var ErrInvalidDate = errors.New("invalid date")

// Placeholders records which tokens appear in a path template. Name
// normalization only substitutes tokens the template actually used.
type Placeholders struct {
	Year  bool
	Month bool
	Day   bool
}

// TemplatePlaceholders inspects a path template for placeholder tokens.
func TemplatePlaceholders(template string) Placeholders {
	return Placeholders{
		Year:  strings.Contains(template, YearToken),
		Month: strings.Contains(template, MonthToken),
		Day:   strings.Contains(template, DayToken),
	}
}

// ResolveTemplate substitutes a period into a path template. The year is
// four digits, month and day are zero-padded to two.
func ResolveTemplate(template string, p schema.Period) string {
	resolved := strings.ReplaceAll(template, YearToken, strconv.Itoa(p.Year))
	resolved = strings.ReplaceAll(resolved, MonthToken, fmt.Sprintf("%02d", int(p.Month)))
	if p.HasDay() {
		resolved = strings.ReplaceAll(resolved, DayToken, fmt.Sprintf("%02d", p.Day))
	}
	return resolved
}

// ParsePeriods converts explicit YYYY-MM-DD date strings into periods. Any
// malformed entry fails the whole run with ErrInvalidDate. The day component
// is kept only when the template uses {dd}.
func ParsePeriods(dates []string, ph Placeholders) ([]schema.Period, error) {
	periods := make([]schema.Period, 0, len(dates))
	for _, s := range dates {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, s)
		}
		p := schema.Period{Year: t.Year(), Month: t.Month()}
		if ph.Day {
			p.Day = t.Day()
		}
		periods = append(periods, p)
	}
	return periods, nil
}

// DiscoverPeriods derives the periods that exist on disk. It locates the
// first templated path segment, lists that segment's parent directory and
// matches each child name against the segment pattern. Children that do not
// match are skipped. The result is sorted ascending.
func DiscoverPeriods(template string) ([]schema.Period, error) {
	segments := strings.Split(filepath.ToSlash(template), "/")
	idx := -1
	for i, seg := range segments {
		if strings.Contains(seg, YearToken) || strings.Contains(seg, MonthToken) || strings.Contains(seg, DayToken) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("template %q contains no placeholders", template)
	}

	base := strings.Join(segments[:idx], "/")
	if base == "" {
		base = "."
	}

	re, err := segmentPattern(segments[idx])
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("cannot list %s: %w", base, err)
	}

	var periods []schema.Period
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		p, ok := matchPeriod(re, entry.Name())
		if !ok {
			continue
		}
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })
	return periods, nil
}

// segmentPattern compiles the templated segment into an anchored regexp with
// one named capture group per placeholder.
func segmentPattern(segment string) (*regexp.Regexp, error) {
	quoted := regexp.QuoteMeta(segment)
	quoted = strings.ReplaceAll(quoted, regexp.QuoteMeta(YearToken), `(?P<yyyy>\d{4})`)
	quoted = strings.ReplaceAll(quoted, regexp.QuoteMeta(MonthToken), `(?P<mm>\d{1,2})`)
	quoted = strings.ReplaceAll(quoted, regexp.QuoteMeta(DayToken), `(?P<dd>\d{1,2})`)
	re, err := regexp.Compile("^" + quoted + "$")
	if err != nil {
		return nil, fmt.Errorf("template segment %q: %w", segment, err)
	}
	return re, nil
}

// matchPeriod extracts a period from a folder name via the segment pattern.
func matchPeriod(re *regexp.Regexp, name string) (schema.Period, bool) {
	m := re.FindStringSubmatch(name)
	if m == nil {
		return schema.Period{}, false
	}
	var p schema.Period
	for i, group := range re.SubexpNames() {
		if i == 0 || group == "" {
			continue
		}
		v, err := strconv.Atoi(m[i])
		if err != nil {
			return schema.Period{}, false
		}
		switch group {
		case "yyyy":
			p.Year = v
		case "mm":
			p.Month = time.Month(v)
		case "dd":
			p.Day = v
		}
	}
	if p.Year == 0 || p.Month < time.January || p.Month > time.December {
		return schema.Period{}, false
	}
	day := p.Day
	if day == 0 {
		day = 1
	}
	// Reject impossible dates like 2024-02-30 via calendar round-trip.
	t := time.Date(p.Year, p.Month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != p.Year || t.Month() != p.Month || t.Day() != day {
		return schema.Period{}, false
	}
	return p, true
}
