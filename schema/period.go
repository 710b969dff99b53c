package schema

import (
	"fmt"
	"time"
)

// Period is a calendar year-month(-day) value bound to one templated folder.
// Day is zero for month-granular templates (no {dd} placeholder).
type Period struct {
	Year  int
	Month time.Month
	Day   int
}

// HasDay reports whether the period carries day granularity.
func (p Period) HasDay() bool {
	return p.Day > 0
}

// Label formats the period as YYYY-MM, or YYYY-MM-DD for day-granular periods.
func (p Period) Label() string {
	if p.HasDay() {
		return fmt.Sprintf("%04d-%02d-%02d", p.Year, int(p.Month), p.Day)
	}
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Before reports whether p orders strictly before other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	if p.Month != other.Month {
		return p.Month < other.Month
	}
	return p.Day < other.Day
}

// MarshalJSON renders the period as its label string.
func (p Period) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", p.Label())), nil
}
