package schema

import (
	"fmt"
	"time"
)

// Display formats for rounded timestamps.
const (
	TimestampDisplayFormat = "2006/01/02 15:04"
	TimestampISOFormat     = "2006-01-02T15:04:05"

	// MissingTimestamp is rendered when the filesystem did not expose a time,
	// e.g. creation time on platforms without birth-time support.
	MissingTimestamp = "N/A"
)

// Timestamp is a display-rounded wall-clock time. The seconds component of a
// valid Timestamp is always zero. The zero value means the underlying
// filesystem did not expose the timestamp.
type Timestamp struct {
	Time time.Time
}

// IsZero reports whether the timestamp is missing.
func (ts Timestamp) IsZero() bool {
	return ts.Time.IsZero()
}

// Display formats the timestamp as YYYY/MM/DD HH:MM for tabular output.
func (ts Timestamp) Display() string {
	if ts.IsZero() {
		return MissingTimestamp
	}
	return ts.Time.Format(TimestampDisplayFormat)
}

// ISO8601 formats the timestamp for chart data. Missing timestamps return
// the empty string so callers can emit a JSON null.
func (ts Timestamp) ISO8601() string {
	if ts.IsZero() {
		return ""
	}
	return ts.Time.Format(TimestampISOFormat)
}

// MarshalJSON renders the display form, or null when missing.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", ts.Display())), nil
}
