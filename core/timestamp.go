package core

import (
	"time"

	"github.com/tyaso777/monthly-file-diff/schema"
)

// RoundTimestamp converts a raw filesystem time into the Windows Explorer
// display convention: a seconds component below 30 truncates, 30 and above
// rounds the minute up. Minute overflow cascades through hour, day, month
// and year via normal calendar arithmetic, so 23:59:45 on a month's last
// day lands on 00:00 of the next month's first day.
func RoundTimestamp(t time.Time) schema.Timestamp {
	if t.IsZero() {
		return schema.Timestamp{}
	}
	if t.Second() >= 30 {
		t = t.Add(time.Minute)
	}
	rounded := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	return schema.Timestamp{Time: rounded}
}
