//go:build !linux && !windows && !darwin

package core

import (
	"os"
	"time"
)

// birthTime is unavailable on this platform; created timestamps render as N/A.
func birthTime(_ string, _ os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
