//go:build darwin

package core

import (
	"os"
	"syscall"
	"time"
)

// birthTime returns the file creation time from the BSD stat birth-time field.
func birthTime(_ string, info os.FileInfo) (time.Time, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec), true
}
