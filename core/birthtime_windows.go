//go:build windows

package core

import (
	"os"
	"syscall"
	"time"
)

// birthTime returns the file creation time from the Win32 file attributes.
func birthTime(_ string, info os.FileInfo) (time.Time, bool) {
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, attrs.CreationTime.Nanoseconds()), true
}
