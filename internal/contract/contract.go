// Package contract holds the validated runtime configuration and the shared
// CLI utilities for monthly-file-diff.
package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Color for the warning labels on the diagnostic channel.
var warnColor = color.New(color.FgYellow)

// SetUseColors toggles the colored warning labels, honoring --color.
func SetUseColors(enabled bool) {
	if enabled {
		warnColor.EnableColor()
	} else {
		warnColor.DisableColor()
	}
}

// Warn prints a scan diagnostic to stderr. Warnings never mix into the
// primary output stream.
func Warn(kind, msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", warnColor.Sprintf("⚠️  [%s]", kind), msg)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}
