package contract

import (
	"fmt"
	"os"
	"strings"
)

// ParseBoolString parses yes/no style flag values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yes", "true", "1", "y":
		return true, nil
	case "no", "false", "0", "n":
		return false, nil
	default:
		return false, fmt.Errorf("expected yes/no/true/false/1/0, received %q", s)
	}
}

// SelectOutputFile returns the file handle for primary output, stdout when
// no path is configured.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}
