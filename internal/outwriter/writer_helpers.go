package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tyaso777/monthly-file-diff/internal/contract"
	"github.com/tyaso777/monthly-file-diff/schema"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// writeWithFile handles the common pattern of opening a file, writing to it,
// and cleaning up. It accepts a writer function that takes an io.Writer and
// returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// encodedWriter wraps w with the requested byte encoder. The returned close
// function flushes any buffered transform state and must be called after the
// last write. UTF-16LE output leads with a BOM, matching the spreadsheet
// convention the legacy encodings exist for.
func encodedWriter(w io.Writer, enc schema.EncodingMode) (io.Writer, func() error) {
	switch enc {
	case schema.ShiftJISEncoding:
		tw := transform.NewWriter(w, japanese.ShiftJIS.NewEncoder())
		return tw, tw.Close
	case schema.UTF16LEEncoding:
		tw := transform.NewWriter(w, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder())
		return tw, tw.Close
	default:
		return w, func() error { return nil }
	}
}
