package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the tabular output.
	OutputMode string

	// EncodingMode represents the byte encoding of the CSV output.
	EncodingMode string

	// WarningKind classifies the non-fatal conditions a scan can hit.
	WarningKind string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv" // default
	TableOut   OutputMode = "table"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All CSV encodings supported. Encoding applies to the tabular path only;
// the HTML report is always UTF-8.
const (
	UTF8Encoding     EncodingMode = "utf8" // default
	ShiftJISEncoding EncodingMode = "shift_jis"
	UTF16LEEncoding  EncodingMode = "utf16le"
)

// All warning kinds emitted on the diagnostic channel.
const (
	WarnTemplateNotFound  WarningKind = "template_not_found"
	WarnFolderUnreadable  WarningKind = "folder_unreadable"
	WarnFileUnreadable    WarningKind = "file_unreadable"
	WarnIdentityCollision WarningKind = "identity_collision"
	WarnNoPeriods         WarningKind = "no_periods"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TableOut:   {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidEncodingModes lists all valid CSV encodings.
var ValidEncodingModes = map[EncodingMode]struct{}{
	UTF8Encoding:     {},
	ShiftJISEncoding: {},
	UTF16LEEncoding:  {},
}
