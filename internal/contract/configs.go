package contract

import (
	"fmt"
	"strings"

	"github.com/tyaso777/monthly-file-diff/schema"
)

// Default values for configuration.
const (
	DefaultMaxDepth = 2
	MaxMaxDepth     = 32
)

// Config holds the runtime configuration for a scan.
// This struct is the final, validated config.
type Config struct {
	Template   string
	Dates      []string // explicit YYYY-MM-DD strings; empty means discover from disk
	Encoding   schema.EncodingMode
	MaxDepth   int
	Output     schema.OutputMode
	OutputFile string
	ReportFile string
	UseColors  bool
	Width      int // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	TemplateStr string

	Dates      string `mapstructure:"dates"`
	Encoding   string `mapstructure:"encoding"`
	MaxDepth   int    `mapstructure:"max-depth"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	ReportFile string `mapstructure:"report-file"`
	Color      string `mapstructure:"color"`
	Width      int    `mapstructure:"width"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Template validation ---
	cfg.Template = strings.TrimSpace(input.TemplateStr)
	if cfg.Template == "" {
		return fmt.Errorf("a path template is required (e.g. 'Data/{yyyy}_{mm}/Main')")
	}
	if !strings.Contains(cfg.Template, "{yyyy}") && !strings.Contains(cfg.Template, "{mm}") && !strings.Contains(cfg.Template, "{dd}") {
		return fmt.Errorf("template %q contains none of {yyyy}, {mm}, {dd}", cfg.Template)
	}

	// --- 2. Explicit date list ---
	// Format validation happens in the core's period parser, which owns the
	// fatal invalid-date behavior.
	cfg.Dates = nil
	if input.Dates != "" {
		for p := range strings.SplitSeq(input.Dates, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.Dates = append(cfg.Dates, trimmed)
			}
		}
	}

	// --- 3. Encoding validation ---
	cfg.Encoding = schema.EncodingMode(strings.ToLower(input.Encoding))
	if _, ok := schema.ValidEncodingModes[cfg.Encoding]; !ok {
		return fmt.Errorf("invalid encoding '%s'. must be utf8, shift_jis, utf16le", input.Encoding)
	}

	// --- 4. Depth validation ---
	if input.MaxDepth < 0 || input.MaxDepth > MaxMaxDepth {
		return fmt.Errorf("max-depth must be between 0 and %d (received %d)", MaxMaxDepth, input.MaxDepth)
	}
	cfg.MaxDepth = input.MaxDepth

	// --- 5. Output validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be csv, table, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.ReportFile = input.ReportFile
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	if cfg.Encoding != schema.UTF8Encoding && cfg.Output != schema.CSVOut {
		return fmt.Errorf("--encoding applies to csv output only")
	}

	// --- 6. Presentation flags ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors
	cfg.Width = input.Width

	return nil
}
