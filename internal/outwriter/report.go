package outwriter

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path"

	_ "embed"

	"github.com/tyaso777/monthly-file-diff/schema"
)

//go:embed report.html
var reportTemplate string

// chartGroup is the render model for one grouped file in the HTML report.
// The arrays are pre-marshaled so the template can inline them into the
// chart setup scripts.
type chartGroup struct {
	Name            string
	ID              string
	DisplayPath     string
	DisplayFileName string
	DatesJSON       template.JS
	SizesJSON       template.JS
	CreatedJSON     template.JS
	ModifiedJSON    template.JS
}

// reportModel is the top-level template context.
type reportModel struct {
	Title string
	Files []chartGroup
}

// WriteReport renders the per-group chart report to the given path.
// The report is always UTF-8 regardless of the CSV encoding.
func (ow *OutWriter) WriteReport(series []schema.FileSeries, outPath string) error {
	groups, err := buildChartGroups(series)
	if err != nil {
		return err
	}

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("cannot parse report template: %w", err)
	}

	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	model := reportModel{Title: "File Info Charts", Files: groups}
	if err := tmpl.Execute(file, model); err != nil {
		return fmt.Errorf("cannot render report: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote HTML report to %s\n", outPath)
	return nil
}

// buildChartGroups converts each series into parallel label/value arrays.
// Missing timestamps become JSON nulls so the chart skips the point.
func buildChartGroups(series []schema.FileSeries) ([]chartGroup, error) {
	groups := make([]chartGroup, 0, len(series))
	for _, s := range series {
		labels := make([]string, 0, len(s.Points))
		sizes := make([]int64, 0, len(s.Points))
		created := make([]any, 0, len(s.Points))
		modified := make([]any, 0, len(s.Points))
		for _, pt := range s.Points {
			labels = append(labels, pt.Period.Label())
			sizes = append(sizes, pt.SizeBytes)
			created = append(created, isoOrNull(pt.Created))
			modified = append(modified, isoOrNull(pt.Modified))
		}

		datesJSON, err := marshalJS(labels)
		if err != nil {
			return nil, err
		}
		sizesJSON, err := marshalJS(sizes)
		if err != nil {
			return nil, err
		}
		createdJSON, err := marshalJS(created)
		if err != nil {
			return nil, err
		}
		modifiedJSON, err := marshalJS(modified)
		if err != nil {
			return nil, err
		}

		groups = append(groups, chartGroup{
			Name:            s.Key,
			ID:              schema.SanitizeID(s.Key),
			DisplayPath:     path.Dir(s.Key),
			DisplayFileName: path.Base(s.Key),
			DatesJSON:       datesJSON,
			SizesJSON:       sizesJSON,
			CreatedJSON:     createdJSON,
			ModifiedJSON:    modifiedJSON,
		})
	}
	return groups, nil
}

// isoOrNull maps a timestamp to its chart form, nil for missing values.
func isoOrNull(ts schema.Timestamp) any {
	if ts.IsZero() {
		return nil
	}
	return ts.ISO8601()
}

func marshalJS(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("cannot marshal chart data: %w", err)
	}
	return template.JS(b), nil
}
