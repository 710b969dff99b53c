package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyaso777/monthly-file-diff/schema"
)

func TestResolveTemplate(t *testing.T) {
	template := "D:/data/参照{yyyy}_{mm}月データ/Main"
	p := schema.Period{Year: 2024, Month: time.August}

	assert.Equal(t, "D:/data/参照2024_08月データ/Main", ResolveTemplate(template, p))
}

func TestResolveTemplate_WithDay(t *testing.T) {
	template := "D:/backup/{yyyy}/{mm}/{dd}/files"
	p := schema.Period{Year: 2024, Month: time.December, Day: 5}

	assert.Equal(t, "D:/backup/2024/12/05/files", ResolveTemplate(template, p))
}

func TestTemplatePlaceholders(t *testing.T) {
	ph := TemplatePlaceholders("Data/{yyyy}_{mm}/Main")
	assert.True(t, ph.Year)
	assert.True(t, ph.Month)
	assert.False(t, ph.Day)
}

func TestParsePeriods(t *testing.T) {
	ph := Placeholders{Year: true, Month: true}
	periods, err := ParsePeriods([]string{"2024-12-01", " 2025-01-01 "}, ph)
	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.Equal(t, schema.Period{Year: 2024, Month: time.December}, periods[0])
	assert.Equal(t, schema.Period{Year: 2025, Month: time.January}, periods[1])
}

func TestParsePeriods_KeepsDayForDayTemplates(t *testing.T) {
	ph := Placeholders{Year: true, Month: true, Day: true}
	periods, err := ParsePeriods([]string{"2024-12-05"}, ph)
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, 5, periods[0].Day)
}

func TestParsePeriods_InvalidDateIsFatal(t *testing.T) {
	ph := Placeholders{Year: true, Month: true}
	for _, bad := range []string{"2024-13-01", "2024/12/01", "not-a-date", "2024-02-30"} {
		_, err := ParsePeriods([]string{bad}, ph)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", bad)
	}
}

func TestDiscoverPeriods(t *testing.T) {
	base := t.TempDir()
	for _, dir := range []string{"参照2024_08月データ", "参照2024_12月データ", "参照2025_01月データ"} {
		require.NoError(t, os.MkdirAll(filepath.Join(base, dir, "Main"), 0o755))
	}
	// Children that must be skipped, not errored on.
	require.NoError(t, os.MkdirAll(filepath.Join(base, "invalid_format"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "参照invalid_08月データ"), 0o755))

	template := filepath.Join(base, "参照{yyyy}_{mm}月データ", "Main")
	periods, err := DiscoverPeriods(template)
	require.NoError(t, err)

	require.Len(t, periods, 3)
	assert.Equal(t, schema.Period{Year: 2024, Month: time.August}, periods[0])
	assert.Equal(t, schema.Period{Year: 2024, Month: time.December}, periods[1])
	assert.Equal(t, schema.Period{Year: 2025, Month: time.January}, periods[2])
}

func TestDiscoverPeriods_EmptyBase(t *testing.T) {
	base := t.TempDir()
	template := filepath.Join(base, "archive_{yyyy}_{mm}", "Main")

	periods, err := DiscoverPeriods(template)
	require.NoError(t, err)
	assert.Empty(t, periods)
}

func TestDiscoverPeriods_TemplatedLastSegment(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "2024_06"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "2024_07"), 0o755))

	periods, err := DiscoverPeriods(filepath.Join(base, "{yyyy}_{mm}"))
	require.NoError(t, err)

	require.Len(t, periods, 2)
	assert.Equal(t, time.June, periods[0].Month)
	assert.Equal(t, time.July, periods[1].Month)
}

func TestDiscoverPeriods_RejectsImpossibleDates(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "2024_13"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "2024_00"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "2024_02"), 0o755))

	periods, err := DiscoverPeriods(filepath.Join(base, "{yyyy}_{mm}"))
	require.NoError(t, err)

	require.Len(t, periods, 1)
	assert.Equal(t, time.February, periods[0].Month)
}

func TestDiscoverPeriods_NoPlaceholders(t *testing.T) {
	_, err := DiscoverPeriods("plain/path/with/no/tokens")
	assert.Error(t, err)
}
