package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyaso777/monthly-file-diff/schema"
)

func record(key string, p schema.Period, size int64) schema.FileRecord {
	return schema.FileRecord{
		NormalizedRelPath: key,
		Period:            p,
		ActualName:        key,
		RelPath:           key,
		SizeBytes:         size,
	}
}

func TestGroupRecords_CrossPeriodGrouping(t *testing.T) {
	june := schema.Period{Year: 2025, Month: time.June}
	july := schema.Period{Year: 2025, Month: time.July}

	// Discovery order is July first; points must still sort ascending.
	records := []schema.FileRecord{
		record("Report{mm}-{yyyy}.xlsx", july, 200),
		record("Report{mm}-{yyyy}.xlsx", june, 100),
	}

	series, kept, warnings := GroupRecords(records)
	assert.Empty(t, warnings)
	assert.Len(t, kept, 2)
	require.Len(t, series, 1)

	s := series[0]
	assert.Equal(t, "Report{mm}-{yyyy}.xlsx", s.Key)
	require.Len(t, s.Points, 2)
	assert.Equal(t, june, s.Points[0].Period)
	assert.Equal(t, int64(100), s.Points[0].SizeBytes)
	assert.Equal(t, july, s.Points[1].Period)
	assert.Equal(t, int64(200), s.Points[1].SizeBytes)
}

func TestGroupRecords_SamePeriodCollisionFirstWins(t *testing.T) {
	aug := schema.Period{Year: 2024, Month: time.August}

	first := record("Report{mm}-{yyyy}.txt", aug, 10)
	second := record("Report{mm}-{yyyy}.txt", aug, 20)
	second.RelPath = "Other08-2024.txt"

	series, kept, warnings := GroupRecords([]schema.FileRecord{first, second})

	// Exactly one record survives and one warning is emitted.
	require.Len(t, kept, 1)
	assert.Equal(t, int64(10), kept[0].SizeBytes)
	require.Len(t, warnings, 1)
	assert.Equal(t, schema.WarnIdentityCollision, warnings[0].Kind)

	require.Len(t, series, 1)
	require.Len(t, series[0].Points, 1)
	assert.Equal(t, int64(10), series[0].Points[0].SizeBytes)
}

func TestGroupRecords_KeyOrderFollowsFirstAppearance(t *testing.T) {
	june := schema.Period{Year: 2025, Month: time.June}
	july := schema.Period{Year: 2025, Month: time.July}

	records := []schema.FileRecord{
		record("b.txt", june, 1),
		record("a.txt", june, 1),
		record("b.txt", july, 1),
	}

	series, _, _ := GroupRecords(records)
	require.Len(t, series, 2)
	assert.Equal(t, "b.txt", series[0].Key)
	assert.Equal(t, "a.txt", series[1].Key)
}

func TestGroupRecords_Empty(t *testing.T) {
	series, kept, warnings := GroupRecords(nil)
	assert.Empty(t, series)
	assert.Empty(t, kept)
	assert.Empty(t, warnings)
}
