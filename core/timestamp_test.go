package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tyaso777/monthly-file-diff/schema"
)

func TestRoundTimestamp_TruncatesBelowThirtySeconds(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "zero seconds unchanged",
			in:   time.Date(2024, 8, 15, 14, 30, 0, 0, time.Local),
			want: time.Date(2024, 8, 15, 14, 30, 0, 0, time.Local),
		},
		{
			name: "29 seconds truncates",
			in:   time.Date(2024, 8, 15, 14, 30, 29, 999999999, time.Local),
			want: time.Date(2024, 8, 15, 14, 30, 0, 0, time.Local),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundTimestamp(tt.in)
			assert.Equal(t, tt.want, got.Time)
			assert.Zero(t, got.Time.Second())
		})
	}
}

func TestRoundTimestamp_RoundsUpFromThirtySeconds(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "30 seconds rounds up",
			in:   time.Date(2024, 8, 15, 14, 30, 30, 0, time.Local),
			want: time.Date(2024, 8, 15, 14, 31, 0, 0, time.Local),
		},
		{
			name: "59 seconds rounds up",
			in:   time.Date(2024, 8, 15, 14, 30, 59, 0, time.Local),
			want: time.Date(2024, 8, 15, 14, 31, 0, 0, time.Local),
		},
		{
			name: "cascades across hour",
			in:   time.Date(2024, 8, 15, 14, 59, 45, 0, time.Local),
			want: time.Date(2024, 8, 15, 15, 0, 0, 0, time.Local),
		},
		{
			name: "cascades across month end",
			in:   time.Date(2024, 1, 31, 23, 59, 45, 0, time.Local),
			want: time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name: "cascades across year end",
			in:   time.Date(2024, 12, 31, 23, 59, 30, 0, time.Local),
			want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundTimestamp(tt.in)
			assert.Equal(t, tt.want, got.Time)
			assert.Zero(t, got.Time.Second())
		})
	}
}

func TestRoundTimestamp_ZeroStaysMissing(t *testing.T) {
	got := RoundTimestamp(time.Time{})
	assert.True(t, got.IsZero())
	assert.Equal(t, schema.MissingTimestamp, got.Display())
}
