package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyaso777/monthly-file-diff/schema"
)

func mockRecords() []schema.FileRecord {
	june := schema.Period{Year: 2025, Month: time.June}
	july := schema.Period{Year: 2025, Month: time.July}
	return []schema.FileRecord{
		{
			NormalizedRelPath: "Report{mm}-{yyyy}.xlsx",
			Period:            june,
			ActualName:        "Report06-2025.xlsx",
			RelPath:           "Report06-2025.xlsx",
			SizeBytes:         1024,
			Created:           schema.Timestamp{Time: time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)},
			Modified:          schema.Timestamp{Time: time.Date(2025, 6, 2, 10, 30, 0, 0, time.Local)},
		},
		{
			NormalizedRelPath: "Report{mm}-{yyyy}.xlsx",
			Period:            july,
			ActualName:        "Report07-2025.xlsx",
			RelPath:           "Report07-2025.xlsx",
			SizeBytes:         2048,
			Modified:          schema.Timestamp{Time: time.Date(2025, 7, 2, 10, 30, 0, 0, time.Local)},
		},
	}
}

func TestFileRecordRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := parquet.SchemaOf(new(FileRecordRow))
	require.NotNil(t, s)

	expectedColumns := []string{
		"normalized_rel_path",
		"date",
		"actual_name",
		"size",
		"created",
		"modified",
		"rel_path",
	}
	for _, colName := range expectedColumns {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestFromRecords(t *testing.T) {
	rows := FromRecords(mockRecords())
	require.Len(t, rows, 2)

	assert.Equal(t, "Report{mm}-{yyyy}.xlsx", rows[0].NormalizedRelPath)
	assert.Equal(t, "2025-06", rows[0].Date)
	assert.Equal(t, int64(1024), rows[0].SizeBytes)
	require.NotNil(t, rows[0].Created)
	assert.Equal(t, "2025/06/01 09:00", *rows[0].Created)
	require.NotNil(t, rows[0].Modified)
	assert.Equal(t, "2025/06/02 10:30", *rows[0].Modified)

	// Missing creation time maps to a null column value
	assert.Nil(t, rows[1].Created)
	assert.Equal(t, "2025-07", rows[1].Date)
}

func TestWriteFileRecordsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "records.parquet")

	data := FromRecords(mockRecords())
	err := WriteFileRecordsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[FileRecordRow](file)
	defer reader.Close()

	readData := make([]FileRecordRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	require.Equal(t, len(data), n, "Should read all records")

	assert.Equal(t, data[0].NormalizedRelPath, readData[0].NormalizedRelPath)
	assert.Equal(t, data[0].SizeBytes, readData[0].SizeBytes)
	require.NotNil(t, readData[0].Created)
	assert.Equal(t, *data[0].Created, *readData[0].Created)
	assert.Nil(t, readData[1].Created, "null column must survive the round trip")
}

func TestWriteFileRecordsParquet_InvalidPath(t *testing.T) {
	err := WriteFileRecordsParquet(nil, filepath.Join(t.TempDir(), "missing_dir", "out.parquet"))
	assert.Error(t, err)
}
