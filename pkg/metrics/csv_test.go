package metrics

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestNewCSVLogger(t *testing.T) {
	assert.Nil(t, NewCSVLogger(""), "empty path disables metrics entirely")

	path := filepath.Join(t.TempDir(), "metrics.csv")
	logger := NewCSVLogger(path)
	require.NotNil(t, logger)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file is created on first write, not at construction")
}

func TestCSVLogger_Record(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.csv")
	logger := NewCSVLogger(path)

	logger.Record("scrape_batch", 1500*time.Millisecond, 100, 0)
	logger.Record("summarize_batch", 2*time.Second, 5, 1234)
	require.NoError(t, logger.Close())

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"timestamp", "operation", "duration_ms", "item_count", "tokens"}, rows[0])
	assert.Equal(t, []string{"scrape_batch", "1500", "100", "0"}, rows[1][1:])
	assert.Equal(t, []string{"summarize_batch", "2000", "5", "1234"}, rows[2][1:])

	_, err := time.Parse(time.RFC3339, rows[1][0])
	assert.NoError(t, err, "timestamp column is RFC3339")
}

func TestCSVLogger_AppendsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.csv")

	first := NewCSVLogger(path)
	first.Record("scrape_batch", time.Second, 10, 0)
	require.NoError(t, first.Close())

	second := NewCSVLogger(path)
	second.Record("scrape_batch", time.Second, 20, 0)
	require.NoError(t, second.Close())

	rows := readCSV(t, path)
	require.Len(t, rows, 3, "reopening must not repeat the header")
	assert.Equal(t, "10", rows[1][3])
	assert.Equal(t, "20", rows[2][3])
}

func TestCSVLogger_NilReceiver(t *testing.T) {
	var logger *CSVLogger

	logger.Record("scrape_batch", time.Second, 1, 0)
	assert.NoError(t, logger.Close())
}

func TestCSVLogger_DisablesAfterOpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "metrics.csv")
	logger := NewCSVLogger(path)

	logger.Record("scrape_batch", time.Second, 1, 0)
	logger.Record("scrape_batch", time.Second, 2, 0)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, logger.Close())
}
