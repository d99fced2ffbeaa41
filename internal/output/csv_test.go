package output

import (
	"bufio"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mick4994/fio-test/internal/model"
)

func sampleRow() model.ResultRow {
	return model.ResultRow{
		Config: model.RunConfig{
			Pattern:   "randrw",
			BlockSize: "4k",
			IODepth:   32,
			NumJobs:   4,
			IOEngine:  "io_uring",
			Direct:    true,
			Size:      "1G",
			Runtime:   30,
		},
		IOPS:      12543.75,
		Timestamp: time.Date(2025, 6, 1, 14, 30, 5, 0, time.UTC),
	}
}

func TestResultWriterHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	w, err := NewResultWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())
	assert.Equal(t, "rw,bs,iodepth,numjobs,ioengine,iops,timestamp", scanner.Text())
	assert.False(t, scanner.Scan())
}

func TestResultWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	row := sampleRow()

	w, err := NewResultWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Append(row))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	got := records[1]
	assert.Equal(t, "randrw", got[0])
	assert.Equal(t, "4k", got[1])
	assert.Equal(t, "32", got[2])
	assert.Equal(t, "4", got[3])
	assert.Equal(t, "io_uring", got[4])

	iops, err := strconv.ParseFloat(got[5], 64)
	require.NoError(t, err)
	assert.InDelta(t, row.IOPS, iops, 1e-9)

	assert.Equal(t, "2025-06-01 14:30:05", got[6])
}

func TestResultWriterAppendOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	w, err := NewResultWriter(path)
	require.NoError(t, err)

	for _, bs := range []string{"4k", "64k", "1m"} {
		row := sampleRow()
		row.Config.BlockSize = bs
		require.NoError(t, w.Append(row))
	}
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "4k", records[1][1])
	assert.Equal(t, "64k", records[2][1])
	assert.Equal(t, "1m", records[3][1])
}

func TestResultWriterTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale data\n"), 0o644))

	w, err := NewResultWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}
