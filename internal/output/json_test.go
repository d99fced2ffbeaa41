package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mick4994/fio-test/internal/model"
)

func TestRowLogAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")

	l, err := NewRowLog(path)
	require.NoError(t, err)

	row := model.ResultRow{
		Config: model.RunConfig{
			Pattern:   "randread",
			BlockSize: "4k",
			IODepth:   16,
			NumJobs:   1,
			IOEngine:  "libaio",
		},
		IOPS:      980.5,
		Timestamp: time.Date(2025, 6, 1, 14, 30, 5, 0, time.UTC),
	}
	require.NoError(t, l.Append(row))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got model.ResultRow
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, row, got)
}
