package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mick4994/fio-test/internal/model"
)

func TestCombinedIOPSNilResult(t *testing.T) {
	assert.Zero(t, CombinedIOPS(nil))
}

func TestCombinedIOPSEmptyDocument(t *testing.T) {
	var result model.FioResult
	require.NoError(t, json.Unmarshal([]byte(`{}`), &result))

	assert.Zero(t, CombinedIOPS(&result))
}

func TestCombinedIOPSNoJobs(t *testing.T) {
	var result model.FioResult
	require.NoError(t, json.Unmarshal([]byte(`{"jobs": []}`), &result))

	assert.Zero(t, CombinedIOPS(&result))
}

func TestCombinedIOPSSumsReadAndWrite(t *testing.T) {
	result := &model.FioResult{
		Jobs: []model.JobStats{
			{
				Read:  model.OpStats{IOPS: 1200.5},
				Write: model.OpStats{IOPS: 300.25},
			},
			// Only the first job counts under group_reporting.
			{
				Read: model.OpStats{IOPS: 9999},
			},
		},
	}

	assert.InDelta(t, 1500.75, CombinedIOPS(result), 1e-9)
}

func TestCombinedIOPSPartialDocument(t *testing.T) {
	// A read-only run has no write object at all.
	var result model.FioResult
	doc := `{"jobs": [{"jobname": "iops_test", "read": {"iops": 850.0}}]}`
	require.NoError(t, json.Unmarshal([]byte(doc), &result))

	assert.InDelta(t, 850.0, CombinedIOPS(&result), 1e-9)
}
