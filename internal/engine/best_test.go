package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mick4994/fio-test/internal/model"
)

func rowWithIOPS(iodepth int, iops float64) model.ResultRow {
	return model.ResultRow{
		Config: model.RunConfig{
			Pattern:   "randrw",
			BlockSize: "4k",
			IODepth:   iodepth,
			NumJobs:   4,
			IOEngine:  "libaio",
		},
		IOPS: iops,
	}
}

func TestUpdateBestImproves(t *testing.T) {
	best := UpdateBest(model.BestSelection{}, rowWithIOPS(1, 100))

	require.NotNil(t, best.Config)
	assert.Equal(t, 1, best.Config.IODepth)
	assert.Equal(t, 100.0, best.IOPS)
}

func TestUpdateBestTieKeepsEarlier(t *testing.T) {
	// Observations arrive as 100, 450, 450, 200; the tracker must settle
	// on the first config that reached 450 and not move on the tie.
	best := model.BestSelection{}
	for i, iops := range []float64{100, 450, 450, 200} {
		best = UpdateBest(best, rowWithIOPS(i+1, iops))
	}

	require.NotNil(t, best.Config)
	assert.Equal(t, 450.0, best.IOPS)
	assert.Equal(t, 2, best.Config.IODepth)
}

func TestUpdateBestIsPure(t *testing.T) {
	current := UpdateBest(model.BestSelection{}, rowWithIOPS(1, 500))
	unchanged := UpdateBest(current, rowWithIOPS(2, 400))

	assert.Equal(t, current, unchanged)
	assert.Equal(t, 1, current.Config.IODepth)
}

func TestUpdateBestAllZero(t *testing.T) {
	best := model.BestSelection{}
	for i := 0; i < 3; i++ {
		best = UpdateBest(best, rowWithIOPS(i+1, 0))
	}

	// The zero sentinel wins ties too: no config is selected.
	assert.Nil(t, best.Config)
	assert.Zero(t, best.IOPS)
}

func TestUpdateBestCopiesConfig(t *testing.T) {
	row := rowWithIOPS(8, 900)
	best := UpdateBest(model.BestSelection{}, row)

	row.Config.IODepth = 64

	assert.Equal(t, 8, best.Config.IODepth)
}
