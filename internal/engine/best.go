package engine

import "github.com/Mick4994/fio-test/internal/model"

// UpdateBest returns the better of the current selection and row. The
// comparison is strictly greater-than, so ties keep the earlier row and
// the reported best parameters are reproducible across identical sweeps.
func UpdateBest(best model.BestSelection, row model.ResultRow) model.BestSelection {
	if row.IOPS > best.IOPS {
		cfg := row.Config
		return model.BestSelection{Config: &cfg, IOPS: row.IOPS}
	}

	return best
}
