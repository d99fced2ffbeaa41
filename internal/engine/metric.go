package engine

import "github.com/Mick4994/fio-test/internal/model"

// CombinedIOPS extracts the scalar metric for one run: the first job's
// read IOPS plus write IOPS. A failed run (nil result), an empty
// document, or missing fields all contribute zero, so one bad run never
// aborts a sweep.
func CombinedIOPS(result *model.FioResult) float64 {
	if result == nil || len(result.Jobs) == 0 {
		return 0
	}

	job := result.Jobs[0]
	return job.Read.IOPS + job.Write.IOPS
}
