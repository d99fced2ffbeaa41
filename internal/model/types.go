// Package model defines the data structures shared between the sweep
// engine and the output writers.
package model

import (
	"fmt"
	"time"
)

// RunConfig is one concrete combination of fio parameters. It is fully
// determined before a run starts and never mutated afterwards.
type RunConfig struct {
	Pattern   string `json:"rw"`        // read, write, randread, randwrite, randrw
	BlockSize string `json:"bs"`        // fio size token, e.g. "4k"
	IODepth   int    `json:"iodepth"`   // IO queue depth
	NumJobs   int    `json:"numjobs"`   // concurrent fio jobs
	IOEngine  string `json:"ioengine"`  // libaio, io_uring, sync, psync, vsync
	Direct    bool   `json:"direct"`    // O_DIRECT
	Size      string `json:"size"`      // test file size token, e.g. "1G"
	Runtime   int    `json:"runtime"`   // seconds
}

// Name returns the fio job name for this combination. It doubles as a
// stable, human-readable identifier in logs and output file names.
func (c RunConfig) Name() string {
	return fmt.Sprintf("iops_test_%s_%s_%d_%d_%s",
		c.Pattern, c.BlockSize, c.IODepth, c.NumJobs, c.IOEngine)
}

// Latency holds fio's nanosecond latency statistics.
type Latency struct {
	Mean float64 `json:"mean"`
}

// OpStats holds per-direction statistics from a fio job. Fields missing
// from the document decode to zero, so partial output degrades instead
// of failing.
type OpStats struct {
	IOPS  float64 `json:"iops"`
	BW    float64 `json:"bw"` // KB/s
	LatNS Latency `json:"lat_ns"`
}

// JobStats is one entry of the jobs array in fio's JSON output.
type JobStats struct {
	JobName string  `json:"jobname"`
	Read    OpStats `json:"read"`
	Write   OpStats `json:"write"`
}

// FioResult is the parsed fio JSON output document.
type FioResult struct {
	FioVersion string     `json:"fio version"`
	Jobs       []JobStats `json:"jobs"`
}

// ResultRow is one persisted observation: the config verbatim plus the
// extracted metric and the wall-clock time the row was written. Rows are
// write-once; the store never rewrites or reorders them.
type ResultRow struct {
	Config    RunConfig `json:"config"`
	IOPS      float64   `json:"iops"`
	Timestamp time.Time `json:"timestamp"`
}

// BestSelection is the highest-IOPS row seen so far in a sweep. A nil
// Config means no run has beaten the zero sentinel yet.
type BestSelection struct {
	Config *RunConfig
	IOPS   float64
}
