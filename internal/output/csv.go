// Package output holds the result writers and the shared logger.
package output

import (
	"encoding/csv"
	"os"
	"strconv"
	"sync"

	"github.com/Mick4994/fio-test/internal/model"
)

// Header is the fixed column order of the result CSV. Downstream chart
// tooling depends on it; do not reorder.
var Header = []string{"rw", "bs", "iodepth", "numjobs", "ioengine", "iops", "timestamp"}

// TimestampLayout is the wall-clock format used in the timestamp column.
const TimestampLayout = "2006-01-02 15:04:05"

// ResultWriter appends sweep rows to a CSV file. Every row is flushed
// and fsynced before Append returns, so a crash mid-sweep loses at most
// the row currently being written.
type ResultWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewResultWriter creates the result file, truncating any previous one,
// and writes the header row.
func NewResultWriter(path string) (*ResultWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)

	if err := w.Write(Header); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return nil, err
	}

	return &ResultWriter{
		file:   f,
		writer: w,
	}, nil
}

// Append durably persists one row. Rows are never rewritten or reordered
// after this returns.
func (rw *ResultWriter) Append(row model.ResultRow) error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	record := []string{
		row.Config.Pattern,
		row.Config.BlockSize,
		strconv.Itoa(row.Config.IODepth),
		strconv.Itoa(row.Config.NumJobs),
		row.Config.IOEngine,
		strconv.FormatFloat(row.IOPS, 'f', -1, 64),
		row.Timestamp.Format(TimestampLayout),
	}

	if err := rw.writer.Write(record); err != nil {
		return err
	}
	rw.writer.Flush()
	if err := rw.writer.Error(); err != nil {
		return err
	}
	return rw.file.Sync()
}

// Close closes the underlying file.
func (rw *ResultWriter) Close() error {
	rw.writer.Flush()
	return rw.file.Close()
}
