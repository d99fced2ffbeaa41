package output

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/Mick4994/fio-test/internal/model"
)

// RowLog mirrors the CSV rows as JSON Lines for machine consumption.
// The CSV remains the authoritative record; this file is a convenience.
type RowLog struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

// NewRowLog creates a new RowLog, truncating any previous file.
func NewRowLog(path string) (*RowLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &RowLog{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Append writes a single row as one JSON line.
func (l *RowLog) Append(row model.ResultRow) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.encoder.Encode(row)
}

// Close closes the underlying file.
func (l *RowLog) Close() error {
	return l.file.Close()
}
