package output

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// SetLogger allows overriding the default logger (e.g. for testing or
// to swap in a JSON handler for non-interactive use).
func SetLogger(l *slog.Logger) {
	Logger = l
}
