package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

func InitLogger(level slog.Level) {
	slog.SetDefault(NewLogger(os.Stdout, level))
}

// NewLogger builds the tint-backed logger used across the service, wrapped so
// records carry the request ID found on their context.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	})

	return slog.New(NewRequestIDHandler(handler))
}
