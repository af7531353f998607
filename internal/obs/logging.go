// Package obs contains observability utilities such as logging.
package obs

import (
	"io"
	"log/slog"

	"github.com/nesv/multiplier/internal/config"
)

// NewLogger returns a structured logger writing to w in the format and at the
// level selected by cfg.
func NewLogger(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var h slog.Handler
	if cfg.LogFormat == config.FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}
