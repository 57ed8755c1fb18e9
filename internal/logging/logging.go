// Package logging builds the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a text logger at debug level for the "dev" environment and a
// JSON logger at info level everywhere else.
func New(env string, w io.Writer) *slog.Logger {
	if strings.EqualFold(env, "dev") {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
