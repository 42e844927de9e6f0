package utils

import (
	"io"
	"log/slog"
)

// CloseWithLog closes c and logs a warning if the close fails. Intended for
// use in defer statements where the close error cannot be returned.
func CloseWithLog(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to close resource", "error", err)
	}
}
