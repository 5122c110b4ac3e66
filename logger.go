package uribuilder

import (
	"io"
	"log/slog"

	"github.com/ghettovoice/uribuilder/internal/log"
)

// ConsoleLogger returns a human-readable logger writing to w that can be set to [FactoryOptions.Logger].
func ConsoleLogger(w io.Writer, lvl slog.Leveler, noColor bool) *slog.Logger {
	return log.Console(w, lvl, noColor)
}

// DeveloperLogger returns a verbose multi-line logger writing to w, handy while debugging.
func DeveloperLogger(w io.Writer, lvl slog.Leveler, noColor bool) *slog.Logger {
	return log.Developer(w, lvl, noColor)
}
