// Package log provides logging utilities.
package log

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/uribuilder/uri"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(URIValue),
)

// URIValue formats the URI as a group of scheme, variant and the rendered string with the password redacted.
func URIValue(u *uri.URI) slog.Value {
	if u == nil {
		return slog.StringValue("<nil>")
	}
	return slog.GroupValue(
		slog.String("scheme", u.Scheme()),
		slog.String("variant", u.Variant().String()),
		slog.String("uri", u.Render(&uri.RenderOptions{RedactPassword: true})),
	)
}

// NewLogger wraps h with the package formatters.
func NewLogger(h slog.Handler) *slog.Logger {
	if _, ok := h.(noopHandler); ok {
		return Noop
	}
	return slog.New(newHandler(h))
}

// Console creates a human-readable logger writing to w.
func Console(w io.Writer, lvl slog.Leveler, noColor bool) *slog.Logger {
	return NewLogger(console.NewHandler(w, &console.HandlerOptions{
		AddSource:  true,
		Level:      lvl,
		TimeFormat: time.RFC3339Nano,
		NoColor:    noColor,
	}))
}

// Developer creates a verbose developer logger writing to w.
func Developer(w io.Writer, lvl slog.Leveler, noColor bool) *slog.Logger {
	return NewLogger(devslog.NewHandler(w, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     lvl,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
		NoColor:    noColor,
	}))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})
