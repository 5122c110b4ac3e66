package uribuilder

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination internal/testutil/urimock/parser.go -package urimock . Parser

import (
	"context"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uribuilder/internal/errorutil"
	"github.com/ghettovoice/uribuilder/internal/log"
	"github.com/ghettovoice/uribuilder/internal/util"
	"github.com/ghettovoice/uribuilder/uri"
)

// Parser splits a URI string into components.
// [uri.DefaultParser] is the RFC 3986 implementation.
type Parser interface {
	Parse(s string) (uri.Components, error)
}

// FactoryOptions are options for [NewFactory].
type FactoryOptions struct {
	// Parser is used to split URI strings into components.
	// If nil, [uri.DefaultParser] is used.
	Parser Parser
	// Registry is the table of supported schemes.
	// If nil, [uri.DefaultRegistry] is used.
	Registry *uri.Registry
	// Logger is used for debug logging, its handler is wrapped to format [uri.URI] values.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

func (o *FactoryOptions) parser() Parser {
	if o == nil || o.Parser == nil {
		return uri.DefaultParser
	}
	return o.Parser
}

func (o *FactoryOptions) registry() *uri.Registry {
	if o == nil || o.Registry == nil {
		return uri.DefaultRegistry()
	}
	return o.Registry
}

func (o *FactoryOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Noop
	}
	return log.NewLogger(o.Logger.Handler())
}

// Factory creates and transforms URIs.
// It holds no mutable state and is safe for concurrent use.
type Factory struct {
	parser Parser
	reg    *uri.Registry
	log    *slog.Logger
}

// NewFactory creates a new factory with the given options.
// Nil options are the same as zero options.
func NewFactory(opts *FactoryOptions) *Factory {
	return &Factory{
		parser: opts.parser(),
		reg:    opts.registry(),
		log:    opts.log(),
	}
}

// Registry returns the scheme registry of the factory.
func (f *Factory) Registry() *uri.Registry { return f.reg }

// IsSupported reports whether the scheme is registered.
func (f *Factory) IsSupported(scheme string) bool { return f.reg.IsSupported(scheme) }

// Supported returns the sorted list of supported scheme names.
func (f *Factory) Supported() []string { return f.reg.Supported() }

// Create parses s and creates a URI.
//
// Errors:
//   - [ErrMalformedInput] or any other error of the parser;
//   - [ErrInvalidArgument] if s has no scheme or violates the scheme rules;
//   - [ErrUnsupportedScheme] if the scheme is not registered;
//   - [ErrInvalidPort] if the port is out of range.
func (f *Factory) Create(s string) (*uri.URI, error) {
	c, err := f.parser.Parse(s)
	if err != nil {
		if errorutil.IsGrammarErr(err) {
			f.log.LogAttrs(context.Background(), slog.LevelDebug, "URI parse failed",
				slog.String("input", s),
				slog.Any("error", err),
			)
		}
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(f.CreateFromComponents(c))
}

// CreateFromComponents creates a URI from components, the scheme slot is required.
// Components are not parsed again, they are expected in the decoded form produced by the parser.
// It fails the same way as [Factory.Create] except for parse errors.
func (f *Factory) CreateFromComponents(c uri.Components) (*uri.URI, error) {
	name, ok := c.Scheme.Get()
	if !ok || util.TrimSP(name) == "" {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("missing scheme"))
	}
	desc, err := f.reg.Resolve(name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	u, err := uri.New(desc, c)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	f.log.LogAttrs(context.Background(), slog.LevelDebug, "URI created", slog.Any("uri", u))

	return u, nil
}

// Transform converts u to the given scheme.
//
// If the current and the new scheme are compatible (see [uri.Registry.Compatible]),
// only the scheme is replaced. Otherwise u is rendered, parsed again and rebuilt
// with the new scheme: components the target variant cannot hold are dropped,
// and the result must satisfy the target variant rules.
func (f *Factory) Transform(u *uri.URI, scheme string) (*uri.URI, error) {
	if u == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil URI"))
	}
	desc, err := f.reg.Resolve(scheme)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	if desc.Variant == u.Variant() {
		u2, err := u.WithScheme(desc)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}

		f.log.LogAttrs(context.Background(), slog.LevelDebug, "URI transformed",
			slog.String("mode", "rename"),
			slog.Any("from", u),
			slog.Any("to", u2),
		)

		return u2, nil
	}

	c, err := f.parser.Parse(u.String())
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	c.Scheme = uri.Some(desc.Name)
	u2, err := f.CreateFromComponents(desc.Variant.Strip(c))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	f.log.LogAttrs(context.Background(), slog.LevelDebug, "URI transformed",
		slog.String("mode", "rederive"),
		slog.Any("from", u),
		slog.Any("to", u2),
	)

	return u2, nil
}

// IsCompatible reports whether u can change its scheme to the given one without re-deriving components.
func (f *Factory) IsCompatible(scheme string, u *uri.URI) (bool, error) {
	if u == nil {
		return false, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil URI"))
	}
	desc, err := f.reg.Resolve(scheme)
	if err != nil {
		return false, errtrace.Wrap(err)
	}
	return desc.Variant == u.Variant(), nil
}
