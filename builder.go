package uribuilder

import (
	"context"
	"iter"
	"log/slog"
	"reflect"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/uribuilder/internal/errorutil"
	"github.com/ghettovoice/uribuilder/uri"
)

// BuilderState is a state of the [Builder] session.
type BuilderState string

const (
	// BuilderStateEmpty is the initial state, no URI is held.
	BuilderStateEmpty BuilderState = "empty"
	// BuilderStateSeeded means the builder holds a URI.
	BuilderStateSeeded BuilderState = "seeded"
)

const (
	bldEvtSeed = "seed"
	bldEvtSet  = "set"
	bldEvtGet  = "get"
)

// Builder is a mutable session over one immutable [uri.URI] at a time.
// Every setter replaces the held URI with a new one produced by the [Factory]
// or by the URI With* methods, a failed setter keeps the held URI.
// The session can be seeded again at any time.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	fct *Factory
	log *slog.Logger
	fsm *stateless.StateMachine
	cur *uri.URI
}

// NewBuilder creates an empty builder that uses the given factory.
// If f is nil, a factory with default options is used.
func NewBuilder(f *Factory) *Builder {
	if f == nil {
		f = NewFactory(nil)
	}
	b := &Builder{
		fct: f,
		log: f.log,
		fsm: stateless.NewStateMachine(BuilderStateEmpty),
	}
	b.initFSM()
	return b
}

func (b *Builder) initFSM() {
	b.fsm.SetTriggerParameters(bldEvtSeed, reflect.TypeOf((*uri.URI)(nil)))
	b.fsm.SetTriggerParameters(bldEvtSet, reflect.TypeOf((*uri.URI)(nil)))

	b.fsm.Configure(BuilderStateEmpty).
		Permit(bldEvtSeed, BuilderStateSeeded)

	b.fsm.Configure(BuilderStateSeeded).
		OnEntryFrom(bldEvtSeed, b.actStore).
		InternalTransition(bldEvtSeed, b.actStore).
		InternalTransition(bldEvtSet, b.actStore).
		InternalTransition(bldEvtGet, b.actNoop)
}

func (b *Builder) actStore(ctx context.Context, args ...any) error {
	b.cur = args[0].(*uri.URI) //nolint:forcetypeassert

	b.log.LogAttrs(ctx, slog.LevelDebug, "builder URI updated", slog.Any("uri", b.cur))

	return nil
}

func (*Builder) actNoop(context.Context, ...any) error { return nil }

// State returns the current state of the builder.
func (b *Builder) State() BuilderState {
	return b.fsm.MustState().(BuilderState) //nolint:forcetypeassert
}

func (b *Builder) seed(u *uri.URI) error {
	return errtrace.Wrap(b.fsm.Fire(bldEvtSeed, u))
}

// From seeds the builder with a URI created from s by [Factory.Create].
func (b *Builder) From(s string) error {
	u, err := b.fct.Create(s)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(b.seed(u))
}

// FromURI seeds the builder with a copy of u.
func (b *Builder) FromURI(u *uri.URI) error {
	if u == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil URI"))
	}
	return errtrace.Wrap(b.seed(u.Clone()))
}

// FromComponents seeds the builder with a URI created by [Factory.CreateFromComponents].
func (b *Builder) FromComponents(c uri.Components) error {
	u, err := b.fct.CreateFromComponents(c)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(b.seed(u))
}

func (b *Builder) set(op string, fn func(u *uri.URI) (*uri.URI, error)) error {
	if b.State() != BuilderStateSeeded {
		return errtrace.Wrap(newUninitializedBuilderErr(op))
	}
	u, err := fn(b.cur)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(b.fsm.Fire(bldEvtSet, u))
}

// SetScheme converts the held URI to the given scheme by [Factory.Transform].
func (b *Builder) SetScheme(scheme string) error {
	return errtrace.Wrap(b.set("SetScheme", func(u *uri.URI) (*uri.URI, error) {
		return errtrace.Wrap2(b.fct.Transform(u, scheme))
	}))
}

// SetUserInfo replaces the userinfo, the first of pass is used as the password.
// Empty user removes the userinfo whatever the password is.
func (b *Builder) SetUserInfo(user string, pass ...string) error {
	var ui uri.UserInfo
	switch {
	case user == "":
	case len(pass) > 0:
		ui = uri.UserPassword(user, pass[0])
	default:
		ui = uri.User(user)
	}
	return errtrace.Wrap(b.set("SetUserInfo", func(u *uri.URI) (*uri.URI, error) {
		return errtrace.Wrap2(u.WithUserInfo(ui))
	}))
}

// SetHost replaces the host.
func (b *Builder) SetHost(host string) error {
	return errtrace.Wrap(b.set("SetHost", func(u *uri.URI) (*uri.URI, error) {
		return errtrace.Wrap2(u.WithHost(host))
	}))
}

// SetPort replaces the port, it must be in range [0, 65535].
func (b *Builder) SetPort(port int) error {
	return errtrace.Wrap(b.set("SetPort", func(u *uri.URI) (*uri.URI, error) {
		return errtrace.Wrap2(u.WithPort(port))
	}))
}

// UnsetPort removes the port.
func (b *Builder) UnsetPort() error {
	return errtrace.Wrap(b.set("UnsetPort", func(u *uri.URI) (*uri.URI, error) {
		return errtrace.Wrap2(u.WithoutPort())
	}))
}

// SetPath replaces the path.
func (b *Builder) SetPath(path string) error {
	return errtrace.Wrap(b.set("SetPath", func(u *uri.URI) (*uri.URI, error) {
		return errtrace.Wrap2(u.WithPath(path))
	}))
}

// SetQuery replaces the query with pairs encoded by [uri.EncodeQuery].
// Empty sequence removes the query.
func (b *Builder) SetQuery(pairs iter.Seq2[string, string]) error {
	return errtrace.Wrap(b.set("SetQuery", func(u *uri.URI) (*uri.URI, error) {
		return errtrace.Wrap2(u.WithQueryPairs(pairs))
	}))
}

// SetFragment replaces the fragment, empty fragment removes it.
func (b *Builder) SetFragment(fragment string) error {
	return errtrace.Wrap(b.set("SetFragment", func(u *uri.URI) (*uri.URI, error) {
		return errtrace.Wrap2(u.WithFragment(fragment))
	}))
}

// URI returns a copy of the held URI.
func (b *Builder) URI() (*uri.URI, error) {
	if b.State() != BuilderStateSeeded {
		return nil, errtrace.Wrap(newUninitializedBuilderErr("URI"))
	}
	if err := b.fsm.Fire(bldEvtGet); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return b.cur.Clone(), nil
}

// String returns the held URI string or an empty string if the builder is not seeded.
func (b *Builder) String() string {
	if b == nil || b.cur == nil {
		return ""
	}
	return b.cur.String()
}
