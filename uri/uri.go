package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uribuilder/internal/errorutil"
	"github.com/ghettovoice/uribuilder/internal/grammar"
	"github.com/ghettovoice/uribuilder/internal/ioutil"
	"github.com/ghettovoice/uribuilder/internal/types"
	"github.com/ghettovoice/uribuilder/internal/util"
)

// RenderOptions contains options for rendering URIs.
type RenderOptions = types.RenderOptions

// URI is an immutable URI of one of the registered schemes.
// The rules of the scheme [Variant] are checked at construction and by every With* method,
// which return a new URI and never modify the receiver.
// A URI is safe for concurrent use.
type URI struct {
	scheme   Scheme
	user     UserInfo
	host     Opt[string]
	port     Opt[int]
	path     string
	query    Opt[string]
	fragment Opt[string]
}

var (
	_ types.Renderer        = (*URI)(nil)
	_ types.ValidFlag       = (*URI)(nil)
	_ types.Equalable       = (*URI)(nil)
	_ types.Cloneable[*URI] = (*URI)(nil)
	_ fmt.Formatter         = (*URI)(nil)
	_ types.Equalable       = UserInfo{}
)

// New creates a URI of the scheme s from the components c.
// The Scheme slot of c is ignored, s defines the scheme name and variant.
//
// Component strings are accepted in decoded or percent-encoded form.
// The host is lower-cased, a bare IPv6 address is enclosed in square brackets,
// and a port equal to the scheme default is dropped unless s.KeepDefaultPort is set.
//
// Errors:
//   - [ErrInvalidPort] if the port is outside [0, 65535];
//   - [ErrInvalidArgument] if s is invalid, the host is invalid
//     or the components violate the variant rules.
func New(s Scheme, c Components) (*URI, error) {
	s.Name = util.LCaseTrim(s.Name)
	if !s.IsValid() {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid scheme descriptor %q", s.Name))
	}

	u := &URI{
		scheme:   s,
		path:     grammar.Normalize(c.Path, shouldEscapePathChar),
		query:    normalizeOpt(c.Query, shouldEscapeQueryChar),
		fragment: normalizeOpt(c.Fragment, shouldEscapeQueryChar),
	}

	usr, hasUsr := c.User.Get()
	passwd, hasPasswd := c.Pass.Get()
	switch {
	case hasPasswd && !hasUsr:
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("password without user"))
	case hasPasswd:
		u.user = UserPassword(grammar.Normalize(usr, shouldEscapeUserChar), grammar.Normalize(passwd, shouldEscapePasswdChar))
	case hasUsr:
		u.user = User(grammar.Normalize(usr, shouldEscapeUserChar))
	}

	if h, ok := c.Host.Get(); ok && h != "" {
		h, err := normalizeHost(h)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		u.host = Some(h)
	}

	if p, ok := c.Port.Get(); ok {
		if !isPortInRange(p) {
			return nil, errtrace.Wrap(newInvalidPortErr(p))
		}
		if dp, ok := s.DefaultPort.Get(); !ok || dp != p || s.KeepDefaultPort {
			u.port = Some(p)
		}
	}

	if err := s.Variant.apply(u); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !u.host.IsSome() && (!u.user.IsZero() || u.port.IsSome()) {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("userinfo or port without host"))
	}

	u.path = normalizePath(u.path, u.hasAuthority())
	return u, nil
}

// Parse parses s and creates a URI of one of the [DefaultRegistry] schemes.
//
// Errors:
//   - [ErrMalformedInput] if s is not a valid URI;
//   - [ErrInvalidArgument] if s has no scheme or violates the scheme rules;
//   - [ErrUnsupportedScheme] if the scheme is not registered.
func Parse(s string) (*URI, error) {
	c, err := ParseComponents(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	name, ok := c.Scheme.Get()
	if !ok || util.TrimSP(name) == "" {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("missing scheme"))
	}
	desc, err := DefaultRegistry().Resolve(name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(New(desc, c))
}

func normalizeOpt(o Opt[string], shouldEscape func(c byte) bool) Opt[string] {
	if v, ok := o.Get(); ok {
		return Some(grammar.Normalize(v, shouldEscape))
	}
	return o
}

func normalizeHost(h string) (string, error) {
	switch {
	case strings.HasPrefix(h, "["):
		if !strings.HasSuffix(h, "]") || !grammar.IsIPLiteral(h) {
			return "", errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid IP literal %q", h))
		}
		return strings.ToLower(h), nil
	case grammar.IsIPv6(h):
		return "[" + strings.ToLower(h) + "]", nil
	}

	// anything else is a reg-name in the decoded form, ":" included
	h = lowerHost(grammar.Normalize(h, shouldEscapeHostChar))
	if !grammar.IsHost(grammar.Escape(h, shouldEscapeHostChar)) {
		return "", errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid host %q", h))
	}
	return h, nil
}

// normalizePath applies RFC 3986 Section 5.3 rules so that the rendered URI parses back to the same path.
func normalizePath(p string, hasAuth bool) string {
	switch {
	case hasAuth && p != "" && p[0] != '/':
		return "/" + p
	case !hasAuth && strings.HasPrefix(p, "//"):
		return "/" + strings.TrimLeft(p, "/")
	default:
		return p
	}
}

func (u *URI) hasAuthority() bool {
	return u.scheme.Variant == VariantFile || u.host.IsSome()
}

// Scheme returns the lower-cased scheme name.
func (u *URI) Scheme() string {
	if u == nil {
		return ""
	}
	return u.scheme.Name
}

// SchemeInfo returns the scheme descriptor of the URI.
func (u *URI) SchemeInfo() Scheme {
	if u == nil {
		return Scheme{}
	}
	return u.scheme
}

// Variant returns the variant of the URI scheme.
func (u *URI) Variant() Variant {
	if u == nil {
		return VariantUnknown
	}
	return u.scheme.Variant
}

// User returns the userinfo, zero value means no userinfo.
func (u *URI) User() UserInfo {
	if u == nil {
		return UserInfo{}
	}
	return u.user
}

// Host returns the lower-cased host, in case it is set, and a bool flag indicating whether it is set.
// IP literals are enclosed in square brackets.
func (u *URI) Host() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.host.Get()
}

// Port returns the explicit port, in case it is set, and a bool flag indicating whether it is set.
func (u *URI) Port() (int, bool) {
	if u == nil {
		return 0, false
	}
	return u.port.Get()
}

// EffectivePort returns the explicit port or the scheme default port.
func (u *URI) EffectivePort() (int, bool) {
	if u == nil {
		return 0, false
	}
	if p, ok := u.port.Get(); ok {
		return p, true
	}
	return u.scheme.DefaultPort.Get()
}

// Path returns the path in decoded form.
func (u *URI) Path() string {
	if u == nil {
		return ""
	}
	return u.path
}

// Query returns the query in decoded form, in case it is set, and a bool flag indicating whether it is set.
func (u *URI) Query() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.query.Get()
}

// QueryPairs decodes the query into key/value pairs.
func (u *URI) QueryPairs() (QueryPairs, error) {
	q, _ := u.Query()
	return errtrace.Wrap2(DecodeQuery(q))
}

// Fragment returns the fragment in decoded form, in case it is set, and a bool flag indicating whether it is set.
func (u *URI) Fragment() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.fragment.Get()
}

// Authority returns the rendered authority without leading "//".
func (u *URI) Authority() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.renderAuthority(sb, nil) //nolint:errcheck
	return sb.String()
}

// Components returns the components of the URI.
func (u *URI) Components() Components {
	if u == nil {
		return Components{}
	}
	c := Components{
		Scheme:   Some(u.scheme.Name),
		Host:     u.host,
		Port:     u.port,
		Path:     u.path,
		Query:    u.query,
		Fragment: u.fragment,
	}
	if !u.user.IsZero() {
		c.User = Some(u.user.Username())
		if p, ok := u.user.Password(); ok {
			c.Pass = Some(p)
		}
	}
	return c
}

func (u *URI) with(fn func(c *Components)) (*URI, error) {
	if u == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil URI"))
	}
	c := u.Components()
	fn(&c)

	s := u.scheme
	// an untouched port survives even if it equals the default, see WithScheme
	if u.port.IsSome() && c.Port.Equal(u.port) {
		s.KeepDefaultPort = true
	}
	u2, err := New(s, c)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	u2.scheme = u.scheme
	return u2, nil
}

// WithScheme returns a copy of the URI with the scheme replaced.
// Within the same variant only the scheme is replaced and an explicit port is kept
// even if it equals the new default port.
// Otherwise the components are checked against the rules of the new scheme variant.
func (u *URI) WithScheme(s Scheme) (*URI, error) {
	if u == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil URI"))
	}

	s.Name = util.LCaseTrim(s.Name)
	if s.IsValid() && s.Variant == u.scheme.Variant {
		u2 := *u
		u2.scheme = s
		return &u2, nil
	}
	return errtrace.Wrap2(New(s, u.Components()))
}

// WithUserInfo returns a copy of the URI with the userinfo replaced.
// Zero [UserInfo] removes the userinfo.
func (u *URI) WithUserInfo(ui UserInfo) (*URI, error) {
	return errtrace.Wrap2(u.with(func(c *Components) {
		c.User, c.Pass = None[string](), None[string]()
		if ui.IsZero() {
			return
		}
		c.User = Some(ui.Username())
		if p, ok := ui.Password(); ok {
			c.Pass = Some(p)
		}
	}))
}

// WithHost returns a copy of the URI with the host replaced.
// Empty host removes the host.
func (u *URI) WithHost(host string) (*URI, error) {
	return errtrace.Wrap2(u.with(func(c *Components) {
		c.Host = types.SomeIf(host, host != "")
	}))
}

// WithPort returns a copy of the URI with the port replaced.
// The port must be in range [0, 65535], otherwise [ErrInvalidPort] is returned.
func (u *URI) WithPort(port int) (*URI, error) {
	return errtrace.Wrap2(u.with(func(c *Components) {
		c.Port = Some(port)
	}))
}

// WithoutPort returns a copy of the URI without the port.
func (u *URI) WithoutPort() (*URI, error) {
	return errtrace.Wrap2(u.with(func(c *Components) {
		c.Port = None[int]()
	}))
}

// WithPath returns a copy of the URI with the path replaced.
func (u *URI) WithPath(path string) (*URI, error) {
	return errtrace.Wrap2(u.with(func(c *Components) {
		c.Path = path
	}))
}

// WithQuery returns a copy of the URI with the query replaced.
// The query is taken as is, empty query removes the query.
// Use [URI.WithQueryPairs] to build the query from key/value pairs.
func (u *URI) WithQuery(query string) (*URI, error) {
	return errtrace.Wrap2(u.with(func(c *Components) {
		c.Query = types.SomeIf(query, query != "")
	}))
}

// WithQueryPairs returns a copy of the URI with the query built by [EncodeQuery].
// Empty sequence removes the query.
func (u *URI) WithQueryPairs(pairs iter.Seq2[string, string]) (*URI, error) {
	return errtrace.Wrap2(u.WithQuery(EncodeQuery(pairs)))
}

// WithFragment returns a copy of the URI with the fragment replaced.
// Empty fragment removes the fragment.
func (u *URI) WithFragment(fragment string) (*URI, error) {
	return errtrace.Wrap2(u.with(func(c *Components) {
		c.Fragment = types.SomeIf(fragment, fragment != "")
	}))
}

// RenderTo writes the URI to the provided writer (RFC 3986 Section 5.3).
func (u *URI) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteStrings(u.scheme.Name, ":")
	if u.hasAuthority() {
		cw.WriteStrings("//")
		cw.Call(func(w io.Writer) (int, error) {
			return errtrace.Wrap2(u.renderAuthority(w, opts))
		})
	}
	cw.WriteStrings(grammar.Escape(u.path, shouldEscapePathChar))
	if q, ok := u.query.Get(); ok {
		cw.WriteStrings("?", grammar.Escape(q, shouldEscapeQueryChar))
	}
	if f, ok := u.fragment.Get(); ok {
		cw.WriteStrings("#", grammar.Escape(f, shouldEscapeQueryChar))
	}
	return errtrace.Wrap2(cw.Result())
}

func (u *URI) renderAuthority(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if !u.user.IsZero() {
		cw.Call(func(w io.Writer) (int, error) {
			return errtrace.Wrap2(u.user.RenderTo(w, opts))
		})
		cw.WriteStrings("@")
	}
	if h, ok := u.host.Get(); ok {
		if strings.HasPrefix(h, "[") {
			cw.WriteStrings(h)
		} else {
			cw.WriteStrings(grammar.Escape(h, shouldEscapeHostChar))
		}
	}
	if p, ok := u.port.Get(); ok {
		cw.WriteStrings(":", strconv.Itoa(p))
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URI.
func (u *URI) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URI.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	case 'v':
		if !f.Flag('#') && !f.Flag('+') {
			fmt.Fprint(f, u.String())
			return
		}
		fallthrough
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// Clone returns a copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

// Equal compares this URI with another for equality of the scheme descriptor and all components.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return u.scheme.Equal(other.scheme) &&
		u.user.Equal(other.user) &&
		u.host.Equal(other.host) &&
		u.port.Equal(other.port) &&
		u.path == other.path &&
		u.query.Equal(other.query) &&
		u.fragment.Equal(other.fragment)
}

// IsValid checks whether the URI was constructed by [New] or one of the With* methods.
func (u *URI) IsValid() bool {
	return u != nil && u.scheme.IsValid()
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The text is parsed with [Parse].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(string(text))
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

// UserInfo is a container for user credentials.
type UserInfo struct {
	usrname, passwd string
	hasPasswd       bool
}

// User returns a [UserInfo] containing the provided username and no password.
func User(usrname string) UserInfo {
	return UserInfo{usrname: usrname}
}

// UserPassword returns a [UserInfo] containing the provided username and password.
func UserPassword(usrname, passwd string) UserInfo {
	return UserInfo{usrname: usrname, passwd: passwd, hasPasswd: true}
}

// Username returns the username from the UserInfo.
func (ui UserInfo) Username() string { return ui.usrname }

// Password returns the password, in case it is set, and a bool flag indicating whether it is set.
func (ui UserInfo) Password() (string, bool) { return ui.passwd, ui.hasPasswd }

// RenderTo writes the escaped userinfo to the provided writer.
// With opts.RedactPassword the password is replaced by "xxxxx".
func (ui UserInfo) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteStrings(grammar.Escape(ui.usrname, shouldEscapeUserChar))
	if ui.hasPasswd {
		if opts != nil && opts.RedactPassword {
			cw.WriteStrings(":xxxxx")
		} else {
			cw.WriteStrings(":", grammar.Escape(ui.passwd, shouldEscapePasswdChar))
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the UserInfo.
func (ui UserInfo) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	ui.RenderTo(sb, nil) //nolint:errcheck
	return sb.String()
}

// Equal compares this UserInfo with another for equality.
func (ui UserInfo) Equal(val any) bool {
	var other UserInfo
	switch v := val.(type) {
	case UserInfo:
		other = v
	case *UserInfo:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return ui.usrname == other.usrname && ui.passwd == other.passwd && ui.hasPasswd == other.hasPasswd
}

// IsZero checks whether the UserInfo is empty.
func (ui UserInfo) IsZero() bool { return ui.usrname == "" && ui.passwd == "" && !ui.hasPasswd }
