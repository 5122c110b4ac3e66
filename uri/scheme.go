package uri

import (
	"iter"
	"slices"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uribuilder/internal/errorutil"
	"github.com/ghettovoice/uribuilder/internal/grammar"
	"github.com/ghettovoice/uribuilder/internal/util"
)

// Variant is a closed set of URI scheme families, each with its own validation and rendering rules.
type Variant uint8

const (
	VariantUnknown Variant = iota
	VariantData            // RFC 2397 data URI
	VariantFile            // RFC 8089 file URI
	VariantFtp             // ftp, sftp, ftps
	VariantHttp            // http, https
	VariantWs              // ws, wss
)

func (v Variant) String() string {
	switch v {
	case VariantData:
		return "data"
	case VariantFile:
		return "file"
	case VariantFtp:
		return "ftp"
	case VariantHttp:
		return "http"
	case VariantWs:
		return "ws"
	default:
		return "unknown"
	}
}

// IsValid reports whether v is one of the known variants.
func (v Variant) IsValid() bool { return v >= VariantData && v <= VariantWs }

// Scheme describes a registered URI scheme.
type Scheme struct {
	// Name is the lower-cased scheme name.
	Name string `json:"name"`
	// Variant selects the rules applied to URIs of this scheme.
	Variant Variant `json:"variant"`
	// DefaultPort is the port implied when the URI has none.
	DefaultPort Opt[int] `json:"default_port"`
	// KeepDefaultPort keeps an explicit port equal to DefaultPort,
	// otherwise such port is dropped at construction.
	KeepDefaultPort bool `json:"keep_default_port,omitempty"`
}

// IsValid checks whether the scheme descriptor is usable.
func (s Scheme) IsValid() bool {
	if !grammar.IsScheme(s.Name) || s.Name != util.LCase(s.Name) || !s.Variant.IsValid() {
		return false
	}
	if p, ok := s.DefaultPort.Get(); ok && !isPortInRange(p) {
		return false
	}
	return true
}

// Equal reports whether both descriptors are equal.
func (s Scheme) Equal(other Scheme) bool {
	return s.Name == other.Name &&
		s.Variant == other.Variant &&
		s.DefaultPort.Equal(other.DefaultPort) &&
		s.KeepDefaultPort == other.KeepDefaultPort
}

func (s Scheme) String() string { return s.Name }

// DefaultSchemes returns descriptors of all schemes supported out of the box.
func DefaultSchemes() []Scheme {
	return []Scheme{
		{Name: "data", Variant: VariantData},
		{Name: "file", Variant: VariantFile},
		{Name: "ftp", Variant: VariantFtp, DefaultPort: Some(21)},
		{Name: "sftp", Variant: VariantFtp, DefaultPort: Some(22)},
		{Name: "ftps", Variant: VariantFtp, DefaultPort: Some(990)},
		{Name: "http", Variant: VariantHttp, DefaultPort: Some(80)},
		{Name: "https", Variant: VariantHttp, DefaultPort: Some(443)},
		{Name: "ws", Variant: VariantWs, DefaultPort: Some(80)},
		{Name: "wss", Variant: VariantWs, DefaultPort: Some(443)},
	}
}

// Registry maps normalized scheme names to their descriptors.
// It is read-only after creation and safe for concurrent use.
type Registry struct {
	schemes map[string]Scheme
	names   []string
}

// NewRegistry creates a registry from the given descriptors.
// Names are trimmed and lower-cased, invalid descriptors and duplicates result in [ErrInvalidArgument].
func NewRegistry(schemes ...Scheme) (*Registry, error) {
	r := &Registry{
		schemes: make(map[string]Scheme, len(schemes)),
		names:   make([]string, 0, len(schemes)),
	}

	var errs []error
	for _, s := range schemes {
		s.Name = util.LCaseTrim(s.Name)
		if !s.IsValid() {
			errs = append(errs, errorutil.Errorf("invalid scheme descriptor %q (variant %s, default port %v)", s.Name, s.Variant, s.DefaultPort))
			continue
		}
		if _, ok := r.schemes[s.Name]; ok {
			errs = append(errs, errorutil.Errorf("duplicate scheme %q", s.Name))
			continue
		}
		r.schemes[s.Name] = s
		r.names = append(r.names, s.Name)
	}
	if len(errs) > 0 {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(errorutil.JoinPrefix("registry:", errs...)))
	}
	slices.Sort(r.names)
	return r, nil
}

// DefaultRegistry returns the process-wide registry of [DefaultSchemes].
var DefaultRegistry = sync.OnceValue(func() *Registry {
	return util.Must2(NewRegistry(DefaultSchemes()...))
})

// Resolve returns the descriptor of the scheme.
// The name is trimmed and lower-cased before lookup.
// Unknown scheme results in [*UnsupportedSchemeError].
func (r *Registry) Resolve(scheme string) (Scheme, error) {
	name := util.LCaseTrim(scheme)
	if r != nil {
		if s, ok := r.schemes[name]; ok {
			return s, nil
		}
	}
	return Scheme{}, errtrace.Wrap(newUnsupportedSchemeErr(name))
}

// IsSupported reports whether the scheme is registered.
func (r *Registry) IsSupported(scheme string) bool {
	_, err := r.Resolve(scheme)
	return err == nil
}

// Supported returns the sorted list of registered scheme names.
func (r *Registry) Supported() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.names)
}

// Schemes returns an iterator over the registered descriptors sorted by name.
func (r *Registry) Schemes() iter.Seq[Scheme] {
	return func(yield func(Scheme) bool) {
		if r == nil {
			return
		}
		for _, n := range r.names {
			if !yield(r.schemes[n]) {
				return
			}
		}
	}
}

// Compatible reports whether both schemes resolve to the same variant,
// so that a URI can change its scheme from a to b without re-deriving components.
func (r *Registry) Compatible(a, b string) (bool, error) {
	sa, err := r.Resolve(a)
	if err != nil {
		return false, errtrace.Wrap(err)
	}
	sb, err := r.Resolve(b)
	if err != nil {
		return false, errtrace.Wrap(err)
	}
	return sa.Variant == sb.Variant, nil
}

func isPortInRange(p int) bool { return p >= 0 && p <= 65535 }
