package uri

import (
	"maps"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uribuilder/internal/errorutil"
	"github.com/ghettovoice/uribuilder/internal/types"
)

// Opt is an optional component value, the zero value is "none".
type Opt[T any] = types.Opt[T]

// Some returns an [Opt] holding v.
func Some[T any](v T) Opt[T] { return types.Some(v) }

// None returns an empty [Opt].
func None[T any]() Opt[T] { return types.None[T]() }

// Components is the structured form of a URI: eight slots, each always present.
// String slots hold decoded values: a percent-encoded octet is kept in encoded form
// only when decoding it would change the meaning of the component.
type Components struct {
	Scheme   Opt[string] `json:"scheme"`
	User     Opt[string] `json:"user"`
	Pass     Opt[string] `json:"pass"`
	Host     Opt[string] `json:"host"`
	Port     Opt[int]    `json:"port"`
	Path     string      `json:"path"`
	Query    Opt[string] `json:"query"`
	Fragment Opt[string] `json:"fragment"`
}

// Component map keys.
const (
	KeyScheme   = "scheme"
	KeyUser     = "user"
	KeyPass     = "pass"
	KeyHost     = "host"
	KeyPort     = "port"
	KeyPath     = "path"
	KeyQuery    = "query"
	KeyFragment = "fragment"
)

// Keys returns the component map keys in the canonical order.
func Keys() []string {
	return []string{KeyScheme, KeyUser, KeyPass, KeyHost, KeyPort, KeyPath, KeyQuery, KeyFragment}
}

// Map returns the components as a map with all eight keys set.
// Absent values are represented by nil, the path is always a string.
func (c Components) Map() map[string]any {
	keys := Keys()
	m := make(map[string]any, len(keys))
	for _, k := range keys {
		m[k] = c.get(k)
	}
	return m
}

func (c Components) get(k string) any {
	switch k {
	case KeyScheme:
		return optToAny(c.Scheme)
	case KeyUser:
		return optToAny(c.User)
	case KeyPass:
		return optToAny(c.Pass)
	case KeyHost:
		return optToAny(c.Host)
	case KeyPort:
		return optToAny(c.Port)
	case KeyPath:
		return c.Path
	case KeyQuery:
		return optToAny(c.Query)
	case KeyFragment:
		return optToAny(c.Fragment)
	}
	return nil
}

func optToAny[T any](o Opt[T]) any {
	if v, ok := o.Get(); ok {
		return v
	}
	return nil
}

// ComponentsFromMap builds [Components] from the map shape produced by [Components.Map].
// Missing keys and nil values read as "none", the path defaults to an empty string.
// Unknown keys or values of unexpected types result in [ErrInvalidArgument].
func ComponentsFromMap(m map[string]any) (Components, error) {
	var (
		c    Components
		errs []error
	)
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v := m[k]
		var err error
		switch k {
		case KeyScheme:
			c.Scheme, err = anyToOptStr(k, v)
		case KeyUser:
			c.User, err = anyToOptStr(k, v)
		case KeyPass:
			c.Pass, err = anyToOptStr(k, v)
		case KeyHost:
			c.Host, err = anyToOptStr(k, v)
		case KeyPort:
			c.Port, err = anyToOptInt(k, v)
		case KeyPath:
			var p Opt[string]
			p, err = anyToOptStr(k, v)
			c.Path = p.Or("")
		case KeyQuery:
			c.Query, err = anyToOptStr(k, v)
		case KeyFragment:
			c.Fragment, err = anyToOptStr(k, v)
		default:
			err = errorutil.Errorf("unknown key %q", k)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return Components{}, errtrace.Wrap(errorutil.NewInvalidArgumentError(errorutil.JoinPrefix("components map:", errs...)))
	}
	return c, nil
}

func anyToOptStr(k string, v any) (Opt[string], error) {
	switch v := v.(type) {
	case nil:
		return None[string](), nil
	case string:
		return Some(v), nil
	case Opt[string]:
		return v, nil
	default:
		return None[string](), errtrace.Wrap(errorutil.Errorf("key %q: unexpected value type %T", k, v))
	}
}

func anyToOptInt(k string, v any) (Opt[int], error) {
	switch v := v.(type) {
	case nil:
		return None[int](), nil
	case int:
		return Some(v), nil
	case int32:
		return Some(int(v)), nil
	case int64:
		return Some(int(v)), nil
	case uint16:
		return Some(int(v)), nil
	case float64:
		// JSON numbers
		if v != float64(int(v)) {
			return None[int](), errtrace.Wrap(errorutil.Errorf("key %q: non-integer port %v", k, v))
		}
		return Some(int(v)), nil
	case Opt[int]:
		return v, nil
	default:
		return None[int](), errtrace.Wrap(errorutil.Errorf("key %q: unexpected value type %T", k, v))
	}
}

// HasAuthority reports whether any of the authority components is set.
func (c Components) HasAuthority() bool {
	return c.User.IsSome() || c.Pass.IsSome() || c.Host.IsSome() || c.Port.IsSome()
}
