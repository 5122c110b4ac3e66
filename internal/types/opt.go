package types

import (
	"encoding/json"
	"fmt"

	"braces.dev/errtrace"
	"github.com/google/go-cmp/cmp"
)

// Opt is an optional value. The zero value is "none".
type Opt[T any] struct {
	val T
	ok  bool
}

// Some returns an [Opt] holding v.
func Some[T any](v T) Opt[T] { return Opt[T]{val: v, ok: true} }

// None returns an empty [Opt].
func None[T any]() Opt[T] { return Opt[T]{} }

// SomeIf returns Some(v) when ok is true and None otherwise.
func SomeIf[T any](v T, ok bool) Opt[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Get returns the value, in case it is set, and a bool flag indicating whether it is set.
func (o Opt[T]) Get() (T, bool) { return o.val, o.ok }

// IsSome reports whether the value is set.
func (o Opt[T]) IsSome() bool { return o.ok }

// Or returns the value or def if it is not set.
func (o Opt[T]) Or(def T) T {
	if !o.ok {
		return def
	}
	return o.val
}

// Equal reports whether both options are unset or hold equal values.
func (o Opt[T]) Equal(other Opt[T]) bool {
	if o.ok != other.ok {
		return false
	}
	return !o.ok || cmp.Equal(o.val, other.val)
}

func (o Opt[T]) String() string {
	if !o.ok {
		return "<none>"
	}
	return fmt.Sprint(o.val)
}

// Format implements fmt.Formatter and prints the held value or "<none>".
func (o Opt[T]) Format(f fmt.State, verb rune) {
	if !o.ok {
		fmt.Fprint(f, "<none>")
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), o.val)
}

// MarshalJSON implements [json.Marshaler], "none" is encoded as null.
func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return errtrace.Wrap2(json.Marshal(o.val))
}

// UnmarshalJSON implements [json.Unmarshaler], null is decoded as "none".
func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return errtrace.Wrap(err)
	}
	*o = Some(v)
	return nil
}
