package uri

import (
	"errors"
	"fmt"

	"github.com/ghettovoice/uribuilder/internal/errorutil"
	"github.com/ghettovoice/uribuilder/internal/grammar"
)

// Error is a string error type used for the package sentinels.
type Error = errorutil.Error

const (
	// ErrMalformedInput is returned when the input violates the URI grammar.
	ErrMalformedInput = grammar.ErrMalformedInput
	// ErrInvalidArgument is returned when an argument is not acceptable for the operation,
	// for example a component the URI variant does not allow.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrInvalidPort is returned when a port is outside the range [0, 65535].
	ErrInvalidPort Error = "invalid port"
	// ErrUnsupportedScheme is returned when the scheme is not registered.
	ErrUnsupportedScheme Error = "unsupported scheme"
)

// UnsupportedSchemeError reports the scheme name that is not registered.
// It matches [ErrUnsupportedScheme] with [errors.Is].
type UnsupportedSchemeError struct {
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %q", ErrUnsupportedScheme, e.Scheme)
}

func (e *UnsupportedSchemeError) Unwrap() error { return ErrUnsupportedScheme }

// IsUnsupportedScheme reports whether err is [ErrUnsupportedScheme] and returns the scheme name if available.
func IsUnsupportedScheme(err error) (string, bool) {
	var e *UnsupportedSchemeError
	if errors.As(err, &e) {
		return e.Scheme, true
	}
	return "", errors.Is(err, ErrUnsupportedScheme)
}

func newUnsupportedSchemeErr(scheme string) error {
	return &UnsupportedSchemeError{Scheme: scheme} //errtrace:skip
}

func newInvalidPortErr(port int) error {
	return errorutil.NewWrapperError(ErrInvalidPort, "port %d is out of range [0, 65535]", port) //errtrace:skip
}

func newMalformedErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}
