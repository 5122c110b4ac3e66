package uribuilder

import (
	"github.com/ghettovoice/uribuilder/internal/errorutil"
	"github.com/ghettovoice/uribuilder/uri"
)

// Error is a string error type used for the package sentinels.
type Error = errorutil.Error

const (
	// ErrUninitializedBuilder is returned by [Builder] methods called before the builder is seeded.
	ErrUninitializedBuilder Error = "uninitialized builder"

	ErrMalformedInput    = uri.ErrMalformedInput
	ErrInvalidArgument   = uri.ErrInvalidArgument
	ErrInvalidPort       = uri.ErrInvalidPort
	ErrUnsupportedScheme = uri.ErrUnsupportedScheme
)

// UnsupportedSchemeError reports the scheme name that is not registered.
type UnsupportedSchemeError = uri.UnsupportedSchemeError

func newUninitializedBuilderErr(op string) error {
	return errorutil.NewWrapperError(ErrUninitializedBuilder, "%s: call From, FromURI or FromComponents first", op) //errtrace:skip
}
