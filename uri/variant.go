package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uribuilder/internal/errorutil"
)

// RequiresHost reports whether URIs of the variant must have a host.
func (v Variant) RequiresHost() bool {
	switch v {
	case VariantFtp, VariantHttp, VariantWs:
		return true
	default:
		return false
	}
}

// AllowsUserInfo reports whether URIs of the variant may have a userinfo.
func (v Variant) AllowsUserInfo() bool {
	switch v {
	case VariantFtp, VariantHttp, VariantWs:
		return true
	default:
		return false
	}
}

// AllowsPort reports whether URIs of the variant may have a port.
func (v Variant) AllowsPort() bool {
	switch v {
	case VariantFtp, VariantHttp, VariantWs:
		return true
	default:
		return false
	}
}

// AllowsHost reports whether URIs of the variant may have a host.
func (v Variant) AllowsHost() bool {
	return v != VariantData && v != VariantUnknown
}

// Strip returns c without the components URIs of the variant cannot hold.
func (v Variant) Strip(c Components) Components {
	if !v.AllowsUserInfo() {
		c.User, c.Pass = None[string](), None[string]()
	}
	if !v.AllowsHost() {
		c.Host = None[string]()
	}
	if !v.AllowsPort() {
		c.Port = None[int]()
	}
	return c
}

// apply checks u against the variant rules and brings it to the variant canonical form.
func (v Variant) apply(u *URI) error {
	if !v.AllowsHost() && u.host.IsSome() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("%s URI cannot have a host", v))
	}
	if !v.AllowsUserInfo() && !u.user.IsZero() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("%s URI cannot have a userinfo", v))
	}
	if !v.AllowsPort() && u.port.IsSome() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("%s URI cannot have a port", v))
	}
	if v.RequiresHost() && !u.host.IsSome() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("%s URI requires a host", u.scheme.Name))
	}

	switch v {
	case VariantData:
		// RFC 2397: dataurl := "data:" [ mediatype ] [ ";base64" ] "," data
		if !strings.Contains(u.path, ",") {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("data URI path %q has no ','", u.path))
		}
	case VariantFile:
		// RFC 8089 Section 2: "localhost" is the same as an empty host
		if h, ok := u.host.Get(); ok && h == "localhost" {
			u.host = None[string]()
		}
	case VariantFtp:
		if _, _, err := splitFtpTypecode(u.path); err != nil {
			return errtrace.Wrap(err)
		}
	case VariantHttp, VariantWs:
	default:
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown URI variant %d", uint8(v)))
	}
	return nil
}
