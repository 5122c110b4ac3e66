package uri

import (
	"encoding/base64"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uribuilder/internal/errorutil"
	"github.com/ghettovoice/uribuilder/internal/grammar"
	"github.com/ghettovoice/uribuilder/internal/util"
)

// DataContent is the decoded content of a data URI (RFC 2397).
type DataContent struct {
	// MediaType is the lower-cased "type/subtype", "text/plain" when omitted.
	MediaType string
	// Params holds the media type parameters in order of appearance, "charset=US-ASCII" when the media type is omitted.
	Params []QueryPair
	// Base64 reports whether the payload was base64-encoded.
	Base64 bool
	// Data is the decoded payload.
	Data []byte
}

// DataContent decodes the content of a data URI.
// It returns [ErrInvalidArgument] for URIs of other variants or if the payload cannot be decoded.
func (u *URI) DataContent() (DataContent, error) {
	if u.Variant() != VariantData {
		return DataContent{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("%s URI has no data content", u.Scheme()))
	}

	meta, payload, _ := strings.Cut(u.path, ",")
	var dc DataContent
	params := strings.Split(meta, ";")
	if n := len(params); n > 1 && util.EqFold(params[n-1], "base64") {
		dc.Base64 = true
		params = params[:n-1]
	}
	if mt := grammar.Unescape(params[0]); mt != "" {
		dc.MediaType = util.LCase(mt)
	}
	for _, p := range params[1:] {
		k, v, _ := strings.Cut(p, "=")
		dc.Params = append(dc.Params, QueryPair{Key: util.LCase(grammar.Unescape(k)), Value: grammar.Unescape(v)})
	}
	if dc.MediaType == "" {
		dc.MediaType = "text/plain"
		if len(dc.Params) == 0 {
			dc.Params = []QueryPair{{Key: "charset", Value: "US-ASCII"}}
		}
	}

	if !dc.Base64 {
		dc.Data = []byte(grammar.Unescape(payload))
		return dc, nil
	}
	data, err := base64.StdEncoding.DecodeString(grammar.Unescape(payload))
	if err != nil {
		return DataContent{}, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	dc.Data = data
	return dc, nil
}

// FtpTypecode returns the RFC 1738 transfer type of an ftp family URI
// ("a", "i" or "d"), in case it is set, and a bool flag indicating whether it is set.
func (u *URI) FtpTypecode() (string, bool) {
	if u.Variant() != VariantFtp {
		return "", false
	}
	_, tc, _ := splitFtpTypecode(u.path)
	return tc.Get()
}

// splitFtpTypecode cuts ";type=X" off the last path segment.
func splitFtpTypecode(p string) (string, Opt[string], error) {
	i := strings.LastIndex(p, ";type=")
	if i < 0 || strings.IndexByte(p[i:], '/') >= 0 {
		return p, None[string](), nil
	}
	switch tc := util.LCase(p[i+6:]); tc {
	case "a", "i", "d":
		return p[:i], Some(tc), nil
	default:
		return p, None[string](), errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid ftp typecode %q", p[i+6:]))
	}
}
