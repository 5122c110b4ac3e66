package grammar

import (
	"bytes"

	"github.com/ghettovoice/uribuilder/internal/constraints"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
// Malformed sequences are copied as is.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 || bytes.IndexByte([]byte(s), '%') < 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isTriplet(s, i) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape escapes s by replacing each char matched by shouldEscape callback to the hex form "% HEXDIG HEXDIG".
// Valid percent-encoded triplets are kept untouched, so an already escaped input is never double-encoded.
// Nil shouldEscape escapes everything except unreserved characters.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsUnreservedChar(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case isTriplet(s, i):
			b.WriteByte('%')
			b.WriteByte(upper(s[i+1]))
			b.WriteByte(upper(s[i+2]))
			i += 2
		case shouldEscape(s[i]):
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Normalize brings s to the canonical decoded form of a URI component.
//
// A triplet is decoded when the octet is unreserved or when shouldEscape reports that
// rendering escapes it again, so decoding loses nothing. Other triplets stay encoded with
// upper-case hex digits, and a "%" that does not start a triplet becomes "%25".
// Hence Normalize(Escape(Normalize(s))) == Normalize(s).
func Normalize[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 || bytes.IndexByte([]byte(s), '%') < 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case isTriplet(s, i):
			c := unhex(s[i+1])<<4 | unhex(s[i+2])
			if c != '%' && (IsUnreservedChar(c) || shouldEscape(c)) {
				b.WriteByte(c)
			} else {
				b.WriteByte('%')
				b.WriteByte(upper(s[i+1]))
				b.WriteByte(upper(s[i+2]))
			}
			i += 2
		case s[i] == '%':
			b.WriteString("%25")
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

func isTriplet[T constraints.Byteseq](s T, i int) bool {
	return s[i] == '%' && i+2 < len(s) && IsHexChar(s[i+1]) && IsHexChar(s[i+2])
}

const upperhex = "0123456789ABCDEF"

func upper(c byte) byte {
	if 'a' <= c && c <= 'f' {
		return c - 'a' + 'A'
	}
	return c
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
