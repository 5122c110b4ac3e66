// Package grammar implements the RFC 3986 character classes and
// the syntax checks used by the URI parser and value objects.
package grammar

import (
	"strings"

	"github.com/miekg/dns"

	"github.com/ghettovoice/uribuilder/internal/grammar/rfc3986"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const ErrMalformedInput Error = "malformed input"

const (
	clsAlpha uint16 = 1 << iota
	clsDigit
	clsUnreserved // "-" / "." / "_" / "~"
	clsSubDelim   // "!" / "$" / "&" / "'" / "(" / ")" / "*" / "+" / "," / ";" / "="
	clsSchemeSym  // "+" / "-" / "."
	clsHexAlpha   // "a"-"f" / "A"-"F"
)

var charCls [256]uint16

func init() {
	for c := 'a'; c <= 'z'; c++ {
		charCls[c] |= clsAlpha
		charCls[c-'a'+'A'] |= clsAlpha
	}
	for c := '0'; c <= '9'; c++ {
		charCls[c] |= clsDigit
	}
	for c := 'a'; c <= 'f'; c++ {
		charCls[c] |= clsHexAlpha
		charCls[c-'a'+'A'] |= clsHexAlpha
	}
	for _, c := range []byte("-._~") {
		charCls[c] |= clsUnreserved
	}
	for _, c := range []byte("!$&'()*+,;=") {
		charCls[c] |= clsSubDelim
	}
	for _, c := range []byte("+-.") {
		charCls[c] |= clsSchemeSym
	}
}

func IsAlphaChar(c byte) bool { return charCls[c]&clsAlpha != 0 }

func IsHexChar(c byte) bool { return charCls[c]&(clsDigit|clsHexAlpha) != 0 }

// IsUnreservedChar checks unreserved rule: ALPHA / DIGIT / "-" / "." / "_" / "~".
func IsUnreservedChar(c byte) bool { return charCls[c]&(clsAlpha|clsDigit|clsUnreserved) != 0 }

// IsSubDelimChar checks sub-delims rule.
func IsSubDelimChar(c byte) bool { return charCls[c]&clsSubDelim != 0 }

// IsRegNameChar checks the unencoded part of reg-name rule.
func IsRegNameChar(c byte) bool { return IsUnreservedChar(c) || IsSubDelimChar(c) }

// IsUserinfoChar checks the unencoded part of userinfo rule.
func IsUserinfoChar(c byte) bool { return IsRegNameChar(c) || c == ':' }

// IsUserChar is [IsUserinfoChar] without ":", which separates user from password.
func IsUserChar(c byte) bool { return IsRegNameChar(c) }

// IsPChar checks the unencoded part of pchar rule.
func IsPChar(c byte) bool { return IsRegNameChar(c) || c == ':' || c == '@' }

// IsPathChar checks the unencoded part of path segments including "/".
func IsPathChar(c byte) bool { return IsPChar(c) || c == '/' }

// IsQueryChar checks the unencoded part of query and fragment rules.
func IsQueryChar(c byte) bool { return IsPChar(c) || c == '/' || c == '?' }

// IsScheme checks scheme rule: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func IsScheme[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 || !IsAlphaChar(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if charCls[s[i]]&(clsAlpha|clsDigit|clsSchemeSym) == 0 {
			return false
		}
	}
	return true
}

// IsComponent reports whether every byte of s is either accepted by isChar
// or starts a valid percent-encoded triplet.
func IsComponent[T ~string | ~[]byte](s T, isChar func(c byte) bool) bool {
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%':
			if i+2 >= len(s) || !IsHexChar(s[i+1]) || !IsHexChar(s[i+2]) {
				return false
			}
			i += 2
		case !isChar(s[i]):
			return false
		}
	}
	return true
}

// IsIPLiteral reports whether s is an IPv6address or IPvFuture,
// optionally enclosed in square brackets.
func IsIPLiteral(s string) bool {
	if !strings.HasPrefix(s, "[") {
		s = "[" + s + "]"
	}
	return matches(rfc3986.Operators().IPLiteral, s)
}

// IsIPv6 checks IPv6address rule.
func IsIPv6(s string) bool { return matches(rfc3986.Operators().IPv6address, s) }

// IsIPv4 checks IPv4address rule.
func IsIPv4(s string) bool { return matches(rfc3986.Operators().IPv4address, s) }

// IsRegName checks reg-name rule and the DNS length limits of its labels.
func IsRegName(s string) bool {
	if !matches(rfc3986.Operators().RegName, s) {
		return false
	}
	_, ok := dns.IsDomainName(s)
	return ok
}

// IsHost checks host rule: IP-literal / IPv4address / reg-name.
// IPv6 addresses are accepted with or without enclosing brackets.
func IsHost(s string) bool {
	if strings.ContainsRune(s, ':') || strings.HasPrefix(s, "[") {
		return IsIPLiteral(s)
	}
	return IsIPv4(s) || IsRegName(s)
}
