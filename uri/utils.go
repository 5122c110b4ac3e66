package uri

import "github.com/ghettovoice/uribuilder/internal/grammar"

func shouldEscapeUserChar(c byte) bool { return !grammar.IsUserChar(c) }

func shouldEscapePasswdChar(c byte) bool { return !grammar.IsUserinfoChar(c) }

func shouldEscapeHostChar(c byte) bool { return !grammar.IsRegNameChar(c) }

func shouldEscapePathChar(c byte) bool { return !grammar.IsPathChar(c) }

// shouldEscapeQueryChar is used for both query and fragment.
func shouldEscapeQueryChar(c byte) bool { return !grammar.IsQueryChar(c) }

// shouldEscapeQueryPairChar leaves only unreserved characters unescaped in query keys and values.
func shouldEscapeQueryPairChar(c byte) bool { return !grammar.IsUnreservedChar(c) }

// lowerHost lower-cases ASCII letters of the host keeping hex digits of percent-encoded triplets upper-cased.
func lowerHost(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			i += 2
			continue
		}
		if 'A' <= c && c <= 'Z' {
			if b == nil {
				b = []byte(s)
			}
			b[i] = c + ('a' - 'A')
		}
	}
	if b == nil {
		return s
	}
	return string(b)
}
