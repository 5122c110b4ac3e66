package uri

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/uribuilder/internal/grammar"
)

// ParserFunc is a function that parses a URI string into [Components].
type ParserFunc func(s string) (Components, error)

// Parse calls f(s).
func (f ParserFunc) Parse(s string) (Components, error) { return errtrace.Wrap2(f(s)) }

// DefaultParser is the RFC 3986 parser implemented by [ParseComponents].
var DefaultParser = ParserFunc(ParseComponents)

// ParseComponents splits a URI or relative reference into its eight components (RFC 3986 Section 3).
//
// Strings are returned in the decoded form described on [Components].
// Scheme case is kept as is, IP literals are returned enclosed in square brackets,
// an empty host is reported as "none".
// It fails with [ErrMalformedInput] when s does not match the URI-reference rule
// or the port does not fit into an int.
func ParseComponents(s string) (Components, error) {
	if s == "" {
		return Components{}, nil
	}

	n, err := grammar.ParseURIReference(s)
	if err != nil {
		return Components{}, errtrace.Wrap(err)
	}

	var c Components
	if sn, ok := n.GetNode("scheme"); ok {
		c.Scheme = Some(sn.String())
	}
	if an, ok := n.GetNode("authority"); ok {
		if err := parseAuthority(an, &c); err != nil {
			return Components{}, errtrace.Wrap(err)
		}
	}
	for _, k := range pathKeys {
		if pn, ok := n.GetNode(k); ok {
			c.Path = grammar.Normalize(pn.String(), shouldEscapePathChar)
			break
		}
	}
	if qn, ok := n.GetNode("query"); ok {
		c.Query = Some(grammar.Normalize(qn.String(), shouldEscapeQueryChar))
	}
	if fn, ok := n.GetNode("fragment"); ok {
		c.Fragment = Some(grammar.Normalize(fn.String(), shouldEscapeQueryChar))
	}
	return c, nil
}

var pathKeys = []string{"path-abempty", "path-absolute", "path-noscheme", "path-rootless", "path-empty"}

func parseAuthority(n *abnf.Node, c *Components) error {
	if un, ok := n.GetNode("userinfo"); ok {
		user, pass, hasPass := strings.Cut(un.String(), ":")
		c.User = Some(grammar.Normalize(user, shouldEscapeUserChar))
		if hasPass {
			c.Pass = Some(grammar.Normalize(pass, shouldEscapePasswdChar))
		}
	}

	if hn, ok := n.GetNode("host"); ok {
		switch host := hn.String(); {
		case host == "":
		case strings.HasPrefix(host, "["):
			c.Host = Some(host)
		default:
			c.Host = Some(grammar.Normalize(host, shouldEscapeHostChar))
		}
	}

	// "host:" with an empty port is the same as no port (RFC 3986 Section 3.2.3)
	if pn, ok := n.GetNode("port"); ok && pn.Len() > 0 {
		port, err := strconv.ParseUint(pn.String(), 10, 31)
		if err != nil {
			return errtrace.Wrap(newMalformedErr("port %q", pn.String()))
		}
		c.Port = Some(int(port))
	}
	return nil
}
