// Package rfc3986 holds the URI-reference grammar of RFC 3986 Appendix A
// compiled to abnf operators from rules.abnf.
package rfc3986

//go:generate go tool abnf gen -y
