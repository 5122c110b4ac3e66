// Package uri provides parsing, validation and rendering of Uniform Resource Identifiers
// according to RFC 3986 for a fixed set of scheme families.
//
// # Overview
//
// A [URI] is an immutable value of one of the registered schemes. The scheme is described by
// a [Scheme] descriptor which selects one of the closed set of variants:
//
//   - [VariantData]: data URIs (RFC 2397), no authority, the path holds the media type and payload;
//   - [VariantFile]: file URIs (RFC 8089), optional host, "localhost" is the same as no host;
//   - [VariantFtp]: ftp, sftp and ftps URIs, host required;
//   - [VariantHttp]: http and https URIs, host required;
//   - [VariantWs]: ws and wss URIs, host required.
//
// Two schemes are compatible when they share a variant, see [Registry.Compatible].
//
// # Parsing
//
// [ParseComponents] splits a string into [Components] without checking scheme rules.
// [Parse] additionally resolves the scheme in the [DefaultRegistry] and builds a [URI]:
//
//	u, err := uri.Parse("https://User@Example.COM:443/a%20b?x=1#top")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(u) // https://User@example.com/a%20b?x=1#top
//
// # Components
//
// Component strings are kept in decoded form. A percent-encoded octet stays encoded only
// when decoding it would change the meaning of the component, for example "%2F" in a path
// segment or "%26" in a query. Rendering encodes every character not allowed in the component,
// so parsing a rendered URI yields the same components.
//
// # Default ports
//
// A port equal to the scheme default port is dropped at construction and is not rendered,
// unless the descriptor sets [Scheme.KeepDefaultPort]. [URI.EffectivePort] reports the
// explicit or the default port.
//
// # Query
//
// [EncodeQuery] builds a query from ordered key/value pairs ([Pairs], [QueryPairs],
// [OrderedQuery]) leaving only unreserved characters unescaped, [DecodeQuery] is the inverse.
//
// # Thread Safety
//
// [URI] and [Registry] values are immutable and safe for concurrent use.
package uri
