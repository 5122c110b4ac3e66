// Package uribuilder builds, parses and transforms URIs of a fixed set of schemes
// (data, file, ftp/sftp/ftps, http/https, ws/wss) according to RFC 3986.
//
// # Factory
//
// [Factory] creates immutable [uri.URI] values from strings or [uri.Components]
// using an injected [Parser] and [uri.Registry]:
//
//	f := uribuilder.NewFactory(nil) // default parser and registry
//	u, err := f.Create("wss://foo.bar:9999")
//	if err != nil {
//	    return err
//	}
//	u, err = f.Transform(u, "https") // https://foo.bar:9999
//
// Schemes sharing a variant are compatible: [Factory.Transform] only renames the scheme.
// Otherwise the URI is rendered, parsed again and rebuilt under the new scheme,
// dropping the components the target variant cannot hold.
//
// # Builder
//
// [Builder] is a mutable session over one URI at a time:
//
//	b := uribuilder.NewBuilder(f)
//	if err := b.From("wss://foo.bar:9999"); err != nil {
//	    return err
//	}
//	_ = b.SetScheme("https")
//	_ = b.SetHost("api.foo.bar")
//	_ = b.SetPort(443)
//	_ = b.SetPath("/v1")
//	_ = b.SetQuery(uri.Pairs("api_token", "Qwerty! @#$TYu").All())
//	u, _ := b.URI() // https://api.foo.bar/v1?api_token=Qwerty%21%20%40%23%24TYu
//
// Setters and [Builder.URI] fail with [ErrUninitializedBuilder] until the builder is seeded
// by one of the From* methods. A failed operation leaves the current URI unchanged.
// A Builder is not safe for concurrent use.
package uribuilder
