package uribuilder_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/uribuilder"
	"github.com/ghettovoice/uribuilder/uri"
)

func seededBuilder(t *testing.T, s string) *uribuilder.Builder {
	t.Helper()
	b := uribuilder.NewBuilder(nil)
	if err := b.From(s); err != nil {
		t.Fatalf("b.From(%q) error = %v, want nil", s, err)
	}
	return b
}

func mustURI(t *testing.T, b *uribuilder.Builder) *uri.URI {
	t.Helper()
	u, err := b.URI()
	if err != nil {
		t.Fatalf("b.URI() error = %v, want nil", err)
	}
	return u
}

func TestBuilder_Scenario(t *testing.T) {
	t.Parallel()

	b := seededBuilder(t, "wss://foo.bar:9999")

	steps := []struct {
		name string
		fn   func() error
	}{
		{"SetScheme", func() error { return b.SetScheme("https") }},
		{"SetHost", func() error { return b.SetHost("api.foo.bar") }},
		{"SetFragment", func() error { return b.SetFragment("foobar") }},
		{"SetPort", func() error { return b.SetPort(443) }},
		{"SetPath", func() error { return b.SetPath("/v1") }},
		{"SetQuery", func() error { return b.SetQuery(uri.Pairs("api_token", "Qwerty! @#$TYu").All()) }},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			t.Fatalf("b.%s(...) error = %v, want nil", s.name, err)
		}
	}

	want := "https://api.foo.bar/v1?api_token=Qwerty%21%20%40%23%24TYu#foobar"
	if got := mustURI(t, b).String(); got != want {
		t.Errorf("b.URI() = %q, want %q", got, want)
	}
}

func TestBuilder_Unseeded(t *testing.T) {
	t.Parallel()

	b := uribuilder.NewBuilder(uribuilder.NewFactory(nil))
	if got := b.State(); got != uribuilder.BuilderStateEmpty {
		t.Fatalf("b.State() = %q, want %q", got, uribuilder.BuilderStateEmpty)
	}

	ops := map[string]func() error{
		"SetScheme":   func() error { return b.SetScheme("http") },
		"SetUserInfo": func() error { return b.SetUserInfo("u", "p") },
		"SetHost":     func() error { return b.SetHost("h") },
		"SetPort":     func() error { return b.SetPort(80) },
		"UnsetPort":   b.UnsetPort,
		"SetPath":     func() error { return b.SetPath("/") },
		"SetQuery":    func() error { return b.SetQuery(uri.Pairs("a", "b").All()) },
		"SetFragment": func() error { return b.SetFragment("f") },
		"URI": func() error {
			_, err := b.URI()
			return err //nolint:wrapcheck
		},
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, uribuilder.ErrUninitializedBuilder) {
			t.Errorf("b.%s() error = %v, want %v", name, err, uribuilder.ErrUninitializedBuilder)
		}
	}
	if got := b.State(); got != uribuilder.BuilderStateEmpty {
		t.Errorf("b.State() = %q, want %q", got, uribuilder.BuilderStateEmpty)
	}

	if err := b.From("gopher://x"); !errors.Is(err, uribuilder.ErrUnsupportedScheme) {
		t.Errorf("b.From(gopher://x) error = %v, want %v", err, uribuilder.ErrUnsupportedScheme)
	}
	if got := b.State(); got != uribuilder.BuilderStateEmpty {
		t.Errorf("b.State() after failed seed = %q, want %q", got, uribuilder.BuilderStateEmpty)
	}
	if got := b.String(); got != "" {
		t.Errorf("b.String() = %q, want \"\"", got)
	}
}

func TestBuilder_SetPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		port    int
		want    string
		wantErr error
	}{
		{-1, "http://h:8080", uribuilder.ErrInvalidPort},
		{65536, "http://h:8080", uribuilder.ErrInvalidPort},
		{0, "http://h:0", nil},
		{65535, "http://h:65535", nil},
		{80, "http://h", nil},
	}

	for _, c := range cases {
		t.Run(strconv.Itoa(c.port), func(t *testing.T) {
			t.Parallel()

			b := seededBuilder(t, "http://h:8080")
			err := b.SetPort(c.port)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("b.SetPort(%d) error = %v, want %v\ndiff (-got +want):\n%v", c.port, err, c.wantErr, diff)
			}
			if got := mustURI(t, b).String(); got != c.want {
				t.Errorf("b.URI() after b.SetPort(%d) = %q, want %q", c.port, got, c.want)
			}
		})
	}
}

func TestBuilder_SetScheme_Normalization(t *testing.T) {
	t.Parallel()

	b1 := seededBuilder(t, "http://u:p@h:8080/x?q=1#f")
	b2 := seededBuilder(t, "http://u:p@h:8080/x?q=1#f")

	if err := b1.SetScheme("HTTPS"); err != nil {
		t.Fatalf("b1.SetScheme(HTTPS) error = %v, want nil", err)
	}
	if err := b2.SetScheme("https"); err != nil {
		t.Fatalf("b2.SetScheme(https) error = %v, want nil", err)
	}

	u1, u2 := mustURI(t, b1), mustURI(t, b2)
	if !u1.Equal(u2) {
		t.Errorf("b1.URI() = %v, b2.URI() = %v, want equal", u1, u2)
	}
	if got, want := u1.String(), "https://u:p@h:8080/x?q=1#f"; got != want {
		t.Errorf("b1.URI() = %q, want %q", got, want)
	}
}

func TestBuilder_FromURI(t *testing.T) {
	t.Parallel()

	src, err := uri.Parse("ftp://h/pub")
	if err != nil {
		t.Fatalf("uri.Parse(ftp://h/pub) error = %v, want nil", err)
	}

	b := uribuilder.NewBuilder(nil)
	if err := b.FromURI(src); err != nil {
		t.Fatalf("b.FromURI(src) error = %v, want nil", err)
	}
	if err := b.SetPath("/incoming"); err != nil {
		t.Fatalf("b.SetPath(/incoming) error = %v, want nil", err)
	}

	if got, want := src.String(), "ftp://h/pub"; got != want {
		t.Errorf("src changed to %q, want %q", got, want)
	}
	u := mustURI(t, b)
	if u == src {
		t.Error("b.URI() returned the seed URI")
	}
	if got, want := u.String(), "ftp://h/incoming"; got != want {
		t.Errorf("b.URI() = %q, want %q", got, want)
	}

	if err := b.FromURI(nil); !errors.Is(err, uribuilder.ErrInvalidArgument) {
		t.Errorf("b.FromURI(nil) error = %v, want %v", err, uribuilder.ErrInvalidArgument)
	}
}

func TestBuilder_FromComponents(t *testing.T) {
	t.Parallel()

	b := uribuilder.NewBuilder(nil)
	err := b.FromComponents(uri.Components{Scheme: uri.Some("ws"), Host: uri.Some("h"), Path: "chat"})
	if err != nil {
		t.Fatalf("b.FromComponents(...) error = %v, want nil", err)
	}
	if got := b.State(); got != uribuilder.BuilderStateSeeded {
		t.Errorf("b.State() = %q, want %q", got, uribuilder.BuilderStateSeeded)
	}
	if got, want := b.String(), "ws://h/chat"; got != want {
		t.Errorf("b.String() = %q, want %q", got, want)
	}

	if err := b.FromComponents(uri.Components{Host: uri.Some("h")}); !errors.Is(err, uribuilder.ErrInvalidArgument) {
		t.Errorf("b.FromComponents(no scheme) error = %v, want %v", err, uribuilder.ErrInvalidArgument)
	}
	if got, want := b.String(), "ws://h/chat"; got != want {
		t.Errorf("b.String() after failed seed = %q, want %q", got, want)
	}
}

func TestBuilder_Reseed(t *testing.T) {
	t.Parallel()

	b := seededBuilder(t, "http://a")
	if err := b.From("https://b/x"); err != nil {
		t.Fatalf("b.From(https://b/x) error = %v, want nil", err)
	}
	if got, want := mustURI(t, b).String(), "https://b/x"; got != want {
		t.Errorf("b.URI() = %q, want %q", got, want)
	}
}

func TestBuilder_SetUserInfo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		user string
		pass []string
		want string
	}{
		{"user", "alice", nil, "http://alice@h"},
		{"user and password", "alice", []string{"s3cr3t"}, "http://alice:s3cr3t@h"},
		{"escaped", "a b", []string{"p@ss"}, "http://a%20b:p%40ss@h"},
		{"empty password", "alice", []string{""}, "http://alice:@h"},
		{"remove", "", nil, "http://h"},
		{"empty user with password", "", []string{"secret"}, "http://h"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			b := seededBuilder(t, "http://old:pw@h")
			if err := b.SetUserInfo(c.user, c.pass...); err != nil {
				t.Fatalf("b.SetUserInfo(%q, %q) error = %v, want nil", c.user, c.pass, err)
			}
			if got := mustURI(t, b).String(); got != c.want {
				t.Errorf("b.URI() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestBuilder_FailedSetKeepsState(t *testing.T) {
	t.Parallel()

	b := seededBuilder(t, "https://h/x?q=1")
	before := mustURI(t, b)

	if err := b.SetScheme("data"); !errors.Is(err, uribuilder.ErrInvalidArgument) {
		t.Errorf("b.SetScheme(data) error = %v, want %v", err, uribuilder.ErrInvalidArgument)
	}
	if err := b.SetHost(""); !errors.Is(err, uribuilder.ErrInvalidArgument) {
		t.Errorf("b.SetHost(\"\") error = %v, want %v", err, uribuilder.ErrInvalidArgument)
	}
	if err := b.SetScheme("gopher"); !errors.Is(err, uribuilder.ErrUnsupportedScheme) {
		t.Errorf("b.SetScheme(gopher) error = %v, want %v", err, uribuilder.ErrUnsupportedScheme)
	}

	if after := mustURI(t, b); !after.Equal(before) {
		t.Errorf("b.URI() = %v, want %v", after, before)
	}
	if got := b.State(); got != uribuilder.BuilderStateSeeded {
		t.Errorf("b.State() = %q, want %q", got, uribuilder.BuilderStateSeeded)
	}
}

func TestBuilder_URI_ReturnsCopy(t *testing.T) {
	t.Parallel()

	b := seededBuilder(t, "wss://h")
	u1, u2 := mustURI(t, b), mustURI(t, b)
	if u1 == u2 {
		t.Error("b.URI() returned the same pointer twice")
	}
	if !u1.Equal(u2) {
		t.Errorf("b.URI() = %v, then %v, want equal", u1, u2)
	}
}

func TestBuilder_QueryAndFragment(t *testing.T) {
	t.Parallel()

	b := seededBuilder(t, "http://h/?a=1#f")
	if err := b.SetQuery(nil); err != nil {
		t.Fatalf("b.SetQuery(nil) error = %v, want nil", err)
	}
	if err := b.SetFragment(""); err != nil {
		t.Fatalf("b.SetFragment(\"\") error = %v, want nil", err)
	}
	if err := b.UnsetPort(); err != nil {
		t.Fatalf("b.UnsetPort() error = %v, want nil", err)
	}
	if got, want := mustURI(t, b).String(), "http://h/"; got != want {
		t.Errorf("b.URI() = %q, want %q", got, want)
	}
}
