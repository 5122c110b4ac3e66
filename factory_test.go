package uribuilder_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/uribuilder"
	"github.com/ghettovoice/uribuilder/internal/testutil/urimock"
	"github.com/ghettovoice/uribuilder/uri"
)

func TestFactory_Create(t *testing.T) {
	t.Parallel()

	f := uribuilder.NewFactory(nil)

	cases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"https", "HTTPS://Example.com:443/path?q=1#f", "https://example.com/path?q=1#f", nil},
		{"wss", "wss://foo.bar:9999", "wss://foo.bar:9999", nil},
		{"file", "file://localhost/tmp/x", "file:///tmp/x", nil},
		{"data", "data:text/plain,hi", "data:text/plain,hi", nil},
		{"empty", "", "", uribuilder.ErrInvalidArgument},
		{"relative", "/path", "", uribuilder.ErrInvalidArgument},
		{"unsupported", "gopher://x", "", uribuilder.ErrUnsupportedScheme},
		{"malformed", "http://exa mple", "", uribuilder.ErrMalformedInput},
		{"invalid port", "http://h:65536", "", uribuilder.ErrInvalidPort},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := f.Create(c.input)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("f.Create(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.input, err, c.wantErr, diff)
			}
			if got := u.String(); got != c.want {
				t.Errorf("f.Create(%q) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}

func TestFactory_Create_UnsupportedScheme(t *testing.T) {
	t.Parallel()

	_, err := uribuilder.NewFactory(nil).Create("gopher://x")
	var e *uribuilder.UnsupportedSchemeError
	if !errors.As(err, &e) {
		t.Fatalf("f.Create(gopher://x) error = %v, want *UnsupportedSchemeError", err)
	}
	if e.Scheme != "gopher" {
		t.Errorf("e.Scheme = %q, want \"gopher\"", e.Scheme)
	}
}

func TestFactory_Create_Parser(t *testing.T) {
	t.Parallel()

	t.Run("components", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		p := urimock.NewMockParser(ctrl)
		p.EXPECT().
			Parse("custom input").
			Return(uri.Components{Scheme: uri.Some("HTTP"), Host: uri.Some("H"), Path: "x"}, nil)

		f := uribuilder.NewFactory(&uribuilder.FactoryOptions{Parser: p})
		u, err := f.Create("custom input")
		if err != nil {
			t.Fatalf("f.Create(custom input) error = %v, want nil", err)
		}
		if got, want := u.String(), "http://h/x"; got != want {
			t.Errorf("f.Create(custom input) = %q, want %q", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		parseErr := errors.New("parser failure")
		ctrl := gomock.NewController(t)
		p := urimock.NewMockParser(ctrl)
		p.EXPECT().Parse(gomock.Any()).Return(uri.Components{}, parseErr)

		f := uribuilder.NewFactory(&uribuilder.FactoryOptions{Parser: p})
		if _, err := f.Create("x"); !errors.Is(err, parseErr) {
			t.Errorf("f.Create(x) error = %v, want %v", err, parseErr)
		}
	})
}

func TestFactory_Create_LogsMalformedInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		parser  uribuilder.Parser
		input   string
		wantLog bool
	}{
		{"grammar error", uri.DefaultParser, "http://exa mple.com", true},
		{
			"other error",
			uri.ParserFunc(func(string) (uri.Components, error) { return uri.Components{}, errors.New("parser failure") }),
			"x",
			false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			f := uribuilder.NewFactory(&uribuilder.FactoryOptions{
				Parser: c.parser,
				Logger: uribuilder.ConsoleLogger(&buf, slog.LevelDebug, true),
			})
			if _, err := f.Create(c.input); err == nil {
				t.Fatalf("f.Create(%q) error = nil, want non-nil", c.input)
			}
			if got := strings.Contains(buf.String(), "URI parse failed"); got != c.wantLog {
				t.Errorf("log output %q contains \"URI parse failed\" = %v, want %v", buf.String(), got, c.wantLog)
			}
		})
	}
}

func TestFactory_CreateFromComponents(t *testing.T) {
	t.Parallel()

	f := uribuilder.NewFactory(nil)

	cases := []struct {
		name    string
		comps   uri.Components
		want    string
		wantErr error
	}{
		{
			"scheme normalized",
			uri.Components{Scheme: uri.Some(" WSS "), Host: uri.Some("foo.bar"), Port: uri.Some(443)},
			"wss://foo.bar",
			nil,
		},
		{
			"ftp",
			uri.Components{Scheme: uri.Some("ftp"), User: uri.Some("anon"), Host: uri.Some("h"), Path: "pub"},
			"ftp://anon@h/pub",
			nil,
		},
		{"missing scheme", uri.Components{Host: uri.Some("h")}, "", uribuilder.ErrInvalidArgument},
		{"empty scheme", uri.Components{Scheme: uri.Some(" "), Host: uri.Some("h")}, "", uribuilder.ErrInvalidArgument},
		{"unsupported", uri.Components{Scheme: uri.Some("irc"), Host: uri.Some("h")}, "", uribuilder.ErrUnsupportedScheme},
		{
			"data with host",
			uri.Components{Scheme: uri.Some("data"), Host: uri.Some("h"), Path: ",x"},
			"",
			uribuilder.ErrInvalidArgument,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := f.CreateFromComponents(c.comps)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("f.CreateFromComponents(%+v) error = %v, want %v\ndiff (-got +want):\n%v", c.comps, err, c.wantErr, diff)
			}
			if got := u.String(); got != c.want {
				t.Errorf("f.CreateFromComponents(%+v) = %q, want %q", c.comps, got, c.want)
			}
		})
	}
}

func TestFactory_Transform(t *testing.T) {
	t.Parallel()

	f := uribuilder.NewFactory(nil)

	cases := []struct {
		name    string
		input   string
		scheme  string
		want    string
		wantErr error
	}{
		{"compatible", "http://u:p@h:8080/x?q#f", "https", "https://u:p@h:8080/x?q#f", nil},
		{"compatible upper-case", "https://h", "HTTP", "http://h", nil},
		{"compatible keeps explicit port", "http://h:443/x", "https", "https://h:443/x", nil},
		{"compatible keeps old default port", "https://h:80/x", "http", "http://h:80/x", nil},
		{"compatible ftp family", "ftp://h:22/f", "sftp", "sftp://h:22/f", nil},
		{"ws to http", "ws://h/chat", "http", "http://h/chat", nil},
		{"ftp to wss", "ftp://u@h/f.txt", "wss", "wss://u@h/f.txt", nil},
		{"http to data", "http://h:8080/a,b", "data", "data:/a,b", nil},
		{"http to file", "http://u:p@h:8080/x", "file", "file://h/x", nil},
		{"http to data without comma", "http://h/x", "data", "", uribuilder.ErrInvalidArgument},
		{"file to http without host", "file:///etc/hosts", "http", "", uribuilder.ErrInvalidArgument},
		{"unsupported", "http://h", "gopher", "", uribuilder.ErrUnsupportedScheme},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := f.Create(c.input)
			if err != nil {
				t.Fatalf("f.Create(%q) error = %v, want nil", c.input, err)
			}
			got, err := f.Transform(u, c.scheme)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("f.Transform(%q, %q) error = %v, want %v\ndiff (-got +want):\n%v", c.input, c.scheme, err, c.wantErr, diff)
			}
			if got.String() != c.want {
				t.Errorf("f.Transform(%q, %q) = %q, want %q", c.input, c.scheme, got.String(), c.want)
			}
			if u.String() == "" || got == u {
				t.Errorf("f.Transform(%q, %q) modified or returned the input", c.input, c.scheme)
			}
		})
	}

	if _, err := f.Transform(nil, "http"); !errors.Is(err, uribuilder.ErrInvalidArgument) {
		t.Errorf("f.Transform(nil, http) error = %v, want %v", err, uribuilder.ErrInvalidArgument)
	}
}

func TestFactory_Transform_Rederive(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	p := urimock.NewMockParser(ctrl)
	gomock.InOrder(
		p.EXPECT().Parse("ws://h/chat").DoAndReturn(uri.ParseComponents),
		p.EXPECT().Parse("ws://h/chat").DoAndReturn(uri.ParseComponents),
	)

	var buf bytes.Buffer
	f := uribuilder.NewFactory(&uribuilder.FactoryOptions{
		Parser: p,
		Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})

	u, err := f.Create("ws://h/chat")
	if err != nil {
		t.Fatalf("f.Create(ws://h/chat) error = %v, want nil", err)
	}
	got, err := f.Transform(u, "https")
	if err != nil {
		t.Fatalf("f.Transform(u, https) error = %v, want nil", err)
	}
	if want := "https://h/chat"; got.String() != want {
		t.Errorf("f.Transform(u, https) = %q, want %q", got.String(), want)
	}
	if !strings.Contains(buf.String(), "mode=rederive") {
		t.Errorf("log output %q does not contain mode=rederive", buf.String())
	}
}

func TestFactory_IsCompatible(t *testing.T) {
	t.Parallel()

	f := uribuilder.NewFactory(nil)
	u, err := f.Create("http://h")
	if err != nil {
		t.Fatalf("f.Create(http://h) error = %v, want nil", err)
	}

	cases := []struct {
		scheme  string
		want    bool
		wantErr error
	}{
		{"HTTPS", true, nil},
		{"http", true, nil},
		{"ws", false, nil},
		{"data", false, nil},
		{"gopher", false, uribuilder.ErrUnsupportedScheme},
	}

	for _, c := range cases {
		t.Run(c.scheme, func(t *testing.T) {
			t.Parallel()

			got, err := f.IsCompatible(c.scheme, u)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("f.IsCompatible(%q, u) error = %v, want %v\ndiff (-got +want):\n%v", c.scheme, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("f.IsCompatible(%q, u) = %v, want %v", c.scheme, got, c.want)
			}
		})
	}
}

func TestFactory_Registry(t *testing.T) {
	t.Parallel()

	reg, err := uri.NewRegistry(uri.Scheme{Name: "http", Variant: uri.VariantHttp, DefaultPort: uri.Some(80), KeepDefaultPort: true})
	if err != nil {
		t.Fatalf("uri.NewRegistry(...) error = %v, want nil", err)
	}
	f := uribuilder.NewFactory(&uribuilder.FactoryOptions{Registry: reg})

	if f.Registry() != reg {
		t.Error("f.Registry() != reg")
	}
	if diff := cmp.Diff(f.Supported(), []string{"http"}); diff != "" {
		t.Errorf("f.Supported() = %v, want [http]\ndiff (-got +want):\n%v", f.Supported(), diff)
	}
	if f.IsSupported("https") {
		t.Error("f.IsSupported(https) = true, want false")
	}

	u, err := f.Create("http://h:80/")
	if err != nil {
		t.Fatalf("f.Create(http://h:80/) error = %v, want nil", err)
	}
	if got, want := u.String(), "http://h:80/"; got != want {
		t.Errorf("f.Create(http://h:80/) = %q, want %q", got, want)
	}
}
