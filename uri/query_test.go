package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ghettovoice/uribuilder/uri"
)

func TestEncodeQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		pairs uri.QueryPairs
		want  string
	}{
		{"empty", nil, ""},
		{"reserved chars", uri.Pairs("api_token", "Qwerty! @#$TYu"), "api_token=Qwerty%21%20%40%23%24TYu"},
		{"unreserved chars", uri.Pairs("a-b.c_d~e", "AZaz09-._~"), "a-b.c_d~e=AZaz09-._~"},
		{"empty value", uri.Pairs("a", "1", "b"), "a=1&b="},
		{"duplicate keys", uri.Pairs("k", "1", "k", "2"), "k=1&k=2"},
		{"no double encoding", uri.Pairs("k", "a%20b%2f"), "k=a%20b%2F"},
		{"plus and equals", uri.Pairs("a+b", "c=d&e"), "a%2Bb=c%3Dd%26e"},
		{"non-ASCII", uri.Pairs("q", "€"), "q=%E2%82%AC"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := uri.EncodeQuery(c.pairs.All()); got != c.want {
				t.Errorf("uri.EncodeQuery(%v) = %q, want %q", c.pairs, got, c.want)
			}
		})
	}

	if got := uri.EncodeQuery(nil); got != "" {
		t.Errorf("uri.EncodeQuery(nil) = %q, want \"\"", got)
	}
}

func TestEncodeQuery_Idempotence(t *testing.T) {
	t.Parallel()

	const want = "api_token=Qwerty%21%20%40%23%24TYu"

	q := uri.EncodeQuery(uri.Pairs("api_token", "Qwerty! @#$TYu").All())
	if q != want {
		t.Fatalf("uri.EncodeQuery(...) = %q, want %q", q, want)
	}
	ps, err := uri.DecodeQuery(q)
	if err != nil {
		t.Fatalf("uri.DecodeQuery(%q) error = %v, want nil", q, err)
	}
	if got := uri.EncodeQuery(ps.All()); got != want {
		t.Errorf("uri.EncodeQuery(uri.DecodeQuery(%q)) = %q, want %q", q, got, want)
	}
}

func TestOrderedQuery(t *testing.T) {
	t.Parallel()

	om := orderedmap.New[string, string]()
	om.Set("z", "1")
	om.Set("a", "2 3")
	om.Set("m", "")

	if got, want := uri.EncodeQuery(uri.OrderedQuery(om)), "z=1&a=2%203&m="; got != want {
		t.Errorf("uri.EncodeQuery(uri.OrderedQuery(om)) = %q, want %q", got, want)
	}
	if got := uri.EncodeQuery(uri.OrderedQuery(nil)); got != "" {
		t.Errorf("uri.EncodeQuery(uri.OrderedQuery(nil)) = %q, want \"\"", got)
	}
}

func TestDecodeQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    uri.QueryPairs
		wantErr error
	}{
		{"empty", "", nil, nil},
		{
			"pairs",
			"a=1&&b=x%20y&c",
			uri.QueryPairs{{Key: "a", Value: "1"}, {Key: "b", Value: "x y"}, {Key: "c"}},
			nil,
		},
		{"plus is not space", "a=b+c", uri.QueryPairs{{Key: "a", Value: "b+c"}}, nil},
		{"encoded delimiters", "a%3Db=c%26d", uri.QueryPairs{{Key: "a=b", Value: "c&d"}}, nil},
		{"malformed triplet", "a=%zz", nil, uri.ErrMalformedInput},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.DecodeQuery(c.input)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.DecodeQuery(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.input, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("uri.DecodeQuery(%q) = %v, want %v\ndiff (-got +want):\n%v", c.input, got, c.want, diff)
			}
		})
	}
}

func TestQueryPairs_Get(t *testing.T) {
	t.Parallel()

	ps := uri.Pairs("a", "1", "b", "2", "a", "3")
	if v, ok := ps.Get("a"); !ok || v != "1" {
		t.Errorf("ps.Get(a) = (%q, %v), want (\"1\", true)", v, ok)
	}
	if ps.Has("c") {
		t.Error("ps.Has(c) = true, want false")
	}
}
