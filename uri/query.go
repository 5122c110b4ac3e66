package uri

import (
	"iter"
	"strings"

	"braces.dev/errtrace"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ghettovoice/uribuilder/internal/grammar"
	"github.com/ghettovoice/uribuilder/internal/util"
)

// QueryPair is a single key=value pair of a query.
type QueryPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// QueryPairs is an ordered sequence of query pairs, duplicate keys are allowed.
type QueryPairs []QueryPair

// Pairs builds [QueryPairs] from alternating keys and values.
// A trailing key without a value gets an empty value.
func Pairs(kv ...string) QueryPairs {
	ps := make(QueryPairs, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		p := QueryPair{Key: kv[i]}
		if i+1 < len(kv) {
			p.Value = kv[i+1]
		}
		ps = append(ps, p)
	}
	return ps
}

// All returns an iterator over the pairs in order.
func (ps QueryPairs) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, p := range ps {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Get returns the value of the first pair with the given key.
func (ps QueryPairs) Get(key string) (string, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Has reports whether any pair has the given key.
func (ps QueryPairs) Has(key string) bool {
	_, ok := ps.Get(key)
	return ok
}

// OrderedQuery returns an iterator over the ordered map entries in insertion order.
func OrderedQuery(om *orderedmap.OrderedMap[string, string]) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if om == nil {
			return
		}
		for pair := om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// EncodeQuery renders the pairs as "key=value" segments joined with "&".
// Keys and values are percent-encoded leaving only unreserved characters as is,
// space is encoded as "%20". Valid percent-encoded triplets are not encoded again.
// An empty sequence results in an empty string.
func EncodeQuery(pairs iter.Seq2[string, string]) string {
	if pairs == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for k, v := range pairs {
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(grammar.Escape(k, shouldEscapeQueryPairChar))
		sb.WriteByte('=')
		sb.WriteString(grammar.Escape(v, shouldEscapeQueryPairChar))
	}
	return sb.String()
}

// DecodeQuery splits the query string into pairs and fully decodes keys and values.
// Empty segments are skipped, a segment without "=" gets an empty value.
// Malformed percent-encoded triplets result in [ErrMalformedInput].
func DecodeQuery(q string) (QueryPairs, error) {
	if q == "" {
		return nil, nil
	}

	var ps QueryPairs
	for seg := range strings.SplitSeq(q, "&") {
		if seg == "" {
			continue
		}
		if !grammar.IsComponent(seg, isQueryPairChar) {
			return nil, errtrace.Wrap(newMalformedErr("query segment %q", seg))
		}
		k, v, _ := strings.Cut(seg, "=")
		ps = append(ps, QueryPair{Key: grammar.Unescape(k), Value: grammar.Unescape(v)})
	}
	return ps, nil
}

// isQueryPairChar accepts any byte except "%" which must start a valid triplet.
// Query values in the decoded form of [Components] may hold raw characters.
func isQueryPairChar(c byte) bool { return c != '%' }
