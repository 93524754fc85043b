package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fdnsfilter/internal/fdns"
)

var (
	foo = fdns.Record{Timestamp: "t1", Name: "foo.example.com", Kind: "a", Value: "1.2.3.4"}
	bar = fdns.Record{Timestamp: "t2", Name: "bar.test.com", Kind: "a", Value: "5.6.7.8"}
	cn  = fdns.Record{Timestamp: "t3", Name: "www.example.com", Kind: "cname", Value: "edge.cdn.test.com"}
)

func mustNew(t *testing.T, o Options) *Config {
	t.Helper()
	c, err := New(o)
	require.NoError(t, err)
	return c
}

func accepted(c *Config, recs ...fdns.Record) []string {
	var names []string
	for i := range recs {
		if c.Accepts(&recs[i]) {
			names = append(names, recs[i].Name)
		}
	}
	return names
}

func TestAccepts_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		opts Options
		want []string
	}{
		{"pattern on name", Options{Kind: "a", Pattern: "example"}, []string{"foo.example.com"}},
		{"allow-list restricts", Options{Kind: "a", Pattern: ".*", Allow: []string{"test.com"}}, []string{"bar.test.com"}},
		{"kind mismatch", Options{Kind: "cname", Pattern: "example"}, []string{"www.example.com"}},
		{"kind with no records", Options{Kind: "aaaa", Pattern: ".*"}, nil},
		{"pattern on value", Options{Kind: "a", Pattern: `^5\.`, Field: FieldValue}, []string{"bar.test.com"}},
		{"allow-list on value", Options{Kind: "cname", Pattern: "cdn", Field: FieldValue, Allow: []string{"test.com"}}, []string{"www.example.com"}},
		{"allow-list and pattern both required", Options{Kind: "a", Pattern: "foo", Allow: []string{"test.com"}}, nil},
		{"any listed suffix", Options{Kind: "a", Pattern: ".", Allow: []string{"nope.org", "example.com"}}, []string{"foo.example.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, accepted(mustNew(t, tc.opts), foo, bar, cn))
		})
	}
}

func TestAccepts_KindIsExact(t *testing.T) {
	c := mustNew(t, Options{Kind: "a", Pattern: ".*"})
	up := foo
	up.Kind = "A"
	assert.False(t, c.Accepts(&up))
	assert.True(t, c.Accepts(&foo))
}

func TestAccepts_PatternIsUnanchored(t *testing.T) {
	c := mustNew(t, Options{Kind: "a", Pattern: "example"})
	assert.True(t, c.Accepts(&foo))

	anchored := mustNew(t, Options{Kind: "a", Pattern: "^example"})
	assert.False(t, anchored.Accepts(&foo))
}

func TestAccepts_SuffixIsLiteral(t *testing.T) {
	// "." in a suffix is not a regex wildcard.
	c := mustNew(t, Options{Kind: "a", Pattern: ".*", Allow: []string{"test.com"}})
	r := fdns.Record{Kind: "a", Name: "bar.testxcom"}
	assert.False(t, c.Accepts(&r))
}

func TestAccepts_EmptySuffixMatchesEverything(t *testing.T) {
	c := mustNew(t, Options{Kind: "a", Pattern: ".*", Allow: []string{"", "test.com"}})
	assert.Equal(t, []string{"", "test.com"}, c.Allow())
	assert.Equal(t, []string{"foo.example.com", "bar.test.com"}, accepted(c, foo, bar))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Options{Kind: "a", Pattern: "("})
	var perr *PatternError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "(", perr.Pattern)

	_, err = New(Options{Pattern: ".*"})
	assert.ErrorIs(t, err, ErrEmptyKind)
}

func TestConfig_Accessors(t *testing.T) {
	c := mustNew(t, Options{Kind: "ns", Pattern: "x+", Field: FieldValue, Allow: []string{"a.b"}})
	assert.Equal(t, "ns", c.Kind())
	assert.Equal(t, "x+", c.Pattern())
	assert.Equal(t, FieldValue, c.Field())

	allow := c.Allow()
	allow[0] = "mutated"
	assert.Equal(t, []string{"a.b"}, c.Allow())
}

func TestParseField(t *testing.T) {
	f, err := ParseField("VALUE")
	require.NoError(t, err)
	assert.Equal(t, FieldValue, f)
	assert.Equal(t, "value", f.String())

	f, err = ParseField("name")
	require.NoError(t, err)
	assert.Equal(t, FieldName, f)

	_, err = ParseField("timestamp")
	assert.Error(t, err)
}

func TestKnownKind(t *testing.T) {
	for _, k := range []string{"a", "AAAA", "cname", "ns", "ptr", "txt", "mx"} {
		assert.True(t, KnownKind(k), k)
	}
	assert.False(t, KnownKind("nonsense"))
}
