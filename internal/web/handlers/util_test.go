package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		want     map[string]string
	}{
		{
			name:     "empty query",
			rawQuery: "",
			want:     map[string]string{},
		},
		{
			name:     "single pair",
			rawQuery: "user=alice",
			want:     map[string]string{"user": "alice"},
		},
		{
			name:     "several pairs",
			rawQuery: "user=alice&lang=en&page=2",
			want:     map[string]string{"user": "alice", "lang": "en", "page": "2"},
		},
		{
			name:     "last duplicate wins",
			rawQuery: "user=alice&user=bob",
			want:     map[string]string{"user": "bob"},
		},
		{
			name:     "pair without equal sign is dropped",
			rawQuery: "user&lang=en",
			want:     map[string]string{"lang": "en"},
		},
		{
			name:     "empty key is dropped",
			rawQuery: "=alice& =bob&lang=en",
			want:     map[string]string{"lang": "en"},
		},
		{
			name:     "empty segments are skipped",
			rawQuery: "&&user=alice&",
			want:     map[string]string{"user": "alice"},
		},
		{
			name:     "key and value are trimmed",
			rawQuery: "%20user%20=%20alice%20",
			want:     map[string]string{"user": "alice"},
		},
		{
			name:     "empty value is kept",
			rawQuery: "user=",
			want:     map[string]string{"user": ""},
		},
		{
			name:     "split on the first equal sign",
			rawQuery: "q=a=b",
			want:     map[string]string{"q": "a=b"},
		},
		{
			name:     "decoded before splitting",
			rawQuery: "user%3Dalice%26lang%3Den",
			want:     map[string]string{"user": "alice", "lang": "en"},
		},
		{
			name:     "plus is not a space",
			rawQuery: "q=a+b",
			want:     map[string]string{"q": "a+b"},
		},
		{
			name:     "malformed escape is left as is",
			rawQuery: "user=alice&bad=%zz",
			want:     map[string]string{"user": "alice", "bad": "%zz"},
		},
		{
			name:     "valid escapes around a malformed one are decoded",
			rawQuery: "user=%61lice&x=100%",
			want:     map[string]string{"user": "alice", "x": "100%"},
		},
		{
			name:     "escaped separators are decoded before splitting",
			rawQuery: "user=al%26x%3D1%zz",
			want:     map[string]string{"user": "al", "x": "1%zz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseQuery(tt.rawQuery))
		})
	}
}

func TestParseQueryRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"user", "alice"},
		{"lang", "fr"},
		{"sort", "created"},
		{"user", "charlie"},
	}

	raw := ""
	want := map[string]string{}
	for i, p := range pairs {
		if i > 0 {
			raw += "&"
		}
		raw += url.PathEscape(p[0]) + "=" + url.PathEscape(p[1])
		want[p[0]] = p[1]
	}

	require.Equal(t, want, ParseQuery(raw))
}

func TestDecodeParams(t *testing.T) {
	var params IndexParams
	err := DecodeParams(map[string]string{"user": "alice", "unknown": "x"}, &params)
	require.NoError(t, err)
	require.Equal(t, "alice", params.User)

	params = IndexParams{}
	err = DecodeParams(map[string]string{}, &params)
	require.NoError(t, err)
	require.Empty(t, params.User)
}
