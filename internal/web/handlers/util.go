package handlers

import (
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

// IndexParams are the query parameters understood by the index page.
type IndexParams struct {
	User string `schema:"user"`
}

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// ParseQuery turns a raw query string into a map of parameters.
//
// Valid escapes of the whole string are decoded before it is split on '&', and each
// pair is split on its first '='. Pairs without '=' or with an empty key are
// dropped, keys and values are trimmed, and the last occurrence of a key wins.
func ParseQuery(rawQuery string) map[string]string {
	params := make(map[string]string)

	for _, arg := range strings.Split(unescape(rawQuery), "&") {
		if arg == "" {
			continue
		}
		k, v, found := strings.Cut(arg, "=")
		if !found {
			continue
		}
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" {
			continue
		}
		params[k] = v
	}

	return params
}

// unescape decodes every valid %XX escape of s and leaves malformed ones and
// '+' untouched.
func unescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// DecodeParams fills the schema tagged struct dst from params.
func DecodeParams(params map[string]string, dst any) error {
	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, v)
	}
	return decoder.Decode(dst, values)
}
