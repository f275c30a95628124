package req

import (
	"net/url"
	"strconv"
	"strings"
)

// parseQuery splits rawQuery into params the way a browser does.
//
// Unlike [url.ParseQuery], no pair is ever dropped:
// ";" is part of a value and a malformed percent-escape is kept as written.
func parseQuery(rawQuery string) url.Values {
	q := make(url.Values)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}

		key, val, _ := strings.Cut(pair, "=")
		key, val = unescape(key), unescape(val)
		q[key] = append(q[key], val)
	}

	return q
}

// unescape decodes s as [url.QueryUnescape] does,
// except any "%" not followed by two hex digits is left in place.
func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 < len(s) {
				if n, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
					b.WriteByte(byte(n))
					i += 2
					continue
				}
			}

			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
