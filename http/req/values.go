package req

import (
	"context"
	"math"
	"net/url"
	"strconv"

	"github.com/xy-planning-network/qparams"
)

// Values holds the query params extracted from a request, keyed by name.
// Each value is a string, float64, bool or nil, depending on its Specifier.
type Values map[string]any

// Has reports whether name was set in v, even if to nil.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// String returns the string value for name, if one is set.
func (v Values) String(name string) (string, bool) {
	s, ok := v[name].(string)
	return s, ok
}

// Number returns the number value for name, if one is set.
func (v Values) Number(name string) (float64, bool) {
	n, ok := v[name].(float64)
	return n, ok
}

// Int returns the number value for name if one is set and it is a whole number that fits in an int64.
func (v Values) Int(name string) (int64, bool) {
	n, ok := v.Number(name)
	if !ok || n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
		return 0, false
	}

	return int64(n), true
}

// Bool returns the boolean value for name, defaulting to false.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Query encodes v back into [url.Values].
// Nil values are left out.
func (v Values) Query() url.Values {
	q := make(url.Values, len(v))
	for name, val := range v {
		switch val := val.(type) {
		case string:
			q.Set(name, val)
		case float64:
			q.Set(name, strconv.FormatFloat(val, 'f', -1, 64))
		case bool:
			q.Set(name, strconv.FormatBool(val))
		}
	}

	return q
}

// NewValuesContext stashes vals in ctx, returning the resulting context.
func NewValuesContext(ctx context.Context, vals Values) context.Context {
	return context.WithValue(ctx, qparams.QueryValuesKey, vals)
}

// ValuesFromContext retrieves the Values stashed in ctx by NewValuesContext.
func ValuesFromContext(ctx context.Context) (Values, bool) {
	vals, ok := ctx.Value(qparams.QueryValuesKey).(Values)
	return vals, ok
}
