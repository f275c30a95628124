package req

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/xy-planning-network/qparams"
)

// Options configures how query params are extracted.
type Options struct {
	// Partial leaves params absent from the query string out of the result
	// instead of checking whether they are required.
	Partial bool
}

// Extract reads the query params declared by specifiers from r.URL,
// coercing each into the type its specifier names.
//
// Every required param must be present.
// An optional param that is absent is set to nil,
// and an absent boolean param is set to false.
//
// Extract fails on the first invalid specifier or param, returning an *InvalidParamsError.
func Extract(r *http.Request, specifiers ...string) (Values, error) {
	return extractRequest(r, Options{}, specifiers)
}

// ExtractPartial reads the query params declared by specifiers from r.URL,
// like Extract, except any param absent from the query string,
// no matter its type or whether it is required, is left out of the result.
func ExtractPartial(r *http.Request, specifiers ...string) (Values, error) {
	return extractRequest(r, Options{Partial: true}, specifiers)
}

// ExtractURL reads the query params declared by specifiers from the query string of rawURL.
func ExtractURL(rawURL string, opts Options, specifiers ...string) (Values, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("qparams/http/req: %w: cannot parse URL: %s", qparams.ErrBadFormat, err)
	}

	specs, err := ParseSpecifiers(specifiers...)
	if err != nil {
		return nil, err
	}

	return extract(parseQuery(u.RawQuery), specs, opts)
}

func extractRequest(r *http.Request, opts Options, specifiers []string) (Values, error) {
	if r == nil || r.URL == nil {
		return nil, fmt.Errorf("qparams/http/req: %w: request has no URL", qparams.ErrBadAny)
	}

	specs, err := ParseSpecifiers(specifiers...)
	if err != nil {
		return nil, err
	}

	return extract(parseQuery(r.URL.RawQuery), specs, opts)
}

// extract applies specs to q in order.
// q is never modified.
func extract(q url.Values, specs []Specifier, opts Options) (Values, error) {
	vals := make(Values, len(specs))
	for _, spec := range specs {
		raw, ok := lookup(q, spec.Name)
		if !ok && opts.Partial {
			continue
		}

		if spec.Kind == KindBool {
			if raw != "" {
				return nil, &InvalidParamsError{Reason: ErrInvalidBoolean, Param: spec.Name, Value: raw}
			}

			vals[spec.Name] = ok
			continue
		}

		if !ok {
			if !spec.Optional {
				return nil, &InvalidParamsError{Reason: ErrMissingParam, Param: spec.Name}
			}

			vals[spec.Name] = nil
			continue
		}

		if spec.Kind == KindNumber {
			n, ok := parseNumber(raw)
			if !ok {
				return nil, &InvalidParamsError{Reason: ErrInvalidNumber, Param: spec.Name, Value: raw}
			}

			vals[spec.Name] = n
			continue
		}

		vals[spec.Name] = raw
	}

	return vals, nil
}

// lookup retrieves the first value for name in q.
// A param set without a value, e.g. "?flag", is present with an empty value.
func lookup(q url.Values, name string) (string, bool) {
	vs, ok := q[name]
	if !ok || len(vs) == 0 {
		return "", false
	}

	return vs[0], true
}
