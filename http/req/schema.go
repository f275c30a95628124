package req

import (
	"fmt"
	"net/http"
)

// A Schema is a set of specifiers parsed once and applied to many requests.
// A Schema is safe for concurrent use.
type Schema struct {
	specs []Specifier
}

// NewSchema parses specifiers into a *Schema.
func NewSchema(specifiers ...string) (*Schema, error) {
	specs, err := ParseSpecifiers(specifiers...)
	if err != nil {
		return nil, err
	}

	return &Schema{specs: specs}, nil
}

// MustSchema is like NewSchema but panics if any specifier is invalid.
func MustSchema(specifiers ...string) *Schema {
	s, err := NewSchema(specifiers...)
	if err != nil {
		panic(fmt.Sprintf("qparams/http/req: %s", err))
	}

	return s
}

// Extract behaves like the package-level Extract using the specifiers in s.
func (s *Schema) Extract(r *http.Request) (Values, error) {
	return s.ExtractWith(r, Options{})
}

// ExtractPartial behaves like the package-level ExtractPartial using the specifiers in s.
func (s *Schema) ExtractPartial(r *http.Request) (Values, error) {
	return s.ExtractWith(r, Options{Partial: true})
}

// ExtractWith reads the query params in r.URL using the specifiers in s as configured by opts.
func (s *Schema) ExtractWith(r *http.Request, opts Options) (Values, error) {
	if r == nil || r.URL == nil {
		return extractRequest(r, opts, nil)
	}

	return extract(parseQuery(r.URL.RawQuery), s.specs, opts)
}

// Specifiers returns a copy of the specifiers in s.
func (s *Schema) Specifiers() []Specifier {
	return append([]Specifier(nil), s.specs...)
}
