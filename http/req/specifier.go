package req

import (
	"regexp"

	"github.com/xy-planning-network/qparams"
)

var specifierRegexp = regexp.MustCompile(`^((n|b):)?(.+?)(\?)?$`)

var _ qparams.Enumerable = Kind("")

// A Kind is the type a query param is coerced into.
type Kind string

const (
	KindString Kind = "s"
	KindNumber Kind = "n"
	KindBool   Kind = "b"
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	default:
		return "unknown"
	}
}

func (k Kind) Valid() error {
	switch k {
	case KindString, KindNumber, KindBool:
		return nil
	default:
		return qparams.ErrNotValid
	}
}

// A Specifier declares a single query param: its name, its Kind, and whether it may be absent.
type Specifier struct {
	Raw      string
	Kind     Kind
	Name     string
	Optional bool
}

// ParseSpecifier parses s following the grammar (<type>:)?<name>(?)?,
// where <type> is n for numbers or b for booleans.
// Without a type prefix, the param is a string.
//
// ParseSpecifier returns an *InvalidParamsError wrapping ErrInvalidSpecifier if s does not match.
func ParseSpecifier(s string) (Specifier, error) {
	m := specifierRegexp.FindStringSubmatch(s)
	if m == nil {
		return Specifier{}, &InvalidParamsError{Reason: ErrInvalidSpecifier, Param: s}
	}

	spec := Specifier{
		Raw:      s,
		Kind:     KindString,
		Name:     m[3],
		Optional: m[4] != "",
	}

	if m[2] != "" {
		spec.Kind = Kind(m[2])
	}

	return spec, nil
}

// ParseSpecifiers calls ParseSpecifier on each of specs, in order,
// stopping at the first that fails.
func ParseSpecifiers(specs ...string) ([]Specifier, error) {
	parsed := make([]Specifier, 0, len(specs))
	for _, s := range specs {
		spec, err := ParseSpecifier(s)
		if err != nil {
			return nil, err
		}

		parsed = append(parsed, spec)
	}

	return parsed, nil
}

func (s Specifier) String() string { return s.Raw }
