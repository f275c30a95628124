package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xy-planning-network/qparams"
)

var (
	ErrInvalidSpecifier = errors.New("invalid specifier")
	ErrMissingParam     = errors.New("missing param")
	ErrInvalidBoolean   = errors.New("invalid boolean")
	ErrInvalidNumber    = errors.New("invalid number")
)

// An InvalidParamsError is the reason extracting query params failed
// and the specifier or param responsible.
type InvalidParamsError struct {
	// Reason is one of ErrInvalidSpecifier, ErrMissingParam, ErrInvalidBoolean, ErrInvalidNumber.
	Reason error

	// Param is the name of the offending param
	// or, for ErrInvalidSpecifier, the specifier itself.
	Param string

	// Value is the raw value found in the query string, if any.
	Value string
}

func (e *InvalidParamsError) Error() string {
	switch e.Reason {
	case ErrInvalidSpecifier:
		return fmt.Sprintf("invalid query specifier %q", e.Param)
	case ErrMissingParam:
		return fmt.Sprintf("param %q is missing", e.Param)
	case ErrInvalidBoolean:
		return fmt.Sprintf("param %q is not a boolean", e.Param)
	case ErrInvalidNumber:
		return fmt.Sprintf("param %q is not a number", e.Param)
	default:
		return fmt.Sprintf("param %q is invalid: %s", e.Param, e.Reason)
	}
}

// Unwrap exposes both the Reason and [qparams.ErrNotValid] to [errors.Is].
func (e *InvalidParamsError) Unwrap() []error { return []error{e.Reason, qparams.ErrNotValid} }

// ValidationError describes e in the same shape as a struct field failing validation.
func (e *InvalidParamsError) ValidationError() ValidationError {
	ve := ValidationError{Field: e.Param, Got: e.Value}
	switch e.Reason {
	case ErrInvalidSpecifier:
		ve.Field = ""
		ve.Got = e.Param
		ve.Rule = "specifier must match (n:|b:)?name(?)?"
	case ErrMissingParam:
		ve.Got = nil
		ve.Rule = "required"
	case ErrInvalidBoolean:
		ve.Rule = "must be empty; boolean"
	case ErrInvalidNumber:
		ve.Rule = "must be finite; number"
	}

	return ve
}

func (e *InvalidParamsError) MarshalJSON() ([]byte, error) {
	return ValidationErrors{e.ValidationError()}.MarshalJSON()
}

// A ValidationError is an issue with a concrete value not matching the rule set on its field.
type ValidationError struct {
	Field string `json:"field"`
	Got   any    `json:"got"`
	Rule  string `json:"rule,omitempty"`
}

// ValidationErrors is a set of ValidationError.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msg := fmt.Sprintf("field=%q rule=%q got=%q", err.Field, err.Rule, fmt.Sprint(err.Got))
		msgs = append(msgs, msg)
	}

	return strings.Join(msgs, "\n")
}

func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	var errs struct {
		E []ValidationError `json:"validationErrors,omitempty"`
	}

	errs.E = append(errs.E, v...)

	return json.Marshal(errs)
}

func (ValidationErrors) Unwrap() error { return qparams.ErrNotValid }
