package req

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/qparams"
)

// A Parser binds query params extracted by specifiers into structs.
// A Parser is safe for concurrent use.
type Parser struct {
	decoder *schema.Decoder
	validator
}

func NewParser() *Parser {
	return &Parser{
		decoder:   newQueryParamDecoder(),
		validator: newValidator(),
	}
}

// Bind extracts the query params declared by specifiers from r, as Extract does,
// then decodes them into structPtr using "schema" struct tags.
// If successful, Bind runs validation against structPtr using "validate" struct tags,
// returning an error wrapping [qparams.ErrNotValid] if the data fails validation rules.
//
// Specifiers decide which params are required; a "required" option in a schema tag is not supported.
func (p *Parser) Bind(r *http.Request, structPtr any, specifiers ...string) error {
	return p.bind(r, structPtr, Options{}, specifiers)
}

// BindPartial is like Bind except absent params are skipped as ExtractPartial does,
// leaving the matching fields of structPtr untouched.
//
// Validation still runs against every field, including those left untouched,
// so rules on fields whose params may be absent need "omitempty".
func (p *Parser) BindPartial(r *http.Request, structPtr any, specifiers ...string) error {
	return p.bind(r, structPtr, Options{Partial: true}, specifiers)
}

func (p *Parser) bind(r *http.Request, structPtr any, opts Options, specifiers []string) error {
	rv := reflect.ValueOf(structPtr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("qparams/http/req: %w: Bind called with %T, not a pointer to a struct", qparams.ErrBadAny, structPtr)
	}

	vals, err := extractRequest(r, opts, specifiers)
	if err != nil {
		return fmt.Errorf("qparams/http/req: failed extracting query params: %w", err)
	}

	if err := p.decoder.Decode(structPtr, vals.Query()); err != nil {
		return fmt.Errorf("qparams/http/req: failed decoding query params: %w", translateDecoderError(err))
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("qparams/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}
