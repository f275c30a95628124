/*
Package req provides typed, validated access to the query params of an HTTP request.

Handlers declare the params they need with specifiers,
a small string language naming each param, its type and whether it is optional:

	name        string, required
	name?       string, optional
	n:count     number, required
	n:count?    number, optional
	b:verbose   boolean flag

A boolean param is a flag: "?verbose" is true, no "verbose" at all is false,
and "?verbose=yes" is an error.
Numbers are coerced leniently: surrounding whitespace is ignored,
an empty value is 0, and hex (0x), octal (0o) and binary (0b) integers are accepted.
The value must be finite.

Extract reads every declared param, failing on the first that is missing or malformed:

	vals, err := req.Extract(r, "q", "n:page?", "b:verbose")
	if err != nil {
		// errors.Is(err, qparams.ErrNotValid) == true
	}

	page, ok := vals.Number("page")

ExtractPartial treats params absent from the query string as not requested,
leaving them out of the result entirely.

A rejected specifier or param is reported as an *InvalidParamsError naming it.
Each unwraps to one of ErrInvalidSpecifier, ErrMissingParam, ErrInvalidBoolean or ErrInvalidNumber
and to [github.com/xy-planning-network/qparams.ErrNotValid],
so calling code can translate it into a 400 Bad Request.

A Schema parses specifiers once for reuse across requests,
and Parser.Bind decodes the extracted params into a struct and validates it
with "schema" and "validate" struct tags.
*/
package req
