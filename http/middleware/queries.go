package middleware

import (
	"net/http"

	"github.com/xy-planning-network/qparams/http/req"
	"github.com/xy-planning-network/qparams/http/resp"
)

// Queries extracts the query params declared by specifiers from every request,
// as configured by opts, stashing the resulting req.Values in the request context.
// Handlers retrieve them with req.ValuesFromContext.
//
// If extraction fails, Queries responds with d.Err, a 400 Bad Request naming the offending param,
// and the wrapped handler is never called.
//
// Queries panics if any specifier is invalid.
func Queries(d *resp.Responder, opts req.Options, specifiers ...string) Adapter {
	schema := req.MustSchema(specifiers...)

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			vals, err := schema.ExtractWith(r, opts)
			if err != nil {
				d.Err(w, r, err)
				return
			}

			h.ServeHTTP(w, r.Clone(req.NewValuesContext(r.Context(), vals)))
		})
	}
}
