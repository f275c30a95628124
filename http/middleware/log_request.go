package middleware

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/qparams"
	"github.com/xy-planning-network/qparams/logger"
)

// LogRequest logs the request's ID, method, and requested URI
// using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the query params in [qparams.MaskedQueryParams].
//
// If logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(l logger.Logger) Adapter {
	if l == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uri := r.URL.Path
			q := r.URL.Query()
			qparams.MaskAll(q)
			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			strs := []string{r.Method, uri}
			if id, ok := r.Context().Value(qparams.RequestIDKey).(string); ok {
				strs = append([]string{id}, strs...)
			}

			l.Info(strings.Join(strs, " "), nil)
			h.ServeHTTP(w, r)
		})
	}
}
