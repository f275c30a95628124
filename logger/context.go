package logger

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/xy-planning-network/qparams"
	"github.com/xy-planning-network/qparams/http/req"
)

var (
	_ encoding.TextMarshaler = LogContext{}
)

// A LogContext provides additional information and configuration
// for a [Logger] method that cannot be tersely captured in the message itself.
type LogContext struct {
	// Caller overrides the caller file and line number with the provided value.
	//
	// Caller is not logged in the text of a LogContext.
	Caller string

	// Data is any information pertinent at the time of the logging event.
	Data map[string]any

	// Error is the error that may or may not have instigated a logging event.
	Error error

	// Request is the *http.Request that may or may not have been open during the logging event.
	Request *http.Request
}

// MarshalText converts LogContext into a JSON representation,
// eliminating zero-value fields or fields not requiring logging.
//
// Values of query params named in [qparams.MaskedQueryParams] are masked.
// If Error is an *req.InvalidParamsError, the offending param is included.
//
// MarshalText implements [encoding.TextMarshaler].
func (lc LogContext) MarshalText() ([]byte, error) {
	m := make(map[string]any)
	if lc.Data != nil {
		m["data"] = lc.Data
	}

	if lc.Error != nil {
		m["error"] = lc.Error.Error()

		var ipe *req.InvalidParamsError
		if errors.As(lc.Error, &ipe) {
			m["param"] = ipe.Param
		}
	}

	if lc.Request != nil && lc.Request.URL != nil {
		u := *lc.Request.URL
		q := u.Query()
		qparams.MaskAll(q)
		u.RawQuery = q.Encode()

		r := map[string]any{
			"method": lc.Request.Method,
			"url":    u.String(),
		}

		if id, ok := lc.Request.Context().Value(qparams.RequestIDKey).(string); ok {
			r["id"] = id
		}

		m["request"] = r
	}

	return json.Marshal(m)
}

// String stringifies LogContext as a JSON representation of it.
func (lc LogContext) String() string {
	b, err := json.Marshal(lc)
	if err != nil {
		return ""
	}

	return string(b)
}

// CurrentCaller retrieves the caller for the caller of CurrentCaller,
// formatted for using as a value in LogContext.Caller.
func CurrentCaller() string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf(callerTmpl, callSite(file), line)
}
