package resp

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/xy-planning-network/qparams"
	"github.com/xy-planning-network/qparams/http/req"
	"github.com/xy-planning-network/qparams/logger"
)

const (
	jsonMediaType   = "application/json; charset=UTF-8"
	responderFrames = 1
)

// Responder writes JSON responses and translates errors into HTTP responses.
// Most oftentimes, a single Responder suffices for an application.
type Responder struct {
	logger logger.Logger

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(l.Skip() + responderFrames)
	}

	return d
}

type jsonSchema struct {
	D any `json:"data,omitempty"`
}

type errSchema struct {
	Error            string                `json:"error"`
	ValidationErrors []req.ValidationError `json:"validationErrors,omitempty"`
}

// Json writes data as a JSON payload under the key "data" with the status code provided.
//
// If the request's context is done, Json writes nothing and returns ErrDone.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, code int, data any) error {
	return doer.write(w, r, code, jsonSchema{D: data})
}

// Err responds to r with the status code matching err and logs it.
//
// An err wrapping [qparams.ErrNotValid] results in a 400 Bad Request
// listing the validation errors, such as an *req.InvalidParamsError naming the offending query param.
// An err wrapping [qparams.ErrBadFormat] results in a 400 Bad Request.
// Anything else results in a 500 Internal Server Error, without exposing err to the client.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error) {
	code := StatusCode(err)
	payload := errSchema{Error: http.StatusText(code)}

	lc := &logger.LogContext{Error: err, Request: r}
	if code >= http.StatusInternalServerError {
		doer.logger.Error("failed handling request", lc)
	} else {
		doer.logger.Info("rejected request", lc)
		payload.Error = err.Error()
		payload.ValidationErrors = validationErrors(err)
	}

	if werr := doer.write(w, r, code, payload); werr != nil && !errors.Is(werr, ErrDone) {
		doer.logger.Error("failed writing error response", &logger.LogContext{Error: werr, Request: r})
	}
}

// write renders payload into a pooled buffer before writing it, so a failure encoding it
// does not leave a partial response.
func (doer *Responder) write(w http.ResponseWriter, r *http.Request, code int, payload any) error {
	if err := r.Context().Err(); err != nil {
		return ErrDone
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := json.NewEncoder(b).Encode(payload); err != nil {
		return err
	}

	w.Header().Set("Content-Type", jsonMediaType)
	w.WriteHeader(code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// StatusCode maps err to the HTTP status code it ought to be responded to with.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, qparams.ErrNotValid), errors.Is(err, qparams.ErrBadFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// validationErrors collects the ValidationErrors err wraps, if any.
func validationErrors(err error) []req.ValidationError {
	var ipe *req.InvalidParamsError
	if errors.As(err, &ipe) {
		return []req.ValidationError{ipe.ValidationError()}
	}

	var ves req.ValidationErrors
	if errors.As(err, &ves) {
		return ves
	}

	return nil
}
