package main

import (
	"net/http"

	"github.com/xy-planning-network/qparams/http/middleware"
	"github.com/xy-planning-network/qparams/http/req"
	"github.com/xy-planning-network/qparams/http/resp"
	"github.com/xy-planning-network/qparams/logger"
)

// searchParams are bound from the query params of /bind.
type searchParams struct {
	Query   string `schema:"q" validate:"required,max=64"`
	Page    int    `schema:"page" validate:"gte=1"`
	Verbose bool   `schema:"verbose"`
}

type handler struct {
	*resp.Responder
	parser *req.Parser
}

// newHandler routes requests to the example endpoints, logging each
// and tagging it with a request ID.
func newHandler(l logger.Logger, d *resp.Responder) http.Handler {
	h := handler{Responder: d, parser: req.NewParser()}
	every := []middleware.Adapter{middleware.RequestID(), middleware.LogRequest(l)}

	mux := http.NewServeMux()
	mux.Handle("/search", middleware.Chain(
		http.HandlerFunc(h.fromContext),
		append(every, middleware.Queries(d, req.Options{}, "q", "n:page?", "b:verbose"))...,
	))
	mux.Handle("/filter", middleware.Chain(
		http.HandlerFunc(h.fromContext),
		append(every, middleware.Queries(d, req.Options{Partial: true}, "tag", "n:min", "n:max", "b:archived"))...,
	))
	mux.Handle("/extract", middleware.Chain(http.HandlerFunc(h.extract), every...))
	mux.Handle("/bind", middleware.Chain(http.HandlerFunc(h.bind), every...))

	return mux
}

// fromContext echoes the params middleware.Queries extracted.
func (h handler) fromContext(w http.ResponseWriter, r *http.Request) {
	vals, _ := req.ValuesFromContext(r.Context())
	h.Json(w, r, http.StatusOK, vals)
}

// extract calls req.Extract itself.
func (h handler) extract(w http.ResponseWriter, r *http.Request) {
	vals, err := req.Extract(r, "id", "n:limit?")
	if err != nil {
		h.Err(w, r, err)
		return
	}

	h.Json(w, r, http.StatusOK, vals)
}

// bind binds the params into searchParams.
func (h handler) bind(w http.ResponseWriter, r *http.Request) {
	var params searchParams
	if err := h.parser.Bind(r, &params, "q", "n:page", "b:verbose"); err != nil {
		h.Err(w, r, err)
		return
	}

	h.Json(w, r, http.StatusOK, params)
}
