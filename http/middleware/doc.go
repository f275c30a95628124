/*
The middleware package defines what a middleware is in qparams and a set of basic middlewares.

The available middlewares are:
  - LogRequest
  - Queries
  - RequestID

A typical chain looks like:

	adpts := []middleware.Adapter{
		middleware.RequestID(),
		middleware.LogRequest(log),
		middleware.Queries(responder, req.Options{}, "q", "n:page?", "b:verbose"),
	}
*/
package middleware
