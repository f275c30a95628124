package resp

import "github.com/xy-planning-network/qparams/logger"

// A ResponderOptFn is a functional option configuring a *Responder when constructing a new one.
type ResponderOptFn func(*Responder)

// WithLogger sets the logger.Logger the *Responder reports errors with.
func WithLogger(l logger.Logger) ResponderOptFn {
	return func(d *Responder) {
		d.logger = l
	}
}
