package resp

import (
	"github.com/tidemill/reply/http/render"
	"github.com/tidemill/reply/logger"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithCache sets the template cache a *Response consults
// ahead of the engine registry when it carries a card.
func WithCache(c *render.Cache) func(*Responder) {
	return func(d *Responder) {
		d.cache = c
	}
}

// WithLogger sets the provided implementation of logger.Logger in order to
// log all statements through it.
//
// If no Logger is provided through this option, logger.New configures one.
func WithLogger(log logger.Logger) func(*Responder) {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithRegistry sets the engine registry used when resolving
// a template reference by its file extension.
func WithRegistry(reg *render.Registry) func(*Responder) {
	return func(d *Responder) {
		d.registry = reg
	}
}
