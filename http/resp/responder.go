package resp

import (
	"net/http"

	"github.com/tidemill/reply/http/render"
	"github.com/tidemill/reply/logger"
)

// Responder maintains reusable pieces for responding to HTTP requests.
//
// Most oftentimes, setting up a single instance of a Responder suffices for
// an application. Meaning, one needs only application-wide configuration of
// the engine registry, template cache and logger every *Response consults.
// Our suggestion does not exclude creating diverse Responders
// for non-overlapping segments of an application.
type Responder struct {
	logger logger.Logger

	// Engines available when rendering by file extension
	registry *render.Registry

	// Preloaded template tables, consulted ahead of the registry
	// when a *Response carries a card
	cache *render.Cache
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
//
// Without WithRegistry, the Responder falls back to render.Default.
// Without WithLogger, the Responder logs through logger.New.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := new(Responder)
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if d.registry == nil {
		d.registry = render.Default()
	}

	return d
}

// Response mints the single-use *Response decorating w,
// configured by the Fns passed in.
func (doer *Responder) Response(w http.ResponseWriter, opts ...Fn) *Response {
	r := &Response{doer: doer, w: w}
	for _, opt := range opts {
		opt(r)
	}

	return r
}
