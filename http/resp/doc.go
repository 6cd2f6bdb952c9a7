/*

The resp package decorates an http.ResponseWriter with ergonomic,
chainable methods for building one response to one request.

A [Responder] holds the application-wide pieces - a logger, an engine
registry, an optional template cache - and mints a [*Response] per request:

	doer := resp.NewResponder(resp.WithRegistry(reg))

	func handle(w http.ResponseWriter, r *http.Request) {
		doer.Response(w).Status(http.StatusCreated).JSON(payload)
	}

resp provides these main ways of terminating a response:
  - sending a text or HTML body
  - sending JSON data
  - redirecting
  - rendering a template through a configured engine

A Response is single-use. Once a terminating method runs, the Response is
closed: header and status mutations become no-ops and further terminating
calls return [ErrClosed].

*/
package resp
