package resp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"strconv"

	"github.com/tidemill/reply/http/render"
	"github.com/tidemill/reply/logger"
)

// A Fn is a functional option that mutates the state of a new *Response.
type Fn func(*Response)

// Card attaches the opaque key used to look up a preloaded template table
// in the Responder's cache.
//
// Used with Response.Render and Response.RenderString.
func Card(key string) Fn {
	return func(r *Response) {
		r.card = key
	}
}

// A Response decorates the http.ResponseWriter for one request with
// chainable convenience methods over the transport primitives:
// status line, headers, body write, stream end.
//
// A Response is exclusive to one in-flight request and is not safe
// for concurrent use. It has exactly two states, open and closed;
// Send, SendStatus, JSON, Redirect and Render transition open to closed.
type Response struct {
	doer   *Responder
	w      http.ResponseWriter
	card   string
	code   int
	closed bool
}

// Status sets the response status code. No range validation is performed;
// the caller is trusted.
func (r *Response) Status(code int) *Response {
	if r.closed {
		return r
	}

	r.code = code
	return r
}

// Set coerces value to its string representation
// and sets it as the named header.
func (r *Response) Set(field string, value any) *Response {
	if r.closed {
		return r
	}

	r.w.Header().Set(field, fmt.Sprint(value))
	return r
}

// Get returns the current value of the named header,
// or the empty string when unset. Get never mutates the Response.
func (r *Response) Get(field string) string {
	return r.w.Header().Get(field)
}

// Type resolves the type token - a file extension like "json", with or
// without its leading dot, or a full media type - through ContentType
// and sets the Content-Type header.
func (r *Response) Type(token string) *Response {
	return r.Set("Content-Type", ContentType(token))
}

// Send terminates the response with body as its payload,
// defaulting the Content-Type header to HTML when none is set.
//
// Send the payload with another status code by chaining:
//
//	r.Status(http.StatusCreated).Send(body)
func (r *Response) Send(body string) error {
	if r.closed {
		return ErrClosed
	}

	if r.Get("Content-Type") == "" {
		r.Set("Content-Type", htmlContentType)
	}

	return r.end([]byte(body))
}

// SendStatus sets the status code and terminates the response with the
// standard reason phrase for it as the payload, e.g. "Not Found" for 404,
// defaulting the Content-Type header to plain text when none is set.
// Codes without a standard phrase fall back to the code's decimal string.
func (r *Response) SendStatus(code int) error {
	if r.closed {
		return ErrClosed
	}

	r.code = code
	if r.Get("Content-Type") == "" {
		r.Set("Content-Type", textContentType)
	}

	phrase := http.StatusText(code)
	if phrase == "" {
		phrase = strconv.Itoa(code)
	}

	return r.end([]byte(phrase))
}

// JSON serializes v and terminates the response with the JSON text,
// setting the Content-Type header accordingly.
//
// Unserializable payloads return an error wrapping ErrInvalid
// and leave the Response open.
//
// A nil payload terminates with an empty body rather than the JSON
// literal "null".
func (r *Response) JSON(v any) error {
	if r.closed {
		return ErrClosed
	}

	var body []byte
	if v != nil {
		var err error
		if body, err = json.Marshal(v); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalid, err)
		}
	}

	r.Set("Content-Type", jsonContentType)
	return r.end(body)
}

// Redirect sets the Location header to u and terminates the response with an
// empty body. The status code defaults to 302 Found when none was set;
// chain Status to redirect permanently:
//
//	r.Status(http.StatusMovedPermanently).Redirect(u)
func (r *Response) Redirect(u string) error {
	if r.closed {
		return ErrClosed
	}

	if r.code == 0 {
		r.code = http.StatusFound
	}

	r.Set("Location", u)
	return r.end(nil)
}

// Render resolves ref to a template and its engine, renders it with data,
// and terminates the response: 200 with the rendered document on success,
// 500 with the error text on failure.
//
// The error body is written verbatim; when engine errors may carry
// sensitive detail, prefer RenderString and shape the response manually.
//
// The failure path logs through the Responder's logger and still returns
// the causing error.
func (r *Response) Render(ref string, data map[string]any) error {
	if r.closed {
		return ErrClosed
	}

	doc, err := r.RenderString(ref, data)
	if err != nil {
		r.doer.logger.Error(err.Error(), &logger.LogContext{
			Error: err,
			Data:  map[string]any{"template": ref},
		})

		if sendErr := r.Status(http.StatusInternalServerError).Send(err.Error()); sendErr != nil {
			return sendErr
		}

		return err
	}

	return r.Status(http.StatusOK).Send(doc)
}

// RenderString resolves ref to a template and its engine and renders it with
// data, forwarding the result to the caller without writing anything.
//
// Resolution tries the Responder's cache first, when one is configured and
// the Response carries a card: ref is looked up in the card's template table
// and, on a hit, the table's own engine renders the cached source. Otherwise
// ref itself is the template source or path, and its trailing file extension
// picks the engine out of the Responder's registry.
//
// The data map is defaulted when nil and always gains a "cache": true entry
// before reaching the engine.
//
// An unresolvable engine returns an error wrapping render.ErrNoEngine;
// an unusable template reference one wrapping render.ErrNoTemplate.
// Neither invokes any engine.
func (r *Response) RenderString(ref string, data map[string]any) (string, error) {
	src, eng, err := r.resolve(ref)
	if err != nil {
		return "", err
	}

	if data == nil {
		data = make(map[string]any)
	}
	data["cache"] = true

	return eng(src, data)
}

// resolve determines the template source and Engine for ref
// per the precedence RenderString documents.
func (r *Response) resolve(ref string) (string, render.Engine, error) {
	var (
		src    string
		eng    render.Engine
		cached bool
	)

	if r.doer.cache != nil && r.card != "" {
		if entry, ok := r.doer.cache.Entry(r.card); ok {
			if s, ok := entry.Source(ref); ok {
				cached = true
				src = s
				eng, _ = entry.Engine()
			}
		}
	}

	if !cached {
		src = ref
		if r.doer.registry != nil {
			eng, _ = r.doer.registry.Lookup(path.Ext(ref))
		}
	}

	if eng == nil {
		return "", nil, fmt.Errorf("%w: cannot render %q", render.ErrNoEngine, ref)
	}

	if src == "" {
		return "", nil, fmt.Errorf("%w: %q", render.ErrNoTemplate, ref)
	}

	return src, eng, nil
}

// end writes out the status line, headers and body, and closes the Response.
// Content-Length is computed from the final body's byte length when unset.
func (r *Response) end(body []byte) error {
	if r.Get("Content-Length") == "" {
		r.Set("Content-Length", strconv.Itoa(len(body)))
	}

	if r.code == 0 {
		r.code = http.StatusOK
	}

	r.w.WriteHeader(r.code)

	var err error
	if len(body) > 0 {
		_, err = r.w.Write(body)
	}

	r.closed = true
	return err
}
