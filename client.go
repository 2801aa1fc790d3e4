package http

import (
	"context"

	"github.com/nullship/httpc/internal"
)

// Client drives the redirect loop over a chain of middleware-wrapped
// single-hop exchanges. The zero value dials nothing on its own; set
// Dialer to a *CoreDialer (or your own ihttp.Dialer) before use.
type Client = internal.Client

// Handler performs one request/response exchange without following
// redirects.
type Handler = internal.Handler

// Middleware wraps a Handler the way net/http round trippers compose:
// the last Use'd middleware runs outermost.
type Middleware = internal.Middleware

// ClientTrace is an observability hook set a caller attaches to a
// context with WithClientTrace.
type ClientTrace = internal.ClientTrace

// WithClientTrace attaches t to ctx for the duration of one Do/DoLazy call.
func WithClientTrace(ctx context.Context, t *ClientTrace) context.Context {
	return internal.WithClientTrace(ctx, t)
}

// Get builds a GET Request for url.
func Get(url string) *Request { return &Request{Method: "GET", URL: url} }

// Head builds a HEAD Request for url.
func Head(url string) *Request { return &Request{Method: "HEAD", URL: url} }

// Post builds a POST Request for url with the given body.
func Post(url string, body interface{}) *Request {
	return &Request{Method: "POST", URL: url, Body: body}
}

// Put builds a PUT Request for url with the given body.
func Put(url string, body interface{}) *Request {
	return &Request{Method: "PUT", URL: url, Body: body}
}

// Delete builds a DELETE Request for url.
func Delete(url string) *Request { return &Request{Method: "DELETE", URL: url} }

// Connect builds a CONNECT Request for url.
func Connect(url string) *Request { return &Request{Method: "CONNECT", URL: url} }

// Options builds an OPTIONS Request for url.
func Options(url string) *Request { return &Request{Method: "OPTIONS", URL: url} }

// Trace builds a TRACE Request for url.
func Trace(url string) *Request { return &Request{Method: "TRACE", URL: url} }

// Patch builds a PATCH Request for url with the given body.
func Patch(url string, body interface{}) *Request {
	return &Request{Method: "PATCH", URL: url, Body: body}
}
