package http

import (
	"strings"
	"time"
)

// clone returns a shallow copy of r, the way each With* method hands back
// a new value instead of mutating the receiver (grounded on the original
// Rust source's consuming with_*(mut self) -> Request chain, adapted to
// Go's non-consuming method values: copy-then-mutate-the-copy instead of
// taking ownership).
func (r *Request) clone() *Request {
	c := *r
	return &c
}

// WithHeader returns a copy of r with name/value appended to its headers.
// Use this to add a single header to a request before sending it.
func (r *Request) WithHeader(name, value string) *Request {
	c := r.clone()
	c.Header = c.Header.Clone().Add(name, value)
	return c
}

// WithHeaders returns a copy of r with every entry of headers appended.
func (r *Request) WithHeaders(headers RequestHeader) *Request {
	c := r.clone()
	c.Header = c.Header.Clone()
	for _, f := range headers {
		c.Header = c.Header.Add(f.Name, f.Value)
	}
	return c
}

// WithBody returns a copy of r with its body set to body (nil, string,
// []byte, or io.Reader; see PreparedRequest.prepareBody for how each is
// handled).
func (r *Request) WithBody(body interface{}) *Request {
	c := r.clone()
	c.Body = body
	return c
}

// WithQueryParam returns a copy of r with name=value appended to the
// query string of r.URL. Existing query parameters are preserved and any
// fragment is left trailing after the new parameter; the value is taken
// verbatim, so callers that need percent-encoding must encode it
// themselves.
func (r *Request) WithQueryParam(name, value string) *Request {
	c := r.clone()
	base, frag := splitFragment(c.URL)
	sep := "?"
	if hasQuery(base) {
		sep = "&"
	}
	c.URL = base + sep + name + "=" + value
	if frag != "" {
		c.URL += "#" + frag
	}
	return c
}

func hasQuery(rawURL string) bool {
	return strings.IndexByte(rawURL, '?') >= 0
}

// WithTimeout returns a copy of r with Timeout set. This bounds the
// entire send, including every redirect hop, not any single hop.
func (r *Request) WithTimeout(d time.Duration) *Request {
	c := r.clone()
	c.Timeout = d
	return c
}

// WithProxy returns a copy of r routed through the given proxy.
func (r *Request) WithProxy(p *ProxyDescriptor) *Request {
	c := r.clone()
	c.Proxy = p
	return c
}

// WithMaxRedirects returns a copy of r with its redirect hop cap set.
// Zero means "use the default of 100".
func (r *Request) WithMaxRedirects(n int) *Request {
	c := r.clone()
	c.MaxRedirects = n
	return c
}

// WithMaxHeaderBytes returns a copy of r with a cap on the response
// header block's size. Zero means unlimited.
func (r *Request) WithMaxHeaderBytes(n int) *Request {
	c := r.clone()
	c.MaxHeaderBytes = n
	return c
}

// WithMaxStatusLineBytes returns a copy of r with a cap on the response
// status line's size. Zero means unlimited.
func (r *Request) WithMaxStatusLineBytes(n int) *Request {
	c := r.clone()
	c.MaxStatusLineBytes = n
	return c
}
