// Package internal wires the lower-level packages (http, transport,
// dialer) into the Client the root package exposes: middleware chaining,
// the deadline/timeout plumbing, and the redirect driver.
package internal

import (
	"context"
	"io"
	"time"

	ihttp "github.com/nullship/httpc/internal/http"
	"github.com/nullship/httpc/internal/transport"
)

// Handler performs one request/response exchange: dial, write, parse
// headers. It does not follow redirects; that's the Client's job.
type Handler func(ctx context.Context, pr *ihttp.PreparedRequest) (*transport.ParsedResponse, error)

// Middleware wraps a Handler, the way net/http round trippers compose:
// the last Use'd middleware runs outermost.
type Middleware func(next Handler) Handler

// Client drives the redirect loop over a chain of middleware-wrapped
// single-hop exchanges.
type Client struct {
	Dialer      ihttp.Dialer
	middlewares []Middleware
	transport   transport.HTTP1
}

// Use appends mws to the chain. The last Use'd middleware executes
// outermost (wraps everything Use'd before it).
func (c *Client) Use(mws ...Middleware) {
	c.middlewares = append(c.middlewares, mws...)
}

func (c *Client) handler() Handler {
	next := c.exchange
	for _, mw := range c.middlewares {
		next = mw(next)
	}
	return next
}

// exchange is the innermost Handler: dial, write the request, parse the
// response headers and attach a framed LazyBody.
func (c *Client) exchange(ctx context.Context, pr *ihttp.PreparedRequest) (*transport.ParsedResponse, error) {
	trace := traceFromContext(ctx)

	conn, err := c.Dialer.Dial(ctx, pr)
	if err != nil {
		return nil, err
	}
	if trace.GotConn != nil {
		trace.GotConn()
	}
	if dl, ok := ctx.Deadline(); ok {
		if ds, ok := conn.(interface{ SetDeadline(time.Time) error }); ok {
			ds.SetDeadline(dl)
		}
	}
	if err := c.transport.Write(ctx, conn, pr); err != nil {
		conn.Close()
		return nil, err
	}
	resp, err := c.transport.Read(ctx, conn, pr.Method, pr.MaxStatusLineBytes, pr.MaxHeaderBytes)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return resp, nil
}

// DoLazy drives the redirect loop to its final hop and returns metadata
// plus an incremental body reader.
func (c *Client) DoLazy(ctx context.Context, req *ihttp.Request) (*ihttp.LazyResponse, error) {
	var deadline time.Time
	if req.Timeout > 0 {
		deadline = time.Now().Add(req.Timeout)
	}

	maxRedirects := req.MaxRedirects
	if maxRedirects == 0 {
		maxRedirects = 100
	}

	pr, err := req.Prepare()
	if err != nil {
		return nil, err
	}

	handle := c.handler()
	hops := 0
	for {
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return nil, ihttp.NewError(ihttp.KindTimeout, "send request", nil)
		}

		dctx := ctx
		var cancel context.CancelFunc
		if !deadline.IsZero() {
			dctx, cancel = context.WithDeadline(ctx, deadline)
		}
		resp, err := handle(dctx, pr)
		if cancel != nil {
			cancel()
		}
		if err != nil {
			return nil, err
		}

		location := resp.Header.Get("Location")
		if ihttp.IsRedirectStatus(resp.StatusCode) && location != "" {
			if hops >= maxRedirects {
				resp.Body.Close()
				return nil, ihttp.NewError(ihttp.KindTooManyRedirects, "follow redirect", nil)
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			newURL, err := ihttp.ResolveRedirect(pr.URL, location)
			if err != nil {
				return nil, err
			}
			if trace := traceFromContext(ctx); trace.Redirect != nil {
				trace.Redirect(newURL.String())
			}
			hops++
			// Reuse the current body snapshot: re-preparing would read an
			// arbitrary io.Reader body a second time, after it is drained.
			next := *pr
			next.URL = newURL
			pr = &next
			continue
		}

		return &ihttp.LazyResponse{
			FinalURL:   pr.URL,
			StatusCode: resp.StatusCode,
			Reason:     resp.Reason,
			Header:     resp.Header,
			Body:       resp.Body,
		}, nil
	}
}

// Do drives the redirect loop to completion and buffers the body.
func (c *Client) Do(ctx context.Context, req *ihttp.Request) (*ihttp.Response, error) {
	lazy, err := c.DoLazy(ctx, req)
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(lazy.Body)
	lazy.Body.Close()
	if err != nil {
		return nil, err
	}
	return &ihttp.Response{
		FinalURL:   lazy.FinalURL,
		StatusCode: lazy.StatusCode,
		Reason:     lazy.Reason,
		Header:     lazy.Header,
		Body:       body,
	}, nil
}
