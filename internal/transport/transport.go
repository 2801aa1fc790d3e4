package transport

import (
	"context"
	"io"

	ihttp "github.com/nullship/httpc/internal/http"
)

// Transport serializes a PreparedRequest onto a byte stream and parses a
// response back off one. It knows nothing about dialing, proxies or
// redirects; it only knows HTTP/1.1 message syntax. ctx carries the
// trace hooks both methods fire around their writes and reads.
type Transport interface {
	Write(ctx context.Context, w io.Writer, r *ihttp.PreparedRequest) error
	// Read parses the status line and headers eagerly, then attaches an
	// appropriately-framed body reader as a LazyBody. conn is closed once
	// the body is fully consumed or the caller closes the body early:
	// there's no connection pooling, so the stream is owned by the
	// response until its body is done.
	Read(ctx context.Context, conn io.ReadWriteCloser, method string, maxStatusLine, maxHeaders int) (*ParsedResponse, error)
}

// ParsedResponse is the transport's output before the redirect driver or
// client turns it into either a Response (eager) or LazyResponse (lazy).
type ParsedResponse struct {
	StatusCode int
	Reason     string
	Header     ihttp.Header
	Body       ihttp.LazyBody
}

// HTTP1 is the only Transport this module implements; HTTP/2 support is
// not provided.
type HTTP1 struct{}
