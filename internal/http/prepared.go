package http

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// PreparedRequest is an immutable, ready-to-serialize view of a Request:
// its URL is parsed and its body is turned into a replayable GetBody
// func. The redirect limit and size caps are carried over unchanged; the
// redirect driver applies the redirect default itself. Header default insertion (Host, Accept, User-Agent, Connection,
// Content-Length, Proxy-Authorization) happens later, in the serializer,
// which is the one place that needs to know what the caller did and
// didn't set.
type PreparedRequest struct {
	*Request

	URL *URL

	// GetBody returns a fresh reader over the body every time it's
	// called, the way net/http.Request.GetBody works, so a request can
	// be re-sent across redirects: method and body are preserved on
	// 307/308, not just on 301/302/303.
	GetBody func() (io.ReadCloser, error)

	HasBody       bool
	ContentLength int64 // meaningful only when HasBody
}

// Prepare parses r.URL and snapshots r.Body into a replayable GetBody.
// It does not mutate r; it is safe to Prepare the same Request more than
// once.
func (r *Request) Prepare() (*PreparedRequest, error) {
	u, err := ParseURL(r.URL, nil)
	if err != nil {
		return nil, err
	}
	pr := &PreparedRequest{Request: r, URL: u}
	if err := pr.prepareBody(); err != nil {
		return nil, NewError(KindInvalidURL, "prepare request body", err)
	}
	return pr, nil
}

// PrepareFor prepares r against u instead of r.URL, with the same body
// snapshot rules as Prepare. The redirect driver does not call it: it
// keeps the current PreparedRequest's body snapshot and swaps in the
// resolved URL.
func (r *Request) PrepareFor(u *URL) (*PreparedRequest, error) {
	pr := &PreparedRequest{Request: r, URL: u}
	if err := pr.prepareBody(); err != nil {
		return nil, NewError(KindInvalidURL, "prepare request body", err)
	}
	return pr, nil
}

func (r *PreparedRequest) prepareBody() error {
	if r.Request.Body == nil {
		r.HasBody = false
		r.GetBody = func() (io.ReadCloser, error) { return NoBody, nil }
		return nil
	}
	r.HasBody = true
	switch b := r.Request.Body.(type) {
	case string:
		r.ContentLength = int64(len(b))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(b)), nil
		}
	case []byte:
		r.ContentLength = int64(len(b))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(b)), nil
		}
	case *bytes.Buffer:
		r.ContentLength = int64(b.Len())
		buf := b.Bytes()
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(buf)), nil
		}
	case *bytes.Reader:
		r.ContentLength = int64(b.Len())
		snapshot := *b
		r.GetBody = func() (io.ReadCloser, error) {
			rr := snapshot
			return io.NopCloser(&rr), nil
		}
	case *strings.Reader:
		r.ContentLength = int64(b.Len())
		snapshot := *b
		r.GetBody = func() (io.ReadCloser, error) {
			rr := snapshot
			return io.NopCloser(&rr), nil
		}
	case io.Reader:
		// Arbitrary readers can't be replayed across redirects; buffer
		// them once up front so GetBody stays callable more than once,
		// the way the snapshot-based cases above are.
		data, err := io.ReadAll(b)
		if err != nil {
			return err
		}
		r.ContentLength = int64(len(data))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		}
	default:
		return fmt.Errorf("unsupported body type: %T", r.Request.Body)
	}
	return nil
}
