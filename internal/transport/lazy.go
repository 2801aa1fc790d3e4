package transport

import (
	"io"

	ihttp "github.com/nullship/httpc/internal/http"
	"github.com/nullship/httpc/internal/transport/chunked"
)

// lazyBody adapts a framed body reader plus the connection it reads from
// into the ihttp.LazyBody contract: bulk Read, Close releases the
// connection (there's no pooling), Trailer is non-nil only after chunked
// framing reached its terminating zero chunk.
type lazyBody struct {
	r       io.Reader
	conn    io.Closer
	chunked *chunked.Reader // non-nil only for the chunked framing path
}

func (b *lazyBody) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	switch {
	case err == nil:
	case err == io.EOF:
		b.conn.Close()
	case err == io.ErrUnexpectedEOF:
		b.conn.Close()
		err = ihttp.NewError(ihttp.KindMalformedResponse, "read response body", err)
	default:
		b.conn.Close()
		if _, ok := err.(chunked.FramingError); ok {
			err = ihttp.NewError(ihttp.KindMalformedResponse, "read response body", err)
		} else {
			err = wrapIOErr("read response body", err)
		}
	}
	return n, err
}

func (b *lazyBody) Close() error {
	return b.conn.Close()
}

func (b *lazyBody) Trailer() ihttp.Header {
	if b.chunked == nil {
		return nil
	}
	return ihttp.Header(b.chunked.Trailer())
}

// noBody is the LazyBody attached to HEAD responses and any response
// whose status never carries one.
type noBody struct{ conn io.Closer }

func (b noBody) Read([]byte) (int, error) { b.conn.Close(); return 0, io.EOF }
func (b noBody) Close() error            { return b.conn.Close() }
func (noBody) Trailer() ihttp.Header     { return nil }
