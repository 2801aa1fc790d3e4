package transport

import (
	"errors"
	"net"

	ihttp "github.com/nullship/httpc/internal/http"
)

// wrapIOErr classifies a raw I/O error as KindTimeout when it's a
// deadline expiry (every blocking read/write fails with Timeout once the
// per-request deadline, set once via net.Conn.SetDeadline, is reached)
// or KindIO otherwise.
func wrapIOErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return ihttp.NewError(ihttp.KindTimeout, op, err)
	}
	return ihttp.NewError(ihttp.KindIO, op, err)
}
