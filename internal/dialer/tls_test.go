package dialer

import (
	"bytes"
	"context"
	"io"
	"testing"
)

type notANetConn struct {
	bytes.Buffer
}

func (notANetConn) Close() error { return nil }

func TestDefaultTLSWrapperRejectsNonNetConn(t *testing.T) {
	w := &DefaultTLSWrapper{}
	var conn io.ReadWriteCloser = &notANetConn{}
	_, err := w.Wrap(context.Background(), conn, "example.com")
	if err == nil {
		t.Fatal("expected an error wrapping a non-net.Conn stream")
	}
}
