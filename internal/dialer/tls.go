package dialer

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
)

// DefaultTLSWrapper is the process-wide, crypto/tls-backed TLSWrapper.
// Config is cloned per handshake so callers may still set fields like
// RootCAs up front without racing the clone.
type DefaultTLSWrapper struct {
	Config *tls.Config
}

// Wrap performs a TLS client handshake over conn, which must be a
// net.Conn under the hood (true of every stream CoreDialer.Dial produces
// before handing it to a TLSWrapper: a direct TCP connection or a proxy
// CONNECT tunnel, both net.Conn-backed).
func (w *DefaultTLSWrapper) Wrap(ctx context.Context, conn io.ReadWriteCloser, hostname string) (io.ReadWriteCloser, error) {
	netConn, ok := conn.(net.Conn)
	if !ok {
		return nil, fmt.Errorf("tls: underlying stream is not a net.Conn (%T)", conn)
	}
	cfg := w.Config
	if cfg == nil {
		cfg = &tls.Config{}
	} else {
		cfg = cfg.Clone()
	}
	if cfg.ServerName == "" {
		cfg.ServerName = hostname
	}
	c := tls.Client(netConn, cfg)
	if err := c.HandshakeContext(ctx); err != nil {
		return nil, err
	}
	return c, nil
}
