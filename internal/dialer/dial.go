package dialer

import (
	"context"
	"errors"
	"io"
	"net"

	ihttp "github.com/nullship/httpc/internal/http"
)

// Dial opens the stream the transport writes a request to and reads a
// response from. ctx is expected to already carry the request's
// absolute deadline (set once by the client as now()+timeout); every
// blocking call below inherits it, so later connect attempts and the TLS
// handshake automatically see whatever budget is left rather than a fresh
// per-call timeout.
//
// The hostname is run through encodedHost before anything else touches
// it, and the result is written back into r.URL.Host: both the direct
// and proxied paths below, and the request serializer that runs after
// Dial returns, read r.URL.Host afterward, so encoding it once here is
// enough to keep the wire bytes, the CONNECT target and the TLS SNI
// hostname all in the same already-ASCII form.
func (d *CoreDialer) Dial(ctx context.Context, r *ihttp.PreparedRequest) (io.ReadWriteCloser, error) {
	if r.URL.Scheme == "https" && d.TLS == nil {
		return nil, ihttp.NewError(ihttp.KindHTTPSDisabled, "dial", nil)
	}

	host, err := d.encodedHost(r.URL.Host)
	if err != nil {
		return nil, ihttp.NewError(ihttp.KindInvalidURL, "encode hostname", err)
	}
	r.URL.Host = host

	if r.Proxy != nil {
		return d.dialViaProxy(ctx, r)
	}

	conn, err := d.dialDirect(ctx, host, r.URL.PortOrDefault())
	if err != nil {
		return nil, err
	}
	if r.URL.Scheme != "https" {
		return conn, nil
	}
	tlsConn, err := d.wrapTLS(ctx, conn, host)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return tlsConn, nil
}

// wrapTLS runs conn through d.TLS, firing TLSHandshakeStart/Done around
// the call.
func (d *CoreDialer) wrapTLS(ctx context.Context, conn io.ReadWriteCloser, host string) (io.ReadWriteCloser, error) {
	trace := ihttp.TraceFromContext(ctx)
	if trace.TLSHandshakeStart != nil {
		trace.TLSHandshakeStart()
	}
	tlsConn, err := d.TLS.Wrap(ctx, conn, host)
	if trace.TLSHandshakeDone != nil {
		trace.TLSHandshakeDone(err)
	}
	if err != nil {
		return nil, wrapDialErr("tls handshake", err)
	}
	return tlsConn, nil
}

// encodedHost runs host through the configured HostnameEncoder, turning
// an internationalized hostname into its ASCII form; an unconfigured
// encoder leaves the host untouched.
func (d *CoreDialer) encodedHost(host string) (string, error) {
	if d.Hostnames == nil {
		return host, nil
	}
	return d.Hostnames.Encode(host)
}

// dialDirect resolves host and tries every resolved address in order,
// returning the first successful connection or the last error if none
// succeed. ConnectStart/ConnectDone fire once per address attempted.
func (d *CoreDialer) dialDirect(ctx context.Context, host, port string) (net.Conn, error) {
	trace := ihttp.TraceFromContext(ctx)
	addrs, err := d.resolve(ctx, host)
	if err != nil {
		return nil, wrapDialErr("resolve", err)
	}
	if len(addrs) == 0 {
		return nil, ihttp.NewError(ihttp.KindIO, "resolve", errNoAddresses)
	}

	dial := &zeroDialer
	if cfg := d.ResolveConfig; cfg != nil && cfg.CustomDNSServer != "" {
		dial = &customDnsDialer
	}

	var lastErr error
	for _, addr := range addrs {
		target := net.JoinHostPort(addr, port)
		if trace.ConnectStart != nil {
			trace.ConnectStart(target)
		}
		conn, err := dial.DialContext(ctx, "tcp", target)
		if trace.ConnectDone != nil {
			trace.ConnectDone(target, err)
		}
		if err == nil {
			return conn, nil
		}
		lastErr = err
	}
	return nil, wrapDialErr("connect", lastErr)
}

var customDnsDialer = net.Dialer{Resolver: &customServerResolver}

func wrapDialErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ihttp.NewError(ihttp.KindTimeout, op, err)
	}
	return ihttp.NewError(ihttp.KindIO, op, err)
}

type errStr string

func (e errStr) Error() string { return string(e) }

var errNoAddresses = errStr("no addresses resolved for host")
