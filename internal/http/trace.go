package http

import "context"

// ClientTrace is an observability hook set, modeled on the shape of
// net/http/httptrace.ClientTrace but deliberately not importing it: this
// module's transport has nothing in common with net/http's internals, so
// wiring against the stdlib trace hooks would mean faking events that
// never happen here (connection reuse, HTTP/2 stream push, etc).
// Callers attach a trace with WithClientTrace; any nil hook is skipped.
type ClientTrace struct {
	// DNSStart fires before host is resolved, once per dial attempt.
	DNSStart func(host string)
	// DNSDone fires once resolution finishes, successfully or not. It
	// also fires, with a nil err, when a static hosts entry or an IP
	// literal skipped the real lookup.
	DNSDone func(err error)
	// ConnectStart fires before a TCP connect attempt to addr begins.
	ConnectStart func(addr string)
	// ConnectDone fires once a connect attempt to addr finishes. A
	// multi-address dial fires this once per address tried.
	ConnectDone func(addr string, err error)
	// TLSHandshakeStart fires before the TLS client handshake begins.
	TLSHandshakeStart func()
	// TLSHandshakeDone fires once the handshake finishes, successfully or
	// not.
	TLSHandshakeDone func(err error)
	// GotConn fires once the dialer returns a usable stream.
	GotConn func()
	// WroteRequest fires after the request line and headers have been
	// written.
	WroteRequest func(err error)
	// WroteRequestBody fires after the request body, if any, has been
	// fully written.
	WroteRequestBody func(err error)
	// GotFirstResponseByte fires once the status line has been parsed.
	GotFirstResponseByte func()
	// GotHeaders fires once the full response header block has been
	// parsed, after GotFirstResponseByte.
	GotHeaders func()
	// Redirect fires once per hop the redirect driver decides to follow,
	// with the URL it's about to move to.
	Redirect func(to string)
}

type clientTraceKey struct{}

// WithClientTrace attaches t to ctx. A context can carry only one trace;
// attaching a second one replaces the first.
func WithClientTrace(ctx context.Context, t *ClientTrace) context.Context {
	return context.WithValue(ctx, clientTraceKey{}, t)
}

// TraceFromContext returns the trace attached to ctx, or a zero-value
// trace (every hook nil) if none was attached, so callers can invoke
// hooks unconditionally.
func TraceFromContext(ctx context.Context) *ClientTrace {
	if t, ok := ctx.Value(clientTraceKey{}).(*ClientTrace); ok && t != nil {
		return t
	}
	return &ClientTrace{}
}
