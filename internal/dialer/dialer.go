// Package dialer implements the transport-opening collaborators the core
// depends on: DNS resolution, TCP connect across every resolved address
// under one deadline, optional HTTP CONNECT proxying, and handoff to a
// TLS wrapper. Every collaborator is an interface, and CoreDialer is the
// default wiring of all of them; DefaultTLSWrapper is the crypto/tls-backed
// TLS collaborator it uses once its TLS field is set.
package dialer

import (
	"context"
	"io"

	ihttp "github.com/nullship/httpc/internal/http"
)

// TLSWrapper turns a connected byte stream into a TLS-protected one,
// verifying against hostname for SNI/certificate checks.
type TLSWrapper interface {
	Wrap(ctx context.Context, conn io.ReadWriteCloser, hostname string) (io.ReadWriteCloser, error)
}

// HostnameEncoder converts an internationalized hostname to its ASCII
// (punycode) form, or returns it unchanged if it's already ASCII.
type HostnameEncoder interface {
	Encode(host string) (string, error)
}

// CoreDialer is the default Dialer: plain net.Dialer-based TCP connect,
// honoring ResolveConfig's static hosts and custom DNS server, an
// optional proxy CONNECT hop, and a pluggable TLSWrapper for https. It
// holds no connection state of its own; every request opens a fresh
// transport.
type CoreDialer struct {
	ResolveConfig *ResolveConfig

	// TLS, if nil, causes any https:// request to fail with
	// KindHTTPSDisabled instead of panicking or silently downgrading.
	TLS TLSWrapper

	// Hostnames, if nil, leaves hostnames untouched. ParseURL does not
	// itself reject non-ASCII authorities, so a caller routing
	// internationalized hostnames anywhere should set this; Dial runs
	// every hostname through it once, before the wire bytes, the CONNECT
	// target or the TLS SNI hostname are built.
	Hostnames HostnameEncoder
}

var _ ihttp.Dialer = (*CoreDialer)(nil)
