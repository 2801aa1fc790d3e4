package http

import (
	"github.com/nullship/httpc/internal/dialer"
	ihttp "github.com/nullship/httpc/internal/http"
)

// Dialer opens the byte stream a request is written to and read from.
// Unlike net/http.Transport, a Dialer must not hold active connection
// state, since this module opens a fresh transport per request.
type Dialer = ihttp.Dialer

// CoreDialer is the default Dialer: plain TCP connect honoring
// ResolveConfig, an optional proxy CONNECT hop, and a pluggable
// TLSWrapper for https. The zero value dials directly with no TLS
// support; set TLS to &DefaultTLSWrapper{} to allow https:// requests.
type CoreDialer = dialer.CoreDialer

// ResolveConfig customizes how CoreDialer turns a hostname into
// addresses: a custom DNS server, an IPv4/IPv6 preference, and a static
// hosts table.
type ResolveConfig = dialer.ResolveConfig

// TLSWrapper turns a connected byte stream into a TLS-protected one.
type TLSWrapper = dialer.TLSWrapper

// DefaultTLSWrapper is the crypto/tls-backed TLSWrapper. Config may be
// nil to use the standard library's defaults with ServerName set to the
// dialed hostname.
type DefaultTLSWrapper = dialer.DefaultTLSWrapper

// HostnameEncoder converts an internationalized hostname to its ASCII
// (punycode) form.
type HostnameEncoder = dialer.HostnameEncoder

// PunycodeEncoder is the default HostnameEncoder, backed by
// golang.org/x/net/idna.
type PunycodeEncoder = dialer.PunycodeEncoder
