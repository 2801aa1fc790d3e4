package http

import "strconv"

// ProxyDescriptor describes an HTTP CONNECT proxy a request should be
// routed through. It carries no URL-parsing logic of its own: turning a
// proxy URL string into a ProxyDescriptor is a caller/adapter concern
// (see the root-level ProxyFromEnvironment helper); the dialer only
// consumes an already-built descriptor.
type ProxyDescriptor struct {
	Scheme   string // "http"; only HTTP CONNECT proxies are supported
	Host     string
	Port     int    // defaults to 1080 (curl convention) when zero
	User     string // empty means no credentials
	Password string
}

// PortOrDefault returns Port, defaulting to 1080 per curl's convention.
func (p *ProxyDescriptor) PortOrDefault() int {
	if p.Port != 0 {
		return p.Port
	}
	return 1080
}

// HostPort renders "host:port" with the effective port.
func (p *ProxyDescriptor) HostPort() string {
	return p.Host + ":" + strconv.Itoa(p.PortOrDefault())
}

// HasCredentials reports whether Proxy-Authorization should be sent.
func (p *ProxyDescriptor) HasCredentials() bool {
	return p.User != ""
}
