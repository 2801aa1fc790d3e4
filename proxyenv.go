package http

import (
	"net/url"
	"os"
	"strconv"
	"strings"
)

// ProxyFromEnvironment builds a ProxyDescriptor from the HTTP_PROXY,
// HTTPS_PROXY and NO_PROXY environment variables (and their lowercase
// forms, checked first per curl/wget convention). A Dialer only ever
// consumes an already-built ProxyDescriptor, so turning environment
// strings into one lives here, at the adapter layer, rather than in the
// dialer itself.
//
// It returns nil, nil when targetURL's host is covered by NO_PROXY, or
// when no proxy variable is set for targetURL's scheme. It returns an
// error if the matching proxy variable is set but isn't a valid
// "http://[user:pass@]host[:port]" URL; non-HTTP proxy schemes (e.g.
// socks5://) are rejected, since only HTTP CONNECT proxies are
// supported.
func ProxyFromEnvironment(targetURL *URL) (*ProxyDescriptor, error) {
	if noProxyMatches(targetURL.Host) {
		return nil, nil
	}

	var raw string
	switch targetURL.Scheme {
	case "https":
		raw = firstEnv("https_proxy", "HTTPS_PROXY")
	case "http":
		raw = firstEnv("http_proxy", "HTTP_PROXY")
	}
	if raw == "" {
		return nil, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, NewProxyEnvError(raw, err)
	}
	if u.Scheme != "http" {
		return nil, NewProxyEnvError(raw, errUnsupportedProxyScheme(u.Scheme))
	}
	if u.Hostname() == "" {
		return nil, NewProxyEnvError(raw, errEmptyProxyHost)
	}

	desc := &ProxyDescriptor{Scheme: "http", Host: u.Hostname()}
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, NewProxyEnvError(raw, err)
		}
		desc.Port = port
	}
	if u.User != nil {
		desc.User = u.User.Username()
		desc.Password, _ = u.User.Password()
	}
	return desc, nil
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// noProxyMatches reports whether host is covered by the NO_PROXY list: a
// comma-separated set of suffixes, each optionally preceded by a '.', so
// "example.com" also matches "api.example.com". "*" disables all proxying.
func noProxyMatches(host string) bool {
	list := firstEnv("no_proxy", "NO_PROXY")
	if list == "" {
		return false
	}
	host = strings.ToLower(host)
	for _, entry := range strings.Split(list, ",") {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		if entry == "*" {
			return true
		}
		entry = strings.TrimPrefix(entry, ".")
		if host == entry || strings.HasSuffix(host, "."+entry) {
			return true
		}
	}
	return false
}

type proxyEnvError struct {
	raw string
	err error
}

func (e *proxyEnvError) Error() string {
	return "invalid proxy url " + strconv.Quote(e.raw) + ": " + e.err.Error()
}

func (e *proxyEnvError) Unwrap() error { return e.err }

// NewProxyEnvError wraps a proxy-URL parsing failure with the offending
// raw value, the way ProxyFromEnvironment reports every failure mode.
func NewProxyEnvError(raw string, err error) error {
	return &proxyEnvError{raw: raw, err: err}
}

type errUnsupportedProxyScheme string

func (e errUnsupportedProxyScheme) Error() string {
	return "unsupported proxy scheme " + strconv.Quote(string(e)) + ", only http is supported"
}

type proxyEnvErrStr string

func (e proxyEnvErrStr) Error() string { return string(e) }

var errEmptyProxyHost = proxyEnvErrStr("proxy url has no host")
