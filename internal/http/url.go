package http

import (
	"strings"
)

// URL is a parsed absolute HTTP(S) URL, split the way this module needs it
// split: the pieces that make it onto the wire, and the fragment, which
// never does. Deliberately not net/url.URL: the redirect-resolution and
// fragment-inheritance rules below (RFC 7231 §7.1.2) don't map cleanly onto
// net/url's Parse/ResolveReference, and IPv6 literals need bracket-aware
// port splitting that this module wants full control over.
type URL struct {
	Scheme   string // "http" or "https", always lowercase
	Host     string // without port
	Port     string // empty means "use the scheme default"
	Path     string // always begins with "/"
	Query    string // without the leading '?'; empty means "no query"
	Fragment string // without the leading '#'; never sent on the wire
}

// DefaultPort returns the port this URL would use absent an explicit one.
func (u *URL) DefaultPort() string {
	if u.Scheme == "https" {
		return "443"
	}
	return "80"
}

// PortOrDefault returns u.Port, or the scheme's default if none was given.
func (u *URL) PortOrDefault() string {
	if u.Port != "" {
		return u.Port
	}
	return u.DefaultPort()
}

// HostPort returns "host:port", always including the port explicitly.
func (u *URL) HostPort() string {
	return u.Host + ":" + u.PortOrDefault()
}

// Authority renders "host" when the port is implied, "host:port"
// otherwise. This is the same rule the Host header uses.
func (u *URL) Authority() string {
	if u.Port == "" || u.Port == u.DefaultPort() {
		return u.Host
	}
	return u.HostPort()
}

// RequestURI renders "path[?query]", the request-target for a direct
// (non-proxied) request line. The fragment is never included.
func (u *URL) RequestURI() string {
	if u.Query != "" {
		return u.Path + "?" + u.Query
	}
	return u.Path
}

// String renders the absolute form "scheme://host[:port]path[?query]",
// used as the request-target when routing a plain http:// request through
// a proxy. The fragment is never included.
func (u *URL) String() string {
	var b strings.Builder
	b.WriteString(u.Scheme)
	b.WriteString("://")
	b.WriteString(u.Authority())
	b.WriteString(u.RequestURI())
	return b.String()
}

// ParseURL parses an absolute "scheme://authority/path?query#fragment"
// URL. redirectedFrom, if non-nil, supplies the fragment to inherit when
// the parsed URL doesn't carry one of its own (RFC 7231 §7.1.2).
func ParseURL(raw string, redirectedFrom *URL) (*URL, error) {
	var scheme string
	var rest string
	switch {
	case strings.HasPrefix(raw, "http://"):
		scheme, rest = "http", raw[len("http://"):]
	case strings.HasPrefix(raw, "https://"):
		scheme, rest = "https", raw[len("https://"):]
	default:
		return nil, NewError(KindUnsupportedScheme, "parse url", nil)
	}

	authority, resource := splitAuthority(rest)
	host, port, err := splitHostPort(authority)
	if err != nil {
		return nil, NewError(KindInvalidURL, "parse url", err)
	}
	if host == "" {
		return nil, NewError(KindInvalidURL, "parse url", errEmptyHost)
	}

	pathAndQuery, fragment := splitFragment(resource)
	if fragment == "" && redirectedFrom != nil {
		fragment = redirectedFrom.Fragment
	}

	path, query := splitQuery(pathAndQuery)
	if path == "" {
		path = "/"
	}

	return &URL{
		Scheme:   scheme,
		Host:     host,
		Port:     port,
		Path:     path,
		Query:    query,
		Fragment: fragment,
	}, nil
}

var errEmptyHost = strconvErr("empty host in url")

type strconvErr string

func (e strconvErr) Error() string { return string(e) }

// splitAuthority splits "authority path?query#fragment" on the first
// '/', '?' or '#', returning the authority and everything from that
// delimiter onward (the delimiter itself stays in resource, marking the
// start of the path).
func splitAuthority(s string) (authority, resource string) {
	i := strings.IndexAny(s, "/?#")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// splitHostPort splits "host[:port]" on the last ':' in the authority,
// skipping over any ':' inside a bracketed IPv6 literal.
func splitHostPort(authority string) (host, port string, err error) {
	if authority == "" {
		return "", "", nil
	}
	if authority[0] == '[' {
		end := strings.IndexByte(authority, ']')
		if end < 0 {
			return "", "", strconvErr("unterminated ipv6 literal in url")
		}
		host = authority[:end+1]
		rest := authority[end+1:]
		if rest == "" {
			return host, "", nil
		}
		if rest[0] != ':' {
			return "", "", strconvErr("unexpected characters after ipv6 literal in url")
		}
		return host, rest[1:], nil
	}
	i := strings.LastIndexByte(authority, ':')
	if i < 0 {
		return authority, "", nil
	}
	return authority[:i], authority[i+1:], nil
}

// splitFragment splits "path?query#fragment" into the part before '#' and
// the fragment after it (without the '#').
func splitFragment(resource string) (pathAndQuery, fragment string) {
	i := strings.IndexByte(resource, '#')
	if i < 0 {
		return resource, ""
	}
	return resource[:i], resource[i+1:]
}

// splitQuery splits "path?query" into path and query (without the '?').
func splitQuery(pathAndQuery string) (path, query string) {
	i := strings.IndexByte(pathAndQuery, '?')
	if i < 0 {
		return pathAndQuery, ""
	}
	return pathAndQuery[:i], pathAndQuery[i+1:]
}

// IsRedirectStatus reports whether a status code is one the redirect
// driver should act on.
func IsRedirectStatus(code int) bool {
	switch code {
	case 301, 302, 303, 307, 308:
		return true
	default:
		return false
	}
}

// ResolveRedirect computes the URL the redirect driver should move to
// next, handling the three forms a Location header can take: absolute,
// absolute-path, and relative-to-the-current-path.
func ResolveRedirect(current *URL, location string) (*URL, error) {
	if location == "" {
		return nil, NewError(KindMalformedResponse, "resolve redirect", strconvErr("missing location header"))
	}
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return ParseURL(location, current)
	}
	if strings.HasPrefix(location, "/") {
		pathAndQuery, fragment := splitFragment(location)
		if fragment == "" {
			fragment = current.Fragment
		}
		path, query := splitQuery(pathAndQuery)
		if path == "" {
			path = "/"
		}
		return &URL{
			Scheme: current.Scheme, Host: current.Host, Port: current.Port,
			Path: path, Query: query, Fragment: fragment,
		}, nil
	}
	// Relative reference: replace everything after the last '/' of the
	// current path.
	base := current.Path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[:i+1]
	} else {
		base = "/"
	}
	pathAndQuery, fragment := splitFragment(location)
	if fragment == "" {
		fragment = current.Fragment
	}
	path, query := splitQuery(pathAndQuery)
	return &URL{
		Scheme: current.Scheme, Host: current.Host, Port: current.Port,
		Path: base + path, Query: query, Fragment: fragment,
	}, nil
}

