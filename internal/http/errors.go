package http

import "fmt"

// Kind classifies an [Error] the way callers are expected to switch on,
// instead of matching against wrapped stdlib error values.
type Kind int

const (
	// KindInvalidURL means the request's URL could not be parsed.
	KindInvalidURL Kind = iota
	// KindUnsupportedScheme means the URL's scheme is neither http nor https.
	KindUnsupportedScheme
	// KindIO covers DNS, connect, TLS handshake, read and write failures.
	KindIO
	// KindTimeout means the request's deadline was exceeded.
	KindTimeout
	// KindMalformedResponse means the status line, headers or chunked
	// framing violated the grammar they're required to follow.
	KindMalformedResponse
	// KindHeadersOverflow means the header block exceeded its configured cap.
	KindHeadersOverflow
	// KindStatusLineOverflow means the status line exceeded its configured cap.
	KindStatusLineOverflow
	// KindTooManyRedirects means the hop limit was reached while the
	// response still pointed to another redirect.
	KindTooManyRedirects
	// KindBadProxy means the proxy descriptor was unusable, or its CONNECT
	// response was not 2xx.
	KindBadProxy
	// KindHTTPSDisabled means an https:// request was made but the
	// CoreDialer has no TLSWrapper configured.
	KindHTTPSDisabled
)

func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid url"
	case KindUnsupportedScheme:
		return "unsupported scheme"
	case KindIO:
		return "io error"
	case KindTimeout:
		return "timeout"
	case KindMalformedResponse:
		return "malformed response"
	case KindHeadersOverflow:
		return "headers overflow"
	case KindStatusLineOverflow:
		return "status line overflow"
	case KindTooManyRedirects:
		return "too many redirects"
	case KindBadProxy:
		return "bad proxy"
	case KindHTTPSDisabled:
		return "https feature disabled"
	default:
		return "unknown error"
	}
}

// Error is the error type the request engine returns: the Client, the
// dialer, URL parsing, response parsing and body reads. The root
// package's ProxyFromEnvironment and the jsonbody package return plain
// errors of their own. Callers that care about the failure category should check
// [Error.Kind] (via [errors.As]) rather than match on the message.
type Error struct {
	Kind Kind
	Op   string // short description of the step that failed, e.g. "dial"
	Err  error  // wrapped cause, may be nil for pure protocol violations
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("httpc: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("httpc: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes Error comparable by Kind with errors.Is(err, &Error{Kind: K}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewError constructs an *Error, the way every internal package should
// report failures.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
