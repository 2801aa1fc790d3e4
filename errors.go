package http

import ihttp "github.com/nullship/httpc/internal/http"

// Error is the error type the request engine returns: the Client, the
// dialer, URL parsing, response parsing and body reads. ProxyFromEnvironment
// and the jsonbody package return plain errors of their own. Check Kind
// (via errors.As) rather than matching messages.
type Error = ihttp.Error

// Kind classifies an Error.
type Kind = ihttp.Kind

const (
	KindInvalidURL         = ihttp.KindInvalidURL
	KindUnsupportedScheme  = ihttp.KindUnsupportedScheme
	KindIO                 = ihttp.KindIO
	KindTimeout            = ihttp.KindTimeout
	KindMalformedResponse  = ihttp.KindMalformedResponse
	KindHeadersOverflow    = ihttp.KindHeadersOverflow
	KindStatusLineOverflow = ihttp.KindStatusLineOverflow
	KindTooManyRedirects   = ihttp.KindTooManyRedirects
	KindBadProxy           = ihttp.KindBadProxy
	KindHTTPSDisabled      = ihttp.KindHTTPSDisabled
)
