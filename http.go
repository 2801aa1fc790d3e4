package http

import (
	ihttp "github.com/nullship/httpc/internal/http"
)

// Header is the response-side header map: lowercase keys, case-insensitive
// lookups, last-seen value wins on Get.
type Header = ihttp.Header

// RequestHeader is the caller-facing, order-preserving header sequence a
// Request carries. Unlike Header, casing and order are exactly what the
// caller set, which is what ends up on the wire.
type RequestHeader = ihttp.RequestHeader

// HeaderField is one entry of a RequestHeader.
type HeaderField = ihttp.HeaderField

// Request is the caller-facing request value. See the Get/Head/Post/...
// convenience constructors in client.go.
type Request = ihttp.Request

// PreparedRequest is an immutable, ready-to-serialize view of a Request.
type PreparedRequest = ihttp.PreparedRequest

// Response is a fully buffered response.
type Response = ihttp.Response

// LazyResponse is a response whose body is streamed on demand.
type LazyResponse = ihttp.LazyResponse

// LazyBody is the incremental body reader contract.
type LazyBody = ihttp.LazyBody

// URL is this module's parsed-URL model.
type URL = ihttp.URL

// ProxyDescriptor describes an HTTP CONNECT proxy a request is routed
// through.
type ProxyDescriptor = ihttp.ProxyDescriptor

// ParseURL parses an absolute "scheme://authority/path?query#fragment" URL.
func ParseURL(raw string) (*URL, error) { return ihttp.ParseURL(raw, nil) }
