// package transport implements HTTP/1.1 message syntax: the request
// serializer and the response parser, including the RFC 7230 §3.3.3
// body-framing precedence that decides between no body, chunked
// decoding, a Content-Length-bounded read, or read-until-close.
//
// as of 2022.06, RFCs that were to define HTTP/1.1 (RFC753x) are obsoleted by:
//
//	HTTP Semantics (RFC9110)
//	HTTP Caching (RFC9111) and
//	HTTP/1.1 (RFC9112)
package transport
