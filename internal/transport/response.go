package transport

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	ihttp "github.com/nullship/httpc/internal/http"
	"github.com/nullship/httpc/internal/transport/chunked"
)

// noBodyStatus reports whether code never carries a body regardless of
// what Content-Length or Transfer-Encoding claim.
func noBodyStatus(code int) bool {
	return code == 204 || code == 304 || (code >= 100 && code < 200)
}

// Read parses a status line and header block off conn, then attaches a
// LazyBody framed per the usual precedence: no-body status or HEAD first,
// then chunked, then Content-Length, then read-until-close. method is the
// request method that produced this response (HEAD suppresses any body).
// GotFirstResponseByte fires once the status line is parsed, GotHeaders
// once the header block is.
func (t *HTTP1) Read(ctx context.Context, conn io.ReadWriteCloser, method string, maxStatusLine, maxHeaders int) (*ParsedResponse, error) {
	trace := ihttp.TraceFromContext(ctx)
	br := bufio.NewReaderSize(conn, 4096)

	statusCode, reason, err := readStatusLine(br, maxStatusLine)
	if err != nil {
		return nil, err
	}
	if trace.GotFirstResponseByte != nil {
		trace.GotFirstResponseByte()
	}

	header, err := readHeaders(br, maxHeaders)
	if err != nil {
		return nil, err
	}
	if trace.GotHeaders != nil {
		trace.GotHeaders()
	}

	resp := &ParsedResponse{StatusCode: statusCode, Reason: reason, Header: header}

	if noBodyStatus(statusCode) || strings.EqualFold(method, "HEAD") {
		resp.Body = noBody{conn: conn}
		return resp, nil
	}

	if isChunked(header) {
		cr := chunked.NewReader(br, maxHeaders)
		resp.Body = &lazyBody{r: cr, conn: conn, chunked: cr}
		return resp, nil
	}

	cl, hasCL, err := contentLength(header)
	if err != nil {
		return nil, err
	}
	switch {
	case hasCL && cl == 0:
		resp.Body = noBody{conn: conn}
	case hasCL:
		resp.Body = &lazyBody{r: io.LimitReader(br, cl), conn: conn}
	default:
		// No Content-Length, no chunked: read until connection close.
		resp.Body = &lazyBody{r: br, conn: conn}
	}
	return resp, nil
}

// readStatusLine parses "HTTP-version SP status-code [SP reason] CRLF",
// tolerant of a missing reason phrase: the status code is the token
// between the first two spaces, and the reason phrase is everything
// after the second space, verbatim, with no truncation.
func readStatusLine(br *bufio.Reader, maxStatusLine int) (code int, reason string, err error) {
	line, err := readCappedLine(br, maxStatusLine, ihttp.KindStatusLineOverflow, "read status line")
	if err != nil {
		return 0, "", err
	}
	sp1 := strings.IndexByte(line, ' ')
	if sp1 < 0 {
		return 0, "", ihttp.NewError(ihttp.KindMalformedResponse, "parse status line", errStr("missing status code"))
	}
	rest := line[sp1+1:]
	sp2 := strings.IndexByte(rest, ' ')
	var codeStr string
	if sp2 < 0 {
		codeStr, reason = rest, ""
	} else {
		codeStr, reason = rest[:sp2], rest[sp2+1:]
	}
	if len(codeStr) != 3 {
		return 0, "", ihttp.NewError(ihttp.KindMalformedResponse, "parse status line", errStr("malformed status code"))
	}
	code, err = strconv.Atoi(codeStr)
	if err != nil || code < 0 {
		return 0, "", ihttp.NewError(ihttp.KindMalformedResponse, "parse status line", errStr("malformed status code"))
	}
	return code, reason, nil
}

// readHeaders reads "name: value" lines up to the blank line terminator,
// validating names as non-empty tokens and trimming OWS from values,
// storing them lowercased.
func readHeaders(br *bufio.Reader, maxHeaders int) (ihttp.Header, error) {
	header := ihttp.Header{}
	used := 0
	for {
		line, err := readCappedLineCounted(br, maxHeaders, &used, ihttp.KindHeadersOverflow, "read response headers")
		if err != nil {
			return nil, err
		}
		if line == "" {
			break
		}
		name, value, ok := cutHeader(line)
		if !ok || name == "" {
			return nil, ihttp.NewError(ihttp.KindMalformedResponse, "parse response headers", errStr("malformed header line"))
		}
		for i := 0; i < len(name); i++ {
			if c := name[i]; c <= ' ' || c >= 0x7f || strings.IndexByte("\"(),/:;<=>?@[\\]{}", c) >= 0 {
				return nil, ihttp.NewError(ihttp.KindMalformedResponse, "parse response headers", errStr("invalid header name"))
			}
		}
		header.Add(name, strings.TrimSpace(value))
	}
	return header, nil
}

func cutHeader(line string) (name, value string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", false
	}
	return line[:i], line[i+1:], true
}

// isChunked reports whether the last coding in Transfer-Encoding is
// "chunked" (case-insensitive).
func isChunked(header ihttp.Header) bool {
	te := header.Get("Transfer-Encoding")
	if te == "" {
		return false
	}
	codings := strings.Split(te, ",")
	last := strings.TrimSpace(codings[len(codings)-1])
	return strings.EqualFold(last, "chunked")
}

// contentLength applies the multiple-Content-Length hardening RFC 7230
// §3.3.2 requires: all values must agree, or the response is rejected as
// a smuggling attempt.
func contentLength(header ihttp.Header) (n int64, ok bool, err error) {
	values := header.Values("Content-Length")
	if len(values) == 0 {
		return 0, false, nil
	}
	first := strings.TrimSpace(values[0])
	for _, v := range values[1:] {
		if strings.TrimSpace(v) != first {
			return 0, false, ihttp.NewError(ihttp.KindMalformedResponse, "parse content-length",
				errStr("multiple Content-Length headers with different values"))
		}
	}
	cl, err := strconv.ParseUint(first, 10, 63)
	if err != nil {
		return 0, false, ihttp.NewError(ihttp.KindMalformedResponse, "parse content-length", err)
	}
	return int64(cl), true, nil
}

func readCappedLine(br *bufio.Reader, cap int, kind ihttp.Kind, op string) (string, error) {
	var used int
	return readCappedLineCounted(br, cap, &used, kind, op)
}

func readCappedLineCounted(br *bufio.Reader, cap int, used *int, kind ihttp.Kind, op string) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", wrapIOErr(op, err)
	}
	*used += len(line)
	if cap > 0 && *used > cap {
		return "", ihttp.NewError(kind, op, nil)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

type errStr string

func (e errStr) Error() string { return string(e) }
