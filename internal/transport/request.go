package transport

import (
	"bufio"
	"context"
	"encoding/base64"
	"io"
	"strconv"
	"strings"

	ihttp "github.com/nullship/httpc/internal/http"
)

// methodsWithConventionalBody lists methods that get a synthesized
// Content-Length: 0 even when the caller supplied no body, to satisfy
// servers that require it.
var methodsWithConventionalBody = map[string]bool{
	"POST": true, "PUT": true, "PATCH": true, "DELETE": true,
}

// Write serializes r onto w: request line, headers (with defaults
// inserted for anything the caller didn't set), blank line, body.
// WroteRequest fires once the request line and headers are flushed;
// WroteRequestBody fires once the body, if any, is fully copied.
func (t *HTTP1) Write(ctx context.Context, w io.Writer, r *ihttp.PreparedRequest) error {
	trace := ihttp.TraceFromContext(ctx)

	body, err := r.GetBody()
	if err != nil {
		return wrapIOErr("open request body", err)
	}
	if body != nil {
		defer body.Close()
	}

	bw := bufio.NewWriter(w)
	if err := writeRequestLine(bw, r); err != nil {
		return wrapIOErr("write request line", err)
	}
	if err := writeHeaders(bw, r); err != nil {
		return wrapIOErr("write request headers", err)
	}
	err = bw.Flush()
	if err != nil {
		err = wrapIOErr("flush request headers", err)
	}
	if trace.WroteRequest != nil {
		trace.WroteRequest(err)
	}
	if err != nil {
		return err
	}

	if body != nil && r.HasBody {
		_, err := io.Copy(w, body)
		if err != nil {
			err = wrapIOErr("write request body", err)
		}
		if trace.WroteRequestBody != nil {
			trace.WroteRequestBody(err)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// writeRequestLine writes "METHOD SP target SP HTTP/1.1 CRLF". The
// request-target is origin-form unless the request is a plain-http
// request going through a proxy, in which case it's the absolute form.
func writeRequestLine(w *bufio.Writer, r *ihttp.PreparedRequest) error {
	target := r.URL.RequestURI()
	if r.Proxy != nil && r.URL.Scheme == "http" {
		target = r.URL.String()
	}
	if _, err := w.WriteString(r.Method); err != nil {
		return err
	}
	w.WriteByte(' ')
	w.WriteString(target)
	_, err := w.WriteString(" HTTP/1.1\r\n")
	return err
}

// writeHeaders writes every caller-supplied header verbatim and in order,
// then appends any default the caller didn't already set.
func writeHeaders(w *bufio.Writer, r *ihttp.PreparedRequest) error {
	for _, f := range r.Header {
		if err := writeHeaderLine(w, f.Name, f.Value); err != nil {
			return err
		}
	}

	if !r.Header.Has("Host") {
		if err := writeHeaderLine(w, "Host", r.URL.Authority()); err != nil {
			return err
		}
	}
	if !r.Header.Has("Accept") {
		if err := writeHeaderLine(w, "Accept", "*/*"); err != nil {
			return err
		}
	}
	if !r.Header.Has("User-Agent") {
		if err := writeHeaderLine(w, "User-Agent", "httpc/1.0"); err != nil {
			return err
		}
	}
	if !r.Header.Has("Connection") {
		if err := writeHeaderLine(w, "Connection", "Close"); err != nil {
			return err
		}
	}
	if !r.Header.Has("Content-Length") {
		switch {
		case r.HasBody:
			if err := writeHeaderLine(w, "Content-Length", strconv.FormatInt(r.ContentLength, 10)); err != nil {
				return err
			}
		case methodsWithConventionalBody[strings.ToUpper(r.Method)]:
			if err := writeHeaderLine(w, "Content-Length", "0"); err != nil {
				return err
			}
		}
	}
	if r.Proxy != nil && r.Proxy.HasCredentials() && !r.Header.Has("Proxy-Authorization") {
		cred := base64.StdEncoding.EncodeToString([]byte(r.Proxy.User + ":" + r.Proxy.Password))
		if err := writeHeaderLine(w, "Proxy-Authorization", "Basic "+cred); err != nil {
			return err
		}
	}

	_, err := w.WriteString("\r\n")
	return err
}

func writeHeaderLine(w *bufio.Writer, name, value string) error {
	if _, err := w.WriteString(name); err != nil {
		return err
	}
	w.WriteString(": ")
	w.WriteString(value)
	_, err := w.WriteString("\r\n")
	return err
}
