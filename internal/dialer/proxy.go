package dialer

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	ihttp "github.com/nullship/httpc/internal/http"
)

// dialViaProxy routes a request through r.Proxy. Plain http just
// connects straight to the proxy and relies on the serializer's
// absolute-form request line; https tunnels through CONNECT first,
// then hands the tunnel to the TLS wrapper. r.URL.Host is already
// ASCII-encoded by the time this runs (Dial does that before branching
// into this path), so the CONNECT target, its Host header and the SNI
// hostname handed to wrapTLS are all consistent with the wire bytes the
// serializer writes afterward.
func (d *CoreDialer) dialViaProxy(ctx context.Context, r *ihttp.PreparedRequest) (io.ReadWriteCloser, error) {
	proxy := r.Proxy
	conn, err := d.dialDirect(ctx, proxy.Host, strconv.Itoa(proxy.PortOrDefault()))
	if err != nil {
		return nil, err
	}

	if r.URL.Scheme != "https" {
		return conn, nil
	}

	tunneled, err := connectTunnel(ctx, conn, r.URL, proxy)
	if err != nil {
		conn.Close()
		return nil, err
	}
	tlsConn, err := d.wrapTLS(ctx, tunneled, r.URL.Host)
	if err != nil {
		tunneled.Close()
		return nil, err
	}
	return tlsConn, nil
}

// connectTunnel performs the HTTP CONNECT handshake: send
// "CONNECT host:port HTTP/1.1", read the status line, accept any 2xx,
// then drain headers until a blank line. The proxy may pipeline bytes
// past the blank line (it shouldn't, but nothing forbids it);
// bufferedConn preserves whatever the bufio.Reader has already buffered
// for the caller.
func connectTunnel(ctx context.Context, conn net.Conn, target *ihttp.URL, proxy *ihttp.ProxyDescriptor) (io.ReadWriteCloser, error) {
	if dl, ok := ctx.Deadline(); ok {
		conn.SetDeadline(dl)
	}

	hostport := target.HostPort()
	var req bytes.Buffer
	fmt.Fprintf(&req, "CONNECT %s HTTP/1.1\r\n", hostport)
	fmt.Fprintf(&req, "Host: %s\r\n", hostport)
	if proxy.HasCredentials() {
		cred := base64.StdEncoding.EncodeToString([]byte(proxy.User + ":" + proxy.Password))
		fmt.Fprintf(&req, "Proxy-Authorization: Basic %s\r\n", cred)
	}
	req.WriteString("\r\n")
	if _, err := conn.Write(req.Bytes()); err != nil {
		return nil, wrapDialErr("write connect request", err)
	}

	br := bufio.NewReader(conn)
	statusLine, err := br.ReadString('\n')
	if err != nil {
		return nil, wrapDialErr("read connect response", err)
	}
	code, err := parseConnectStatus(statusLine)
	if err != nil {
		return nil, err
	}
	if code < 200 || code >= 300 {
		return nil, ihttp.NewError(ihttp.KindBadProxy, "connect tunnel", errStr(strings.TrimSpace(statusLine)))
	}
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, wrapDialErr("read connect headers", err)
		}
		if strings.TrimRight(line, "\r\n") == "" {
			break
		}
	}

	return &bufferedConn{Conn: conn, br: br}, nil
}

func parseConnectStatus(line string) (int, error) {
	line = strings.TrimRight(line, "\r\n")
	sp1 := strings.IndexByte(line, ' ')
	if sp1 < 0 {
		return 0, ihttp.NewError(ihttp.KindBadProxy, "parse connect response", errStr("malformed status line"))
	}
	rest := line[sp1+1:]
	codeStr := rest
	if sp2 := strings.IndexByte(rest, ' '); sp2 >= 0 {
		codeStr = rest[:sp2]
	}
	code, err := strconv.Atoi(codeStr)
	if err != nil {
		return 0, ihttp.NewError(ihttp.KindBadProxy, "parse connect response", err)
	}
	return code, nil
}

// bufferedConn lets a tunnel's already-buffered bytes survive the handoff
// from CONNECT-response parsing to the TLS handshake that follows it.
type bufferedConn struct {
	net.Conn
	br *bufio.Reader
}

func (c *bufferedConn) Read(p []byte) (int, error) { return c.br.Read(p) }
