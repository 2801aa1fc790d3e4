package dialer

import (
	"bufio"
	"context"
	"io"
	"net"
	"strconv"
	"strings"
	"testing"

	ihttp "github.com/nullship/httpc/internal/http"
)

type stubHostnameEncoder struct{}

func (stubHostnameEncoder) Encode(host string) (string, error) {
	return "encoded." + host, nil
}

type stubTLSWrapper struct{ sni string }

func (w *stubTLSWrapper) Wrap(ctx context.Context, conn io.ReadWriteCloser, hostname string) (io.ReadWriteCloser, error) {
	w.sni = hostname
	return conn, nil
}

// TestDialViaProxyEncodesHostnameForConnectAndSNI proves a CoreDialer
// with a HostnameEncoder configured applies it before building the
// CONNECT request, not just on the direct-dial path: both the CONNECT
// target on the wire and the hostname handed to the TLSWrapper for SNI
// should be the encoded form.
func TestDialViaProxyEncodesHostnameForConnectAndSNI(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	connectLine := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		br := bufio.NewReader(conn)
		line, _ := br.ReadString('\n')
		connectLine <- line
		for {
			l, err := br.ReadString('\n')
			if err != nil || strings.TrimRight(l, "\r\n") == "" {
				break
			}
		}
		conn.Write([]byte("HTTP/1.1 200 Connection Established\r\n\r\n"))
	}()

	host, port, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		t.Fatal(err)
	}

	tls := &stubTLSWrapper{}
	d := &CoreDialer{TLS: tls, Hostnames: stubHostnameEncoder{}}

	req := &ihttp.Request{
		Method: "GET", URL: "https://raw.example/",
		Proxy: &ihttp.ProxyDescriptor{Scheme: "http", Host: host, Port: portNum},
	}
	pr, err := req.Prepare()
	if err != nil {
		t.Fatal(err)
	}

	conn, err := d.Dial(context.Background(), pr)
	if err != nil {
		t.Fatal(err)
	}
	conn.Close()

	line := <-connectLine
	if !strings.Contains(line, "encoded.raw.example") {
		t.Errorf("CONNECT line = %q, want it to target the encoded hostname", line)
	}
	if tls.sni != "encoded.raw.example" {
		t.Errorf("SNI hostname = %q, want %q", tls.sni, "encoded.raw.example")
	}
}

func TestParseConnectStatusAccepts2xx(t *testing.T) {
	code, err := parseConnectStatus("HTTP/1.1 200 Connection Established\r\n")
	if err != nil {
		t.Fatal(err)
	}
	if code != 200 {
		t.Errorf("code = %d, want 200", code)
	}
}

func TestParseConnectStatusRejectsMalformedLine(t *testing.T) {
	_, err := parseConnectStatus("not a status line\r\n")
	if err == nil {
		t.Fatal("expected an error for a malformed CONNECT status line")
	}
}
