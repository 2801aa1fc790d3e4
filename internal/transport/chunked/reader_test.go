package chunked

import (
	"io"
	"strings"
	"testing"
)

func TestReaderDecodesChunks(t *testing.T) {
	r := NewReader(strings.NewReader("5\r\nHello\r\n6\r\n World\r\n0\r\n\r\n"), 0)
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "Hello World" {
		t.Errorf("got %q, want %q", got, "Hello World")
	}
}

func TestReaderTrailers(t *testing.T) {
	r := NewReader(strings.NewReader("5\r\nHello\r\n0\r\nX-Checksum: abc\r\n\r\n"), 0)
	if _, err := io.ReadAll(r); err != nil {
		t.Fatal(err)
	}
	trailer := r.Trailer()
	if got := trailer["x-checksum"]; len(got) != 1 || got[0] != "abc" {
		t.Errorf("trailer = %v, want x-checksum=abc", trailer)
	}
}

func TestReaderToleratesChunkExtension(t *testing.T) {
	r := NewReader(strings.NewReader("5;ext=1\r\nHello\r\n0\r\n\r\n"), 0)
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "Hello" {
		t.Errorf("got %q, want %q", got, "Hello")
	}
}

func TestReaderRejectsInvalidSizeByte(t *testing.T) {
	r := NewReader(strings.NewReader("g\r\nHello\r\n0\r\n\r\n"), 0)
	_, err := io.ReadAll(r)
	if err == nil {
		t.Fatal("expected a framing error")
	}
	if _, ok := err.(FramingError); !ok {
		t.Errorf("err = %v (%T), want FramingError", err, err)
	}
}

func TestReaderManySmallChunksDoNotTripHeaderCap(t *testing.T) {
	var body strings.Builder
	const n = 2000
	for i := 0; i < n; i++ {
		body.WriteString("1\r\nx\r\n")
	}
	body.WriteString("0\r\n\r\n")

	r := NewReader(strings.NewReader(body.String()), 32)
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != n {
		t.Errorf("got %d bytes, want %d", len(got), n)
	}
}

func TestReaderCapAppliesOnlyToTrailers(t *testing.T) {
	r := NewReader(strings.NewReader("1\r\nx\r\n0\r\n"+strings.Repeat("X-Pad: aaaaaaaaaa\r\n", 5)+"\r\n"), 32)
	_, err := io.ReadAll(r)
	if _, ok := err.(FramingError); !ok {
		t.Errorf("err = %v (%T), want FramingError from an oversized trailer block", err, err)
	}
}

func TestReaderRejectsShortChunk(t *testing.T) {
	// declares a 5-byte chunk but the stream ends after 3 bytes, with no
	// terminating CRLF or trailer section at all.
	r := NewReader(strings.NewReader("5\r\nHel"), 0)
	_, err := io.ReadAll(r)
	if err != io.ErrUnexpectedEOF {
		t.Errorf("err = %v, want io.ErrUnexpectedEOF", err)
	}
}
