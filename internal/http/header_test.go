package http

import "testing"

func TestRequestHeaderPreservesOrderAndCase(t *testing.T) {
	h := RequestHeader{}
	h = h.Add("X-Custom", "1")
	h = h.Add("x-custom", "2")
	if len(h) != 2 {
		t.Fatalf("len = %d, want 2", len(h))
	}
	if h[0].Name != "X-Custom" || h[1].Name != "x-custom" {
		t.Errorf("casing not preserved: %+v", h)
	}
	v, ok := h.Get("X-CUSTOM")
	if !ok || v != "1" {
		t.Errorf("Get = %q, %v, want %q, true", v, ok, "1")
	}
}

func TestRequestHeaderSet(t *testing.T) {
	h := RequestHeader{{Name: "A", Value: "1"}, {Name: "B", Value: "2"}}
	h = h.Set("a", "3")
	if len(h) != 2 || h[0].Value != "3" {
		t.Errorf("Set did not replace in place: %+v", h)
	}
}

func TestResponseHeaderCaseInsensitiveLookup(t *testing.T) {
	h := ResponseHeader{}
	h.Add("Content-Type", "text/plain")
	if h.Get("content-type") != "text/plain" {
		t.Errorf("Get(lowercase) = %q, want text/plain", h.Get("content-type"))
	}
	if h.Get("CONTENT-TYPE") != "text/plain" {
		t.Errorf("Get(uppercase) = %q, want text/plain", h.Get("CONTENT-TYPE"))
	}
}

func TestResponseHeaderLastSeenWins(t *testing.T) {
	h := ResponseHeader{}
	h.Add("X-A", "1")
	h.Add("x-a", "2")
	if h.Get("X-A") != "2" {
		t.Errorf("Get = %q, want last-seen %q", h.Get("X-A"), "2")
	}
	if vs := h.Values("X-A"); len(vs) != 2 {
		t.Errorf("Values = %v, want both values retained", vs)
	}
}
