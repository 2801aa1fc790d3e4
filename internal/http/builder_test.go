package http

import (
	"testing"
	"time"
)

func TestWithHeaderDoesNotMutateOriginal(t *testing.T) {
	base := &Request{Method: "GET", URL: "http://example.com/"}
	derived := base.WithHeader("X-Test", "1")

	if base.Header.Has("X-Test") {
		t.Error("WithHeader mutated the original request")
	}
	if v, ok := derived.Header.Get("X-Test"); !ok || v != "1" {
		t.Errorf("derived.Header = %v, want X-Test=1", derived.Header)
	}
}

func TestWithQueryParamAppendsCorrectSeparator(t *testing.T) {
	r := (&Request{Method: "GET", URL: "http://example.com/search"}).WithQueryParam("q", "go")
	if r.URL != "http://example.com/search?q=go" {
		t.Errorf("URL = %q", r.URL)
	}
	r2 := r.WithQueryParam("page", "2")
	if r2.URL != "http://example.com/search?q=go&page=2" {
		t.Errorf("URL = %q", r2.URL)
	}
}

func TestWithQueryParamPreservesFragment(t *testing.T) {
	r := (&Request{Method: "GET", URL: "http://example.com/path#frag"}).WithQueryParam("k", "v")
	if r.URL != "http://example.com/path?k=v#frag" {
		t.Errorf("URL = %q, want query inserted before fragment", r.URL)
	}
	r2 := r.WithQueryParam("k2", "v2")
	if r2.URL != "http://example.com/path?k=v&k2=v2#frag" {
		t.Errorf("URL = %q, want second param appended before fragment", r2.URL)
	}
}

func TestWithTimeoutAndMaxRedirectsChain(t *testing.T) {
	r := (&Request{Method: "GET", URL: "http://example.com/"}).
		WithTimeout(5 * time.Second).
		WithMaxRedirects(3)
	if r.Timeout != 5*time.Second || r.MaxRedirects != 3 {
		t.Errorf("got Timeout=%v MaxRedirects=%d", r.Timeout, r.MaxRedirects)
	}
}

func TestWithBodySetsBody(t *testing.T) {
	r := (&Request{Method: "POST", URL: "http://example.com/"}).WithBody("payload")
	if r.Body != "payload" {
		t.Errorf("Body = %v", r.Body)
	}
}
