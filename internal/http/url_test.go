package http

import "testing"

func TestParseURLRoundTrip(t *testing.T) {
	cases := []struct {
		in       string
		wantAuth string // Authority(), i.e. what the Host header would carry
		wantURI  string
	}{
		{"http://example.com", "example.com", "/"},
		{"http://example.com:80/", "example.com", "/"},
		{"http://example.com:8080/x", "example.com:8080", "/x"},
		{"https://example.com/x", "example.com", "/x"},
		{"https://example.com:443/x", "example.com", "/x"},
		{"http://example.com/x?y=1", "example.com", "/x?y=1"},
		{"http://[::1]:8080/x", "[::1]:8080", "/x"},
	}
	for _, c := range cases {
		u, err := ParseURL(c.in, nil)
		if err != nil {
			t.Errorf("ParseURL(%q): %v", c.in, err)
			continue
		}
		if got := u.Authority(); got != c.wantAuth {
			t.Errorf("ParseURL(%q).Authority() = %q, want %q", c.in, got, c.wantAuth)
		}
		if got := u.RequestURI(); got != c.wantURI {
			t.Errorf("ParseURL(%q).RequestURI() = %q, want %q", c.in, got, c.wantURI)
		}
	}
}

func TestParseURLRejectsUnsupportedScheme(t *testing.T) {
	_, err := ParseURL("ftp://example.com", nil)
	if !errIsKind(err, KindUnsupportedScheme) {
		t.Fatalf("err = %v, want KindUnsupportedScheme", err)
	}
}

func TestFragmentNeverInWireForm(t *testing.T) {
	u, err := ParseURL("http://example.com/x?y=1#frag", nil)
	if err != nil {
		t.Fatal(err)
	}
	if u.Fragment != "frag" {
		t.Errorf("Fragment = %q, want %q", u.Fragment, "frag")
	}
	if got := u.RequestURI(); got != "/x?y=1" {
		t.Errorf("RequestURI() = %q, contains fragment", got)
	}
	if got := u.String(); got != "http://example.com/x?y=1" {
		t.Errorf("String() = %q, contains fragment", got)
	}
}

func TestResolveRedirectAbsolute(t *testing.T) {
	cur, _ := ParseURL("http://a.example/x", nil)
	next, err := ResolveRedirect(cur, "https://b.example/y")
	if err != nil {
		t.Fatal(err)
	}
	if next.Host != "b.example" || next.Scheme != "https" || next.Path != "/y" {
		t.Errorf("got %+v", next)
	}
}

func TestResolveRedirectAbsolutePath(t *testing.T) {
	cur, _ := ParseURL("http://a.example/x/y?z=1", nil)
	next, err := ResolveRedirect(cur, "/b")
	if err != nil {
		t.Fatal(err)
	}
	if next.Host != "a.example" || next.Path != "/b" || next.Query != "" {
		t.Errorf("got %+v", next)
	}
}

func TestResolveRedirectRelative(t *testing.T) {
	cur, _ := ParseURL("http://a.example/x/y", nil)
	next, err := ResolveRedirect(cur, "z")
	if err != nil {
		t.Fatal(err)
	}
	if next.Path != "/x/z" {
		t.Errorf("Path = %q, want /x/z", next.Path)
	}
}

func TestResolveRedirectFragmentInheritance(t *testing.T) {
	cur, _ := ParseURL("http://a.example/x#keep", nil)

	next, err := ResolveRedirect(cur, "/y")
	if err != nil {
		t.Fatal(err)
	}
	if next.Fragment != "keep" {
		t.Errorf("Fragment = %q, want inherited %q", next.Fragment, "keep")
	}

	next2, err := ResolveRedirect(cur, "/y#override")
	if err != nil {
		t.Fatal(err)
	}
	if next2.Fragment != "override" {
		t.Errorf("Fragment = %q, want %q", next2.Fragment, "override")
	}
}

func errIsKind(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}
