package http

import "testing"

func TestProxyDescriptorDefaultPort(t *testing.T) {
	p := &ProxyDescriptor{Scheme: "http", Host: "proxy.local"}
	if p.PortOrDefault() != 1080 {
		t.Errorf("PortOrDefault() = %d, want 1080", p.PortOrDefault())
	}
	if p.HostPort() != "proxy.local:1080" {
		t.Errorf("HostPort() = %q", p.HostPort())
	}
}

func TestProxyDescriptorExplicitPort(t *testing.T) {
	p := &ProxyDescriptor{Scheme: "http", Host: "proxy.local", Port: 3128}
	if p.PortOrDefault() != 3128 {
		t.Errorf("PortOrDefault() = %d, want 3128", p.PortOrDefault())
	}
}

func TestProxyDescriptorHasCredentials(t *testing.T) {
	p := &ProxyDescriptor{Scheme: "http", Host: "proxy.local"}
	if p.HasCredentials() {
		t.Error("expected no credentials")
	}
	p.User = "alice"
	if !p.HasCredentials() {
		t.Error("expected credentials once User is set")
	}
}
