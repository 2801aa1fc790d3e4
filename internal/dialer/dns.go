package dialer

import (
	"context"
	"net"

	ihttp "github.com/nullship/httpc/internal/http"
)

// ResolveConfig customizes how CoreDialer turns a hostname into
// addresses: a custom DNS server, an IPv4/IPv6 preference, and a static
// hosts table.
type ResolveConfig struct {
	CustomDNSServer string
	Network         string            // one of "ip4", "ip6", default "ip" (both)
	StaticHosts     map[string]string // resembles /etc/hosts
}

func (c *ResolveConfig) Clone() *ResolveConfig {
	if c == nil {
		return nil
	}
	hosts := c.StaticHosts
	if hosts != nil {
		hosts = make(map[string]string, len(c.StaticHosts))
		for k, v := range c.StaticHosts {
			hosts[k] = v
		}
	}
	return &ResolveConfig{
		CustomDNSServer: c.CustomDNSServer,
		Network:         c.Network,
		StaticHosts:     hosts,
	}
}

var zeroDialer net.Dialer

// this type should not be used outside this file.
// prevents non-custom DNS server contexts from iterating through all keys
type dnsServerCtx struct {
	context.Context
	server string
}

var dnsServerCtxKey = &dnsServerCtx{nil, "dns-server"} // non-nil pointer to any object, definitely unique

func (c dnsServerCtx) Value(key interface{}) interface{} {
	if key == dnsServerCtxKey {
		return c.server
	}
	return c.Context.Value(key)
}

var customServerResolver = net.Resolver{
	PreferGo: true,
	Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
		if v, ok := ctx.Value(dnsServerCtxKey).(string); ok && v != "" {
			return zeroDialer.DialContext(ctx, network, v)
		}
		return zeroDialer.DialContext(ctx, network, address)
	},
}

// resolve returns every address host resolves to, honoring cfg's static
// hosts table and custom DNS server. DNSStart/DNSDone fire around the
// whole call, including the static-hosts and IP-literal shortcuts that
// skip an actual lookup.
func (d *CoreDialer) resolve(ctx context.Context, host string) (addrs []string, err error) {
	trace := ihttp.TraceFromContext(ctx)
	if trace.DNSStart != nil {
		trace.DNSStart(host)
	}
	defer func() {
		if trace.DNSDone != nil {
			trace.DNSDone(err)
		}
	}()

	cfg := d.ResolveConfig
	if cfg != nil {
		if static, ok := cfg.StaticHosts[host]; ok {
			return []string{static}, nil
		}
	}
	if ip := net.ParseIP(host); ip != nil {
		return []string{host}, nil
	}

	network := "ip"
	var dns string
	if cfg != nil {
		if cfg.Network != "" {
			network = cfg.Network
		}
		dns = cfg.CustomDNSServer
	}
	ips, lookupErr := customServerResolver.LookupIP(dnsServerCtx{ctx, dns}, network, host)
	if lookupErr != nil {
		err = lookupErr
		return nil, err
	}
	addrs = make([]string, len(ips))
	for i, ip := range ips {
		addrs[i] = ip.String()
	}
	return addrs, nil
}
