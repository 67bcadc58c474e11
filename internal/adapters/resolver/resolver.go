package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"

	"demoready/internal/core/ports"
)

const resolvConf = "/etc/resolv.conf"

var (
	ErrNoServers = ports.ErrResolverUnavailable
	ErrNoRecords = errors.New("no address records")
)

type Resolver struct {
	servers []string
	client  *dns.Client
}

// Compile-time interface check
var _ ports.Resolver = (*Resolver)(nil)

// NewResolver queries server (host or host:port). An empty server means the
// nameservers listed in /etc/resolv.conf; if that file is unreadable the
// resolver has no servers and every lookup returns ErrNoServers.
func NewResolver(server string, timeout time.Duration) *Resolver {
	var servers []string
	if server != "" {
		servers = []string{withPort(server, "53")}
	} else if cfg, err := dns.ClientConfigFromFile(resolvConf); err == nil {
		for _, s := range cfg.Servers {
			servers = append(servers, net.JoinHostPort(s, cfg.Port))
		}
	}

	return &Resolver{
		servers: servers,
		client:  &dns.Client{Timeout: timeout},
	}
}

// Resolve returns the A and AAAA addresses of host. IP literals and
// localhost resolve to themselves without a query.
func (r *Resolver) Resolve(ctx context.Context, host string) ([]string, error) {
	if ip := net.ParseIP(host); ip != nil {
		return []string{ip.String()}, nil
	}
	if strings.EqualFold(host, "localhost") {
		return []string{"127.0.0.1"}, nil
	}
	if len(r.servers) == 0 {
		return nil, ErrNoServers
	}

	var lastErr error
	for _, server := range r.servers {
		addrs, err := r.resolveWith(ctx, server, host)
		if err == nil {
			return addrs, nil
		}
		lastErr = err
		if errors.Is(err, ErrNoRecords) {
			break
		}
	}
	return nil, lastErr
}

func (r *Resolver) resolveWith(ctx context.Context, server, host string) ([]string, error) {
	var addrs []string
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		msg := new(dns.Msg)
		msg.SetQuestion(dns.Fqdn(host), qtype)
		msg.RecursionDesired = true

		resp, _, err := r.client.ExchangeContext(ctx, msg, server)
		if err != nil {
			return nil, fmt.Errorf("failed to query %s for %s: %w", server, host, err)
		}
		if resp.Rcode == dns.RcodeNameError {
			return nil, fmt.Errorf("%s: %w (NXDOMAIN)", host, ErrNoRecords)
		}
		if resp.Rcode != dns.RcodeSuccess {
			return nil, fmt.Errorf("query for %s returned %s", host, dns.RcodeToString[resp.Rcode])
		}

		for _, rr := range resp.Answer {
			switch record := rr.(type) {
			case *dns.A:
				addrs = append(addrs, record.A.String())
			case *dns.AAAA:
				addrs = append(addrs, record.AAAA.String())
			}
		}
	}

	if len(addrs) == 0 {
		return nil, fmt.Errorf("%s: %w", host, ErrNoRecords)
	}
	return addrs, nil
}

func withPort(server, port string) string {
	if _, _, err := net.SplitHostPort(server); err == nil {
		return server
	}
	return net.JoinHostPort(server, port)
}
