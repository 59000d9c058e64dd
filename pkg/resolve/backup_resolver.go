package resolve

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/miekg/dns"
)

const publicFallbackServer = "1.1.1.1:53"

// BackupResolver queries an explicit set of nameservers over UDP/53 when
// the system resolver can't answer a lookup. It is only consulted after
// net.DefaultResolver has already failed.
type BackupResolver struct {
	nameservers []string
	client      *dns.Client
}

// NewBackupResolver builds a resolver from a spec string that is either a
// path to a file of one-nameserver-per-line, or a comma-separated list of
// IPs. A file takes precedence when the string happens to be both. An
// empty spec produces a resolver with no nameservers of its own, which
// falls back to a single well-known public resolver.
func NewBackupResolver(spec string) (*BackupResolver, error) {
	br := &BackupResolver{client: new(dns.Client)}

	spec = strings.TrimSpace(spec)
	if spec == "" {
		br.nameservers = []string{publicFallbackServer}
		return br, nil
	}

	if info, err := os.Stat(spec); err == nil && !info.IsDir() {
		lines, err := readLines(spec)
		if err != nil {
			return nil, fmt.Errorf("reading resolver file %s: %w", spec, err)
		}
		for _, line := range lines {
			br.nameservers = append(br.nameservers, withDNSPort(line))
		}
	} else {
		for _, part := range strings.Split(spec, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if net.ParseIP(part) == nil {
				return nil, fmt.Errorf("invalid resolver address %q", part)
			}
			br.nameservers = append(br.nameservers, withDNSPort(part))
		}
	}

	if len(br.nameservers) == 0 {
		br.nameservers = []string{publicFallbackServer}
	}
	return br, nil
}

func withDNSPort(ip string) string {
	if net.ParseIP(ip) != nil {
		return net.JoinHostPort(ip, "53") // bare IPv4 or IPv6
	}
	if strings.Contains(ip, ":") && !strings.HasSuffix(ip, "]") {
		return ip // already host:port
	}
	return net.JoinHostPort(ip, "53")
}

// Lookup resolves host's A and AAAA records against each configured
// nameserver in turn, returning the first non-empty answer set.
func (r *BackupResolver) Lookup(host string) ([]net.IP, error) {
	fqdn := dns.Fqdn(host)
	var lastErr error

	for _, ns := range r.nameservers {
		for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
			msg := new(dns.Msg)
			msg.SetQuestion(fqdn, qtype)
			msg.RecursionDesired = true

			resp, _, err := r.client.Exchange(msg, ns)
			if err != nil {
				lastErr = err
				continue
			}
			var ips []net.IP
			for _, rr := range resp.Answer {
				switch rec := rr.(type) {
				case *dns.A:
					ips = append(ips, rec.A)
				case *dns.AAAA:
					ips = append(ips, rec.AAAA)
				}
			}
			if len(ips) > 0 {
				return ips, nil
			}
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("resolve: backup lookup for %s failed: %w", host, lastErr)
	}
	return nil, fmt.Errorf("resolve: backup lookup for %s returned no records", host)
}
