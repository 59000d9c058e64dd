// Package resolve expands user-supplied address specifications (literal
// IPs, CIDRs, hostnames, and host list files) into concrete net.IP values,
// applying exclusions and the same DNS fallback chain arwahscan's Rust
// predecessor used.
package resolve

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"sort"
	"strings"
)

// Options controls expansion behaviour.
type Options struct {
	// ExcludeAddresses are literal IPs, CIDRs, or hostnames to drop from
	// the expanded set.
	ExcludeAddresses []string
	// CIDRHostLimit caps the number of hosts a single CIDR may expand to.
	// Zero means defaultCIDRHostLimit.
	CIDRHostLimit int
	// Resolver names the backup resolver: a path to a file of newline
	// separated nameserver IPs, or a comma-separated list of IPs. Empty
	// uses 1.1.1.1 as the backup. The backup is consulted only after
	// net.DefaultResolver returns nothing.
	Resolver string
}

const defaultCIDRHostLimit = 65536

// Expand resolves every input into a deduplicated, ascending-sorted slice
// of net.IP, applying Options.ExcludeAddresses and falling back through
// literal -> CIDR -> socket-address resolution -> backup resolver -> one
// level of file recursion, per input.
func Expand(inputs []string, opts Options) ([]net.IP, error) {
	limit := opts.CIDRHostLimit
	if limit <= 0 {
		limit = defaultCIDRHostLimit
	}

	backup, err := NewBackupResolver(opts.Resolver)
	if err != nil {
		return nil, fmt.Errorf("resolve: building backup resolver: %w", err)
	}

	excluded, err := expandExclusions(opts.ExcludeAddresses, backup)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]net.IP)
	for _, raw := range inputs {
		expandInput(strings.TrimSpace(raw), limit, backup, seen, false)
	}

	out := make([]net.IP, 0, len(seen))
	for _, ip := range seen {
		if isExcluded(ip, excluded) {
			continue
		}
		out = append(out, ip)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].To16(), out[j].To16()) < 0
	})
	return out, nil
}

// expandInput resolves one token, recursing at most once into a file's
// lines. Resolution failures are reported to stderr and otherwise
// swallowed — a single bad target never aborts the run.
func expandInput(token string, limit int, backup *BackupResolver, seen map[string]net.IP, fromFile bool) {
	if token == "" {
		return
	}

	if ip := net.ParseIP(token); ip != nil {
		seen[ip.String()] = ip
		return
	}

	if _, ipnet, err := net.ParseCIDR(token); err == nil {
		hosts, err := expandCIDR(ipnet, limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", token, err)
			return
		}
		for _, ip := range hosts {
			seen[ip.String()] = ip
		}
		return
	}

	if ips := resolveHostPort(token); len(ips) > 0 {
		for _, ip := range ips {
			seen[ip.String()] = ip
		}
		return
	}

	if ips, err := backup.Lookup(token); err == nil && len(ips) > 0 {
		for _, ip := range ips {
			seen[ip.String()] = ip
		}
		return
	}

	if !fromFile {
		if lines, err := readLines(token); err == nil {
			for _, line := range lines {
				expandInput(strings.TrimSpace(line), limit, backup, seen, true)
			}
			return
		}
	}

	fmt.Fprintf(os.Stderr, "warning: could not resolve target %q\n", token)
}

// resolveHostPort looks host up through the system resolver
// (net.DefaultResolver) and returns every address it reports.
func resolveHostPort(host string) []net.IP {
	addrs, err := net.DefaultResolver.LookupIPAddr(context.Background(), host)
	if err == nil && len(addrs) > 0 {
		ips := make([]net.IP, len(addrs))
		for i, a := range addrs {
			ips[i] = a.IP
		}
		return ips
	}
	return nil
}

func expandCIDR(ipnet *net.IPNet, limit int) ([]net.IP, error) {
	ones, bits := ipnet.Mask.Size()
	hostBits := bits - ones
	if hostBits > 31 {
		return nil, fmt.Errorf("cidr %s is too large to expand", ipnet)
	}
	count := 1 << uint(hostBits)
	if count > limit {
		return nil, fmt.Errorf("cidr %s would expand to %d hosts, exceeding limit %d", ipnet, count, limit)
	}

	var ips []net.IP
	ip := ipnet.IP.Mask(ipnet.Mask)
	for ; ipnet.Contains(ip); incrementIP(ip) {
		dup := make(net.IP, len(ip))
		copy(dup, ip)
		ips = append(ips, dup)
		if len(ips) >= limit {
			break
		}
	}
	return ips, nil
}

func incrementIP(ip net.IP) {
	for i := len(ip) - 1; i >= 0; i-- {
		ip[i]++
		if ip[i] != 0 {
			return
		}
	}
}

func readLines(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("not a regular file")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// expandExclusions resolves each exclusion into a CIDR, falling back to a
// host /32 or /128 when the entry is a literal IP or hostname.
func expandExclusions(entries []string, backup *BackupResolver) ([]*net.IPNet, error) {
	var nets []*net.IPNet
	for _, raw := range entries {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		if _, ipnet, err := net.ParseCIDR(token); err == nil {
			nets = append(nets, ipnet)
			continue
		}
		if ip := net.ParseIP(token); ip != nil {
			nets = append(nets, hostCIDR(ip))
			continue
		}
		ips := resolveHostPort(token)
		if len(ips) == 0 {
			var err error
			ips, err = backup.Lookup(token)
			if err != nil || len(ips) == 0 {
				return nil, fmt.Errorf("resolve: could not resolve exclusion %q", token)
			}
		}
		for _, ip := range ips {
			nets = append(nets, hostCIDR(ip))
		}
	}
	return nets, nil
}

func hostCIDR(ip net.IP) *net.IPNet {
	if v4 := ip.To4(); v4 != nil {
		return &net.IPNet{IP: v4, Mask: net.CIDRMask(32, 32)}
	}
	return &net.IPNet{IP: ip.To16(), Mask: net.CIDRMask(128, 128)}
}

func isExcluded(ip net.IP, excluded []*net.IPNet) bool {
	for _, n := range excluded {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}
