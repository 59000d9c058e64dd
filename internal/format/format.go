// Package format renders a decoded centrifuge packet tree as a single
// line of human-readable text, a multi-line indented dump, or JSON.
package format

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/arwahscan/arwahscan/internal/centrifuge"
)

// Layout picks which of the three renderers Print uses.
type Layout int

const (
	LayoutCompact Layout = iota
	LayoutDebugging
	LayoutJSON
)

// Formatter prints decoded packets to stdout in one of the three layouts.
type Formatter struct {
	layout Layout
	colors bool
}

// New builds a Formatter. Colors apply to the Compact layout and to the
// payload lines of the Debugging layout; Json ignores them.
func New(layout Layout, colors bool) Formatter {
	return Formatter{layout: layout, colors: colors}
}

// Print renders one decoded packet according to the configured layout.
func (f Formatter) Print(r centrifuge.Raw) {
	switch f.layout {
	case LayoutDebugging:
		f.printDebugging(r)
	case LayoutJSON:
		f.printJSON(r)
	default:
		f.printCompact(r)
	}
}

func (f Formatter) colorize(c *color.Color, s string) string {
	if !f.colors {
		return s
	}
	return c.Sprint(s)
}

func (f Formatter) printJSON(r centrifuge.Raw) {
	data, err := json.Marshal(r)
	if err != nil {
		fmt.Printf("{\"error\": %q}\n", err.Error())
		return
	}
	fmt.Println(string(data))
}

// printCompact renders the deepest layer it understood as a single
// summary line, colored by protocol family.
func (f Formatter) printCompact(r centrifuge.Raw) {
	var out strings.Builder

	if r.Ether == nil {
		out.WriteString(fmt.Sprintf("UNKNOWN %x", r.Unknown))
		fmt.Println(out.String())
		return
	}

	c := f.compactEther(&out, r.Ether)
	fmt.Println(f.colorize(c, out.String()))
}

func (f Formatter) compactEther(out *strings.Builder, e *centrifuge.Ether) *color.Color {
	switch e.Kind {
	case centrifuge.EtherARP:
		out.WriteString(fmt.Sprintf("ARP op=%d %s(%s) -> %s(%s)", e.ARP.Operation, e.ARP.SenderIP, e.ARP.SenderMAC, e.ARP.TargetIP, e.ARP.TargetMAC))
		return color.New(color.FgBlue)
	case centrifuge.EtherCJDNS:
		out.WriteString(fmt.Sprintf("CJDNS BEACON version=%d password=%s pubkey=%s", e.CJDNS.Version, e.CJDNS.PasswordHex, e.CJDNS.PublicKey))
		return color.New(color.FgMagenta)
	case centrifuge.EtherIPv4:
		return f.compactIPv4(out, e.IPv4)
	case centrifuge.EtherIPv6:
		return f.compactIPv6(out, e.IPv6)
	default:
		out.WriteString(fmt.Sprintf("UNKNOWN %x", e.Unknown))
		return color.New(color.Reset)
	}
}

func (f Formatter) compactIPv4(out *strings.Builder, ip *centrifuge.IPv4) *color.Color {
	switch ip.Kind {
	case centrifuge.IPv4TCP:
		return f.compactTCP(out, ip.Src, ip.Dst, ip.TCP)
	case centrifuge.IPv4UDP:
		return f.compactUDP(out, ip.Src, ip.Dst, ip.UDP)
	case centrifuge.IPv4ICMP:
		out.WriteString(fmt.Sprintf("ICMP %s -> %s [type=%d code=%d]", ip.Src, ip.Dst, ip.ICMP.Type, ip.ICMP.Code))
		return color.New(color.FgBlue)
	default:
		out.WriteString(fmt.Sprintf("UNKNOWN %s -> %s %x", ip.Src, ip.Dst, ip.Unknown))
		return color.New(color.Reset)
	}
}

func (f Formatter) compactIPv6(out *strings.Builder, ip *centrifuge.IPv6) *color.Color {
	switch ip.Kind {
	case centrifuge.IPv6TCP:
		return f.compactTCP(out, ip.Src, ip.Dst, ip.TCP)
	case centrifuge.IPv6UDP:
		return f.compactUDP(out, ip.Src, ip.Dst, ip.UDP)
	default:
		out.WriteString(fmt.Sprintf("UNKNOWN %s -> %s %x", ip.Src, ip.Dst, ip.Unknown))
		return color.New(color.Reset)
	}
}

func (f Formatter) compactTCP(out *strings.Builder, src, dst string, tcp *centrifuge.TCP) *color.Color {
	flags := tcpFlags(tcp)
	out.WriteString(fmt.Sprintf("[tcp/%-3s] %s:%d -> %s:%d ", flags, src, tcp.SrcPort, dst, tcp.DstPort))

	switch tcp.Kind {
	case centrifuge.TCPHTTP:
		f.writeHTTP(out, tcp.HTTP)
		return color.New(color.FgRed)
	case centrifuge.TCPTLS:
		f.writeTLS(out, tcp.TLS)
		return color.New(color.FgGreen)
	case centrifuge.TCPText:
		out.WriteString(fmt.Sprintf("TEXT %q", tcp.Text))
		return color.New(color.FgRed)
	case centrifuge.TCPBinary:
		out.WriteString(fmt.Sprintf("BINARY % x", tcp.Binary))
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgHiBlack)
	}
}

func tcpFlags(tcp *centrifuge.TCP) string {
	var b strings.Builder
	if tcp.SYN {
		b.WriteByte('S')
	}
	if tcp.ACK {
		b.WriteByte('A')
	}
	if tcp.FIN {
		b.WriteByte('F')
	}
	return b.String()
}

func (f Formatter) writeHTTP(out *strings.Builder, h *centrifuge.HTTPMessage) {
	if h.IsRequest {
		out.WriteString(fmt.Sprintf("[http] req, %s %s %s", h.Method, h.Path, h.Version))
		if h.Host != "" {
			out.WriteString(fmt.Sprintf(" http://%s%s", h.Host, h.Path))
		}
	} else {
		out.WriteString(fmt.Sprintf("[http] resp, %s %s", h.Version, h.Status))
	}
	for _, kv := range []struct{ key, value string }{
		{"User-Agent", h.UserAgent},
		{"Referer", h.Referer},
		{"Authorization", h.Authorization},
		{"Cookie", h.Cookie},
	} {
		if kv.value != "" {
			out.WriteString(fmt.Sprintf(" %s: %q", kv.key, kv.value))
		}
	}
}

func (f Formatter) writeTLS(out *strings.Builder, t *centrifuge.TLSMessage) {
	switch t.Kind {
	case centrifuge.TLSClientHello:
		out.WriteString(fmt.Sprintf("TLS ClientHello (version=%s, sni=%q)", t.Version, t.ServerName))
	case centrifuge.TLSServerHello:
		out.WriteString(fmt.Sprintf("TLS ServerHello (version=%s, cipher=%s)", t.Version, t.CipherName))
	default:
		out.WriteString(fmt.Sprintf("TLS (version=%s)", t.Version))
	}
}

func (f Formatter) compactUDP(out *strings.Builder, src, dst string, udp *centrifuge.UDP) *color.Color {
	out.WriteString(fmt.Sprintf("UDP %s:%d -> %s:%d ", src, udp.SrcPort, dst, udp.DstPort))

	switch udp.Kind {
	case centrifuge.UDPDNS:
		f.writeDNS(out, udp.DNS)
		return color.New(color.FgYellow)
	case centrifuge.UDPDHCP:
		f.writeDHCP(out, udp.DHCP)
		return color.New(color.FgBlue)
	case centrifuge.UDPSSDP:
		out.WriteString(fmt.Sprintf("[ssdp] %s", strconv.Quote(udp.SSDP)))
		return color.New(color.FgMagenta)
	case centrifuge.UDPDropbox:
		out.WriteString(fmt.Sprintf("[dropbox] beacon displayname=%q host=%q port=%d", udp.Dropbox.DisplayName, udp.Dropbox.Host, udp.Dropbox.Port))
		return color.New(color.FgMagenta)
	case centrifuge.UDPText:
		out.WriteString(fmt.Sprintf("TEXT %q", udp.Text))
		return color.New(color.FgRed)
	case centrifuge.UDPBinary:
		out.WriteString(fmt.Sprintf("BINARY % x", udp.Binary))
		return color.New(color.FgRed)
	default:
		return color.New(color.FgHiBlack)
	}
}

func (f Formatter) writeDNS(out *strings.Builder, d *centrifuge.DNSMessage) {
	if d.IsQuery {
		out.WriteString(fmt.Sprintf("DNS req, %s", strings.Join(d.Questions, ", ")))
		return
	}
	parts := make([]string, len(d.Answers))
	for i, a := range d.Answers {
		parts[i] = fmt.Sprintf("%s %s %s", a.Name, a.Type, a.Data)
	}
	out.WriteString(fmt.Sprintf("DNS resp, %s", strings.Join(parts, ", ")))
}

func (f Formatter) writeDHCP(out *strings.Builder, d *centrifuge.DHCPMessage) {
	out.WriteString(fmt.Sprintf("DHCP %s %s => %s (client=%s)", d.MessageType, d.ClientIP, d.YourIP, d.ClientMAC))

	var extra []string
	if d.HostName != "" {
		extra = append(extra, fmt.Sprintf("hostname %q", d.HostName))
	}
	if d.RequestedIPAddress != "" {
		extra = append(extra, fmt.Sprintf("requested_ip_address %s", d.RequestedIPAddress))
	}
	if len(d.Router) > 0 {
		extra = append(extra, fmt.Sprintf("router %s", strings.Join(d.Router, ",")))
	}
	if len(d.DomainNameServer) > 0 {
		extra = append(extra, fmt.Sprintf("dns %s", strings.Join(d.DomainNameServer, ",")))
	}
	if len(extra) > 0 {
		out.WriteString(" (" + strings.Join(extra, ", ") + ")")
	}
}
