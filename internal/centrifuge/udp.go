package centrifuge

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/gopacket/gopacket/layers"
)

const (
	portDNS     = 53
	portDHCPSrv = 67
	portDHCPCli = 68
	portDropbox = 17500
)

func decodeUDP(udp *layers.UDP) *UDP {
	out := &UDP{SrcPort: uint16(udp.SrcPort), DstPort: uint16(udp.DstPort)}
	classifyUDPPayload(out, udp.Payload)
	return out
}

// classifyUDPPayload dispatches on the well-known port pairing first —
// DNS on port 53, DHCP on the 67/68 pair, Dropbox's LAN sync beacon on
// 17500/17500 — and falls back to sniffing the payload itself only when
// none of those match (or the port-implied parse fails).
func classifyUDPPayload(out *UDP, payload []byte) {
	if len(payload) == 0 {
		out.Kind = UDPEmpty
		return
	}

	switch {
	case out.SrcPort == portDNS || out.DstPort == portDNS:
		if dns, ok := tryDNS(payload); ok {
			out.Kind = UDPDNS
			out.DNS = dns
			return
		}
	case isDHCPPortPair(out.SrcPort, out.DstPort):
		if dhcp, ok := tryDHCP(payload); ok {
			out.Kind = UDPDHCP
			out.DHCP = dhcp
			return
		}
	case out.SrcPort == portDropbox && out.DstPort == portDropbox:
		if beacon, ok := tryDropboxBeacon(payload); ok {
			out.Kind = UDPDropbox
			out.Dropbox = beacon
			return
		}
	}

	classifyUnknownUDPPayload(out, payload)
}

// isDHCPPortPair requires the port PAIR, not either port individually:
// a DHCP exchange always has one side on 67 and the other on 68.
func isDHCPPortPair(src, dst uint16) bool {
	return (dst == portDHCPSrv && src == portDHCPCli) || (dst == portDHCPCli && src == portDHCPSrv)
}

// classifyUnknownUDPPayload is the fallback used once the port-implied
// protocol doesn't match (or its parse fails): a payload containing a
// zero byte, or one that isn't valid UTF-8, is Binary; everything else
// is tried as SSDP before falling back to plain Text.
func classifyUnknownUDPPayload(out *UDP, payload []byte) {
	if bytes.IndexByte(payload, 0) >= 0 || !utf8.Valid(payload) {
		out.Kind = UDPBinary
		out.Binary = payload
		return
	}

	if ssdp, ok := trySSDP(payload); ok {
		out.Kind = UDPSSDP
		out.SSDP = ssdp
		return
	}

	out.Kind = UDPText
	out.Text = string(payload)
}

// trySSDP recognizes exactly the four HTTPU request lines SSDP uses:
// M-SEARCH over HTTP/1.1 or the older HTTP/1.0 exact form, NOTIFY, and
// BT-SEARCH (BitTorrent's local peer discovery, which reuses SSDP's
// framing).
func trySSDP(payload []byte) (string, bool) {
	const (
		searchHTTP11   = "M-SEARCH * HTTP/1.1\r\n"
		searchHTTP10   = "M-SEARCH * HTTP/1.0"
		notifyHTTP11   = "NOTIFY * HTTP/1.1\r\n"
		btSearchHTTP11 = "BT-SEARCH * HTTP/1.1\r\n"
	)
	s := string(payload)
	switch {
	case strings.HasPrefix(s, searchHTTP11):
		return s, true
	case s == searchHTTP10:
		return s, true
	case strings.HasPrefix(s, notifyHTTP11):
		return s, true
	case strings.HasPrefix(s, btSearchHTTP11):
		return s, true
	default:
		return "", false
	}
}
