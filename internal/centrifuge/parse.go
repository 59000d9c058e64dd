package centrifuge

import (
	"net"

	"github.com/gopacket/gopacket"
	"github.com/gopacket/gopacket/layers"
)

// Parse decodes a captured frame into a Raw tree. It never panics and
// never returns an error: anything it cannot make sense of lands in an
// Unknown field at the deepest layer it reached.
func Parse(link LinkType, data []byte) Raw {
	defer func() {
		// gopacket's layer decoders are usually well-behaved on garbage
		// input, but a truncated or adversarial capture can still panic
		// deep inside one; recovering keeps one bad frame from aborting
		// a whole capture session.
		_ = recover()
	}()

	switch link {
	case LinkTun:
		return Raw{Kind: RawTun, Ether: parseTunPayload(data)}
	case LinkSll:
		return Raw{Kind: RawSll, Ether: parseEthernetLike(link, data)}
	case LinkRadioTap:
		return Raw{Kind: RawUnknown, Unknown: data}
	default:
		return Raw{Kind: RawEthernet, Ether: parseEthernetLike(LinkEthernet, data)}
	}
}

func gopacketLinkType(link LinkType) gopacket.LayerType {
	switch link {
	case LinkSll:
		return layers.LayerTypeLinuxSLL
	default:
		return layers.LayerTypeEthernet
	}
}

func parseEthernetLike(link LinkType, data []byte) *Ether {
	packet := gopacket.NewPacket(data, gopacketLinkType(link), gopacket.Default)
	ether := &Ether{Kind: EtherUnknown, Unknown: data}

	if eth, ok := packet.LinkLayer().(*layers.Ethernet); ok {
		ether.Src = eth.SrcMAC.String()
		ether.Dst = eth.DstMAC.String()
	}

	if arpLayer := packet.Layer(layers.LayerTypeARP); arpLayer != nil {
		if arp, ok := arpLayer.(*layers.ARP); ok {
			ether.Kind = EtherARP
			ether.ARP = &ARPMsg{
				Operation:  arp.Operation,
				SenderIP:   ipString(arp.SourceProtAddress),
				TargetIP:   ipString(arp.DstProtAddress),
				SenderMAC:  macString(arp.SourceHwAddress),
				TargetMAC:  macString(arp.DstHwAddress),
			}
			return ether
		}
	}

	if cjdns, ok := tryCJDNSBeacon(data); ok {
		ether.Kind = EtherCJDNS
		ether.CJDNS = cjdns
		return ether
	}

	if ip4Layer := packet.Layer(layers.LayerTypeIPv4); ip4Layer != nil {
		ether.Kind = EtherIPv4
		ether.IPv4 = decodeIPv4(packet, ip4Layer.(*layers.IPv4))
		return ether
	}
	if ip6Layer := packet.Layer(layers.LayerTypeIPv6); ip6Layer != nil {
		ether.Kind = EtherIPv6
		ether.IPv6 = decodeIPv6(packet, ip6Layer.(*layers.IPv6))
		return ether
	}

	return ether
}

// parseTunPayload handles a TUN/TAP capture, which carries a raw IP
// packet with no Ethernet header. It sniffs the IP version nibble to
// decide how to hand the buffer to gopacket.
func parseTunPayload(data []byte) *Ether {
	ether := &Ether{Kind: EtherUnknown, Unknown: data}
	if len(data) == 0 {
		return ether
	}
	version := data[0] >> 4

	var layerType gopacket.LayerType
	switch version {
	case 4:
		layerType = layers.LayerTypeIPv4
	case 6:
		layerType = layers.LayerTypeIPv6
	default:
		return ether
	}

	packet := gopacket.NewPacket(data, layerType, gopacket.Default)
	if ip4Layer := packet.Layer(layers.LayerTypeIPv4); ip4Layer != nil {
		ether.Kind = EtherIPv4
		ether.IPv4 = decodeIPv4(packet, ip4Layer.(*layers.IPv4))
		return ether
	}
	if ip6Layer := packet.Layer(layers.LayerTypeIPv6); ip6Layer != nil {
		ether.Kind = EtherIPv6
		ether.IPv6 = decodeIPv6(packet, ip6Layer.(*layers.IPv6))
		return ether
	}
	return ether
}

func decodeIPv4(packet gopacket.Packet, ip4 *layers.IPv4) *IPv4 {
	out := &IPv4{Kind: IPv4Unknown, Src: ip4.SrcIP.String(), Dst: ip4.DstIP.String()}

	if tcpLayer := packet.Layer(layers.LayerTypeTCP); tcpLayer != nil {
		out.Kind = IPv4TCP
		out.TCP = decodeTCP(tcpLayer.(*layers.TCP))
		return out
	}
	if udpLayer := packet.Layer(layers.LayerTypeUDP); udpLayer != nil {
		out.Kind = IPv4UDP
		out.UDP = decodeUDP(udpLayer.(*layers.UDP))
		return out
	}
	if icmpLayer := packet.Layer(layers.LayerTypeICMPv4); icmpLayer != nil {
		icmp := icmpLayer.(*layers.ICMPv4)
		out.Kind = IPv4ICMP
		out.ICMP = &ICMPMsg{Type: icmp.TypeCode.Type(), Code: icmp.TypeCode.Code()}
		return out
	}
	out.Unknown = ip4.Payload
	return out
}

// decodeIPv6 deliberately has no ICMPv6 branch: see IPv6Kind.
func decodeIPv6(packet gopacket.Packet, ip6 *layers.IPv6) *IPv6 {
	out := &IPv6{Kind: IPv6Unknown, Src: ip6.SrcIP.String(), Dst: ip6.DstIP.String()}

	if tcpLayer := packet.Layer(layers.LayerTypeTCP); tcpLayer != nil {
		out.Kind = IPv6TCP
		out.TCP = decodeTCP(tcpLayer.(*layers.TCP))
		return out
	}
	if udpLayer := packet.Layer(layers.LayerTypeUDP); udpLayer != nil {
		out.Kind = IPv6UDP
		out.UDP = decodeUDP(udpLayer.(*layers.UDP))
		return out
	}
	out.Unknown = ip6.Payload
	return out
}

func ipString(b []byte) string {
	return net.IP(b).String()
}

func macString(b []byte) string {
	if len(b) != 6 {
		return ""
	}
	return net.HardwareAddr(b).String()
}
