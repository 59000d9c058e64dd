package centrifuge

// NoiseLevel ranks how much a decoded packet tells an operator actively
// scanning a network, versus how much it's just ambient broadcast chatter.
// Lower is more informative (NoiseZero) and higher is noisier
// (NoiseMaximum); Filter keeps everything at or below the requested
// verbosity.
type NoiseLevel int

const (
	NoiseZero NoiseLevel = iota
	NoiseOne
	NoiseTwo
	NoiseAlmostMaximum
	NoiseMaximum
)

// Noise scores a decoded packet tree, recursing into the first layer
// that carries a NoiseLevel opinion and returning an Unknown layer's
// score (the noisiest) when nothing further was decoded.
func Noise(r Raw) NoiseLevel {
	if r.Ether == nil {
		return NoiseMaximum
	}
	return etherNoise(r.Ether)
}

func etherNoise(e *Ether) NoiseLevel {
	switch e.Kind {
	case EtherARP:
		return NoiseOne
	case EtherCJDNS:
		return NoiseTwo
	case EtherIPv4:
		return ipv4Noise(e.IPv4)
	case EtherIPv6:
		return ipv6Noise(e.IPv6)
	default:
		return NoiseMaximum
	}
}

func ipv4Noise(ip *IPv4) NoiseLevel {
	if ip == nil {
		return NoiseMaximum
	}
	switch ip.Kind {
	case IPv4TCP:
		return tcpNoise(ip.TCP)
	case IPv4UDP:
		return udpNoise(ip.UDP)
	case IPv4ICMP:
		return icmpNoise(ip.ICMP)
	default:
		return NoiseMaximum
	}
}

func ipv6Noise(ip *IPv6) NoiseLevel {
	if ip == nil {
		return NoiseMaximum
	}
	switch ip.Kind {
	case IPv6TCP:
		return tcpNoise(ip.TCP)
	case IPv6UDP:
		return udpNoise(ip.UDP)
	default:
		return NoiseMaximum
	}
}

// tcpNoise splits on whether the segment carries a control flag: a
// control segment (SYN/FIN/RST) with no useful payload is merely
// unsurprising (Two); the same empty/short/binary payload on an
// established, flagless data segment is much less interesting
// (AlmostMaximum), since that's the bulk of ordinary traffic.
func tcpNoise(tcp *TCP) NoiseLevel {
	if tcp == nil {
		return NoiseMaximum
	}
	isControl := tcp.SYN || tcp.FIN || tcp.RST

	switch tcp.Kind {
	case TCPTLS, TCPHTTP:
		return NoiseZero
	case TCPText:
		if isControl {
			return NoiseTwo
		}
		if len(tcp.Text) <= 8 {
			return NoiseAlmostMaximum
		}
		return NoiseZero
	case TCPBinary:
		if isControl {
			return NoiseTwo
		}
		return NoiseAlmostMaximum
	default: // TCPEmpty
		if isControl {
			return NoiseTwo
		}
		return NoiseAlmostMaximum
	}
}

func udpNoise(udp *UDP) NoiseLevel {
	if udp == nil {
		return NoiseMaximum
	}
	switch udp.Kind {
	case UDPDNS, UDPDHCP:
		return NoiseZero
	case UDPSSDP, UDPDropbox, UDPText:
		return NoiseTwo
	case UDPBinary:
		return NoiseAlmostMaximum
	default: // UDPEmpty
		return NoiseAlmostMaximum
	}
}

// icmpNoise treats the common diagnostic codes (echo reply/request, TTL
// exceeded) as mildly interesting and everything else as background.
func icmpNoise(icmp *ICMPMsg) NoiseLevel {
	if icmp == nil {
		return NoiseMaximum
	}
	switch icmp.Type {
	case icmpTypeEchoReply, icmpTypeEchoRequest, icmpTypeTimeExceeded:
		return NoiseOne
	default:
		return NoiseTwo
	}
}

const (
	icmpTypeEchoReply    = 0
	icmpTypeEchoRequest  = 8
	icmpTypeTimeExceeded = 11
)

// Filter reports whether r's noise level is informative enough to show
// at the given verbosity (0 = quietest, matches only NoiseZero; higher
// verbosity admits noisier packets).
func Filter(r Raw, verbosity int) bool {
	return int(Noise(r)) <= verbosity
}
