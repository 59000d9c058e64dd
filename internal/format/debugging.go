package format

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/arwahscan/arwahscan/internal/centrifuge"
)

// printDebugging renders a multi-line, indented dump of every layer it
// decoded, one layer per line, 2 spaces of indent per depth.
func (f Formatter) printDebugging(r centrifuge.Raw) {
	if r.Ether == nil {
		fmt.Printf("UNKNOWN -> %x\n", r.Unknown)
		return
	}
	f.debugEther(0, r.Ether)
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func (f Formatter) debugEther(depth int, e *centrifuge.Ether) {
	switch e.Kind {
	case centrifuge.EtherARP:
		fmt.Printf("%sARP -> %+v\n", indent(depth), e.ARP)
	case centrifuge.EtherCJDNS:
		fmt.Printf("%sCJDNS -> %+v\n", indent(depth), e.CJDNS)
	case centrifuge.EtherIPv4:
		fmt.Printf("%sIPv4 %s -> %s\n", indent(depth), e.IPv4.Src, e.IPv4.Dst)
		f.debugIPv4(depth+1, e.IPv4)
	case centrifuge.EtherIPv6:
		fmt.Printf("%sIPv6 %s -> %s\n", indent(depth), e.IPv6.Src, e.IPv6.Dst)
		f.debugIPv6(depth+1, e.IPv6)
	default:
		fmt.Printf("%sUNKNOWN -> %x\n", indent(depth), e.Unknown)
	}
}

func (f Formatter) debugIPv4(depth int, ip *centrifuge.IPv4) {
	switch ip.Kind {
	case centrifuge.IPv4TCP:
		fmt.Printf("%sTCP %d -> %d\n", indent(depth), ip.TCP.SrcPort, ip.TCP.DstPort)
		f.debugTCP(depth+1, ip.TCP)
	case centrifuge.IPv4UDP:
		fmt.Printf("%sUDP %d -> %d\n", indent(depth), ip.UDP.SrcPort, ip.UDP.DstPort)
		f.debugUDP(depth+1, ip.UDP)
	case centrifuge.IPv4ICMP:
		fmt.Printf("%sICMP -> %+v\n", indent(depth), ip.ICMP)
	default:
		fmt.Printf("%sUNKNOWN -> %x\n", indent(depth), ip.Unknown)
	}
}

func (f Formatter) debugIPv6(depth int, ip *centrifuge.IPv6) {
	switch ip.Kind {
	case centrifuge.IPv6TCP:
		fmt.Printf("%sTCP %d -> %d\n", indent(depth), ip.TCP.SrcPort, ip.TCP.DstPort)
		f.debugTCP(depth+1, ip.TCP)
	case centrifuge.IPv6UDP:
		fmt.Printf("%sUDP %d -> %d\n", indent(depth), ip.UDP.SrcPort, ip.UDP.DstPort)
		f.debugUDP(depth+1, ip.UDP)
	default:
		fmt.Printf("%sUNKNOWN -> %x\n", indent(depth), ip.Unknown)
	}
}

func (f Formatter) debugTCP(depth int, tcp *centrifuge.TCP) {
	prefix := indent(depth)
	switch tcp.Kind {
	case centrifuge.TCPHTTP:
		fmt.Println(f.colorize(color.New(color.FgRed), fmt.Sprintf("%sHTTP -> %+v", prefix, tcp.HTTP)))
	case centrifuge.TCPTLS:
		fmt.Println(f.colorize(color.New(color.FgGreen), fmt.Sprintf("%sTLS -> %+v", prefix, tcp.TLS)))
	case centrifuge.TCPText:
		fmt.Println(f.colorize(color.New(color.FgBlue), fmt.Sprintf("%sTEXT -> %q", prefix, tcp.Text)))
	case centrifuge.TCPBinary:
		fmt.Println(f.colorize(color.New(color.FgYellow), fmt.Sprintf("%sBINARY -> % x", prefix, tcp.Binary)))
	default:
		fmt.Printf("%s(empty)\n", prefix)
	}
}

func (f Formatter) debugUDP(depth int, udp *centrifuge.UDP) {
	prefix := indent(depth)
	switch udp.Kind {
	case centrifuge.UDPDHCP:
		fmt.Println(f.colorize(color.New(color.FgGreen), fmt.Sprintf("%sDHCP -> %+v", prefix, udp.DHCP)))
	case centrifuge.UDPDNS:
		fmt.Println(f.colorize(color.New(color.FgGreen), fmt.Sprintf("%sDNS -> %+v", prefix, udp.DNS)))
	case centrifuge.UDPSSDP:
		fmt.Println(f.colorize(color.New(color.FgMagenta), fmt.Sprintf("%sSSDP -> %q", prefix, udp.SSDP)))
	case centrifuge.UDPDropbox:
		fmt.Println(f.colorize(color.New(color.FgMagenta), fmt.Sprintf("%sDROPBOX -> %+v", prefix, udp.Dropbox)))
	case centrifuge.UDPText:
		fmt.Println(f.colorize(color.New(color.FgBlue), fmt.Sprintf("%sTEXT -> %q", prefix, udp.Text)))
	case centrifuge.UDPBinary:
		fmt.Println(f.colorize(color.New(color.FgYellow), fmt.Sprintf("%sBINARY -> % x", prefix, udp.Binary)))
	default:
		fmt.Printf("%s(empty)\n", prefix)
	}
}
