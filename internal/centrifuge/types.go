// Package centrifuge is a best-effort, never-panicking packet dissector.
// It walks a captured frame from its link layer down through as many
// protocol layers as it recognizes, producing a tagged tree rather than
// failing the whole decode when an inner layer is malformed or unknown.
package centrifuge

// LinkType identifies the outermost framing of a captured buffer.
type LinkType int

const (
	LinkEthernet LinkType = iota
	LinkTun
	LinkSll
	LinkRadioTap
)

// RawKind tags the outermost decoded layer.
type RawKind int

const (
	RawEthernet RawKind = iota
	RawTun
	RawSll
	RawUnknown
)

// Raw is the root of every decoded packet tree.
type Raw struct {
	Kind    RawKind
	Ether   *Ether
	Unknown []byte
}

// EtherKind tags which payload an Ethernet (or Ethernet-like) frame carries.
type EtherKind int

const (
	EtherIPv4 EtherKind = iota
	EtherIPv6
	EtherARP
	EtherCJDNS
	EtherUnknown
)

// Ether is a decoded Ethernet/SLL/TUN frame.
type Ether struct {
	Kind      EtherKind
	Src, Dst  string
	IPv4      *IPv4
	IPv6      *IPv6
	ARP       *ARPMsg
	CJDNS     *CJDNSBeacon
	Unknown   []byte
}

// IPv4Kind tags the transport layer carried by an IPv4 datagram.
type IPv4Kind int

const (
	IPv4TCP IPv4Kind = iota
	IPv4UDP
	IPv4ICMP
	IPv4Unknown
)

// IPv4 is a decoded IPv4 datagram.
type IPv4 struct {
	Kind     IPv4Kind
	Src, Dst string
	TCP      *TCP
	UDP      *UDP
	ICMP     *ICMPMsg
	Unknown  []byte
}

// IPv6Kind tags the transport layer carried by an IPv6 datagram. There is
// deliberately no ICMPv6 case: the original dissector this is modeled on
// never dispatches it either.
type IPv6Kind int

const (
	IPv6TCP IPv6Kind = iota
	IPv6UDP
	IPv6Unknown
)

// IPv6 is a decoded IPv6 datagram.
type IPv6 struct {
	Kind     IPv6Kind
	Src, Dst string
	TCP      *TCP
	UDP      *UDP
	Unknown  []byte
}

// TCPKind tags a TCP segment's classified payload.
type TCPKind int

const (
	TCPEmpty TCPKind = iota
	TCPTLS
	TCPHTTP
	TCPText
	TCPBinary
)

// TCP is a decoded TCP segment plus its best-effort payload classification.
type TCP struct {
	SrcPort, DstPort  uint16
	SYN, ACK, FIN, RST bool
	Kind              TCPKind
	TLS               *TLSMessage
	HTTP              *HTTPMessage
	Text              string
	Binary            []byte
}

// UDPKind tags a UDP datagram's classified payload.
type UDPKind int

const (
	UDPDNS UDPKind = iota
	UDPDHCP
	UDPSSDP
	UDPDropbox
	UDPText
	UDPBinary
	UDPEmpty
)

// UDP is a decoded UDP datagram plus its best-effort payload classification.
type UDP struct {
	SrcPort, DstPort uint16
	Kind             UDPKind
	DNS              *DNSMessage
	DHCP             *DHCPMessage
	SSDP             string
	Dropbox          *DropboxBeacon
	Text             string
	Binary           []byte
}

// ICMPMsg is a minimally-decoded ICMP header (type/code only — payload
// interpretation is left to the caller).
type ICMPMsg struct {
	Type, Code uint8
}

// ARPMsg is a decoded ARP packet.
type ARPMsg struct {
	Operation        uint16
	SenderIP, TargetIP string
	SenderMAC, TargetMAC string
}
