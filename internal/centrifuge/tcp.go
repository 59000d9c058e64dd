package centrifuge

import (
	"bytes"
	"unicode/utf8"

	"github.com/gopacket/gopacket/layers"
)

func decodeTCP(tcp *layers.TCP) *TCP {
	out := &TCP{
		SrcPort: uint16(tcp.SrcPort),
		DstPort: uint16(tcp.DstPort),
		SYN:     tcp.SYN,
		ACK:     tcp.ACK,
		FIN:     tcp.FIN,
		RST:     tcp.RST,
	}
	classifyTCPPayload(out, tcp.Payload)
	return out
}

// classifyTCPPayload fills in out.Kind and the matching payload field.
// Matching the original dissector, it probes TLS twice before falling
// back to HTTP. tryTLS is deterministic, so the second probe always
// gives the same answer as the first — a quirk kept rather than fixed,
// since nothing downstream depends on it being fast.
func classifyTCPPayload(out *TCP, payload []byte) {
	if len(payload) == 0 {
		out.Kind = TCPEmpty
		return
	}

	if tls, ok := tryTLS(payload); ok {
		out.Kind = TCPTLS
		out.TLS = tls
		return
	}
	if tls, ok := tryTLS(payload); ok {
		out.Kind = TCPTLS
		out.TLS = tls
		return
	}

	if http, ok := tryHTTP(payload); ok {
		out.Kind = TCPHTTP
		out.HTTP = http
		return
	}

	if bytes.IndexByte(payload, 0) < 0 && utf8.Valid(payload) {
		out.Kind = TCPText
		out.Text = string(payload)
		return
	}

	out.Kind = TCPBinary
	out.Binary = payload
}
