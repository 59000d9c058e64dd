package centrifuge

import "encoding/binary"

// TLSMessageKind distinguishes the handshake messages this parser
// recognizes; everything else is left unparsed.
type TLSMessageKind int

const (
	TLSClientHello TLSMessageKind = iota
	TLSServerHello
	TLSUnknownHandshake
)

// TLSMessage is the small slice of a TLS handshake record this dissector
// extracts: enough to fingerprint a client or server, not to inspect the
// session.
type TLSMessage struct {
	Kind       TLSMessageKind
	Version    string
	ServerName string // ClientHello SNI, when present
	CipherName string // ServerHello selected cipher, when present
}

var tlsVersions = map[uint16]string{
	0x0300: "ssl3.0",
	0x0301: "tls1.0",
	0x0302: "tls1.1",
	0x0303: "tls1.2",
	0x0304: "tls1.3",
}

// cipherSuites only needs to cover suites common enough to show up in a
// ServerHello during casual scanning; anything else renders as a hex code.
var cipherSuites = map[uint16]string{
	0x1301: "TLS_AES_128_GCM_SHA256",
	0x1302: "TLS_AES_256_GCM_SHA384",
	0x1303: "TLS_CHACHA20_POLY1305_SHA256",
	0xc02f: "ECDHE-RSA-AES128-GCM-SHA256",
	0xc02b: "ECDHE-ECDSA-AES128-GCM-SHA256",
	0xc030: "ECDHE-RSA-AES256-GCM-SHA384",
}

const (
	recordTypeHandshake  = 0x16
	handshakeTypeClient  = 0x01
	handshakeTypeServer  = 0x02
	tlsRecordHeaderLen   = 5
	tlsHandshakeHeaderLen = 4
)

// tryTLS attempts to parse data as a single TLS record containing a
// ClientHello or ServerHello. It returns ok=false for anything that
// doesn't look like a TLS handshake record, leaving the caller to try
// other classifications.
func tryTLS(data []byte) (*TLSMessage, bool) {
	if len(data) < tlsRecordHeaderLen+tlsHandshakeHeaderLen {
		return nil, false
	}
	if data[0] != recordTypeHandshake {
		return nil, false
	}
	recordVersion := binary.BigEndian.Uint16(data[1:3])
	if _, ok := tlsVersions[recordVersion]; !ok {
		return nil, false
	}

	body := data[tlsRecordHeaderLen:]
	handshakeType := body[0]

	switch handshakeType {
	case handshakeTypeClient:
		return parseClientHello(body[tlsHandshakeHeaderLen:])
	case handshakeTypeServer:
		return parseServerHello(body[tlsHandshakeHeaderLen:])
	default:
		return &TLSMessage{Kind: TLSUnknownHandshake, Version: tlsVersions[recordVersion]}, true
	}
}

func parseClientHello(b []byte) (*TLSMessage, bool) {
	if len(b) < 2 {
		return nil, false
	}
	msg := &TLSMessage{Kind: TLSClientHello, Version: tlsVersions[binary.BigEndian.Uint16(b[0:2])]}

	// Walk past client_version(2) + random(32) + session_id, cipher
	// suites, and compression methods to reach extensions; any failure
	// just leaves ServerName empty rather than erroring out.
	pos := 2 + 32
	if pos >= len(b) {
		return msg, true
	}
	sessionIDLen := int(b[pos])
	pos += 1 + sessionIDLen
	if pos+2 > len(b) {
		return msg, true
	}
	cipherSuitesLen := int(binary.BigEndian.Uint16(b[pos : pos+2]))
	pos += 2 + cipherSuitesLen
	if pos >= len(b) {
		return msg, true
	}
	compressionLen := int(b[pos])
	pos += 1 + compressionLen
	if pos+2 > len(b) {
		return msg, true
	}
	extensionsLen := int(binary.BigEndian.Uint16(b[pos : pos+2]))
	pos += 2
	if pos+extensionsLen > len(b) {
		extensionsLen = len(b) - pos
	}

	msg.ServerName = extractSNI(b[pos : pos+extensionsLen])
	return msg, true
}

const extensionTypeSNI = 0x0000

// extractSNI walks a ClientHello's extensions block. Matching the
// original dissector, if more than one server_name extension is present
// (never valid per RFC 6066, but arbitrary bytes could claim it twice),
// the last one wins rather than the first.
func extractSNI(ext []byte) string {
	var name string
	pos := 0
	for pos+4 <= len(ext) {
		extType := binary.BigEndian.Uint16(ext[pos : pos+2])
		extLen := int(binary.BigEndian.Uint16(ext[pos+2 : pos+4]))
		pos += 4
		if pos+extLen > len(ext) {
			break
		}
		if extType == extensionTypeSNI {
			if n, ok := parseServerNameList(ext[pos : pos+extLen]); ok {
				name = n
			}
		}
		pos += extLen
	}
	return name
}

func parseServerNameList(b []byte) (string, bool) {
	if len(b) < 2 {
		return "", false
	}
	listLen := int(binary.BigEndian.Uint16(b[0:2]))
	pos := 2
	if pos+listLen > len(b) {
		listLen = len(b) - pos
	}
	for pos+3 <= 2+listLen {
		nameType := b[pos]
		nameLen := int(binary.BigEndian.Uint16(b[pos+1 : pos+3]))
		pos += 3
		if pos+nameLen > len(b) {
			break
		}
		if nameType == 0x00 {
			return string(b[pos : pos+nameLen]), true
		}
		pos += nameLen
	}
	return "", false
}

func parseServerHello(b []byte) (*TLSMessage, bool) {
	if len(b) < 2+32+1 {
		return nil, false
	}
	msg := &TLSMessage{Kind: TLSServerHello, Version: tlsVersions[binary.BigEndian.Uint16(b[0:2])]}

	pos := 2 + 32
	sessionIDLen := int(b[pos])
	pos += 1 + sessionIDLen
	if pos+2 > len(b) {
		return msg, true
	}
	cipher := binary.BigEndian.Uint16(b[pos : pos+2])
	if name, ok := cipherSuites[cipher]; ok {
		msg.CipherName = name
	}
	return msg, true
}
