package centrifuge

import "encoding/binary"

// cjdnsBeaconLen is the fixed size of a CJDNS route discovery beacon,
// derived field-by-field from the wire tuple: two zero tag bytes, a
// 2-byte length, the 0xFC00 magic tag, 2 bytes of padding, a 2-byte
// version, a 20-byte password, and a 32-byte public key.
const cjdnsBeaconLen = 1 + 1 + 2 + 2 + 2 + 2 + 20 + 32

var cjdnsMagic = [2]byte{0xfc, 0x00}

// CJDNSBeacon is a decoded CJDNS route discovery beacon, broadcast on
// the local link so neighboring CJDNS nodes can find each other.
type CJDNSBeacon struct {
	Version     uint16
	PasswordHex string
	PublicKey   string
}

// tryCJDNSBeacon only matches frames of the exact expected length that
// also carry the 0x00 0x00 <len> 0xFC 0x00 tag; CJDNS beacons aren't
// otherwise self-describing, so skipping the magic-byte check would
// misclassify a lot of unrelated link-layer noise.
func tryCJDNSBeacon(data []byte) (*CJDNSBeacon, bool) {
	if len(data) != cjdnsBeaconLen {
		return nil, false
	}
	if data[0] != 0x00 || data[1] != 0x00 {
		return nil, false
	}
	if data[4] != cjdnsMagic[0] || data[5] != cjdnsMagic[1] {
		return nil, false
	}
	// data[2:4] is the declared length, data[6:8] is padding; neither
	// is surfaced on CJDNSBeacon.
	version := binary.BigEndian.Uint16(data[8:10])
	password := data[10:30]
	pubkey := data[30:62]
	return &CJDNSBeacon{
		Version:     version,
		PasswordHex: hexString(password),
		PublicKey:   base32ish(pubkey),
	}, true
}

func hexString(b []byte) string {
	const hex = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hex[c>>4]
		out[i*2+1] = hex[c&0xf]
	}
	return string(out)
}

// base32ish renders the raw key as hex rather than CJDNS's actual
// human-readable base32 address form; decoding the full address scheme
// isn't worth the complexity for a beacon we only ever display.
func base32ish(b []byte) string {
	return hexString(b)
}
