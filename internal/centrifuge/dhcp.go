package centrifuge

import (
	"encoding/binary"
	"net"
)

// DHCPMessage is a minimally decoded BOOTP/DHCP packet: the fixed header
// fields plus the handful of options the formatter cares about, promoted
// to first-class fields rather than left in a generic options list.
type DHCPMessage struct {
	Op                 uint8 // 1 = BOOTREQUEST, 2 = BOOTREPLY
	ClientIP           string
	YourIP             string
	ServerIP           string
	ClientMAC          string
	MessageType        string
	HostName           string
	RequestedIPAddress string
	Router             []string
	DomainNameServer   []string
}

const (
	dhcpFixedHeaderLen = 236
	dhcpMagicCookie    = 0x63825363

	optionPad              = 0
	optionRouter           = 3
	optionDomainNameServer = 6
	optionHostName         = 12
	optionRequestedIP      = 50
	optionMessageType      = 53
	optionEnd              = 255
)

var dhcpMessageTypes = map[byte]string{
	1: "DISCOVER",
	2: "OFFER",
	3: "REQUEST",
	4: "DECLINE",
	5: "ACK",
	6: "NAK",
	7: "RELEASE",
	8: "INFORM",
}

func tryDHCP(payload []byte) (*DHCPMessage, bool) {
	if len(payload) < dhcpFixedHeaderLen+4 {
		return nil, false
	}
	if binary.BigEndian.Uint32(payload[dhcpFixedHeaderLen-4:dhcpFixedHeaderLen]) != dhcpMagicCookie {
		return nil, false
	}

	msg := &DHCPMessage{
		Op:          payload[0],
		ClientIP:    net.IP(payload[12:16]).String(),
		YourIP:      net.IP(payload[16:20]).String(),
		ServerIP:    net.IP(payload[20:24]).String(),
		ClientMAC:   net.HardwareAddr(payload[28:34]).String(),
		MessageType: "UNKNOWN",
	}

	options := payload[dhcpFixedHeaderLen:]
	for i := 0; i < len(options); {
		code := options[i]
		if code == optionEnd {
			break
		}
		if code == optionPad {
			i++
			continue
		}
		if i+1 >= len(options) {
			break
		}
		length := int(options[i+1])
		if i+2+length > len(options) {
			break
		}
		value := options[i+2 : i+2+length]
		switch code {
		case optionMessageType:
			if length == 1 {
				msg.MessageType = dhcpMessageTypes[value[0]]
			}
		case optionHostName:
			msg.HostName = string(value)
		case optionRequestedIP:
			if length == 4 {
				msg.RequestedIPAddress = net.IP(value).String()
			}
		case optionRouter:
			msg.Router = ipListFromOption(value)
		case optionDomainNameServer:
			msg.DomainNameServer = ipListFromOption(value)
		}
		i += 2 + length
	}

	return msg, true
}

// ipListFromOption reads a DHCP option whose value is a sequence of
// 4-byte IPv4 addresses (used by the router and DNS-server options).
func ipListFromOption(value []byte) []string {
	var ips []string
	for i := 0; i+4 <= len(value); i += 4 {
		ips = append(ips, net.IP(value[i:i+4]).String())
	}
	return ips
}
