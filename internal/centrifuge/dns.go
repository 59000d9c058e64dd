package centrifuge

import "github.com/miekg/dns"

// DNSRecord is one answer/authority/additional resource record,
// flattened to the fields the renderer cares about.
type DNSRecord struct {
	Name  string
	Type  string
	Data  string
}

// DNSMessage is a decoded DNS message, re-projected from miekg/dns's
// richer *dns.Msg into the flat shape the rest of this package expects.
type DNSMessage struct {
	ID        uint16
	IsQuery   bool
	Questions []string
	Answers   []DNSRecord
}

func tryDNS(payload []byte) (*DNSMessage, bool) {
	msg := new(dns.Msg)
	if err := msg.Unpack(payload); err != nil {
		return nil, false
	}

	out := &DNSMessage{
		ID:      msg.Id,
		IsQuery: !msg.Response,
	}
	for _, q := range msg.Question {
		out.Questions = append(out.Questions, q.Name)
	}
	for _, rr := range msg.Answer {
		out.Answers = append(out.Answers, DNSRecord{
			Name: rr.Header().Name,
			Type: dns.TypeToString[rr.Header().Rrtype],
			Data: rrDataString(rr),
		})
	}
	return out, true
}

func rrDataString(rr dns.RR) string {
	switch r := rr.(type) {
	case *dns.A:
		return r.A.String()
	case *dns.AAAA:
		return r.AAAA.String()
	case *dns.CNAME:
		return r.Target
	case *dns.PTR:
		return r.Ptr
	case *dns.TXT:
		if len(r.Txt) > 0 {
			return r.Txt[0]
		}
		return ""
	case *dns.NS:
		return r.Ns
	default:
		return ""
	}
}
