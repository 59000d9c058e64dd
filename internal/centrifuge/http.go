package centrifuge

import (
	"bufio"
	"bytes"
	"net/textproto"
	"strings"
)

// maxHTTPHeaders caps how many header lines tryHTTP will read, so a
// malformed or adversarial stream can't make the parser spin forever.
const maxHTTPHeaders = 256

// HTTPMessage is a decoded HTTP/1.x request or response line plus
// headers. The body, if any, is left undecoded in the parent TCP
// segment. Host/UserAgent/Referer/Authorization/Cookie are promoted to
// named fields since they're what an operator scans for first; Headers
// still carries everything, including duplicates seen.
type HTTPMessage struct {
	IsRequest     bool
	Method        string // request only
	Path          string // request only
	Status        string // response only, e.g. "200 OK"
	Version       string
	Host          string
	UserAgent     string
	Referer       string
	Authorization string
	Cookie        string
	Headers       map[string]string
}

var httpMethods = []string{
	"GET ", "POST ", "PUT ", "DELETE ", "HEAD ", "OPTIONS ", "PATCH ", "TRACE ", "CONNECT ",
}

func tryHTTP(data []byte) (*HTTPMessage, bool) {
	isRequest := false
	for _, m := range httpMethods {
		if bytes.HasPrefix(data, []byte(m)) {
			isRequest = true
			break
		}
	}
	isResponse := bytes.HasPrefix(data, []byte("HTTP/"))
	if !isRequest && !isResponse {
		return nil, false
	}

	reader := textproto.NewReader(bufio.NewReader(bytes.NewReader(data)))
	line, err := reader.ReadLine()
	if err != nil {
		return nil, false
	}

	msg := &HTTPMessage{IsRequest: isRequest}
	if isRequest {
		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 2 {
			return nil, false
		}
		msg.Method = parts[0]
		msg.Path = parts[1]
		if len(parts) == 3 {
			msg.Version = parts[2]
		}
	} else {
		parts := strings.SplitN(line, " ", 2)
		if len(parts) < 1 {
			return nil, false
		}
		msg.Version = parts[0]
		if len(parts) == 2 {
			msg.Status = parts[1]
		}
	}

	headers := make(map[string]string)
	for i := 0; i < maxHTTPHeaders; i++ {
		headerLine, err := reader.ReadLine()
		if err != nil || headerLine == "" {
			break
		}
		name, value, ok := strings.Cut(headerLine, ":")
		if !ok {
			continue
		}
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if existing, dup := headers[name]; dup {
			value = existing + "; " + value
		}
		headers[name] = value
		assignNamedHeader(msg, name, value)
	}
	msg.Headers = headers

	return msg, true
}

func assignNamedHeader(msg *HTTPMessage, name, value string) {
	switch strings.ToLower(name) {
	case "host":
		msg.Host = value
	case "user-agent":
		msg.UserAgent = value
	case "referer":
		msg.Referer = value
	case "authorization":
		msg.Authorization = value
	case "cookie":
		msg.Cookie = value
	}
}
