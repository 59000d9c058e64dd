package centrifuge

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// DropboxBeacon is a decoded Dropbox LAN sync discovery broadcast: a
// single JSON object advertising a client's sync port and namespaces.
type DropboxBeacon struct {
	DisplayName string
	Host        string
	Port        int
	Namespaces  []uint64
}

type dropboxWireBeacon struct {
	DisplayName string   `json:"displayname"`
	HostInt     uint64   `json:"host_int"`
	Port        int      `json:"port"`
	Namespaces  []uint64 `json:"namespaces"`
}

func tryDropboxBeacon(payload []byte) (*DropboxBeacon, bool) {
	start := bytes.IndexByte(payload, '{')
	end := bytes.LastIndexByte(payload, '}')
	if start < 0 || end < start {
		return nil, false
	}

	var wire dropboxWireBeacon
	if err := json.Unmarshal(payload[start:end+1], &wire); err != nil {
		return nil, false
	}
	if wire.DisplayName == "" && wire.Port == 0 {
		return nil, false
	}

	return &DropboxBeacon{
		DisplayName: wire.DisplayName,
		Host:        strconv.FormatUint(wire.HostInt, 10),
		Port:        wire.Port,
		Namespaces:  wire.Namespaces,
	}, true
}
