package core

import (
	"context"
	"errors"
	"math/rand"
	"net"
	"os"
	"strconv"
	"syscall"
	"time"
)

// UDPScanner handles UDP port scanning operations
type UDPScanner struct {
	*Scanner
	serviceProbes map[uint16][]byte     // Service-specific probes for UDP ports
	customProbes  map[uint16][]byte     // Custom user-defined probes
	probeStats    map[uint16]ProbeStats // Statistics for probe effectiveness
}

// ProbeStats tracks the effectiveness of probes for each port
type ProbeStats struct {
	Sent      int // Number of probes sent
	Responses int // Number of responses received
	Successes int // Number of successful service detections
}

// NewUDPScanner creates a new UDP scanner instance
func NewUDPScanner(cfg *Config) *UDPScanner {
	return &UDPScanner{
		Scanner:       NewScanner(cfg),
		serviceProbes: initUDPProbes(),
		customProbes:  make(map[uint16][]byte),
		probeStats:    make(map[uint16]ProbeStats),
	}
}

// initUDPProbes initializes service-specific UDP probes
func initUDPProbes() map[uint16][]byte {
	return map[uint16][]byte{
		53:    buildDNSProbe(),                // DNS
		123:   buildNTPProbe(),                // NTP
		161:   buildSNMPProbe(),               // SNMP
		500:   buildIKEProbe(),                // IKE/IPSec
		1194:  {0x38, 0x01, 0x00, 0x00, 0x00}, // OpenVPN
		51820: {0x01, 0x00, 0x00, 0x00},       // WireGuard
		67:    buildDHCPProbe(),               // DHCP
		69:    buildTFTPProbe(),               // TFTP
		137:   buildNetBIOSProbe(),            // NetBIOS Name Service
		5353:  buildMDNSProbe(),               // mDNS
	}
}

// startUDPWorkers launches a UDP-specific worker pool honouring the
// configured ratio, and is invoked from ScanTargets (udp_runner.go).
func (s *UDPScanner) startUDPWorkers(ctx context.Context, jobs <-chan scanJob) {
	workerCount := s.computeUDPWorkerCount()
	for i := 0; i < workerCount; i++ {
		s.wg.Add(1)
		go s.udpWorker(ctx, jobs)
	}
}

// computeUDPWorkerCount determines the number of UDP workers to spawn.
func (s *UDPScanner) computeUDPWorkerCount() int {
	switch {
	case s.config.UDPWorkerRatio < 0:
		if s.config.Workers/2 < 1 {
			return 1
		}
		return s.config.Workers / 2
	case s.config.UDPWorkerRatio == 0:
		return 1
	default:
		count := int(float64(s.config.Workers) * s.config.UDPWorkerRatio)
		if count < 1 {
			count = 1
		}
		return count
	}
}

// udpWorker drains scanJobs, applying an ICMP-rate-limit-friendly jitter
// on top of any configured rate limiter.
func (s *UDPScanner) udpWorker(ctx context.Context, jobs <-chan scanJob) {
	defer s.wg.Done()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}

			if s.rateTicker != nil {
				select {
				case <-ctx.Done():
					return
				case <-s.rateTicker.C:
					jitter := time.Duration(rng.Intn(s.config.UDPJitterMaxMs)) * time.Millisecond
					time.Sleep(jitter)
				}
			}

			s.scanUDPPort(ctx, job.host, job.port)
		}
	}
}

// scanUDPPort performs UDP port scanning
func (s *UDPScanner) scanUDPPort(ctx context.Context, host string, port uint16) {
	start := time.Now()
	address := net.JoinHostPort(host, strconv.Itoa(int(port)))

	dialer := &net.Dialer{Timeout: s.config.Timeout}
	conn, err := dialer.DialContext(ctx, "udp", address)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.recordProbeAttempt(port, false)
		s.errors.add(host, err)
		s.reportUDPResult(ctx, ResultEvent{
			Host:     host,
			Port:     port,
			State:    StateFiltered,
			Protocol: "udp",
			Duration: time.Since(start),
		})
		return
	}
	defer func() { _ = conn.Close() }()

	_ = conn.SetReadDeadline(time.Now().Add(s.config.UDPReadTimeout))

	probe := s.getProbeForPort(port)
	if _, err = conn.Write(probe); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.recordProbeAttempt(port, false)
		s.errors.add(host, err)
		s.reportUDPResult(ctx, ResultEvent{
			Host:     host,
			Port:     port,
			State:    StateFiltered,
			Protocol: "udp",
			Duration: time.Since(start),
		})
		return
	}

	buffer := make([]byte, s.config.UDPBufferSize)
	n, err := conn.Read(buffer)
	if ctx.Err() != nil {
		return
	}

	result := ResultEvent{
		Host:     host,
		Port:     port,
		Protocol: "udp",
		Duration: time.Since(start),
	}

	if err != nil {
		s.recordProbeAttempt(port, false)
		s.errors.add(host, err)
		result.State = classifyUDPError(err)
	} else {
		s.recordProbeAttempt(port, true)
		result.State = StateOpen
		if n > 0 && s.config.BannerGrab {
			result.Banner = s.parseUDPResponse(port, buffer[:n])
		}
	}

	s.reportUDPResult(ctx, result)
}

func (s *UDPScanner) reportUDPResult(ctx context.Context, result ResultEvent) {
	s.emit(ctx, NewResultEvent(result))
	s.progressReporter.IncrementCompleted()
}

// classifyUDPError differentiates timeouts from ICMP-derived unreachable
// errors, matching the ICMP Port/Host/Net Unreachable semantics.
func classifyUDPError(err error) ScanState {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return StateFiltered
	}

	var syscallErr *os.SyscallError
	if errors.As(err, &syscallErr) {
		switch syscallErr.Err {
		case syscall.ECONNREFUSED:
			return StateClosed
		case syscall.EHOSTUNREACH, syscall.ENETUNREACH:
			return StateFiltered
		default:
			return StateFiltered
		}
	}

	return StateClosed
}

// getProbeForPort returns the appropriate probe for a given port
func (s *UDPScanner) getProbeForPort(port uint16) []byte {
	if probe, exists := s.customProbes[port]; exists {
		return probe
	}
	if probe, exists := s.serviceProbes[port]; exists {
		return probe
	}
	return []byte{}
}

// AddCustomProbe adds a custom probe for a specific port
func (s *UDPScanner) AddCustomProbe(port uint16, probe []byte) {
	s.customProbes[port] = probe
}

// GetProbeStats returns statistics for probe effectiveness
func (s *UDPScanner) GetProbeStats() map[uint16]ProbeStats {
	return s.probeStats
}

// recordProbeAttempt records statistics for a probe attempt
func (s *UDPScanner) recordProbeAttempt(port uint16, success bool) {
	stats := s.probeStats[port]
	stats.Sent++
	if success {
		stats.Responses++
		stats.Successes++
	}
	s.probeStats[port] = stats
}

// UDP probe builders

func buildDNSProbe() []byte {
	// DNS query for version.bind TXT (commonly responds)
	return []byte{
		0x00, 0x00, // Transaction ID
		0x01, 0x00, // Flags: standard query
		0x00, 0x01, // Questions: 1
		0x00, 0x00, // Answer RRs: 0
		0x00, 0x00, // Authority RRs: 0
		0x00, 0x00, // Additional RRs: 0
		// Query: version.bind
		0x07, 0x76, 0x65, 0x72, 0x73, 0x69, 0x6f, 0x6e,
		0x04, 0x62, 0x69, 0x6e, 0x64,
		0x00,       // Root domain
		0x00, 0x10, // Type: TXT
		0x00, 0x03, // Class: CH (Chaos)
	}
}

func buildNTPProbe() []byte {
	// NTP version 3, client mode
	return []byte{
		0x1b, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
}

func buildSNMPProbe() []byte {
	// SNMPv1 GetRequest for sysDescr
	return []byte{
		0x30, 0x26, // SEQUENCE
		0x02, 0x01, 0x00, // Version: 1
		0x04, 0x06, 0x70, 0x75, 0x62, 0x6c, 0x69, 0x63, // Community: "public"
		0xa0, 0x19, // GetRequest PDU
		0x02, 0x01, 0x00, // Request ID
		0x02, 0x01, 0x00, // Error status
		0x02, 0x01, 0x00, // Error index
		0x30, 0x0e, // Varbind list
		0x30, 0x0c, // Varbind
		0x06, 0x08, 0x2b, 0x06, 0x01, 0x02, 0x01, 0x01, 0x01, 0x00, // OID: sysDescr
		0x05, 0x00, // Value: NULL
	}
}

func buildIKEProbe() []byte {
	// IKE version 1 main mode init
	return []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // Initiator cookie
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // Responder cookie
		0x01,                   // Next payload
		0x10,                   // Version
		0x02,                   // Exchange type: Identity Protection (Main Mode)
		0x00,                   // Flags
		0x00, 0x00, 0x00, 0x00, // Message ID
		0x00, 0x00, 0x00, 0x1c, // Length
	}
}

func buildDHCPProbe() []byte {
	// DHCP Discover message (minimal)
	probe := make([]byte, 240)
	probe[0] = 0x01 // Boot request
	probe[1] = 0x01 // Ethernet
	probe[2] = 0x06 // Hardware address length
	return probe
}

func buildTFTPProbe() []byte {
	// TFTP Read Request for a non-existent file
	return []byte{0x00, 0x01, 0x74, 0x65, 0x73, 0x74, 0x00, 0x6f, 0x63, 0x74, 0x65, 0x74, 0x00}
}

func buildNetBIOSProbe() []byte {
	// NetBIOS Name Service query
	return []byte{
		0x00, 0x00, // Transaction ID
		0x00, 0x10, // Flags
		0x00, 0x01, // Questions
		0x00, 0x00, // Answer RRs
		0x00, 0x00, // Authority RRs
		0x00, 0x00, // Additional RRs
		0x20, 0x43, 0x4b, 0x41, 0x41, 0x41, 0x41, 0x41, // Encoded name
		0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41,
		0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41,
		0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41,
		0x41, 0x00,
		0x00, 0x21, // Type: NB
		0x00, 0x01, // Class: IN
	}
}

func buildMDNSProbe() []byte {
	// mDNS query for _services._dns-sd._udp.local
	return []byte{
		0x00, 0x00, // Transaction ID
		0x00, 0x00, // Flags
		0x00, 0x01, // Questions
		0x00, 0x00, // Answer RRs
		0x00, 0x00, // Authority RRs
		0x00, 0x00, // Additional RRs
		0x09, 0x5f, 0x73, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x73, // _services
		0x07, 0x5f, 0x64, 0x6e, 0x73, 0x2d, 0x73, 0x64, // _dns-sd
		0x04, 0x5f, 0x75, 0x64, 0x70, // _udp
		0x05, 0x6c, 0x6f, 0x63, 0x61, 0x6c, // local
		0x00,       // Root
		0x00, 0x0c, // Type: PTR
		0x00, 0x01, // Class: IN
	}
}
