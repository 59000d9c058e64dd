// Package capture runs the live/offline packet source behind the sniff
// subcommand: a single pcap reader feeding a pool of decode workers.
package capture

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/gopacket/gopacket/pcap"
	"golang.org/x/sync/errgroup"

	"github.com/arwahscan/arwahscan/internal/centrifuge"
)

// Config controls how a capture session is opened and decoded.
type Config struct {
	Interface    string // empty with Offline set means read a pcap file
	Offline      string
	Snaplen      int32
	Promiscuous  bool
	BPFFilter    string
	DecodeWorkers int
	Verbosity    int
}

const (
	defaultSnaplen       = 65535
	defaultReadTimeout   = 500 * time.Millisecond
)

func normalize(cfg Config) Config {
	if cfg.Snaplen <= 0 {
		cfg.Snaplen = defaultSnaplen
	}
	if cfg.DecodeWorkers <= 0 {
		cfg.DecodeWorkers = runtime.NumCPU()
	}
	return cfg
}

// Session owns an open pcap handle and the frames it reads from it.
type Session struct {
	handle *pcap.Handle
	cfg    Config
}

// Open starts a live capture (cfg.Interface) or replays a pcap file
// (cfg.Offline), whichever is set.
func Open(cfg Config) (*Session, error) {
	cfg = normalize(cfg)

	var handle *pcap.Handle
	var err error
	if cfg.Offline != "" {
		handle, err = pcap.OpenOffline(cfg.Offline)
	} else {
		handle, err = pcap.OpenLive(cfg.Interface, cfg.Snaplen, cfg.Promiscuous, defaultReadTimeout)
	}
	if err != nil {
		return nil, fmt.Errorf("capture: opening source: %w", err)
	}

	if cfg.BPFFilter != "" {
		if err := handle.SetBPFFilter(cfg.BPFFilter); err != nil {
			handle.Close()
			return nil, fmt.Errorf("capture: setting filter %q: %w", cfg.BPFFilter, err)
		}
	}

	return &Session{handle: handle, cfg: cfg}, nil
}

// Close releases the underlying pcap handle.
func (s *Session) Close() {
	s.handle.Close()
}

func (s *Session) linkType() centrifuge.LinkType {
	switch s.handle.LinkType() {
	case 113: // LINKTYPE_LINUX_SLL
		return centrifuge.LinkSll
	case 12, 101: // LINKTYPE_RAW / LINKTYPE_IPV4 style TUN capture
		return centrifuge.LinkTun
	default:
		return centrifuge.LinkEthernet
	}
}

// Run reads frames until ctx is canceled or the source is exhausted
// (offline files end; live interfaces run until canceled), decoding
// each through a pool of DecodeWorkers goroutines and calling emit for
// every packet that survives the noise filter. The single pcap reader
// runs in its own goroutine while the caller waits for the group; only
// decoding is parallelized.
func (s *Session) Run(ctx context.Context, emit func(centrifuge.Raw)) error {
	link := s.linkType()
	frames := make(chan []byte, s.cfg.DecodeWorkers*4)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(frames)
		for {
			data, _, err := s.handle.ReadPacketData()
			switch err {
			case nil:
				buf := make([]byte, len(data))
				copy(buf, data)
				select {
				case frames <- buf:
				case <-gctx.Done():
					return gctx.Err()
				}
			case pcap.NextErrorTimeoutExpired:
				continue
			case pcap.NextErrorNoMorePackets:
				return nil
			default:
				return fmt.Errorf("capture: reading packet: %w", err)
			}
		}
	})

	for i := 0; i < s.cfg.DecodeWorkers; i++ {
		group.Go(func() error {
			for {
				select {
				case data, ok := <-frames:
					if !ok {
						return nil
					}
					raw := centrifuge.Parse(link, data)
					if centrifuge.Filter(raw, s.cfg.Verbosity) {
						emit(raw)
					}
				case <-gctx.Done():
					return gctx.Err()
				}
			}
		})
	}

	if err := group.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
