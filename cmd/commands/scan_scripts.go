package commands

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/arwahscan/arwahscan/internal/core"
	"github.com/arwahscan/arwahscan/pkg/scripts"
)

// scriptsMode mirrors the original scanner's --scripts flag: none skips
// script execution entirely, default runs the built-in nmap template,
// custom loads tag-filtered descriptors from ~/.arwah_scripts.toml.
type scriptsMode string

const (
	scriptsNone    scriptsMode = "none"
	scriptsDefault scriptsMode = "default"
	scriptsCustom  scriptsMode = "custom"
)

func loadScriptsToRun(mode scriptsMode) ([]scripts.Descriptor, error) {
	switch mode {
	case scriptsCustom:
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("scripts: no home directory: %w", err)
		}
		cfg, err := scripts.LoadConfig(filepath.Join(home, ".arwah_scripts.toml"))
		if err != nil {
			return nil, err
		}
		return scripts.LoadCustom(cfg)
	case scriptsDefault:
		return []scripts.Descriptor{scripts.Default()}, nil
	default:
		return nil, nil
	}
}

// openPortsCollector tees an Event stream, remembering which ports came
// back open per host so scripts can run against them once the scan and
// its exporter have both finished draining the channel.
type openPortsCollector struct {
	ports map[string][]uint16
}

func newOpenPortsCollector() *openPortsCollector {
	return &openPortsCollector{ports: make(map[string][]uint16)}
}

func (c *openPortsCollector) observe(e core.Event) {
	if e.Kind == core.EventKindResult && e.Result != nil && e.Result.State == core.StateOpen {
		c.ports[e.Result.Host] = append(c.ports[e.Result.Host], e.Result.Port)
	}
}

// tee wraps events so observe fires on every event before the exporter
// sees it, without the exporter's consumption speed affecting observe.
func (c *openPortsCollector) tee(events <-chan core.Event) <-chan core.Event {
	out := make(chan core.Event, cap(events))
	go func() {
		defer close(out)
		for e := range events {
			c.observe(e)
			out <- e
		}
	}()
	return out
}

// runScriptsAgainst runs every descriptor in toRun against each host with
// open ports, printing each script's combined stdout/stderr as it completes.
func runScriptsAgainst(ctx context.Context, ports map[string][]uint16, toRun []scripts.Descriptor) {
	if len(toRun) == 0 {
		return
	}
	for host, hostPorts := range ports {
		ip := net.ParseIP(host)
		if ip == nil {
			continue
		}
		for _, desc := range toRun {
			fmt.Printf("Starting script(s) for %s\n", host)
			result, err := desc.Run(ctx, "", ip, hostPorts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "script %q on %s: %v\n", desc.Name, host, err)
				continue
			}
			fmt.Println(result)
		}
	}
}
