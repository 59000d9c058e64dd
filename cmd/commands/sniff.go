package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arwahscan/arwahscan/internal/capture"
	"github.com/arwahscan/arwahscan/internal/format"
)

// sandboxConfigPaths is the search order for a sniff sandbox config. arwahscan
// never sandboxes itself; dropping a file at one of these paths only makes it
// log that a sandbox would apply here, since real process sandboxing is an
// external collaborator's job (systemd, a container runtime, seccomp tooling).
func sandboxConfigPaths() []string {
	paths := []string{
		"/etc/arwahscan/sniff.conf",
		"/usr/local/etc/arwahscan/sniff.conf",
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "arwahscan", "sniff.conf"))
	}
	return paths
}

func warnIfSandboxConfigPresent() {
	for _, p := range sandboxConfigPaths() {
		if _, err := os.Stat(p); err == nil {
			fmt.Fprintf(os.Stderr, "would sandbox: %s present, but arwahscan does not sandbox itself — wrap it in one (systemd, a container, seccomp) if you need isolation\n", p)
			return
		}
	}
}

var sniffCmd = &cobra.Command{
	Use:   "sniff",
	Short: "Passively decode traffic on an interface or pcap file",
	Long: `Capture and decode live traffic (or replay a pcap file), printing every
packet whose decoded layers clear the configured noise threshold.

Unlike scan, sniff never sends anything: it's a read-only decoder for
traffic that's already flowing.`,
	Example: `  # Watch interesting traffic on eth0
  arwahscan sniff --interface eth0

  # Replay a capture, showing only the least noisy packets (HTTP, TLS, DNS, DHCP)
  arwahscan sniff --read capture.pcap --verbosity 0

  # Full-line JSON, for piping into another tool
  arwahscan sniff --interface eth0 --layout json`,
	RunE: runSniff,
}

func init() {
	rootCmd.AddCommand(sniffCmd)

	sniffCmd.Flags().StringP("interface", "i", "", "interface to capture on")
	sniffCmd.Flags().String("read", "", "pcap file to replay instead of a live interface")
	sniffCmd.Flags().String("filter", "", "BPF filter expression")
	sniffCmd.Flags().Bool("promiscuous", false, "put the interface into promiscuous mode")
	sniffCmd.Flags().Int("verbosity", 2, "noise threshold: 0 shows only the most informative packets, 4 shows everything")
	sniffCmd.Flags().String("layout", "compact", "output layout: compact, debugging, or json")
	sniffCmd.Flags().Bool("color", true, "colorize compact-layout output")
	sniffCmd.Flags().Int("decode-workers", 0, "concurrent decode workers (0=auto-detect)")

	_ = viper.BindPFlag("sniff.interface", sniffCmd.Flags().Lookup("interface"))
	_ = viper.BindPFlag("sniff.read", sniffCmd.Flags().Lookup("read"))
	_ = viper.BindPFlag("sniff.filter", sniffCmd.Flags().Lookup("filter"))
	_ = viper.BindPFlag("sniff.verbosity", sniffCmd.Flags().Lookup("verbosity"))
	_ = viper.BindPFlag("sniff.layout", sniffCmd.Flags().Lookup("layout"))
}

func runSniff(cmd *cobra.Command, args []string) error {
	iface, _ := cmd.Flags().GetString("interface")
	readFile, _ := cmd.Flags().GetString("read")
	filter, _ := cmd.Flags().GetString("filter")
	promisc, _ := cmd.Flags().GetBool("promiscuous")
	verbosity, _ := cmd.Flags().GetInt("verbosity")
	layoutName, _ := cmd.Flags().GetString("layout")
	colors, _ := cmd.Flags().GetBool("color")
	if noColor {
		colors = false
	}
	workers, _ := cmd.Flags().GetInt("decode-workers")

	warnIfSandboxConfigPresent()

	session, err := capture.Open(capture.Config{
		Interface:     iface,
		Offline:       readFile,
		Promiscuous:   promisc,
		BPFFilter:     filter,
		Verbosity:     verbosity,
		DecodeWorkers: workers,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	formatter := format.New(parseLayout(layoutName), colors)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return session.Run(ctx, formatter.Print)
}

func parseLayout(name string) format.Layout {
	switch name {
	case "debugging":
		return format.LayoutDebugging
	case "json":
		return format.LayoutJSON
	default:
		return format.LayoutCompact
	}
}
