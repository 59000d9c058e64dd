// Package scripts runs external commands against scan results, templated
// from a descriptor — either the built-in default or a set of custom
// descriptors discovered under a configured directory.
package scripts

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Descriptor configures how a script is invoked for a given scan result.
type Descriptor struct {
	Name           string   `toml:"name"`
	TriggerPort    string   `toml:"trigger_port"`
	PortsSeparator string   `toml:"ports_separator"`
	CallFormat     string   `toml:"call_format"`
	Tags           []string `toml:"tags"`
}

// Default returns the built-in nmap-invoking descriptor.
func Default() Descriptor {
	return Descriptor{
		Name:           "default",
		PortsSeparator: ",",
		CallFormat:     "nmap -vvv -p {{port}} -{{ipversion}} {{ip}}",
		Tags:           []string{"core_approved", "arwahscan", "default"},
	}
}

// Config is the on-disk ~/.arwah_scripts.toml shape: which tags to run,
// and where to look for descriptor files.
type Config struct {
	Tags      []string `toml:"tags"`
	Directory string   `toml:"directory"`
}

// LoadConfig decodes a Config from path.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path) // #nosec G304 -- path is an operator-supplied config file
	if err != nil {
		return cfg, fmt.Errorf("scripts: reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("scripts: parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadCustom finds every descriptor file under cfg.Directory whose tags
// are a subset of cfg.Tags. A descriptor file is any regular file whose
// leading run of '#'-prefixed lines (after an optional shebang) parses as
// TOML.
func LoadCustom(cfg Config) ([]Descriptor, error) {
	dir := cfg.Directory
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("scripts: no directory configured and no home dir: %w", err)
		}
		dir = home
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scripts: reading directory %s: %w", dir, err)
	}

	var found []Descriptor
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		desc, ok, err := parseDescriptorHeader(path)
		if err != nil || !ok {
			continue
		}
		if !tagsSubsetOf(desc.Tags, cfg.Tags) {
			continue
		}
		found = append(found, desc)
	}
	return found, nil
}

func tagsSubsetOf(tags, allowed []string) bool {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, t := range allowed {
		allowedSet[t] = struct{}{}
	}
	for _, t := range tags {
		if _, ok := allowedSet[t]; !ok {
			return false
		}
	}
	return true
}

// parseDescriptorHeader reads the leading consecutive '#'-prefixed
// comment block of path (skipping a shebang line) and attempts to parse
// the uncommented text as a Descriptor.
func parseDescriptorHeader(path string) (Descriptor, bool, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path enumerated from an operator-configured directory
	if err != nil {
		return Descriptor{}, false, err
	}

	lines := strings.Split(string(data), "\n")
	var header []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#!") {
			continue
		}
		if !strings.HasPrefix(trimmed, "#") {
			break
		}
		header = append(header, strings.TrimPrefix(strings.TrimPrefix(trimmed, "#"), " "))
	}
	if len(header) == 0 {
		return Descriptor{}, false, nil
	}

	var desc Descriptor
	if err := toml.Unmarshal([]byte(strings.Join(header, "\n")), &desc); err != nil {
		return Descriptor{}, false, nil
	}
	if desc.CallFormat == "" {
		return Descriptor{}, false, nil
	}
	return desc, true, nil
}

// Run substitutes {{script}}, {{ip}}, {{port}}, and {{ipversion}} into
// CallFormat and executes it through the platform shell, returning
// combined stdout+stderr.
func (d Descriptor) Run(ctx context.Context, scriptPath string, ip net.IP, ports []uint16) (string, error) {
	portStr := d.TriggerPort
	if portStr == "" {
		strs := make([]string, len(ports))
		for i, p := range ports {
			strs[i] = strconv.Itoa(int(p))
		}
		sep := d.PortsSeparator
		if sep == "" {
			sep = ","
		}
		portStr = strings.Join(strs, sep)
	}

	ipVersion := "4"
	if ip.To4() == nil {
		ipVersion = "6"
	}

	cmdStr := d.CallFormat
	replacer := strings.NewReplacer(
		"{{script}}", scriptPath,
		"{{ip}}", ip.String(),
		"{{port}}", portStr,
		"{{ipversion}}", ipVersion,
	)
	cmdStr = replacer.Replace(cmdStr)

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd.exe", "/c", cmdStr) // #nosec G204 -- operator-authored script template
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", cmdStr) // #nosec G204 -- operator-authored script template
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return out.String(), fmt.Errorf("scripts: running %q: %w", d.Name, err)
	}
	return out.String(), nil
}
