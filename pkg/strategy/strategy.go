// Package strategy decides the order ports are probed in: as given, in
// ascending order across a range, or permuted across a range so that a
// partial scan doesn't look like a sweep starting at port 1.
package strategy

import (
	"fmt"
	"iter"
	"math/rand/v2"
)

// PortRange is an inclusive, immutable [Start, End] bound.
type PortRange struct {
	start, end uint16
}

// NewPortRange validates start <= end and returns an immutable range.
func NewPortRange(start, end uint16) (PortRange, error) {
	if start > end {
		return PortRange{}, fmt.Errorf("strategy: invalid port range %d-%d", start, end)
	}
	return PortRange{start: start, end: end}, nil
}

func (r PortRange) Start() uint16 { return r.start }
func (r PortRange) End() uint16   { return r.end }
func (r PortRange) size() int     { return int(r.end) - int(r.start) + 1 }

// ScanOrder selects serial or randomized iteration.
type ScanOrder int

const (
	OrderSerial ScanOrder = iota
	OrderRandom
)

// Strategy produces the sequence of ports a scan should probe.
type Strategy interface {
	// Order returns the full port sequence.
	Order() []uint16
}

// Pick implements spec's four-way dispatch: explicit ports win over a
// range; within each, the scan order picks serial-as-given/ascending vs.
// a shuffle/permutation.
func Pick(r *PortRange, ports []uint16, order ScanOrder) Strategy {
	if len(ports) > 0 {
		if order == OrderRandom {
			shuffled := make([]uint16, len(ports))
			copy(shuffled, ports)
			rand.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			return manualStrategy{ports: shuffled}
		}
		return manualStrategy{ports: ports}
	}

	if r == nil {
		return manualStrategy{}
	}
	if order == OrderRandom {
		return randomRangeStrategy{start: r.start, end: r.end}
	}
	return serialRangeStrategy{start: r.start, end: r.end}
}

type manualStrategy struct {
	ports []uint16
}

func (m manualStrategy) Order() []uint16 { return m.ports }

type serialRangeStrategy struct {
	start, end uint16
}

func (s serialRangeStrategy) Order() []uint16 {
	out := make([]uint16, 0, int(s.end)-int(s.start)+1)
	for p := int(s.start); p <= int(s.end); p++ {
		out = append(out, uint16(p))
	}
	return out
}

type randomRangeStrategy struct {
	start, end uint16
}

// Order implements the coprime-step full-cover permutation: every port in
// [start, end] is visited exactly once, in an order that doesn't walk the
// range sequentially.
func (s randomRangeStrategy) Order() []uint16 {
	n := int(s.end) - int(s.start) + 1
	out := make([]uint16, 0, n)
	if n <= 0 {
		return out
	}
	if n == 1 {
		return []uint16{s.start}
	}

	step := pickCoprimeStep(n)
	i0 := rand.IntN(n)

	i := i0
	for {
		out = append(out, uint16(int(s.start)+i))
		i = (i + step) % n
		if i == i0 {
			break
		}
	}
	return out
}

// pickCoprimeStep chooses a step in [n/4, n-n/4) coprime with n, retrying
// up to 10 times before falling back to n-1 (always coprime with n for
// n > 1, since gcd(n-1, n) == 1).
func pickCoprimeStep(n int) int {
	lo := n / 4
	hi := n - n/4
	if hi <= lo {
		hi = lo + 1
	}

	for attempt := 0; attempt < 10; attempt++ {
		candidate := lo + rand.IntN(hi-lo)
		if candidate < 1 {
			candidate = 1
		}
		if gcd(candidate, n) == 1 {
			return candidate
		}
	}
	return n - 1
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Socket is one member of the IP x port product a scan iterates over.
type Socket struct {
	IP   string
	Port uint16
}

// Product lazily enumerates every (ip, port) pair in port-major order:
// every ip for ports[0], then every ip for ports[1], and so on. Nothing
// is materialized up front, so a scan can start probing before the full
// ip x port cross product would otherwise be built.
func Product(ips []string, ports []uint16) iter.Seq[Socket] {
	return func(yield func(Socket) bool) {
		for _, port := range ports {
			for _, ip := range ips {
				if !yield(Socket{IP: ip, Port: port}) {
					return
				}
			}
		}
	}
}
