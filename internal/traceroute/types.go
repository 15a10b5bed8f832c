// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnresponsiveMarker is the value written in place of latencies for hops
// that never answered the probe.
const UnresponsiveMarker = "Hop is unresponsive"

// ProbesPerHop is the number of samples traceroute sends per hop by default.
const ProbesPerHop = 3

// Trace is the parsed output of a single probe execution.
// Hops are kept in the order the probe printed them.
type Trace []Hop

// Hop is the measurement of one hop within a single trace.
type Hop struct {
	// Number is the hop number as printed by the probe, starting at 1.
	Number int
	// Measurement is either [Responsive] or [Unresponsive].
	Measurement Measurement
}

// Measurement is the outcome of probing one hop.
// It is implemented by [Responsive] and [Unresponsive] only.
type Measurement interface {
	measurement()
}

// Responsive holds the samples of a hop that answered at least once.
type Responsive struct {
	// Hosts are the addresses and names printed for the hop.
	// The probe only prints a host when it changes, so there may be
	// fewer hosts than latencies.
	Hosts []string
	// Latencies are the round trip times in milliseconds.
	Latencies []float64
}

// Unresponsive marks a hop for which the probe got no reply.
type Unresponsive struct{}

func (Responsive) measurement()   {}
func (Unresponsive) measurement() {}

// IsResponsive reports whether the hop answered the probe.
func (h Hop) IsResponsive() bool {
	_, ok := h.Measurement.(Responsive)
	return ok
}

// MarshalJSON encodes the hop the way it is stored in run archives:
// unresponsive hops carry the [UnresponsiveMarker] as their only latency.
func (h Hop) MarshalJSON() ([]byte, error) {
	type hop struct {
		Hop     int      `json:"hop"`
		Hosts   []string `json:"hosts"`
		Latency []any    `json:"latency"`
	}

	out := hop{Hop: h.Number, Hosts: []string{}}
	switch m := h.Measurement.(type) {
	case Responsive:
		if m.Hosts != nil {
			out.Hosts = m.Hosts
		}
		out.Latency = make([]any, 0, len(m.Latencies))
		for _, l := range m.Latencies {
			out.Latency = append(out.Latency, l)
		}
	default:
		out.Latency = []any{UnresponsiveMarker}
	}
	return json.Marshal(out)
}

func (h Hop) String() string {
	switch m := h.Measurement.(type) {
	case Responsive:
		samples := make([]string, 0, len(m.Latencies))
		for _, l := range m.Latencies {
			samples = append(samples, fmt.Sprintf("%.3f ms", l))
		}
		return fmt.Sprintf("%-2d  %-45.45s  %s", h.Number, strings.Join(m.Hosts, " "), strings.Join(samples, "  "))
	default:
		return fmt.Sprintf("%-2d  %s", h.Number, UnresponsiveMarker)
	}
}

// Padding decides how responsive hops with fewer than [ProbesPerHop]
// samples are completed.
type Padding int

const (
	// ZeroFill appends 0 ms samples until a responsive hop has
	// [ProbesPerHop] latencies. The synthetic zeros take part in every
	// statistic computed later on and pull the average and minimum down.
	ZeroFill Padding = iota
	// NoPadding keeps only the samples the probe actually reported.
	NoPadding
)

const (
	paddingZeroFill = "zero-fill"
	paddingNone     = "none"
)

func (p Padding) String() string {
	switch p {
	case ZeroFill:
		return paddingZeroFill
	case NoPadding:
		return paddingNone
	default:
		return "unknown"
	}
}

// ParsePadding returns the padding policy for its name.
// The empty string selects [ZeroFill].
func ParsePadding(s string) (Padding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", paddingZeroFill:
		return ZeroFill, nil
	case paddingNone:
		return NoPadding, nil
	default:
		return ZeroFill, fmt.Errorf("%w: %q", ErrInvalidPadding, s)
	}
}

// pad completes the latencies according to the policy.
func (p Padding) pad(latencies []float64) []float64 {
	if p != ZeroFill {
		return latencies
	}
	for len(latencies) < ProbesPerHop {
		latencies = append(latencies, 0.0)
	}
	return latencies
}
