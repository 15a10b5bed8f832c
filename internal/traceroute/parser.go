// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"strconv"
	"strings"
)

// bannerPrefix starts the header line traceroute prints before the hops.
const bannerPrefix = "traceroute"

// Parse converts the output of one probe execution into a [Trace].
// Lines that are not hop lines are skipped. Parse never fails; output
// without any hop line yields an empty trace.
func Parse(output string, pad Padding) Trace {
	trace := Trace{}
	for line := range strings.Lines(output) {
		if isBanner(line) {
			continue
		}
		hop, ok := parseLine(Tokenize(line), pad)
		if !ok {
			continue
		}
		trace = append(trace, hop)
	}
	return trace
}

func isBanner(line string) bool {
	return strings.HasPrefix(strings.ToLower(line), bannerPrefix)
}

// scanState is the state of the per-line token scanner.
type scanState int

const (
	// scanning expects a latency value or an address.
	scanning scanState = iota
	// afterLatency expects the unit that belongs to the previous latency.
	afterLatency
)

// parseLine turns the tokens of a single line into a hop.
// It returns false if the line is not a hop line.
func parseLine(tokens []Token, pad Padding) (Hop, bool) {
	if len(tokens) == 0 || !isInteger(tokens[0].Text) {
		return Hop{}, false
	}
	number, err := strconv.Atoi(tokens[0].Text)
	if err != nil {
		return Hop{}, false
	}

	for _, t := range tokens {
		if t.Kind == Wildcard {
			return Hop{Number: number, Measurement: Unresponsive{}}, true
		}
	}

	// The first token is the hop number and the last one is
	// either a unit or a trailing annotation, neither is scanned.
	var (
		hosts     = []string{}
		latencies = []float64{}
		state     = scanning
		last      = len(tokens) - 1
	)
	for i := 1; i < last; i++ {
		tok := tokens[i]
		switch {
		case state == afterLatency:
			state = scanning
		case tok.Kind == Number && tokens[i+1].Kind == Unit:
			latencies = append(latencies, tok.Value)
			state = afterLatency
		case !strings.Contains(tok.Text, unitMillis):
			hosts = append(hosts, tok.Text)
		}
	}

	return Hop{
		Number: number,
		Measurement: Responsive{
			Hosts:     hosts,
			Latencies: pad.pad(latencies),
		},
	}, true
}
