// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package hopstats aggregates the hops of several traces into one
// latency summary per hop number.
package hopstats

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/telekom/trstats/internal/logger"
	"github.com/telekom/trstats/internal/traceroute"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// avgPrecision is the number of decimal places the average is rounded to.
const avgPrecision = 3

// HopStatistics is the aggregated view of one hop number across all traces.
type HopStatistics struct {
	// Hop is the hop number, starting at 1.
	Hop int
	// Hosts are the addresses chosen by the [HostPolicy].
	Hosts []string
	// Latencies are all samples of the hop in trace order.
	Latencies []float64
	// Summary is nil if the hop never answered in any trace.
	Summary *Summary
}

// Summary holds the statistics of the latencies of one hop in milliseconds.
type Summary struct {
	Avg    float64
	Median float64
	Max    float64
	Min    float64
}

// IsResponsive reports whether the hop answered in at least one trace.
func (h HopStatistics) IsResponsive() bool {
	return h.Summary != nil
}

// Options control the aggregation.
type Options struct {
	// HopLimit is the highest hop number reported. Must be at least 1.
	HopLimit int
	// Hosts selects which trace provides the hosts of a hop.
	Hosts HostPolicy
}

// Aggregate merges the traces into exactly opts.HopLimit entries,
// one for every hop number from 1 to the limit.
// Hops outside of that range are ignored. Hops missing from all traces,
// or unresponsive in all of them, are reported as unresponsive.
func Aggregate(ctx context.Context, traces []traceroute.Trace, opts Options) ([]HopStatistics, error) {
	if opts.HopLimit < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHopLimit, opts.HopLimit)
	}
	log := logger.FromContext(ctx)
	span := trace.SpanFromContext(ctx)

	groups := make(map[int][]traceroute.Responsive, opts.HopLimit)
	ignored := 0
	for _, t := range traces {
		for _, hop := range t {
			if hop.Number < 1 || hop.Number > opts.HopLimit {
				ignored++
				continue
			}
			if r, ok := hop.Measurement.(traceroute.Responsive); ok {
				groups[hop.Number] = append(groups[hop.Number], r)
			}
		}
	}
	if ignored > 0 {
		log.DebugContext(ctx, "Ignored hops beyond the hop limit", "count", ignored, "hopLimit", opts.HopLimit)
	}

	result := make([]HopStatistics, 0, opts.HopLimit)
	responsive := 0
	for n := 1; n <= opts.HopLimit; n++ {
		hs, err := aggregateHop(n, groups[n], opts.Hosts)
		if err != nil {
			return nil, err
		}
		if hs.IsResponsive() {
			responsive++
		}
		result = append(result, hs)
	}

	span.AddEvent("hopstats.Aggregate", trace.WithAttributes(
		attribute.Int("hopstats.traces", len(traces)),
		attribute.Int("hopstats.hop_limit", opts.HopLimit),
		attribute.Int("hopstats.responsive_hops", responsive),
	))
	log.DebugContext(ctx, "Aggregated traces", "traces", len(traces), "hops", len(result), "responsive", responsive)
	return result, nil
}

func aggregateHop(n int, records []traceroute.Responsive, policy HostPolicy) (HopStatistics, error) {
	hs := HopStatistics{Hop: n, Hosts: []string{}, Latencies: []float64{}}
	if len(records) == 0 {
		return hs, nil
	}

	for _, r := range records {
		hs.Latencies = append(hs.Latencies, r.Latencies...)
	}
	hs.Hosts = policy.hosts(records)

	// A responsive hop parsed without padding may carry no samples at all.
	if len(hs.Latencies) == 0 {
		return hs, nil
	}
	s, err := summarize(hs.Latencies)
	if err != nil {
		return HopStatistics{}, fmt.Errorf("failed to summarize hop %d: %w", n, err)
	}
	hs.Summary = &s
	return hs, nil
}

func summarize(latencies []float64) (Summary, error) {
	data := stats.Float64Data(latencies)

	mean, err := data.Mean()
	if err != nil {
		return Summary{}, err
	}
	avg, err := round(mean, avgPrecision)
	if err != nil {
		return Summary{}, err
	}
	maxV, err := data.Max()
	if err != nil {
		return Summary{}, err
	}
	minV, err := data.Min()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Avg:    avg,
		Median: median(latencies),
		Max:    maxV,
		Min:    minV,
	}, nil
}

// round rounds v to the given decimal places based on its exact binary value,
// so 10.1235 stored as 10.12349999... rounds down.
func round(v float64, places int) (float64, error) {
	return strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
}

// median returns the element at index len/2 of the sorted samples.
// For an even count that is the upper of the two middle values,
// not their mean.
func median(latencies []float64) float64 {
	sorted := slices.Clone(latencies)
	slices.Sort(sorted)
	return sorted[len(sorted)/2]
}
