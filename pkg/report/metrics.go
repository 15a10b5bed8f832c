// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the gauges exported to the Prometheus textfile.
type Metrics struct {
	latency    *prometheus.GaugeVec
	samples    *prometheus.GaugeVec
	responsive *prometheus.GaugeVec
}

// NewMetrics initializes the hop gauges.
func NewMetrics() *Metrics {
	return &Metrics{
		latency: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "trstats_hop_latency_milliseconds",
				Help: "Latency statistic of the hop across all runs in milliseconds.",
			},
			[]string{"hop", "stat"},
		),
		samples: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "trstats_hop_samples",
				Help: "Number of latency samples collected for the hop.",
			},
			[]string{"hop"},
		),
		responsive: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "trstats_hop_responsive",
				Help: "Specifies if the hop answered in at least one run.",
			},
			[]string{"hop"},
		),
	}
}

// GetCollectors returns all metric collectors
func (m *Metrics) GetCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.latency,
		m.samples,
		m.responsive,
	}
}

// Register adds the collectors to the registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.GetCollectors() {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("failed to register hop metrics: %w", err)
		}
	}
	return nil
}

// Set sets the gauges of every hop in the document.
// Unresponsive hops only get the samples and responsive gauges.
func (m *Metrics) Set(d Document) {
	for _, h := range d {
		hop := strconv.Itoa(h.Hop)
		m.samples.WithLabelValues(hop).Set(float64(len(h.Latency)))
		if !h.IsResponsive() {
			m.responsive.WithLabelValues(hop).Set(0)
			continue
		}
		m.responsive.WithLabelValues(hop).Set(1)
		m.latency.WithLabelValues(hop, "avg").Set(h.Avg.Value)
		m.latency.WithLabelValues(hop, "median").Set(h.Median.Value)
		m.latency.WithLabelValues(hop, "min").Set(h.Min.Value)
		m.latency.WithLabelValues(hop, "max").Set(h.Max.Value)
	}
}

// WriteTextfile writes everything gathered from g to path in the
// format of the node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics to %q: %w", path, err)
	}
	return nil
}
