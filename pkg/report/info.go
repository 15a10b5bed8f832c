// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	runInfoMetricName = "trstats_run_info"
	runInfoHelp       = "Metadata of the trstats run the hop gauges belong to."
)

// RegisterRunInfo registers the trstats_run_info info-style metric on the given registry.
// It sets the gauge to 1 with labels target, source, runs and version.
// The target is empty for capture directories without a known target.
func RegisterRunInfo(registry prometheus.Registerer, target, source, runs, version string) error {
	info := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: runInfoMetricName,
			Help: runInfoHelp,
		},
		[]string{"target", "source", "runs", "version"},
	)
	info.WithLabelValues(target, source, runs, version).Set(1)
	return registry.Register(info)
}
