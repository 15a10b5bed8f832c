// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Set(t *testing.T) {
	m := NewMetrics()
	m.Set(testDocument())

	assert.Equal(t, 0.482, testutil.ToFloat64(m.latency.WithLabelValues("1", "avg")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.latency.WithLabelValues("3", "median")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.latency.WithLabelValues("3", "min")))
	assert.Equal(t, 14.0, testutil.ToFloat64(m.latency.WithLabelValues("3", "max")))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.samples.WithLabelValues("3")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.responsive.WithLabelValues("2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.responsive.WithLabelValues("1")))

	// 4 statistics for each of the 2 responsive hops
	assert.Equal(t, 8, testutil.CollectAndCount(m.latency))
	assert.Equal(t, 3, testutil.CollectAndCount(m.responsive))
}

func TestMetrics_GetCollectors(t *testing.T) {
	m := NewMetrics()
	assert.Len(t, m.GetCollectors(), 3)

	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))
	assert.Error(t, m.Register(reg), "registering twice must fail")
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics()
	require.NoError(t, m.Register(reg))
	m.Set(testDocument())

	path := filepath.Join(t.TempDir(), "trstats.prom")
	require.NoError(t, WriteTextfile(path, reg))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, `trstats_hop_latency_milliseconds{hop="3",stat="median"} 12`)
	assert.Contains(t, out, `trstats_hop_responsive{hop="2"} 0`)
	assert.Contains(t, out, `trstats_hop_samples{hop="1"} 3`)
	assert.False(t, strings.Contains(out, "go_goroutines"))

	assert.Error(t, WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"), reg))
}
