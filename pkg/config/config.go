// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"

	"github.com/telekom/trstats/internal/archive"
	"github.com/telekom/trstats/pkg/telemetry"
)

// Defaults of the startup configuration.
const (
	DefaultRuns        = 1
	DefaultMaxHops     = 30
	DefaultConcurrency = 1
)

// Config is the startup configuration of an analysis run.
type Config struct {
	// Runs is the number of probe executions
	Runs int `yaml:"runs" mapstructure:"runs"`
	// DelaySeconds is the wait between two runs in seconds
	DelaySeconds int `yaml:"delay" mapstructure:"delay"`
	// MaxHops is the maximum hop depth and the number of hops reported
	MaxHops int `yaml:"maxHops" mapstructure:"max-hops"`
	// Target is the host to probe. Required unless Input is set.
	Target string `yaml:"target" mapstructure:"target"`
	// Input is a directory of captured probe outputs, one run per file
	Input string `yaml:"input" mapstructure:"input"`
	// Probe is the traceroute binary
	Probe string `yaml:"probe" mapstructure:"probe"`
	// Concurrency is the number of probes run in parallel
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
	// Padding is the padding policy, zero-fill or none
	Padding string `yaml:"padding" mapstructure:"padding"`
	// Hosts is the host policy, last, first or union
	Hosts string `yaml:"hosts" mapstructure:"hosts"`
	// Output is the path of the statistics document
	Output string `yaml:"output" mapstructure:"output"`
	// Graph is the path of the chart, no chart is drawn if empty
	Graph string `yaml:"graph" mapstructure:"graph"`
	// MetricsFile is the path of the Prometheus textfile
	MetricsFile string `yaml:"metricsFile" mapstructure:"metrics-file"`
	// Quiet disables the summary table
	Quiet bool `yaml:"quiet" mapstructure:"quiet"`
	// Archive is the configuration of the run archive
	Archive archive.Config `yaml:"archive" mapstructure:"archive"`
	// Telemetry is the configuration for the telemetry
	Telemetry telemetry.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// Delay returns the wait between two runs
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelaySeconds) * time.Second
}

// UsesCaptures returns true if the runs are read from a capture directory
func (c *Config) UsesCaptures() bool {
	return c.Input != ""
}

// HasArchive returns true if the runs are archived
func (c *Config) HasArchive() bool {
	return c.Archive.Enabled()
}

// HasTelemetry returns true if the config has telemetry enabled
func (c *Config) HasTelemetry() bool {
	return c.Telemetry.Enabled
}
