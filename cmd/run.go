// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/telekom/trstats/internal/logger"
	"github.com/telekom/trstats/internal/traceroute"
	"github.com/telekom/trstats/pkg/config"
	"github.com/telekom/trstats/pkg/hopstats"
	"github.com/telekom/trstats/pkg/trstats"
)

// flagAliases maps alternative flag names to their canonical name
var flagAliases = map[string]string{
	"test": "input",
}

// NewCmdRun creates a new run command
func NewCmdRun(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run traceroute and compute per hop statistics",
		Long: "Runs traceroute against the target, or reads the captures of a directory with --test,\n" +
			"and writes the latency statistics of every hop.",
		RunE: run(version),
	}
	cmd.Flags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if canonical, ok := flagAliases[name]; ok {
			name = canonical
		}
		return pflag.NormalizedName(name)
	})

	NewFlag("runs", "runs").Short("n").BindInt(cmd, config.DefaultRuns, "number of traceroute runs")
	NewFlag("delay", "delay").Short("d").BindInt(cmd, 0, "seconds to wait between two runs")
	NewFlag("max-hops", "max-hops").Short("m").BindInt(cmd, config.DefaultMaxHops, "maximum number of hops, every hop up to it is reported")
	NewFlag("target", "target").Short("t").BindString(cmd, "", "target host, required unless --test is set")
	NewFlag("output", "output").Short("o").BindString(cmd, "", "statistics document, .yaml or .yml for YAML, JSON otherwise")
	NewFlag("graph", "graph").Short("g").BindString(cmd, "", "box plot file, the format follows the extension (pdf by default)")
	NewFlag("input", "input").BindString(cmd, "", "directory of captured traceroute outputs, alias --test")
	NewFlag("padding", "padding").BindString(cmd, traceroute.ZeroFill.String(), "padding of hops with lost probes: zero-fill or none")
	NewFlag("hosts", "hosts").BindString(cmd, hopstats.LastResponsive.String(), "hosts reported per hop: last, first or union")
	NewFlag("concurrency", "concurrency").BindInt(cmd, config.DefaultConcurrency, "number of traceroute runs in parallel")
	NewFlag("probe", "probe").BindString(cmd, traceroute.DefaultCommand, "traceroute binary")
	NewFlag("metrics-file", "metrics-file").BindString(cmd, "", "prometheus textfile with the hop gauges")
	NewFlag("quiet", "quiet").Short("q").BindBool(cmd, false, "do not print the summary table")

	NewFlag("archive.dir", "archive").BindString(cmd, "", "directory of the run archive, disabled if empty")
	NewFlag("archive.max_mb", "archive-max-mb").BindInt(cmd, 0, "archive: size in megabytes before rotation")
	NewFlag("archive.max_files", "archive-max-files").BindInt(cmd, 0, "archive: number of rotated files kept")

	NewFlag("telemetry.enabled", "telemetry-enabled").BindBool(cmd, false, "telemetry: enable tracing")
	NewFlag("telemetry.exporter", "telemetry-exporter").BindString(cmd, "", "telemetry: exporter, one of grpc, http, stdout or noop")
	NewFlag("telemetry.url", "telemetry-url").BindString(cmd, "", "telemetry: url of the collector")
	NewFlag("telemetry.token", "telemetry-token").BindString(cmd, "", "telemetry: bearer token for the collector")
	NewFlag("telemetry.tls.enabled", "telemetry-tls-enabled").BindBool(cmd, false, "telemetry: use tls for the collector")
	NewFlag("telemetry.tls.certPath", "telemetry-tls-cert-path").BindString(cmd, "", "telemetry: certificate of the collector")

	return cmd
}

// run is the entry point to start trstats
func run(version string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg := &config.Config{}
		if err := viper.Unmarshal(cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx, cancel := logger.NewContextWithLogger(ctx)
		defer cancel()
		log := logger.FromContext(ctx)

		if err := cfg.Validate(ctx); err != nil {
			return fmt.Errorf("error while validating the config: %w", err)
		}

		log.InfoContext(ctx, "Running trstats", "target", cfg.Target, "input", cfg.Input, "runs", cfg.Runs)
		return trstats.New(cfg, version).Run(ctx)
	}
}
