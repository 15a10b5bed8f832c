// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package trstats

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/telekom/trstats/internal/archive"
	"github.com/telekom/trstats/internal/logger"
	"github.com/telekom/trstats/internal/traceroute"
	"github.com/telekom/trstats/pkg/config"
	"github.com/telekom/trstats/pkg/hopstats"
	"github.com/telekom/trstats/pkg/report"
	"github.com/telekom/trstats/pkg/runner"
	"github.com/telekom/trstats/pkg/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	shutdownTimeout = time.Second * 10
	tracerName      = "trstats"
)

// Trstats is the main struct of the trstats application
type Trstats struct {
	// config is the startup configuration
	config *config.Config
	// telemetry provides the tracing and the metrics registry
	telemetry telemetry.Provider
	// metrics holds the per hop gauges of the textfile
	metrics *report.Metrics
	// prober runs the traceroute binary
	prober traceroute.Prober
	// captures is the filesystem the capture directory is read from
	captures fs.FS
	// stdout receives the summary table
	stdout io.Writer
	// version is the build version reported in the metrics
	version string
}

// New creates a new trstats application from the given configuration
func New(cfg *config.Config, version string) *Trstats {
	t := &Trstats{
		config:    cfg,
		telemetry: telemetry.New(cfg.Telemetry, version),
		metrics:   report.NewMetrics(),
		prober:    traceroute.NewProber(cfg.Probe),
		stdout:    os.Stdout,
		version:   version,
	}
	if cfg.UsesCaptures() {
		t.captures = os.DirFS(cfg.Input)
	}
	return t
}

// Run collects all runs, aggregates them per hop and writes every
// configured output. Telemetry is flushed before Run returns.
func (t *Trstats) Run(ctx context.Context) error {
	ctx, cancel := logger.NewContextWithLogger(ctx)
	defer cancel()
	log := logger.FromContext(ctx)

	if err := t.telemetry.InitTracing(ctx); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	var arch *archive.Archive
	defer func() { t.shutdown(ctx, arch) }()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "Run", trace.WithAttributes(
		attribute.String("trstats.target", t.config.Target),
		attribute.String("trstats.input", t.config.Input),
		attribute.Int("trstats.runs", t.config.Runs),
		attribute.Int("trstats.max_hops", t.config.MaxHops),
	))
	defer span.End()

	pad, err := traceroute.ParsePadding(t.config.Padding)
	if err != nil {
		return wrapError(ctx, err, "invalid padding policy")
	}
	policy, err := hopstats.ParseHostPolicy(t.config.Hosts)
	if err != nil {
		return wrapError(ctx, err, "invalid host policy")
	}

	opts := runner.Options{Padding: pad, Target: t.config.Target}
	if t.config.HasArchive() {
		arch, err = archive.New(t.config.Archive)
		if err != nil {
			return wrapError(ctx, err, "failed to open archive", "dir", t.config.Archive.Dir)
		}
		log.DebugContext(ctx, "Archiving runs", "path", arch.Path())
		opts.Archive = arch
	}

	traces, err := runner.New(t.source(), opts).Run(ctx)
	if err != nil {
		return wrapError(ctx, err, "failed to collect runs")
	}

	stats, err := hopstats.Aggregate(ctx, traces, hopstats.Options{HopLimit: t.config.MaxHops, Hosts: policy})
	if err != nil {
		return wrapError(ctx, err, "failed to aggregate runs")
	}

	doc := report.FromStatistics(stats)
	if err := t.write(ctx, doc, len(traces)); err != nil {
		return wrapError(ctx, err, "failed to write results")
	}

	log.InfoContext(ctx, "Statistics written", "runs", len(traces), "hops", len(doc), "output", t.config.Output)
	return nil
}

// source returns the capture directory if one is configured,
// the probe otherwise.
func (t *Trstats) source() runner.Source {
	if t.config.UsesCaptures() {
		return &runner.CaptureSource{FS: t.captures, Dir: "."}
	}
	return &runner.ProbeSource{
		Prober:      t.prober,
		Target:      t.config.Target,
		MaxHops:     t.config.MaxHops,
		Runs:        t.config.Runs,
		Delay:       t.config.Delay(),
		Concurrency: t.config.Concurrency,
	}
}

func (t *Trstats) sourceName() string {
	if t.config.UsesCaptures() {
		return "captures"
	}
	return runner.OriginProbe
}

// write writes the document and every optional output derived from it
func (t *Trstats) write(ctx context.Context, doc report.Document, runs int) error {
	log := logger.FromContext(ctx)

	if err := report.WriteFile(t.config.Output, doc); err != nil {
		return err
	}

	if t.config.Graph != "" {
		if err := report.WriteChart(t.config.Graph, doc, t.config.Target); err != nil {
			return err
		}
		log.DebugContext(ctx, "Chart written", "path", t.config.Graph)
	}

	if !t.config.Quiet {
		if err := report.WriteTable(t.stdout, doc); err != nil {
			return err
		}
	}

	if t.config.MetricsFile != "" {
		reg := t.telemetry.GetRegistry()
		if err := t.metrics.Register(reg); err != nil {
			return err
		}
		if err := report.RegisterRunInfo(reg, t.config.Target, t.sourceName(), strconv.Itoa(runs), t.version); err != nil {
			return fmt.Errorf("failed to register run info: %w", err)
		}
		t.metrics.Set(doc)
		if err := report.WriteTextfile(t.config.MetricsFile, reg); err != nil {
			return err
		}
		log.DebugContext(ctx, "Metrics written", "path", t.config.MetricsFile)
	}
	return nil
}

// shutdown closes the archive and flushes the telemetry.
// Failures are logged only, the results are already written at this point.
func (t *Trstats) shutdown(ctx context.Context, arch *archive.Archive) {
	log := logger.FromContext(ctx)
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	var sErrs ErrShutdown
	if arch != nil {
		sErrs.errArchive = arch.Close()
	}
	sErrs.errTelemetry = t.telemetry.Shutdown(ctx)

	if sErrs.HasError() {
		log.ErrorContext(ctx, "Failed to shutdown gracefully", "errors", sErrs)
	}
}

// wrapError logs the error, records it on the current span
// and wraps it with the given message.
func wrapError(ctx context.Context, err error, msg string, args ...any) error {
	log := logger.FromContext(ctx)
	log.ErrorContext(ctx, cases.Title(language.English).String(msg), append(args, "error", err)...)

	span := trace.SpanFromContext(ctx)
	span.SetStatus(codes.Error, msg)
	span.RecordError(err)
	return fmt.Errorf("%s: %w", msg, err)
}
