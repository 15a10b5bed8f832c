// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package runner collects the raw probe outputs of all runs and parses them.
package runner

import (
	"context"
	"fmt"

	"github.com/telekom/trstats/internal/archive"
	"github.com/telekom/trstats/internal/logger"
	"github.com/telekom/trstats/internal/traceroute"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Archiver stores the raw capture of every run.
//
//go:generate go tool moq -out archiver_moq.go . Archiver
type Archiver interface {
	Append(ctx context.Context, rec archive.Record) error
}

// Options configure a [Runner].
type Options struct {
	// Padding is applied to every parsed trace.
	Padding traceroute.Padding
	// Target is recorded in the archive, it may be empty for captures.
	Target string
	// Archive receives every capture if set.
	Archive Archiver
}

// Runner turns the captures of a [Source] into traces.
type Runner struct {
	source Source
	opts   Options
}

// New returns a runner reading from the given source.
func New(src Source, opts Options) *Runner {
	return &Runner{source: src, opts: opts}
}

// Run collects all captures and parses them, in run order.
func (r *Runner) Run(ctx context.Context) ([]traceroute.Trace, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("runner.Runner")
	ctx, span := tracer.Start(ctx, "Run", trace.WithAttributes(
		attribute.String("runner.target", r.opts.Target),
		attribute.String("runner.padding", r.opts.Padding.String()),
	))
	defer span.End()
	log := logger.FromContext(ctx)

	// logged by the caller
	captures, err := r.source.Collect(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "collect failed")
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("runner.runs", len(captures)))

	traces := make([]traceroute.Trace, 0, len(captures))
	for _, c := range captures {
		t := traceroute.Parse(c.Output, r.opts.Padding)
		log.DebugContext(ctx, "Parsed run", "run", c.Run, "origin", c.Origin, "hops", len(t))
		traceroute.LogTrace(ctx, t)

		if r.opts.Archive != nil {
			rec := archive.Record{Run: c.Run, Origin: c.Origin, Target: r.opts.Target, Output: c.Output, Hops: t}
			if err := r.opts.Archive.Append(ctx, rec); err != nil {
				span.SetStatus(codes.Error, "archive failed")
				span.RecordError(err)
				return nil, fmt.Errorf("failed to archive run %d: %w", c.Run, err)
			}
		}
		traces = append(traces, t)
	}

	log.InfoContext(ctx, "Collected runs", "runs", len(traces))
	return traces, nil
}
