// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package telemetry sets up OpenTelemetry tracing and the Prometheus
// registry backing the metrics textfile.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/telekom/trstats/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const serviceName = "trstats"

// Span batching of a single run. A run produces few spans, the batch
// mostly bounds how long Shutdown waits for the collector.
const (
	batchTimeout = 5 * time.Second
	maxQueueSize = 1000
	maxBatchSize = 100
)

var _ Provider = (*manager)(nil)

// Provider owns the tracer provider of a run and the registry the
// metrics textfile is gathered from.
//
//go:generate go tool moq -out telemetry_moq.go . Provider
type Provider interface {
	// GetRegistry returns the registry backing the metrics textfile
	GetRegistry() *prometheus.Registry
	// InitTracing installs the global tracer provider.
	// Disabled telemetry installs one that drops every span.
	InitTracing(ctx context.Context) error
	// Shutdown exports the pending spans and stops the tracer provider
	Shutdown(ctx context.Context) error
}

type manager struct {
	config  Config
	version string
	// registry is gathered into the metrics textfile
	registry *prometheus.Registry
	// tp is set by InitTracing
	tp *sdktrace.TracerProvider
}

// New returns the telemetry of one run. The registry starts empty,
// runtime collectors are left out to keep the textfile about hops only.
//
//nolint:gocritic
func New(config Config, version string) Provider {
	return &manager{
		config:   config,
		version:  version,
		registry: prometheus.NewRegistry(),
	}
}

// GetRegistry returns the registry backing the metrics textfile
func (m *manager) GetRegistry() *prometheus.Registry {
	return m.registry
}

// exporter returns the configured exporter, or [NOOP] when telemetry is disabled
func (m *manager) exporter() Exporter {
	if !m.config.Enabled {
		return NOOP
	}
	return m.config.Exporter
}

// InitTracing installs a tracer provider sampling every span of the run
// and batching them to the exporter.
func (m *manager) InitTracing(ctx context.Context) error {
	log := logger.FromContext(ctx)
	res, err := resource.New(ctx,
		resource.WithHost(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(m.version),
		),
	)
	if err != nil {
		log.ErrorContext(ctx, "Failed to describe the trace resource", "error", err)
		return fmt.Errorf("failed to create resource: %w", err)
	}

	kind := m.exporter()
	exporter, err := kind.Create(ctx, &m.config)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create trace exporter", "exporter", kind, "error", err)
		return fmt.Errorf("failed to create exporter: %w", err)
	}

	m.tp = sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(sdktrace.NewBatchSpanProcessor(exporter,
			sdktrace.WithBatchTimeout(batchTimeout),
			sdktrace.WithMaxQueueSize(maxQueueSize),
			sdktrace.WithMaxExportBatchSize(maxBatchSize),
		)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(m.tp)
	log.DebugContext(ctx, "Tracing initialized", "exporter", kind, "enabled", m.config.Enabled)
	return nil
}

// Shutdown exports the pending spans and stops the tracer provider.
// It is a no-op if InitTracing never succeeded.
func (m *manager) Shutdown(ctx context.Context) error {
	if m.tp == nil {
		return nil
	}
	if err := m.tp.Shutdown(ctx); err != nil {
		logger.FromContext(ctx).ErrorContext(ctx, "Failed to flush traces", "error", err)
		return fmt.Errorf("failed to shutdown tracer provider: %w", err)
	}
	logger.FromContext(ctx).DebugContext(ctx, "Tracing shut down")
	return nil
}
