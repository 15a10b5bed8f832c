// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc/credentials"
)

// Exporter is the protocol used to export the traces
type Exporter string

const (
	// HTTP is the protocol used to export the traces via HTTP/1.1
	HTTP Exporter = "http"
	// GRPC is the protocol used to export the traces via HTTP/2 (gRPC)
	GRPC Exporter = "grpc"
	// STDOUT is used to write the traces to standard error, for debugging
	STDOUT Exporter = "stdout"
	// NOOP is used to disable the export of traces
	NOOP Exporter = "noop"
)

var (
	// ErrInvalidExporter is returned for an unknown exporter
	ErrInvalidExporter = errors.New("invalid exporter")
	// ErrMissingURL is returned if an otlp exporter has no collector url
	ErrMissingURL = errors.New("url is required for otlp exporter")
)

// String returns the string representation of the protocol
func (e Exporter) String() string {
	return string(e)
}

// Validate validates the protocol
func (e Exporter) Validate() error {
	switch e {
	case HTTP, GRPC, STDOUT, NOOP, "":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidExporter, e)
	}
}

// IsExporting returns true if the protocol exports to a collector
func (e Exporter) IsExporting() bool {
	return e == HTTP || e == GRPC
}

// exporterFactory creates a new exporter
type exporterFactory func(ctx context.Context, config *Config) (sdktrace.SpanExporter, error)

// registry contains the factories of all supported exporters
var registry = map[Exporter]exporterFactory{
	HTTP:   newHTTPExporter,
	GRPC:   newGRPCExporter,
	STDOUT: newStdoutExporter,
	NOOP:   newNoopExporter,
	"":     newNoopExporter,
}

// Create creates a new exporter based on the configuration
func (e Exporter) Create(ctx context.Context, config *Config) (sdktrace.SpanExporter, error) {
	if factory, ok := registry[e]; ok {
		return factory(ctx, config)
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidExporter, e)
}

func newHTTPExporter(ctx context.Context, config *Config) (sdktrace.SpanExporter, error) {
	headers := authHeaders(config.Token)
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpointURL(config.Url),
	}
	if headers != nil {
		opts = append(opts, otlptracehttp.WithHeaders(headers))
	}

	if !config.TLS.Enabled {
		opts = append(opts, otlptracehttp.WithInsecure())
		return otlptracehttp.New(ctx, opts...)
	}
	tlsCfg, err := getTLSConfig(config.TLS.CertPath)
	if err != nil {
		return nil, err
	}
	opts = append(opts, otlptracehttp.WithTLSClientConfig(tlsCfg))
	return otlptracehttp.New(ctx, opts...)
}

func newGRPCExporter(ctx context.Context, config *Config) (sdktrace.SpanExporter, error) {
	headers := authHeaders(config.Token)
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpointURL(config.Url),
	}
	if headers != nil {
		opts = append(opts, otlptracegrpc.WithHeaders(headers))
	}

	if !config.TLS.Enabled {
		opts = append(opts, otlptracegrpc.WithInsecure())
		return otlptracegrpc.New(ctx, opts...)
	}
	tlsCfg, err := getTLSConfig(config.TLS.CertPath)
	if err != nil {
		return nil, err
	}
	opts = append(opts, otlptracegrpc.WithTLSCredentials(credentials.NewTLS(tlsCfg)))
	return otlptracegrpc.New(ctx, opts...)
}

// newStdoutExporter writes the spans to standard error, standard output
// is reserved for the results.
func newStdoutExporter(_ context.Context, _ *Config) (sdktrace.SpanExporter, error) {
	return stdouttrace.New(stdouttrace.WithWriter(os.Stderr), stdouttrace.WithPrettyPrint())
}

func newNoopExporter(_ context.Context, _ *Config) (sdktrace.SpanExporter, error) {
	return noopExporter{}, nil
}

var _ sdktrace.SpanExporter = noopExporter{}

// noopExporter drops all spans
type noopExporter struct{}

func (noopExporter) ExportSpans(context.Context, []sdktrace.ReadOnlySpan) error { return nil }
func (noopExporter) Shutdown(context.Context) error                            { return nil }

// authHeaders returns the authorization header for the token, if any
func authHeaders(token string) map[string]string {
	if token == "" {
		return nil
	}
	return map[string]string{"Authorization": fmt.Sprintf("Bearer %s", token)}
}

// getTLSConfig returns the tls configuration trusting the given certificate
// in addition to the system pool
func getTLSConfig(certFile string) (*tls.Config, error) {
	if certFile == "" {
		return &tls.Config{MinVersion: tls.VersionTLS12}, nil
	}

	b, err := os.ReadFile(certFile) // #nosec G304 // certificate path is operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file %q: %w", certFile, err)
	}
	pool, err := x509.SystemCertPool()
	if err != nil {
		pool = x509.NewCertPool()
	}
	if !pool.AppendCertsFromPEM(b) {
		return nil, fmt.Errorf("failed to append certificate %q to pool", certFile)
	}
	return &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}, nil
}
