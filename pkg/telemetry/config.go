// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"context"
	"fmt"

	"github.com/telekom/trstats/internal/logger"
)

// Config holds the tracing configuration of a trstats run
type Config struct {
	// Enabled exports the spans of the run with Exporter.
	// When false the spans are still created but dropped by the noop exporter,
	// whatever exporter is configured.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Exporter selects where the spans go: grpc, http, stdout (written to stderr) or noop
	Exporter Exporter `yaml:"exporter" mapstructure:"exporter"`
	// Url is the OTLP collector endpoint, required for grpc and http
	Url string `yaml:"url" mapstructure:"url"`
	// Token is sent as bearer token to the collector, if set
	Token string `yaml:"token" mapstructure:"token"`
	// TLS configures the connection to the collector
	TLS TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// TLSConfig configures the transport security towards the OTLP collector.
// Without TLS the exporters connect in plain text.
type TLSConfig struct {
	// Enabled connects to the collector over TLS, trusting the system pool
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// CertPath is an additional PEM certificate to trust, for collectors
	// behind a private CA. Optional.
	CertPath string `yaml:"certPath" mapstructure:"certPath"`
}

// Validate checks that the exporter is known and that the OTLP
// exporters have a collector url. It is only called for enabled telemetry.
func (c *Config) Validate(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if err := c.Exporter.Validate(); err != nil {
		log.ErrorContext(ctx, "Unknown trace exporter", "exporter", c.Exporter)
		return err
	}

	if c.Exporter.IsExporting() && c.Url == "" {
		log.ErrorContext(ctx, "The collector url is required to export traces", "exporter", c.Exporter)
		return fmt.Errorf("%w: %q", ErrMissingURL, c.Exporter)
	}
	return nil
}
