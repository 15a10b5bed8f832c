// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"reflect"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/trstats/test"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestProvider_GetRegistry(t *testing.T) {
	tests := []struct {
		name     string
		registry *prometheus.Registry
		want     *prometheus.Registry
	}{
		{
			name:     "simple registry",
			registry: prometheus.NewRegistry(),
			want:     prometheus.NewRegistry(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &manager{
				registry: tt.registry,
			}
			if got := m.GetRegistry(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("manager.GetRegistry() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	p := New(Config{}, "v1.2.3")
	m, ok := p.(*manager)
	require.True(t, ok)
	assert.Equal(t, "v1.2.3", m.version)

	// the registry starts without runtime collectors
	families, err := p.GetRegistry().Gather()
	require.NoError(t, err)
	assert.Empty(t, families)

	p.GetRegistry().MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_gauge"}))
}

func TestProvider_InitTracing(t *testing.T) {
	test.MarkAsLongRunning(t)

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "success - stdout exporter",
			config: Config{Enabled: true, Exporter: STDOUT},
		},
		{
			name:   "success - otlp http exporter",
			config: Config{Enabled: true, Exporter: HTTP, Url: "http://localhost:4318"},
		},
		{
			name:   "success - otlp grpc exporter with token",
			config: Config{Enabled: true, Exporter: GRPC, Url: "http://localhost:4317", Token: "my-super-secret-token"},
		},
		{
			name:   "success - otlp grpc exporter with tls",
			config: Config{Enabled: true, Exporter: GRPC, Url: "https://localhost:4317", TLS: TLSConfig{Enabled: true}},
		},
		{
			name:   "success - no exporter",
			config: Config{Enabled: true, Exporter: NOOP},
		},
		{
			name:   "success - disabled telemetry ignores the exporter",
			config: Config{Exporter: "unsupported"},
		},
		{
			name:    "failure - unsupported exporter",
			config:  Config{Enabled: true, Exporter: "unsupported"},
			wantErr: true,
		},
		{
			name:    "failure - missing certificate",
			config:  Config{Enabled: true, Exporter: HTTP, Url: "https://localhost:4318", TLS: TLSConfig{Enabled: true, CertPath: "/nonexistent/ca.pem"}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.config, "test")
			err := m.InitTracing(t.Context())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
				assert.True(t, ok, "global tracer provider is %T", otel.GetTracerProvider())
			}

			require.NoError(t, m.Shutdown(t.Context()))
		})
	}
}

func TestManager_exporter(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   Exporter
	}{
		{name: "disabled drops spans", config: Config{Exporter: GRPC, Url: "http://localhost:4317"}, want: NOOP},
		{name: "disabled without exporter", config: Config{}, want: NOOP},
		{name: "enabled uses the configured exporter", config: Config{Enabled: true, Exporter: HTTP}, want: HTTP},
		{name: "enabled without exporter", config: Config{Enabled: true}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &manager{config: tt.config}
			assert.Equal(t, tt.want, m.exporter())
		})
	}
}

func TestManager_ShutdownWithoutInit(t *testing.T) {
	m := New(Config{Enabled: true, Exporter: STDOUT}, "")
	assert.NoError(t, m.Shutdown(t.Context()))
}
