// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/trstats/internal/archive"
	"github.com/telekom/trstats/internal/logger"
	"github.com/telekom/trstats/internal/traceroute"
	"github.com/telekom/trstats/test"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type sourceFunc func(ctx context.Context) ([]Capture, error)

func (f sourceFunc) Collect(ctx context.Context) ([]Capture, error) { return f(ctx) }

func TestRunner_Run(t *testing.T) {
	fsys := fstest.MapFS{
		"01.txt": {Data: []byte(test.LinuxOutput)},
		"02.txt": {Data: []byte(test.LinuxOutputSecondRun)},
	}

	tests := []struct {
		name    string
		padding traceroute.Padding
	}{
		{name: "zero fill", padding: traceroute.ZeroFill},
		{name: "no padding", padding: traceroute.NoPadding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arch := &ArchiverMock{AppendFunc: func(_ context.Context, _ archive.Record) error { return nil }}
			r := New(&CaptureSource{FS: fsys}, Options{Padding: tt.padding, Target: "example.com", Archive: arch})

			got, err := r.Run(t.Context())
			require.NoError(t, err)

			want := []traceroute.Trace{
				traceroute.Parse(test.LinuxOutput, tt.padding),
				traceroute.Parse(test.LinuxOutputSecondRun, tt.padding),
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Run() mismatch (-want +got):\n%s", diff)
			}

			calls := arch.AppendCalls()
			require.Len(t, calls, 2)
			for i, c := range calls {
				assert.Equal(t, i+1, c.Rec.Run)
				assert.Equal(t, "example.com", c.Rec.Target)
				assert.Equal(t, want[i], c.Rec.Hops)
			}
			assert.Equal(t, "01.txt", calls[0].Rec.Origin)
			assert.Equal(t, test.LinuxOutputSecondRun, calls[1].Rec.Output)
		})
	}
}

func TestRunner_Run_WithoutArchive(t *testing.T) {
	prober := &traceroute.ProberMock{ProbeFunc: func(_ context.Context, _ string, _ int) (string, error) {
		return test.NumericOutput, nil
	}}
	r := New(&ProbeSource{Prober: prober, Target: "8.8.8.8", MaxHops: 3, Runs: 2}, Options{})

	got, err := r.Run(t.Context())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0], 3)
	assert.Len(t, prober.ProbeCalls(), 2)
}

func TestRunner_Run_Errors(t *testing.T) {
	errCollect := errors.New("capture unreadable")
	errArchive := errors.New("disk full")

	tests := []struct {
		name    string
		source  Source
		archive Archiver
		wantErr error
	}{
		{
			name: "collect failure",
			source: sourceFunc(func(context.Context) ([]Capture, error) {
				return nil, errCollect
			}),
			wantErr: errCollect,
		},
		{
			name: "archive failure",
			source: sourceFunc(func(context.Context) ([]Capture, error) {
				return []Capture{{Run: 1, Origin: OriginProbe, Output: test.LinuxOutput}}, nil
			}),
			archive: &ArchiverMock{AppendFunc: func(context.Context, archive.Record) error { return errArchive }},
			wantErr: errArchive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.source, Options{Archive: tt.archive}).Run(t.Context())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestRunner_Run_CollectFailureIsRecordedNotLogged(t *testing.T) {
	errCollect := errors.New("traceroute: executable file not found")

	var logs bytes.Buffer
	ctx := logger.IntoContext(t.Context(), logger.NewLogger(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	ctx, parent := tp.Tracer("test").Start(ctx, "parent")

	src := sourceFunc(func(context.Context) ([]Capture, error) { return nil, errCollect })
	_, err := New(src, Options{}).Run(ctx)
	parent.End()
	require.ErrorIs(t, err, errCollect)

	assert.NotContains(t, logs.String(), `"level":"ERROR"`)

	var run sdktrace.ReadOnlySpan
	for _, s := range recorder.Ended() {
		if s.Name() == "Run" {
			run = s
		}
	}
	require.NotNil(t, run, "Run span not recorded")
	assert.Equal(t, codes.Error, run.Status().Code)
	require.NotEmpty(t, run.Events())
	assert.Equal(t, "exception", run.Events()[0].Name)
}
