// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"context"
	"errors"
	"os/exec"
	"strconv"

	"github.com/telekom/trstats/internal/logger"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultCommand is the probe binary used when none is configured.
const DefaultCommand = "traceroute"

var _ Prober = (*execProber)(nil)

// Prober executes a single trace against a target.
//
//go:generate go tool moq -out prober_moq.go . Prober
type Prober interface {
	// Probe runs the probe once with the given maximum hop depth and
	// returns everything it printed to standard output.
	// An error is only returned if the probe could not be run at all.
	Probe(ctx context.Context, target string, maxHops int) (string, error)
}

// commandFunc runs a command and returns its standard output.
type commandFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

type execProber struct {
	// command is the name or path of the traceroute binary.
	command string
	// output runs the command, replaced in tests.
	output commandFunc
}

// NewProber returns a [Prober] running the given traceroute binary.
// The empty string selects [DefaultCommand].
func NewProber(command string) Prober {
	if command == "" {
		command = DefaultCommand
	}
	return &execProber{
		command: command,
		output:  runCommand,
	}
}

// Probe runs "<command> -m <maxHops> <target>".
// The exit status and standard error of the probe are ignored.
func (p *execProber) Probe(ctx context.Context, target string, maxHops int) (string, error) {
	if target == "" {
		return "", ErrEmptyTarget
	}
	if maxHops < 1 {
		return "", ErrInvalidMaxHops
	}

	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("traceroute.execProber")
	ctx, span := tracer.Start(ctx, "Probe", trace.WithAttributes(
		attribute.String("traceroute.probe.command", p.command),
		attribute.String("traceroute.target.address", target),
		attribute.Int("traceroute.options.max_hops", maxHops),
	))
	defer span.End()

	log := logger.FromContext(ctx).With("command", p.command, "target", target)
	log.DebugContext(ctx, "Starting probe", "maxHops", maxHops)

	out, err := p.output(ctx, p.command, "-m", strconv.Itoa(maxHops), target)
	if ctx.Err() != nil {
		return "", wrapError(ctx, ctx.Err(), "probe %q interrupted", p.command)
	}
	// traceroute exits non-zero when the target is never reached,
	// the hops printed up to that point are still valid.
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return "", wrapError(ctx, err, "failed to launch probe %q", p.command)
	}
	if exitErr != nil {
		log.WarnContext(ctx, "Probe exited with non-zero status", "exitCode", exitErr.ExitCode())
	}

	span.SetAttributes(attribute.Int("traceroute.probe.output_bytes", len(out)))
	return string(out), nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output() // #nosec G204 // the probe binary is operator configuration
}
