// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"time"

	"github.com/telekom/trstats/internal/logger"
	"github.com/telekom/trstats/internal/traceroute"
	"golang.org/x/sync/errgroup"
)

// OriginProbe is the origin of captures produced by running the probe.
const OriginProbe = "probe"

var (
	_ Source = (*ProbeSource)(nil)
	_ Source = (*CaptureSource)(nil)
)

var (
	// ErrInvalidRuns is returned when fewer than one run is requested.
	ErrInvalidRuns = errors.New("number of runs must be at least 1")
	// ErrInvalidDelay is returned for a negative delay between runs.
	ErrInvalidDelay = errors.New("delay between runs must not be negative")
	// ErrCaptureIsDir is returned when the capture directory contains a directory.
	ErrCaptureIsDir = errors.New("capture is a directory")
)

// Capture is the raw output of one probe execution.
type Capture struct {
	// Run is the 1-based index of the capture.
	Run int
	// Origin is where the output came from, the capture file or [OriginProbe].
	Origin string
	// Output is the text the probe printed.
	Output string
}

// Source produces the raw outputs of all runs.
type Source interface {
	// Collect returns the captures in run order. No partial
	// result is returned on error.
	Collect(ctx context.Context) ([]Capture, error)
}

// ProbeSource runs the probe once per run.
type ProbeSource struct {
	Prober  traceroute.Prober
	Target  string
	MaxHops int
	Runs    int
	// Delay is waited between two sequential runs, not after the last one.
	Delay time.Duration
	// Concurrency > 1 runs that many probes in parallel, without delay.
	Concurrency int
}

// Collect runs the probe [ProbeSource.Runs] times.
// The first failing probe aborts all remaining runs.
func (s *ProbeSource) Collect(ctx context.Context) ([]Capture, error) {
	if s.Runs < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRuns, s.Runs)
	}
	if s.Delay < 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDelay, s.Delay)
	}
	if s.Concurrency > 1 {
		return s.collectParallel(ctx)
	}

	log := logger.FromContext(ctx)
	captures := make([]Capture, 0, s.Runs)
	for run := 1; run <= s.Runs; run++ {
		if run > 1 && s.Delay > 0 {
			log.DebugContext(ctx, "Waiting before next run", "delay", s.Delay)
			if err := sleep(ctx, s.Delay); err != nil {
				return nil, fmt.Errorf("waiting for run %d: %w", run, err)
			}
		}
		c, err := s.probe(ctx, run)
		if err != nil {
			return nil, err
		}
		captures = append(captures, c)
	}
	return captures, nil
}

func (s *ProbeSource) collectParallel(ctx context.Context) ([]Capture, error) {
	captures := make([]Capture, s.Runs)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.Concurrency)
	for run := 1; run <= s.Runs; run++ {
		g.Go(func() error {
			c, err := s.probe(gCtx, run)
			if err != nil {
				return err
			}
			captures[run-1] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return captures, nil
}

func (s *ProbeSource) probe(ctx context.Context, run int) (Capture, error) {
	logger.FromContext(ctx).InfoContext(ctx, "Running probe", "run", run, "of", s.Runs, "target", s.Target)
	out, err := s.Prober.Probe(ctx, s.Target, s.MaxHops)
	if err != nil {
		return Capture{}, fmt.Errorf("run %d: %w", run, err)
	}
	return Capture{Run: run, Origin: OriginProbe, Output: out}, nil
}

// sleep blocks for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// CaptureSource reads previously captured probe outputs, one run per file.
type CaptureSource struct {
	FS fs.FS
	// Dir is the directory within FS holding the captures.
	Dir string
}

// Collect reads every entry of the capture directory in lexical order.
// Any entry that cannot be read, a subdirectory included, fails the collection.
func (s *CaptureSource) Collect(ctx context.Context) ([]Capture, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	entries, err := fs.ReadDir(s.FS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list captures in %q: %w", dir, err)
	}

	log := logger.FromContext(ctx)
	captures := make([]Capture, 0, len(entries))
	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := path.Join(dir, e.Name())
		if e.IsDir() {
			return nil, fmt.Errorf("failed to read capture %q: %w", name, ErrCaptureIsDir)
		}
		b, err := fs.ReadFile(s.FS, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read capture %q: %w", name, err)
		}
		log.DebugContext(ctx, "Loaded capture", "file", name, "bytes", len(b))
		captures = append(captures, Capture{Run: i + 1, Origin: name, Output: string(b)})
	}
	if len(captures) == 0 {
		log.WarnContext(ctx, "Capture directory is empty", "dir", dir)
	}
	return captures, nil
}
