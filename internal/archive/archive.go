// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package archive appends every raw probe run to a size rotated JSON lines file.
package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/telekom/trstats/internal/logger"
	"github.com/telekom/trstats/internal/traceroute"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the name of the active archive file within the archive directory.
const FileName = "trstats.jsonl"

const (
	defaultMaxMB    = 10
	defaultMaxFiles = 5
)

var (
	// ErrNotInitialized is returned when appending to a closed or zero archive.
	ErrNotInitialized = errors.New("archive not initialized")
	// ErrInvalidRotation is returned for negative rotation limits.
	ErrInvalidRotation = errors.New("archive rotation limits must not be negative")
)

// Config configures the run archive.
type Config struct {
	// Dir is the directory the archive is written to.
	// The archive is disabled if empty.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
	// MaxMB is the size in megabytes at which the file is rotated.
	MaxMB int `json:"maxMB" yaml:"maxMB" mapstructure:"max_mb"`
	// MaxFiles is the number of rotated files kept.
	MaxFiles int `json:"maxFiles" yaml:"maxFiles" mapstructure:"max_files"`
}

// Enabled reports whether an archive directory is configured.
func (c Config) Enabled() bool {
	return c.Dir != ""
}

// Validate checks the rotation limits.
func (c Config) Validate() error {
	if c.MaxMB < 0 || c.MaxFiles < 0 {
		return fmt.Errorf("%w: max_mb=%d max_files=%d", ErrInvalidRotation, c.MaxMB, c.MaxFiles)
	}
	return nil
}

// Record is one archived probe run.
type Record struct {
	TSUTC  string           `json:"ts_utc"`
	Run    int              `json:"run"`
	Origin string           `json:"origin"`
	Target string           `json:"target,omitempty"`
	Output string           `json:"output"`
	Hops   traceroute.Trace `json:"hops"`
}

// Archive writes [Record]s as JSON lines. It is safe for concurrent use.
type Archive struct {
	mu     sync.Mutex
	writer io.WriteCloser
	path   string
	now    func() time.Time
}

// New creates the archive directory and opens the rotating archive file.
// Zero rotation limits select the defaults.
func New(cfg Config) (*Archive, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}

	maxMB, maxFiles := cfg.MaxMB, cfg.MaxFiles
	if maxMB == 0 {
		maxMB = defaultMaxMB
	}
	if maxFiles == 0 {
		maxFiles = defaultMaxFiles
	}

	path := filepath.Join(cfg.Dir, FileName)
	return &Archive{
		writer: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxMB,
			MaxBackups: maxFiles,
			Compress:   false,
		},
		path: path,
		now:  time.Now,
	}, nil
}

// Path returns the path of the active archive file.
func (a *Archive) Path() string {
	return a.path
}

// Append stamps the record with the current UTC time and writes it as one line.
func (a *Archive) Append(ctx context.Context, rec Record) error {
	if a == nil || a.writer == nil {
		return ErrNotInitialized
	}
	rec.TSUTC = a.now().UTC().Format(time.RFC3339Nano)
	if rec.Hops == nil {
		rec.Hops = traceroute.Trace{}
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal archive record: %w", err)
	}
	b = append(b, '\n')

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err = a.writer.Write(b); err != nil {
		return fmt.Errorf("write archive record: %w", err)
	}
	logger.FromContext(ctx).DebugContext(ctx, "Archived run", "run", rec.Run, "origin", rec.Origin, "file", a.path)
	return nil
}

// Close closes the archive file.
func (a *Archive) Close() error {
	if a == nil || a.writer == nil {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	err := a.writer.Close()
	a.writer = nil
	return err
}
