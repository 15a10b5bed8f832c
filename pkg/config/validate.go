// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/telekom/trstats/internal/logger"
	"github.com/telekom/trstats/internal/traceroute"
	"github.com/telekom/trstats/pkg/hopstats"
)

// Validate validates the startup config
func (c *Config) Validate(ctx context.Context) (err error) {
	log := logger.FromContext(ctx)

	if !c.UsesCaptures() && c.Target == "" {
		log.ErrorContext(ctx, "A target is required unless a capture directory is given")
		err = errors.Join(err, ErrMissingTarget)
	}
	if c.Runs < 1 {
		log.ErrorContext(ctx, "The number of runs should be at least 1", "runs", c.Runs)
		err = errors.Join(err, ErrInvalidRuns)
	}
	if c.DelaySeconds < 0 {
		log.ErrorContext(ctx, "The delay should be equal or above 0", "delay", c.DelaySeconds)
		err = errors.Join(err, ErrInvalidDelay)
	}
	if c.MaxHops < 1 {
		log.ErrorContext(ctx, "The maximum hops should be at least 1", "maxHops", c.MaxHops)
		err = errors.Join(err, ErrInvalidMaxHops)
	}
	if c.Concurrency < 1 {
		log.ErrorContext(ctx, "The concurrency should be at least 1", "concurrency", c.Concurrency)
		err = errors.Join(err, ErrInvalidConcurrency)
	}
	if c.Output == "" {
		log.ErrorContext(ctx, "The output file cannot be empty")
		err = errors.Join(err, ErrMissingOutput)
	}

	if _, pErr := traceroute.ParsePadding(c.Padding); pErr != nil {
		log.ErrorContext(ctx, "The padding policy is invalid", "padding", c.Padding)
		err = errors.Join(err, pErr)
	}
	if _, hErr := hopstats.ParseHostPolicy(c.Hosts); hErr != nil {
		log.ErrorContext(ctx, "The host policy is invalid", "hosts", c.Hosts)
		err = errors.Join(err, hErr)
	}

	if c.HasArchive() {
		if vErr := c.Archive.Validate(); vErr != nil {
			log.ErrorContext(ctx, "The archive configuration is invalid")
			err = errors.Join(err, vErr)
		}
	}

	if c.HasTelemetry() {
		if vErr := c.Telemetry.Validate(ctx); vErr != nil {
			log.ErrorContext(ctx, "The telemetry configuration is invalid")
			err = errors.Join(err, vErr)
		}
	}

	if err != nil {
		return fmt.Errorf("validation of configuration failed: %w", err)
	}
	return nil
}
