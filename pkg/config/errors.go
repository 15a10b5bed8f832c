// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

var (
	// ErrMissingTarget is returned when neither a target nor a capture directory is set
	ErrMissingTarget = errors.New("target host required if no capture directory is used")
	// ErrInvalidRuns is returned when the number of runs is below 1
	ErrInvalidRuns = errors.New("invalid number of runs")
	// ErrInvalidDelay is returned when the delay is negative
	ErrInvalidDelay = errors.New("invalid delay")
	// ErrInvalidMaxHops is returned when the maximum hop depth is below 1
	ErrInvalidMaxHops = errors.New("invalid maximum hops")
	// ErrInvalidConcurrency is returned when the concurrency is below 1
	ErrInvalidConcurrency = errors.New("invalid concurrency")
	// ErrMissingOutput is returned when no output document is set
	ErrMissingOutput = errors.New("output file required")
)
