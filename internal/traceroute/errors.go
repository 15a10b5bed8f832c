// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import "errors"

var (
	// ErrEmptyTarget is returned when a probe is started without a target host.
	ErrEmptyTarget = errors.New("probe target cannot be empty")
	// ErrInvalidMaxHops is returned when the maximum hop depth is below 1.
	ErrInvalidMaxHops = errors.New("maximum hops must be at least 1")
	// ErrInvalidPadding is returned for an unknown padding policy name.
	ErrInvalidPadding = errors.New("invalid padding policy")
)
