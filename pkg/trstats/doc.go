// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package trstats wires the probe runs, the per hop aggregation and the
// outputs into one analysis.
package trstats
