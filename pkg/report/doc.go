// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package report renders aggregated hop statistics.
//
// A [Document] is written as JSON or YAML, drawn as a box plot per hop,
// printed as a console table or exported as a Prometheus textfile.
// Statistics of unresponsive hops are encoded as the string
// "Hop is unresponsive" in every format.
package report
