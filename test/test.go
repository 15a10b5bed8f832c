// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package test provides helpers and canned probe outputs shared by the tests
// of the other packages.
package test

import "testing"

// MarkAsLongRunning skips the test when the -short flag is set.
// Use it for tests that start processes or touch the filesystem.
func MarkAsLongRunning(t testing.TB) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping long running test in short mode")
	}
}
