// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenDocs(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runGenDocs(&dir)(nil, nil))

	for _, name := range []string{"trstats.md", "trstats_run.md", "trstats_show.md"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	b, err := os.ReadFile(filepath.Join(dir, "trstats_run.md"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "--max-hops")
}
