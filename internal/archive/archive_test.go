// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/trstats/internal/traceroute"
	"github.com/telekom/trstats/test"
)

func TestArchive_Append(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "archive")
	a, err := New(Config{Dir: dir, MaxMB: 1, MaxFiles: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	a.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600)) }

	records := []Record{
		{Run: 1, Origin: "probe", Target: "example.com", Output: test.LinuxOutput, Hops: traceroute.Parse(test.LinuxOutput, traceroute.ZeroFill)},
		{Run: 2, Origin: "captures/run2.txt", Output: test.NumericOutput},
	}
	for _, rec := range records {
		require.NoError(t, a.Append(t.Context(), rec))
	}

	assert.Equal(t, filepath.Join(dir, FileName), a.Path())
	data, err := os.ReadFile(a.Path())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, len(records))

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "2025-03-01T11:00:00Z", first["ts_utc"])
	assert.Equal(t, float64(1), first["run"])
	assert.Equal(t, "probe", first["origin"])
	assert.Equal(t, "example.com", first["target"])
	assert.Equal(t, test.LinuxOutput, first["output"])
	hops, ok := first["hops"].([]any)
	require.True(t, ok)
	require.Len(t, hops, 6)
	third, ok := hops[2].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{traceroute.UnresponsiveMarker}, third["latency"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.NotContains(t, second, "target")
	assert.Equal(t, []any{}, second["hops"])
}

func TestArchive_ConcurrentAppend(t *testing.T) {
	a, err := New(Config{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, a.Append(t.Context(), Record{Run: i + 1, Origin: "probe", Output: test.NumericOutput}))
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(a.Path())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)), "line is not valid JSON: %s", line)
	}
}

func TestArchive_Closed(t *testing.T) {
	a, err := New(Config{Dir: t.TempDir()})
	require.NoError(t, err)
	require.NoError(t, a.Close())
	require.NoError(t, a.Close())

	assert.ErrorIs(t, a.Append(t.Context(), Record{Run: 1}), ErrNotInitialized)

	var zero *Archive
	assert.ErrorIs(t, zero.Append(t.Context(), Record{Run: 1}), ErrNotInitialized)
	assert.NoError(t, zero.Close())
}

func TestConfig(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantEnabled bool
		wantErr     bool
	}{
		{name: "disabled", cfg: Config{}},
		{name: "enabled with defaults", cfg: Config{Dir: "/tmp/trstats"}, wantEnabled: true},
		{name: "negative size", cfg: Config{Dir: "/tmp/trstats", MaxMB: -1}, wantEnabled: true, wantErr: true},
		{name: "negative files", cfg: Config{MaxFiles: -3}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantEnabled, tt.cfg.Enabled())
			if tt.wantErr {
				assert.ErrorIs(t, tt.cfg.Validate(), ErrInvalidRotation)
				_, err := New(tt.cfg)
				assert.ErrorIs(t, err, ErrInvalidRotation)
				return
			}
			assert.NoError(t, tt.cfg.Validate())
		})
	}
}
