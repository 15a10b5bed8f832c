package traceroute

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHop_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		hop  Hop
		want string
	}{
		{
			name: "responsive",
			hop:  Hop{Number: 1, Measurement: Responsive{Hosts: []string{"gw", "(192.168.1.1)"}, Latencies: []float64{0.5, 0.25, 0}}},
			want: `{"hop":1,"hosts":["gw","(192.168.1.1)"],"latency":[0.5,0.25,0]}`,
		},
		{
			name: "responsive without hosts",
			hop:  Hop{Number: 2, Measurement: Responsive{Latencies: []float64{1}}},
			want: `{"hop":2,"hosts":[],"latency":[1]}`,
		},
		{
			name: "unresponsive",
			hop:  Hop{Number: 3, Measurement: Unresponsive{}},
			want: `{"hop":3,"hosts":[],"latency":["Hop is unresponsive"]}`,
		},
		{
			name: "missing measurement is unresponsive",
			hop:  Hop{Number: 4},
			want: `{"hop":4,"hosts":[],"latency":["Hop is unresponsive"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.hop)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestHop_IsResponsive(t *testing.T) {
	assert.True(t, Hop{Number: 1, Measurement: Responsive{}}.IsResponsive())
	assert.False(t, Hop{Number: 1, Measurement: Unresponsive{}}.IsResponsive())
	assert.False(t, Hop{Number: 1}.IsResponsive())
}

func TestHop_String(t *testing.T) {
	r := Hop{Number: 2, Measurement: Responsive{Hosts: []string{"10.0.0.1"}, Latencies: []float64{1, 2.5}}}
	assert.Contains(t, r.String(), "10.0.0.1")
	assert.Contains(t, r.String(), "1.000 ms  2.500 ms")

	u := Hop{Number: 3, Measurement: Unresponsive{}}
	assert.Equal(t, "3   Hop is unresponsive", u.String())
}

func TestParsePadding(t *testing.T) {
	tests := []struct {
		in      string
		want    Padding
		wantErr bool
	}{
		{in: "", want: ZeroFill},
		{in: "zero-fill", want: ZeroFill},
		{in: " Zero-Fill ", want: ZeroFill},
		{in: "none", want: NoPadding},
		{in: "NONE", want: NoPadding},
		{in: "pad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePadding(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidPadding))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParsePadding(t, got.String()))
		})
	}
}

func mustParsePadding(t *testing.T, s string) Padding {
	t.Helper()
	p, err := ParsePadding(s)
	require.NoError(t, err)
	return p
}

func TestPadding_pad(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, ZeroFill.pad(nil))
	assert.Equal(t, []float64{4, 0, 0}, ZeroFill.pad([]float64{4}))
	assert.Equal(t, []float64{1, 2, 3, 4}, ZeroFill.pad([]float64{1, 2, 3, 4}))
	assert.Equal(t, []float64{4}, NoPadding.pad([]float64{4}))
	assert.Equal(t, "unknown", Padding(9).String())
}
