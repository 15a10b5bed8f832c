// Package traceroute turns the textual output of the system traceroute
// binary into structured hop records.
//
// It exposes a [Prober] that runs the external probe once and returns its
// standard output, and [Parse] that converts such output into a [Trace].
// Parsing is lenient: banner lines, blank lines and lines that do not start
// with a hop number are skipped, never reported as errors.
//
// Each line is first split into a stream of tagged tokens by [Tokenize]
// (numbers, the "ms" unit, "*" wildcards and plain words). A small per-line
// state machine then consumes that stream:
//   - a line containing any wildcard yields an [Unresponsive] hop
//   - otherwise every number directly followed by "ms" is a latency sample and
//     every remaining word without "ms" in it is a host address
//   - with [ZeroFill] padding, responsive hops get 0 ms samples appended until
//     they carry [ProbesPerHop] latencies
//
// Typical usage:
//
//	prober := traceroute.NewProber("traceroute")
//	out, err := prober.Probe(ctx, "example.com", 30)
//	if err != nil {
//		return err
//	}
//	trace := traceroute.Parse(out, traceroute.ZeroFill)
//	// trace holds one Hop per hop line, in the order the probe printed them
package traceroute
