// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package test

// LinuxOutput is the output of "traceroute -m 6 example.com" on Linux.
// Hop 3 never answers, hop 4 changes host between probes and hop 6
// only answers some of the probes.
const LinuxOutput = `traceroute to example.com (93.184.216.34), 6 hops max, 60 byte packets
 1  _gateway (192.168.1.1)  0.512 ms  0.478 ms  0.455 ms
 2  10.0.0.1 (10.0.0.1)  8.123 ms  8.456 ms  9.001 ms
 3  * * *
 4  core1.isp.net (203.0.113.5)  12.345 ms ae-2.edge.net (198.51.100.7)  13.210 ms  12.998 ms
 5  93.184.216.34 (93.184.216.34)  20.100 ms  19.870 ms  20.330 ms
 6  198.51.100.9 (198.51.100.9)  30.500 ms * 31.000 ms
`

// LinuxOutputSecondRun is a second run against the same target as
// [LinuxOutput]. Hop 2 moved to another router and hop 3 answered twice.
const LinuxOutputSecondRun = `traceroute to example.com (93.184.216.34), 6 hops max, 60 byte packets
 1  _gateway (192.168.1.1)  0.601 ms  0.588 ms  0.570 ms
 2  10.0.0.2 (10.0.0.2)  9.250 ms  9.100 ms  9.300 ms
 3  172.16.0.1 (172.16.0.1)  11.000 ms  11.500 ms
 4  core1.isp.net (203.0.113.5)  12.100 ms  12.200 ms  12.300 ms
 5  93.184.216.34 (93.184.216.34)  20.000 ms  20.200 ms  20.400 ms
`

// NumericOutput is the output of "traceroute -n" on macOS, without names.
const NumericOutput = `traceroute to 8.8.8.8 (8.8.8.8), 64 hops max, 52 byte packets
 1  192.168.0.1  1.250 ms  1.100 ms  1.050 ms
 2  100.64.0.1  7.900 ms  8.100 ms  8.000 ms
 3  8.8.8.8  15.000 ms  14.800 ms  14.900 ms
`

// NoisyOutput mixes hop lines with lines the parser has to skip.
const NoisyOutput = `TRACEROUTE to noisy.example (198.51.100.1), 30 hops max

warning: multiple interfaces found; using 192.168.1.10 @ eth0
 1  gw (192.168.1.1)  1.000 ms  2.000 ms  3.000 ms
not a hop line 2 3 4
 x2  10.0.0.1  4.0 ms
 3  ams-ix.example.net (80.249.208.1)  15.100 ms  15.200 ms  15.300 ms
`
