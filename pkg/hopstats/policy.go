// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package hopstats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/telekom/trstats/internal/traceroute"
)

var (
	// ErrInvalidHopLimit is returned when the hop limit is below 1.
	ErrInvalidHopLimit = errors.New("hop limit must be at least 1")
	// ErrInvalidHostPolicy is returned for an unknown host policy name.
	ErrInvalidHostPolicy = errors.New("invalid host policy")
)

// HostPolicy decides which hosts are reported for a hop that answered
// in more than one trace.
type HostPolicy int

const (
	// LastResponsive reports the hosts of the last trace the hop answered in.
	LastResponsive HostPolicy = iota
	// FirstResponsive reports the hosts of the first trace the hop answered in.
	FirstResponsive
	// Union reports every host seen for the hop, in first seen order.
	Union
)

const (
	policyLast  = "last"
	policyFirst = "first"
	policyUnion = "union"
)

func (p HostPolicy) String() string {
	switch p {
	case LastResponsive:
		return policyLast
	case FirstResponsive:
		return policyFirst
	case Union:
		return policyUnion
	default:
		return "unknown"
	}
}

// ParseHostPolicy returns the host policy for its name.
// The empty string selects [LastResponsive].
func ParseHostPolicy(s string) (HostPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", policyLast:
		return LastResponsive, nil
	case policyFirst:
		return FirstResponsive, nil
	case policyUnion:
		return Union, nil
	default:
		return LastResponsive, fmt.Errorf("%w: %q", ErrInvalidHostPolicy, s)
	}
}

// hosts picks the hosts out of the responsive records of one hop.
// records is never empty.
func (p HostPolicy) hosts(records []traceroute.Responsive) []string {
	var picked []string
	switch p {
	case FirstResponsive:
		picked = records[0].Hosts
	case Union:
		seen := map[string]struct{}{}
		for _, r := range records {
			for _, h := range r.Hosts {
				if _, ok := seen[h]; ok {
					continue
				}
				seen[h] = struct{}{}
				picked = append(picked, h)
			}
		}
	default:
		picked = records[len(records)-1].Hosts
	}

	out := make([]string, len(picked))
	copy(out, picked)
	return out
}
