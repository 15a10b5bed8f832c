// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/telekom/trstats/internal/traceroute"
	"github.com/telekom/trstats/pkg/hopstats"
	"gopkg.in/yaml.v3"
)

// ErrInvalidStat is returned when a statistic is neither a number
// nor the unresponsive marker.
var ErrInvalidStat = errors.New("statistic must be a number or the unresponsive marker")

// Document is the persisted result of an analysis, one entry per hop.
type Document []HopReport

// HopReport is the persisted statistics of one hop.
type HopReport struct {
	Hop     int       `json:"hop" yaml:"hop"`
	Hosts   []string  `json:"hosts" yaml:"hosts"`
	Latency []float64 `json:"latency" yaml:"latency"`
	Avg     Stat      `json:"avg" yaml:"avg"`
	Max     Stat      `json:"max" yaml:"max"`
	Median  Stat      `json:"median" yaml:"median"`
	Min     Stat      `json:"min" yaml:"min"`
}

// IsResponsive reports whether the hop has statistics.
func (h HopReport) IsResponsive() bool {
	return h.Avg.Valid
}

// Stat is a single statistic. An invalid Stat is encoded as
// [traceroute.UnresponsiveMarker].
type Stat struct {
	Value float64
	Valid bool
}

// Number returns a valid statistic.
func Number(v float64) Stat {
	return Stat{Value: v, Valid: true}
}

// Unresponsive is the statistic of a hop that never answered.
var Unresponsive = Stat{}

func (s Stat) String() string {
	if !s.Valid {
		return traceroute.UnresponsiveMarker
	}
	return fmt.Sprintf("%.3f", s.Value)
}

// MarshalJSON encodes the value or the unresponsive marker.
func (s Stat) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return json.Marshal(traceroute.UnresponsiveMarker)
	}
	return json.Marshal(s.Value)
}

// UnmarshalJSON decodes a number or the unresponsive marker.
func (s *Stat) UnmarshalJSON(b []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(b), []byte(`"`)) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		return s.fromString(str)
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidStat, b)
	}
	*s = Number(v)
	return nil
}

// MarshalYAML encodes the value or the unresponsive marker.
func (s Stat) MarshalYAML() (any, error) {
	if !s.Valid {
		return traceroute.UnresponsiveMarker, nil
	}
	return s.Value, nil
}

// UnmarshalYAML decodes a number or the unresponsive marker.
func (s *Stat) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d", ErrInvalidStat, node.Line)
	}
	if node.ShortTag() == "!!str" {
		return s.fromString(node.Value)
	}
	var v float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidStat, node.Value)
	}
	*s = Number(v)
	return nil
}

func (s *Stat) fromString(str string) error {
	if str != traceroute.UnresponsiveMarker {
		return fmt.Errorf("%w: %q", ErrInvalidStat, str)
	}
	*s = Unresponsive
	return nil
}

// FromStatistics converts the aggregated statistics into a document.
func FromStatistics(hops []hopstats.HopStatistics) Document {
	doc := make(Document, 0, len(hops))
	for _, h := range hops {
		r := HopReport{
			Hop:     h.Hop,
			Hosts:   nonNil(h.Hosts),
			Latency: nonNil(h.Latencies),
			Avg:     Unresponsive,
			Max:     Unresponsive,
			Median:  Unresponsive,
			Min:     Unresponsive,
		}
		if h.Summary != nil {
			r.Avg = Number(h.Summary.Avg)
			r.Max = Number(h.Summary.Max)
			r.Median = Number(h.Summary.Median)
			r.Min = Number(h.Summary.Min)
		}
		doc = append(doc, r)
	}
	return doc
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Format is the encoding of a persisted document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from the file extension.
// Anything but .yaml and .yml is written as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode serializes the document. JSON is indented with four spaces.
func (d Document) Encode(f Format) ([]byte, error) {
	if d == nil {
		d = Document{}
	}
	switch f {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		b, err := json.MarshalIndent(d, "", "    ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(b, '\n'), nil
	}
}

// Decode parses a document in the given format.
func Decode(b []byte, f Format) (Document, error) {
	var doc Document
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode json: %w", err)
		}
	}
	return doc, nil
}

// WriteFile writes the whole document at once, encoded by the file extension.
func WriteFile(path string, d Document) error {
	b, err := d.Encode(FormatFromPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

// ReadFile reads a document written by [WriteFile].
func ReadFile(path string) (Document, error) {
	b, err := os.ReadFile(path) // #nosec G304 // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return Decode(b, FormatFromPath(path))
}
