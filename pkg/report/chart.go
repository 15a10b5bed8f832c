// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	chartWidth    = 12 * vg.Inch
	chartHeight   = 6 * vg.Inch
	boxWidth      = 20
	defaultFormat = "pdf"
)

var boxFill = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0x80}

// supportedFormats are the image formats gonum/plot can write.
var supportedFormats = map[string]struct{}{
	"eps": {}, "jpg": {}, "jpeg": {}, "pdf": {}, "png": {}, "svg": {}, "tif": {}, "tiff": {},
}

// Series is the data of one box in the chart.
type Series struct {
	Label   string
	Samples []float64
}

// ChartData returns one series per hop, labelled "Hop <n>".
// Hops without samples are drawn as a single 0 ms sample.
func ChartData(d Document) []Series {
	series := make([]Series, 0, len(d))
	for _, h := range d {
		samples := h.Latency
		if len(samples) == 0 {
			samples = []float64{0}
		}
		series = append(series, Series{Label: fmt.Sprintf("Hop %d", h.Hop), Samples: samples})
	}
	return series
}

// ChartTitle is the title of the chart, naming the target if known.
func ChartTitle(target string) string {
	if target == "" {
		return "Latency Distribution per Hop"
	}
	return fmt.Sprintf("Latency Distribution per Hop (%s)", target)
}

// NewChart builds a box plot of the latency distribution of every hop
// with its mean marked.
func NewChart(d Document, target string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = ChartTitle(target)
	p.X.Label.Text = "Hop Number"
	p.Y.Label.Text = "Latency (ms)"
	p.X.Tick.Label.Rotation = math.Pi / 2

	series := ChartData(d)
	labels := make([]string, 0, len(series))
	means := make(plotter.XYs, 0, len(series))
	for i, s := range series {
		box, err := plotter.NewBoxPlot(vg.Points(boxWidth), float64(i), plotter.Values(s.Samples))
		if err != nil {
			return nil, fmt.Errorf("failed to plot %s: %w", s.Label, err)
		}
		box.FillColor = boxFill
		p.Add(box)

		m, err := stats.Mean(s.Samples)
		if err != nil {
			return nil, fmt.Errorf("failed to compute mean of %s: %w", s.Label, err)
		}
		labels = append(labels, s.Label)
		means = append(means, plotter.XY{X: float64(i), Y: m})
	}

	if len(means) > 0 {
		sc, err := plotter.NewScatter(means)
		if err != nil {
			return nil, fmt.Errorf("failed to plot means: %w", err)
		}
		sc.GlyphStyle.Shape = draw.TriangleGlyph{}
		sc.GlyphStyle.Color = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
		p.Add(sc)
	}
	p.NominalX(labels...)
	return p, nil
}

// chartFormat returns the image format for the file extension,
// PDF if the extension is missing or unknown.
func chartFormat(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, ok := supportedFormats[ext]; ok {
		return ext
	}
	return defaultFormat
}

// WriteChart renders the chart to path.
func WriteChart(path string, d Document, target string) error {
	p, err := NewChart(d, target)
	if err != nil {
		return err
	}
	w, err := p.WriterTo(chartWidth, chartHeight, chartFormat(path))
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 // path comes from the command line
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	if _, err = w.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write chart to %q: %w", path, err)
	}
	return f.Close()
}
