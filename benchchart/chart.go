// Copyright 2025 The gohivex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders comparison sets as horizontal grouped bar
// charts, one PNG per metric.
package benchchart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/gohivex/benchgraph/benchcmp"
)

// Bar colors are fixed across every chart: Go blue for gohivex, a
// neutral grey for the C library.
var (
	gohivexColor = color.NRGBA{R: 0x00, G: 0xAD, B: 0xD8, A: 0xFF}
	hivexColor   = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
)

const subtitle = "gohivex vs hivex - Lower is Better"

// A Metric selects which measurement a chart plots.
type Metric int

const (
	Time Metric = iota
	Memory
	Allocs
)

// Stem returns the filename stem for the metric.
func (m Metric) Stem() string {
	switch m {
	case Time:
		return "time"
	case Memory:
		return "memory"
	case Allocs:
		return "allocations"
	}
	panic(fmt.Sprintf("unknown metric %d", m))
}

func (m Metric) title() string {
	switch m {
	case Time:
		return "Performance Comparison (ns/op)"
	case Memory:
		return "Memory Usage Comparison (B/op)"
	case Allocs:
		return "Allocations Comparison (allocs/op)"
	}
	panic(fmt.Sprintf("unknown metric %d", m))
}

// values extracts the metric's bar pair from a comparison. The hivex
// bar of a gohivex-only row is forced to zero.
func values(c *benchcmp.Comparison, m Metric) (gohivex, hivex float64) {
	switch m {
	case Time:
		gohivex, hivex = c.GohivexNs, c.HivexNs
	case Memory:
		gohivex, hivex = float64(c.GohivexMem), float64(c.HivexMem)
	case Allocs:
		gohivex, hivex = float64(c.GohivexAllocs), float64(c.HivexAllocs)
	}
	if c.GohivexOnly {
		hivex = 0
	}
	return gohivex, hivex
}

// A Config carries the output layout shared by every chart of a run.
type Config struct {
	// Dir receives the timestamped archive copy.
	Dir string

	// DocsDir receives the fixed-name documentation copy.
	DocsDir string

	// Timestamp is embedded in the archive filename.
	Timestamp string

	// Prefix distinguishes chart families; the mutation charts use
	// "mutation_".
	Prefix string
}

// Chart layout. The height grows with the row count so labels stay
// readable on large comparison sets.
const (
	chartWidth   = 16 * vg.Inch
	minHeight    = 8 * vg.Inch
	inchesPerRow = 0.25
	chartDPI     = 150
	barWidth     = vg.Length(6) // points
)

// Render draws the chart for metric m over cs and writes it to both
// output locations. A nil or empty comparison set renders nothing.
func Render(cs []benchcmp.Comparison, m Metric, cfg Config) error {
	if len(cs) == 0 {
		return nil
	}

	// Plot rows bottom-up, so reverse the set to keep the sorted
	// order reading top to bottom.
	n := len(cs)
	labels := make([]string, n)
	gohivexVals := make(plotter.Values, n)
	hivexVals := make(plotter.Values, n)
	for i := range cs {
		c := &cs[n-1-i]
		labels[i] = c.Label()
		gohivexVals[i], hivexVals[i] = values(c, m)
	}

	pl := plot.New()
	pl.Title.Text = m.title() + "\n" + subtitle
	pl.Title.TextStyle.Font.Size = vg.Points(14)
	pl.X.Tick.Label.Font.Size = vg.Points(10)
	pl.Y.Tick.Label.Font.Size = vg.Points(10)

	// Gridlines along the value axis only.
	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	pl.Add(grid)

	gohivexBars, err := plotter.NewBarChart(gohivexVals, barWidth)
	if err != nil {
		return fmt.Errorf("building gohivex bars: %w", err)
	}
	hivexBars, err := plotter.NewBarChart(hivexVals, barWidth)
	if err != nil {
		return fmt.Errorf("building hivex bars: %w", err)
	}
	gohivexBars.Horizontal = true
	gohivexBars.Color = gohivexColor
	gohivexBars.LineStyle.Width = 0
	gohivexBars.Offset = barWidth / 2
	hivexBars.Horizontal = true
	hivexBars.Color = hivexColor
	hivexBars.LineStyle.Width = 0
	hivexBars.Offset = -barWidth / 2

	pl.Add(gohivexBars, hivexBars)
	pl.Legend.Add("gohivex", gohivexBars)
	pl.Legend.Add("hivex", hivexBars)
	pl.Legend.Top = true
	pl.NominalY(labels...)

	height := vg.Length(float64(n)*inchesPerRow) * vg.Inch
	if height < minHeight {
		height = minHeight
	}

	// A fresh canvas per destination; nothing is retained between
	// image writes.
	writePNG := func(dir, name string) error {
		canvas := vgimg.PngCanvas{Canvas: vgimg.NewWith(
			vgimg.UseWH(chartWidth, height),
			vgimg.UseDPI(chartDPI),
			vgimg.UseBackgroundColor(color.White),
		)}
		pl.Draw(draw.New(canvas))
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if _, err := canvas.WriteTo(f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return f.Close()
	}

	archive := fmt.Sprintf("%s_%s%s.png", cfg.Timestamp, cfg.Prefix, m.Stem())
	if err := writePNG(cfg.Dir, archive); err != nil {
		return err
	}
	return writePNG(cfg.DocsDir, cfg.Prefix+m.Stem()+".png")
}
