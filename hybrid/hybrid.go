// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hybrid draws hybrid raster box plots.
//
// A hybrid raster box plot shows each category of a sample series in
// three layers sharing one horizontal slot: a half-width box plot to
// the left of the slot, the raw observations as a column of markers
// to the right of it, and optionally a one-sided kernel density
// "violin" between the two. Box statistics come from package boxplot
// and densities from package density; this package only arranges
// them.
package hybrid

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/aclements/go-hybridplot/axes"
	"github.com/aclements/go-hybridplot/boxplot"
	"github.com/aclements/go-hybridplot/density"
	"github.com/aclements/go-moremath/stats"
)

// Defaults for the zero-valued fields of Options.
const (
	DefaultRasterSep   = 0.3
	DefaultNKDE        = 200
	DefaultViolinWidth = 0.8
)

// Options controls RasterBoxPlot. Zero fields take their defaults.
type Options struct {
	// Names labels the categories. If nil, the categories are
	// named by their slot, "1" through "N".
	Names []string

	// Axes is the axes to draw on. If nil, RasterBoxPlot draws on
	// axes.Current().
	Axes *axes.Axes

	// Violin enables the kernel density layer.
	Violin bool

	// Colors maps category names to colors. If nil, colors are
	// assigned by DefaultColors.
	Colors map[string]color.Color

	// RasterSep is the horizontal distance from a category's slot
	// to its raster markers. Default DefaultRasterSep.
	RasterSep float64

	// NKDE is the number of points the densities are sampled at.
	// Default DefaultNKDE.
	NKDE int

	// KDEPad is how far beyond the combined range of the data the
	// densities are sampled. If nil, it is 30% of that range.
	KDEPad *float64

	// ViolinWidth is the fraction of RasterSep taken by the
	// tallest density. Default DefaultViolinWidth.
	ViolinWidth float64

	// Marker is the raster marker shape.
	Marker axes.Marker
}

// SlotNames returns the default category names for n categories:
// "1" through "n".
func SlotNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}
	return names
}

// DefaultColors assigns colors to names by cycling through
// axes.DefaultCycle.
func DefaultColors(names []string) map[string]color.Color {
	cols := make(map[string]color.Color, len(names))
	for i, name := range names {
		cols[name] = axes.DefaultCycle[i%len(axes.DefaultCycle)]
	}
	return cols
}

// RasterBoxPlot draws data as a hybrid raster box plot. Category i
// occupies slot i+1 of the x axis. opts may be nil.
//
// Each category gets one box filled with its color, one marker per
// observation at x = slot + RasterSep, and, if opts.Violin is set, a
// filled density curve between the slot and the markers. All
// densities share one scale so their heights are comparable.
//
// RasterBoxPlot returns the box plot so callers can restyle it. It
// fails if the names and data differ in length, a category has no
// color or no observations, or, with the violin layer enabled, a
// category has fewer than two distinct observations. All checks
// happen before drawing, so on error the axes is unchanged.
func RasterBoxPlot(data [][]float64, opts *Options) (*boxplot.Result, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	if err := o.fill(); err != nil {
		return nil, err
	}

	names := o.Names
	if names == nil {
		names = SlotNames(len(data))
	}
	if len(names) != len(data) {
		return nil, fmt.Errorf("%d names for %d categories", len(names), len(data))
	}
	colors := o.Colors
	if colors == nil {
		colors = DefaultColors(names)
	}
	cols := make([]color.Color, len(data))
	for i, name := range names {
		c, ok := colors[name]
		if !ok || c == nil {
			return nil, fmt.Errorf("no color for category %q", name)
		}
		cols[i] = c
		if len(data[i]) == 0 {
			return nil, fmt.Errorf("category %q: %w", name, boxplot.ErrEmpty)
		}
	}

	var v *violins
	if o.Violin {
		var err error
		if v, err = estimate(data, names, &o); err != nil {
			return nil, err
		}
	}

	ax := o.Axes
	if ax == nil {
		ax = axes.Current()
	}

	bp, err := boxplot.Draw(ax, data, boxplot.Options{})
	if err != nil {
		return nil, err
	}
	restyle(ax, bp, cols)
	if err := ax.SetXTicks(bp.Positions, names); err != nil {
		return nil, err
	}

	for i, xs := range data {
		slot := bp.Positions[i]
		if _, err := ax.Scatter(constant(len(xs), slot+o.RasterSep), append([]float64(nil), xs...), o.Marker, cols[i], cols[i]); err != nil {
			return nil, err
		}
	}

	if v != nil {
		if err := v.draw(ax, bp.Positions, cols); err != nil {
			return nil, err
		}
	}
	return bp, nil
}

func (o *Options) fill() error {
	if o.RasterSep == 0 {
		o.RasterSep = DefaultRasterSep
	}
	if o.NKDE == 0 {
		o.NKDE = DefaultNKDE
	}
	if o.ViolinWidth == 0 {
		o.ViolinWidth = DefaultViolinWidth
	}
	switch {
	case !(o.RasterSep > 0) || math.IsInf(o.RasterSep, 0):
		return fmt.Errorf("raster separation must be positive and finite, got %v", o.RasterSep)
	case o.NKDE < 2:
		return fmt.Errorf("density resolution must be at least 2, got %d", o.NKDE)
	case !(o.ViolinWidth > 0) || math.IsInf(o.ViolinWidth, 0):
		return fmt.Errorf("violin width must be positive and finite, got %v", o.ViolinWidth)
	case o.KDEPad != nil && !(*o.KDEPad >= 0 && !math.IsInf(*o.KDEPad, 0)):
		return fmt.Errorf("density padding must be non-negative and finite, got %v", *o.KDEPad)
	}
	return nil
}

// restyle reduces the box plot to black half-width outlines on the
// left of each slot and fills each half box with its category color.
func restyle(ax *axes.Axes, bp *boxplot.Result, cols []color.Color) {
	for i, box := range bp.Boxes {
		xs, ys := box.Data()
		xl, xr := xs[0], (xs[0]+xs[1])/2
		box.SetData([]float64{xl, xr, xr, xl, xl}, ys)
		box.Color = color.Black
		ax.AddPatch(&axes.Rect{
			X: xl, Y: ys[0],
			W: xr - xl, H: ys[2] - ys[0],
			Face:  cols[i],
			Alpha: 0.6,
			Z:     1,
		})
	}
	for _, ls := range [][]*axes.Line{bp.Medians, bp.Caps} {
		for _, l := range ls {
			xs, ys := l.Data()
			l.SetData([]float64{xs[0], (xs[0] + xs[1]) / 2}, ys)
			l.Color = color.Black
		}
	}
	for _, l := range bp.Whiskers {
		l.Color = color.Black
		l.Style = axes.Solid
	}
}

// violins holds the density of each category on a shared grid.
type violins struct {
	grid []float64
	pdfs [][]float64
	// scale converts density to horizontal distance. It is the
	// same for every category.
	scale float64
}

func estimate(data [][]float64, names []string, o *Options) (*violins, error) {
	grid, err := density.Grid(data, o.KDEPad, o.NKDE)
	if err != nil {
		return nil, err
	}
	v := &violins{grid: grid}
	peak := 0.0
	for i, xs := range data {
		e, err := density.New(xs)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", names[i], err)
		}
		pdf := e.Eval(grid)
		for _, d := range pdf {
			if math.IsNaN(d) || math.IsInf(d, 0) {
				return nil, fmt.Errorf("category %q: non-finite density %v", names[i], d)
			}
		}
		if _, m := (stats.Sample{Xs: pdf}).Bounds(); m > peak {
			peak = m
		}
		v.pdfs = append(v.pdfs, pdf)
	}
	if !(peak > 0) {
		return nil, fmt.Errorf("densities vanish on the sampling grid [%v, %v]", grid[0], grid[len(grid)-1])
	}
	v.scale = o.ViolinWidth * o.RasterSep / peak
	return v, nil
}

func (v *violins) draw(ax *axes.Axes, slots []float64, cols []color.Color) error {
	for i, pdf := range v.pdfs {
		center := constant(len(v.grid), slots[i])
		edge := make([]float64, len(pdf))
		for j, d := range pdf {
			edge[j] = slots[i] + v.scale*d
		}

		fill, err := ax.FillBetweenX(v.grid, center, edge, cols[i])
		if err != nil {
			return err
		}
		fill.Alpha, fill.Z = 0.15, 10

		curve, err := ax.Plot(edge, v.grid, cols[i])
		if err != nil {
			return err
		}
		curve.Alpha, curve.Width, curve.Z = 0.6, 2, -9

		ref, err := ax.Plot(center, v.grid, color.Black)
		if err != nil {
			return err
		}
		ref.Alpha, ref.Width, ref.Z = 0.6, 2, -9
	}
	return nil
}

func constant(n int, x float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = x
	}
	return xs
}
