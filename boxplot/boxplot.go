// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package boxplot computes box-and-whisker summaries of samples and
// draws them on an axes.Axes.
package boxplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-hybridplot/axes"
	"github.com/aclements/go-moremath/stats"
)

// ErrEmpty is returned for a sample with no observations.
var ErrEmpty = errors.New("no observations")

// DefaultWhis is the default whisker reach, in units of the
// interquartile range.
const DefaultWhis = 1.5

// Summary is the box-and-whisker summary of one sample.
type Summary struct {
	N int

	Q1, Median, Q3 float64
	Mean           float64

	// WhiskerLo and WhiskerHi are the most extreme observations
	// within the whisker reach of the box.
	WhiskerLo, WhiskerHi float64

	// Fliers are the observations beyond the whiskers, in
	// ascending order.
	Fliers []float64
}

// IQR returns the interquartile range of s.
func (s Summary) IQR() float64 {
	return s.Q3 - s.Q1
}

// Stats summarizes xs. The whiskers reach the most extreme
// observations within whis*IQR of the box.
func Stats(xs []float64, whis float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrEmpty
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	for _, x := range sorted {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Summary{}, fmt.Errorf("non-finite observation %v", x)
		}
	}

	sample := stats.Sample{Xs: sorted, Sorted: true}
	s := Summary{
		N:      len(sorted),
		Q1:     sample.Quantile(0.25),
		Median: sample.Quantile(0.5),
		Q3:     sample.Quantile(0.75),
		Mean:   sample.Mean(),
	}

	loReach, hiReach := s.Q1-whis*s.IQR(), s.Q3+whis*s.IQR()
	s.WhiskerLo, s.WhiskerHi = s.Q1, s.Q3
	for _, x := range sorted {
		if x >= loReach {
			s.WhiskerLo = math.Min(x, s.Q1)
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if x := sorted[i]; x <= hiReach {
			s.WhiskerHi = math.Max(x, s.Q3)
			break
		}
	}
	for _, x := range sorted {
		if x < s.WhiskerLo || x > s.WhiskerHi {
			s.Fliers = append(s.Fliers, x)
		}
	}
	return s, nil
}

// Options controls Draw. The zero value draws boxes of width 0.5 at
// positions 1..N with whiskers at 1.5 IQR and no fliers or means.
type Options struct {
	// Positions are the x positions of the boxes. If nil, box i
	// is drawn at i+1.
	Positions []float64

	// Width is the width of each box. Caps are half as wide.
	Width float64

	// Whis is the whisker reach in units of the IQR.
	Whis float64

	// ShowFliers draws observations beyond the whiskers.
	ShowFliers bool

	// ShowMeans marks the mean of each sample.
	ShowMeans bool
}

// Result holds the artists drawn by Draw. Every slice except
// Whiskers and Caps has one entry per sample; Whiskers and Caps hold
// the low then the high element of each sample.
type Result struct {
	Boxes    []*axes.Line
	Medians  []*axes.Line
	Whiskers []*axes.Line
	Caps     []*axes.Line
	Fliers   []*axes.Markers
	Means    []*axes.Markers

	Positions []float64
	Stats     []Summary
}

var (
	boxColor    = color.NRGBA{0x00, 0x00, 0xff, 0xff}
	medianColor = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	meanColor   = color.NRGBA{0x00, 0x80, 0x00, 0xff}
)

// Draw draws one box per sample in data onto ax. It validates all of
// data before drawing anything, so on error ax is unchanged.
func Draw(ax *axes.Axes, data [][]float64, opts Options) (*Result, error) {
	if opts.Positions != nil && len(opts.Positions) != len(data) {
		return nil, fmt.Errorf("%d positions for %d samples", len(opts.Positions), len(data))
	}
	width, whis := opts.Width, opts.Whis
	if width == 0 {
		width = 0.5
	}
	if whis == 0 {
		whis = DefaultWhis
	}

	res := &Result{}
	for i, xs := range data {
		s, err := Stats(xs, whis)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		res.Stats = append(res.Stats, s)
		pos := float64(i + 1)
		if opts.Positions != nil {
			pos = opts.Positions[i]
		}
		res.Positions = append(res.Positions, pos)
	}

	for i, s := range res.Stats {
		p := res.Positions[i]
		l, r := p-width/2, p+width/2
		cl, cr := p-width/4, p+width/4

		box := line(ax, []float64{l, r, r, l, l}, []float64{s.Q1, s.Q1, s.Q3, s.Q3, s.Q1}, boxColor)
		res.Boxes = append(res.Boxes, box)

		lo := line(ax, []float64{p, p}, []float64{s.Q1, s.WhiskerLo}, boxColor)
		hi := line(ax, []float64{p, p}, []float64{s.Q3, s.WhiskerHi}, boxColor)
		lo.Style, hi.Style = axes.Dashed, axes.Dashed
		res.Whiskers = append(res.Whiskers, lo, hi)

		res.Caps = append(res.Caps,
			line(ax, []float64{cl, cr}, []float64{s.WhiskerLo, s.WhiskerLo}, color.Black),
			line(ax, []float64{cl, cr}, []float64{s.WhiskerHi, s.WhiskerHi}, color.Black))

		res.Medians = append(res.Medians, line(ax, []float64{l, r}, []float64{s.Median, s.Median}, medianColor))

		if opts.ShowFliers {
			xs := make([]float64, len(s.Fliers))
			for j := range xs {
				xs[j] = p
			}
			m, _ := ax.Scatter(xs, s.Fliers, axes.MarkerPlus, boxColor, boxColor)
			res.Fliers = append(res.Fliers, m)
		}
		if opts.ShowMeans {
			m, _ := ax.Scatter([]float64{p}, []float64{s.Mean}, axes.MarkerDiamond, meanColor, meanColor)
			res.Means = append(res.Means, m)
		}
	}
	return res, nil
}

// line adds a line whose coordinates are known to match in length.
func line(ax *axes.Axes, xs, ys []float64, c color.Color) *axes.Line {
	l, _ := ax.Plot(xs, ys, c)
	return l
}
