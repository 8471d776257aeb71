// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axes

import (
	"fmt"

	"github.com/aclements/go-moremath/scale"
)

const (
	// dataMargin is the fraction of the data range left empty on
	// each side of the plot area.
	dataMargin = 0.05

	fontSize = 12.0
	maxTicks = 8
)

// frame is the device layout of an Axes: where the plot area sits in
// the image and how data coordinates map onto it.
type frame struct {
	width, height float64

	// Plot area, in device coordinates with y growing down.
	left, top, w, h float64

	xs, ys scale.Linear

	xticks, yticks   []float64
	xlabels, ylabels []string

	title, xlabel, ylabel string
}

func newFrame(ax *Axes, width, height int) (*frame, error) {
	f := &frame{
		width:  float64(width),
		height: float64(height),
		title:  ax.title,
		xlabel: ax.xlabel,
		ylabel: ax.ylabel,
	}

	ml, mr, mt, mb := 60.0, 20.0, 15.0, 30.0
	if f.title != "" {
		mt += fontSize * 1.5
	}
	if f.xlabel != "" {
		mb += fontSize * 1.5
	}
	if f.ylabel != "" {
		ml += fontSize * 1.5
	}
	f.left, f.top = ml, mt
	f.w, f.h = f.width-ml-mr, f.height-mt-mb
	if f.w <= 0 || f.h <= 0 {
		return nil, fmt.Errorf("%dx%d is too small to hold a plot", width, height)
	}

	xmin, xmax, ymin, ymax := ax.DataLimits()
	f.xs = padded(xmin, xmax)
	f.ys = padded(ymin, ymax)

	if ax.xticks != nil {
		f.xticks, f.xlabels = ax.xticks, ax.xtickLabels
	} else {
		f.xticks, f.xlabels = ticks(f.xs)
	}
	f.yticks, f.ylabels = ticks(f.ys)
	return f, nil
}

// padded returns a linear scale over [min, max] widened by
// dataMargin on each side.
func padded(min, max float64) scale.Linear {
	pad := (max - min) * dataMargin
	if pad == 0 {
		pad = 0.5
	}
	return scale.Linear{Min: min - pad, Max: max + pad}
}

func ticks(s scale.Linear) ([]float64, []string) {
	major, _ := s.Ticks(scale.TickOptions{Max: maxTicks})
	var pos []float64
	var labels []string
	for _, t := range major {
		if t < s.Min || t > s.Max {
			continue
		}
		pos = append(pos, t)
		labels = append(labels, fmt.Sprintf("%.6g", t))
	}
	return pos, labels
}

// px maps data x to device x.
func (f *frame) px(x float64) float64 {
	return f.left + f.xs.Map(x)*f.w
}

// py maps data y to device y.
func (f *frame) py(y float64) float64 {
	return f.top + f.h - f.ys.Map(y)*f.h
}

// inX reports whether device x lies within the plot area.
func (f *frame) inX(x float64) bool {
	return x >= f.left && x <= f.left+f.w
}
