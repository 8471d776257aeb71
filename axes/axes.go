// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axes implements a retained-mode 2-D drawing surface.
//
// An Axes collects artists (lines, rectangles, markers, and filled
// regions) in data coordinates. Artists stay mutable after they are
// added, so code that builds a composite plot can hand them back to
// its caller for further styling. An Axes is rendered to SVG or PNG
// only when one of the Write methods is called; until then nothing
// is laid out.
package axes

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"sort"
	"sync"
)

// Warning is a logger for reporting artists that can't be drawn but
// don't prevent the rest of the plot from rendering.
var Warning = log.New(os.Stderr, "[axes] ", log.Lshortfile)

// Axes is a single coordinate system and the artists drawn in it.
//
// An Axes is not safe for concurrent mutation.
type Axes struct {
	artists []Artist

	xticks      []float64
	xtickLabels []string

	title, xlabel, ylabel string
}

// New returns an empty Axes.
func New() *Axes {
	return &Axes{}
}

var current struct {
	sync.Mutex
	ax *Axes
}

// Current returns the current Axes, creating it if there isn't one
// yet. Drawing helpers that aren't given an Axes draw here.
func Current() *Axes {
	current.Lock()
	defer current.Unlock()
	if current.ax == nil {
		current.ax = New()
	}
	return current.ax
}

// SetCurrent makes ax the current Axes. If ax is nil, the next call
// to Current starts a fresh Axes.
func SetCurrent(ax *Axes) {
	current.Lock()
	defer current.Unlock()
	current.ax = ax
}

func (ax *Axes) add(a Artist) {
	ax.artists = append(ax.artists, a)
}

// Plot adds a polyline through the points (xs[i], ys[i]).
func (ax *Axes) Plot(xs, ys []float64, c color.Color) (*Line, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("plot: x and y must have the same length, got %d and %d", len(xs), len(ys))
	}
	l := &Line{Xs: xs, Ys: ys, Color: c, Width: 1.5, Z: 2}
	ax.add(l)
	return l, nil
}

// Scatter adds one marker at each point (xs[i], ys[i]).
func (ax *Axes) Scatter(xs, ys []float64, m Marker, edge, face color.Color) (*Markers, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("scatter: x and y must have the same length, got %d and %d", len(xs), len(ys))
	}
	ms := &Markers{Xs: xs, Ys: ys, Marker: m, Edge: edge, Face: face, Size: 4, Z: 1}
	ax.add(ms)
	return ms, nil
}

// FillBetweenX fills the region between the curves x1s(y) and x2s(y)
// sampled at ys.
func (ax *Axes) FillBetweenX(ys, x1s, x2s []float64, c color.Color) (*Fill, error) {
	if len(ys) != len(x1s) || len(ys) != len(x2s) {
		return nil, fmt.Errorf("fill: y, x1 and x2 must have the same length, got %d, %d and %d", len(ys), len(x1s), len(x2s))
	}
	f := &Fill{Ys: ys, X1s: x1s, X2s: x2s, Color: c, Z: 1}
	ax.add(f)
	return f, nil
}

// AddPatch adds r to ax and returns it.
func (ax *Axes) AddPatch(r *Rect) *Rect {
	ax.add(r)
	return r
}

// SetXTicks fixes the x axis ticks at pos with the given labels. If
// labels is nil, the positions are formatted as numbers.
func (ax *Axes) SetXTicks(pos []float64, labels []string) error {
	if labels != nil && len(labels) != len(pos) {
		return fmt.Errorf("%d tick labels for %d ticks", len(labels), len(pos))
	}
	if labels == nil {
		labels = make([]string, len(pos))
		for i, p := range pos {
			labels[i] = fmt.Sprintf("%.6g", p)
		}
	}
	ax.xticks, ax.xtickLabels = pos, labels
	return nil
}

// XTicks returns the fixed x ticks, if any.
func (ax *Axes) XTicks() (pos []float64, labels []string) {
	return ax.xticks, ax.xtickLabels
}

func (ax *Axes) SetTitle(s string)  { ax.title = s }
func (ax *Axes) SetXLabel(s string) { ax.xlabel = s }
func (ax *Axes) SetYLabel(s string) { ax.ylabel = s }

// Artists returns the artists of ax in drawing order: increasing Z,
// and insertion order among artists with equal Z.
func (ax *Axes) Artists() []Artist {
	as := append([]Artist(nil), ax.artists...)
	sort.SliceStable(as, func(i, j int) bool {
		return as[i].zorder() < as[j].zorder()
	})
	return as
}

// Lines returns the Line artists of ax in insertion order.
func (ax *Axes) Lines() []*Line {
	var out []*Line
	for _, a := range ax.artists {
		if a, ok := a.(*Line); ok {
			out = append(out, a)
		}
	}
	return out
}

// Rects returns the Rect artists of ax in insertion order.
func (ax *Axes) Rects() []*Rect {
	var out []*Rect
	for _, a := range ax.artists {
		if a, ok := a.(*Rect); ok {
			out = append(out, a)
		}
	}
	return out
}

// Markers returns the Markers artists of ax in insertion order.
func (ax *Axes) Markers() []*Markers {
	var out []*Markers
	for _, a := range ax.artists {
		if a, ok := a.(*Markers); ok {
			out = append(out, a)
		}
	}
	return out
}

// Fills returns the Fill artists of ax in insertion order.
func (ax *Axes) Fills() []*Fill {
	var out []*Fill
	for _, a := range ax.artists {
		if a, ok := a.(*Fill); ok {
			out = append(out, a)
		}
	}
	return out
}

// DataLimits returns the bounding box of all finite artist
// coordinates and fixed x ticks. If there is nothing to bound, it
// returns the unit square.
func (ax *Axes) DataLimits() (xmin, xmax, ymin, ymax float64) {
	var b bbox
	for _, a := range ax.artists {
		a.bounds(&b)
	}
	for _, x := range ax.xticks {
		b.addX(x)
	}
	if !b.ok() {
		return 0, 1, 0, 1
	}
	return b.xmin, b.xmax, b.ymin, b.ymax
}

// bbox accumulates bounds, ignoring non-finite values.
type bbox struct {
	xmin, xmax, ymin, ymax float64
	nx, ny                 int
}

func isFinite(x float64) bool {
	return !(math.IsNaN(x) || math.IsInf(x, 0))
}

func (b *bbox) addX(x float64) {
	if !isFinite(x) {
		return
	}
	if b.nx == 0 || x < b.xmin {
		b.xmin = x
	}
	if b.nx == 0 || x > b.xmax {
		b.xmax = x
	}
	b.nx++
}

func (b *bbox) addY(y float64) {
	if !isFinite(y) {
		return
	}
	if b.ny == 0 || y < b.ymin {
		b.ymin = y
	}
	if b.ny == 0 || y > b.ymax {
		b.ymax = y
	}
	b.ny++
}

func (b *bbox) ok() bool {
	return b.nx > 0 && b.ny > 0
}
