// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axes

import (
	"image/color"

	"github.com/ajstarks/svgo"
)

// An Artist is something drawn on an Axes. The concrete artists are
// *Line, *Rect, *Markers, and *Fill.
type Artist interface {
	zorder() float64
	bounds(b *bbox)
	markSVG(f *frame, canvas *svg.SVG)
	markPNG(f *frame, r *raster)
}

// LineStyle is the dash pattern of a stroked line.
type LineStyle int

const (
	Solid LineStyle = iota
	Dashed
)

// Line is a polyline in data coordinates.
type Line struct {
	Xs, Ys []float64
	Color  color.Color
	// Width is the stroke width in pixels.
	Width float64
	// Alpha scales the opacity of Color. Zero means opaque.
	Alpha float64
	Style LineStyle
	// Z orders artists: lower Z is drawn first.
	Z float64
}

// Data returns the vertices of l.
func (l *Line) Data() (xs, ys []float64) {
	return l.Xs, l.Ys
}

// SetData replaces the vertices of l.
func (l *Line) SetData(xs, ys []float64) {
	l.Xs, l.Ys = xs, ys
}

func (l *Line) zorder() float64 { return l.Z }

func (l *Line) bounds(b *bbox) {
	for i := range l.Xs {
		b.addX(l.Xs[i])
		b.addY(l.Ys[i])
	}
}

// Rect is an axis-aligned rectangle patch with its lower-left corner
// at (X, Y).
type Rect struct {
	X, Y, W, H float64
	// Face is the fill color. Nil means no fill.
	Face color.Color
	// Edge is the outline color. Nil means no outline.
	Edge  color.Color
	Alpha float64
	Z     float64
}

func (r *Rect) zorder() float64 { return r.Z }

func (r *Rect) bounds(b *bbox) {
	b.addX(r.X)
	b.addX(r.X + r.W)
	b.addY(r.Y)
	b.addY(r.Y + r.H)
}

// corners returns the corners of r counter-clockwise from (X, Y).
func (r *Rect) corners() (xs, ys []float64) {
	return []float64{r.X, r.X + r.W, r.X + r.W, r.X},
		[]float64{r.Y, r.Y, r.Y + r.H, r.Y + r.H}
}

// Marker is the shape drawn at each point of a Markers artist.
type Marker int

const (
	MarkerX Marker = iota
	MarkerCircle
	MarkerPlus
	MarkerSquare
	MarkerDiamond
)

var markerNames = map[string]Marker{
	"x": MarkerX,
	"o": MarkerCircle,
	"+": MarkerPlus,
	"s": MarkerSquare,
	"d": MarkerDiamond,
}

// ParseMarker returns the Marker for a single-character marker code:
// one of "x", "o", "+", "s", or "d".
func ParseMarker(s string) (Marker, bool) {
	m, ok := markerNames[s]
	return m, ok
}

// Markers is a set of individual markers sharing one style.
type Markers struct {
	Xs, Ys []float64
	Marker Marker
	Edge   color.Color
	Face   color.Color
	// Size is the marker radius in pixels.
	Size  float64
	Alpha float64
	Z     float64
}

// Len returns the number of markers.
func (m *Markers) Len() int {
	return len(m.Xs)
}

func (m *Markers) zorder() float64 { return m.Z }

func (m *Markers) bounds(b *bbox) {
	for i := range m.Xs {
		b.addX(m.Xs[i])
		b.addY(m.Ys[i])
	}
}

// Fill is the region between two curves X1s(y) and X2s(y).
type Fill struct {
	Ys       []float64
	X1s, X2s []float64
	Color    color.Color
	Alpha    float64
	Z        float64
}

func (f *Fill) zorder() float64 { return f.Z }

func (f *Fill) bounds(b *bbox) {
	for i := range f.Ys {
		b.addX(f.X1s[i])
		b.addX(f.X2s[i])
		b.addY(f.Ys[i])
	}
}

// outline returns the closed boundary of f: along X1s in y order and
// back along X2s.
func (f *Fill) outline() (xs, ys []float64) {
	n := len(f.Ys)
	xs, ys = make([]float64, 0, 2*n), make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		xs, ys = append(xs, f.X1s[i]), append(ys, f.Ys[i])
	}
	for i := n - 1; i >= 0; i-- {
		xs, ys = append(xs, f.X2s[i]), append(ys, f.Ys[i])
	}
	return xs, ys
}
