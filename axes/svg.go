// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axes

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/ajstarks/svgo"
)

// WriteSVG renders ax as a width x height pixel SVG image to w.
func (ax *Axes) WriteSVG(w io.Writer, width, height int) error {
	f, err := newFrame(ax, width, height)
	if err != nil {
		return err
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height, fmt.Sprintf(`font-size="%.6gpx" font-family="Helvetica,Arial,sans-serif"`, fontSize))
	canvas.Rect(0, 0, width, height, "fill:#fff")

	// Clip marks to the plot area.
	xi, yi := int(math.Floor(f.left)), int(math.Floor(f.top))
	wi, hi := int(math.Ceil(f.left+f.w))-xi, int(math.Ceil(f.top+f.h))-yi
	canvas.ClipPath(`id="plot-area"`)
	canvas.Rect(xi, yi, wi, hi)
	canvas.ClipEnd()
	canvas.Group(`clip-path="url(#plot-area)"`)
	for _, a := range ax.Artists() {
		a.markSVG(f, canvas)
	}
	canvas.Gend()

	renderDecorationsSVG(f, canvas)
	canvas.End()
	return ew.err
}

// errWriter remembers the first write error so the SVG writer, which
// doesn't report errors, can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func renderDecorationsSVG(f *frame, canvas *svg.SVG) {
	l, t, r, b := f.left, f.top, f.left+f.w, f.top+f.h
	canvas.Path(fmt.Sprintf("M%.6g %.6gH%.6gV%.6gH%.6gZ", l, t, r, b, l), "stroke:#888;fill:none;stroke-width:1")

	const tickLen, tickSep = 5, 3
	var path []byte
	for i, x := range f.xticks {
		px := f.px(x)
		if !f.inX(px) {
			continue
		}
		path = appendPoint(append(path, 'M'), px, b)
		path = appendPoint(append(path, 'L'), px, b+tickLen)
		canvas.Text(int(px+0.5), int(b+tickLen+tickSep), f.xlabels[i], `text-anchor="middle"`, `dy="1em"`, `fill="#444"`)
	}
	for i, y := range f.yticks {
		py := f.py(y)
		path = appendPoint(append(path, 'M'), l, py)
		path = appendPoint(append(path, 'L'), l-tickLen, py)
		canvas.Text(int(l-tickLen-tickSep), int(py+0.5), f.ylabels[i], `text-anchor="end"`, `dy=".3em"`, `fill="#444"`)
	}
	if len(path) > 0 {
		canvas.Path(string(path), "stroke:#888;stroke-width:1")
	}

	if f.title != "" {
		canvas.Text(int(l+f.w/2), int(t-fontSize/2), f.title, `text-anchor="middle"`, `font-size="120%"`)
	}
	if f.xlabel != "" {
		canvas.Text(int(l+f.w/2), int(f.height-fontSize/2), f.xlabel, `text-anchor="middle"`)
	}
	if f.ylabel != "" {
		canvas.TranslateRotate(int(fontSize*1.5), int(t+f.h/2), -90)
		canvas.Text(0, 0, f.ylabel, `text-anchor="middle"`)
		canvas.Gend()
	}
}

func appendPoint(path []byte, x, y float64) []byte {
	path = strconv.AppendFloat(path, x, 'g', 6, 64)
	path = append(path, ' ')
	path = strconv.AppendFloat(path, y, 'g', 6, 64)
	return path
}

// appendPolyline appends SVG path data through the device mapping of
// (xs[i], ys[i]). Non-finite points break the line.
func appendPolyline(path []byte, f *frame, xs, ys []float64) []byte {
	inLine := false
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			inLine = false
			continue
		}
		if !inLine {
			path = append(path, 'M')
			inLine = true
		} else {
			path = append(path, 'L')
		}
		path = appendPoint(path, f.px(xs[i]), f.py(ys[i]))
	}
	return path
}

func (l *Line) markSVG(f *frame, canvas *svg.SVG) {
	if len(l.Xs) < 2 {
		Warning.Print("cannot draw line through fewer than 2 points; ignoring")
		return
	}
	path := appendPolyline(nil, f, l.Xs, l.Ys)
	if len(path) == 0 {
		return
	}
	style := cssPaint("stroke", l.Color, l.Alpha) + ";fill:none;stroke-width:" + strconv.FormatFloat(l.Width, 'g', 4, 64)
	if l.Style == Dashed {
		style += ";stroke-dasharray:6,4"
	}
	canvas.Path(string(path), style)
}

func (r *Rect) markSVG(f *frame, canvas *svg.SVG) {
	xs, ys := r.corners()
	path := appendPolyline(nil, f, xs, ys)
	if len(path) == 0 {
		return
	}
	path = append(path, 'Z')
	canvas.Path(string(path), cssPaint("fill", r.Face, r.Alpha)+";"+cssPaint("stroke", r.Edge, r.Alpha))
}

func (fl *Fill) markSVG(f *frame, canvas *svg.SVG) {
	if len(fl.Ys) < 2 {
		Warning.Print("cannot fill region with fewer than 2 samples; ignoring")
		return
	}
	xs, ys := fl.outline()
	path := appendPolyline(nil, f, xs, ys)
	if len(path) == 0 {
		return
	}
	path = append(path, 'Z')
	canvas.Path(string(path), cssPaint("fill", fl.Color, fl.Alpha)+";stroke:none")
}

func (m *Markers) markSVG(f *frame, canvas *svg.SVG) {
	var style string
	switch m.Marker {
	case MarkerX, MarkerPlus:
		// Line-only markers have no face.
		style = cssPaint("stroke", m.Edge, m.Alpha) + ";fill:none"
	default:
		style = cssPaint("stroke", m.Edge, m.Alpha) + ";" + cssPaint("fill", m.Face, m.Alpha)
	}
	canvas.Group(style + ";stroke-width:1.5")
	for i := range m.Xs {
		if !isFinite(m.Xs[i]) || !isFinite(m.Ys[i]) {
			continue
		}
		canvas.Path(markerPath(m.Marker, f.px(m.Xs[i]), f.py(m.Ys[i]), m.Size))
	}
	canvas.Gend()
}

// markerPath returns SVG path data for marker shape m of radius r
// centered on device point (x, y).
func markerPath(m Marker, x, y, r float64) string {
	switch m {
	case MarkerPlus:
		return fmt.Sprintf("M%.6g %.6gH%.6gM%.6g %.6gV%.6g", x-r, y, x+r, x, y-r, y+r)
	case MarkerCircle:
		return fmt.Sprintf("M%.6g %.6ga%.6g %.6g 0 1 0 %.6g 0a%.6g %.6g 0 1 0 %.6g 0Z", x-r, y, r, r, 2*r, r, r, -2*r)
	case MarkerSquare:
		return fmt.Sprintf("M%.6g %.6gH%.6gV%.6gH%.6gZ", x-r, y-r, x+r, y+r, x-r)
	case MarkerDiamond:
		return fmt.Sprintf("M%.6g %.6gL%.6g %.6gL%.6g %.6gL%.6g %.6gZ", x, y-r, x+r, y, x, y+r, x-r, y)
	}
	return fmt.Sprintf("M%.6g %.6gL%.6g %.6gM%.6g %.6gL%.6g %.6g", x-r, y-r, x+r, y+r, x-r, y+r, x+r, y-r)
}
