// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axes

import (
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
)

var frameGray = color.NRGBA{0x88, 0x88, 0x88, 0xff}
var textGray = color.NRGBA{0x44, 0x44, 0x44, 0xff}

var fonts = font.NewCache(liberation.Collection())

var sansFont = font.Font{Typeface: "Liberation", Variant: "Sans"}

// WritePNG renders ax as a width x height pixel PNG image to w.
func (ax *Axes) WritePNG(w io.Writer, width, height int) error {
	c, err := ax.rasterize(width, height)
	if err != nil {
		return err
	}
	_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// rasterize renders ax onto an image canvas. The canvas is 72 DPI, so
// one point is one pixel.
func (ax *Axes) rasterize(width, height int) (*vgimg.Canvas, error) {
	f, err := newFrame(ax, width, height)
	if err != nil {
		return nil, err
	}
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width), vg.Length(height)),
		vgimg.UseDPI(72),
		vgimg.UseBackgroundColor(color.White),
	)
	r := &raster{c: c, height: float64(height)}
	for _, a := range ax.Artists() {
		a.markPNG(f, r)
	}
	renderDecorationsPNG(f, r)
	return c, nil
}

// raster draws device-space shapes, with y growing down, onto a vg
// canvas, whose y grows up.
type raster struct {
	c      vg.Canvas
	height float64
}

func (r *raster) pt(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: vg.Length(r.height - y)}
}

// path returns a path through the device points (xs[i], ys[i]).
// Non-finite points break the path.
func (r *raster) path(xs, ys []float64, closed bool) vg.Path {
	var p vg.Path
	inLine := false
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			inLine = false
			continue
		}
		if !inLine {
			p.Move(r.pt(xs[i], ys[i]))
			inLine = true
		} else {
			p.Line(r.pt(xs[i], ys[i]))
		}
	}
	if closed && len(p) > 0 {
		p.Close()
	}
	return p
}

func (r *raster) fill(p vg.Path, c color.Color) {
	if len(p) == 0 {
		return
	}
	r.c.SetColor(c)
	r.c.Fill(p)
}

func (r *raster) stroke(p vg.Path, width float64, dashed bool, c color.Color) {
	if len(p) == 0 {
		return
	}
	r.c.SetColor(c)
	r.c.SetLineWidth(vg.Length(width))
	if dashed {
		r.c.SetLineDash([]vg.Length{6, 4}, 0)
	} else {
		r.c.SetLineDash(nil, 0)
	}
	r.c.Stroke(p)
}

// text draws s with its baseline starting at device point (x, y).
func (r *raster) text(x, y float64, s string, c color.Color) {
	r.c.SetColor(c)
	r.c.FillString(fonts.Lookup(sansFont, fontSize), r.pt(x, y), s)
}

func textWidth(s string) float64 {
	face := fonts.Lookup(sansFont, fontSize)
	return float64(face.Width(s))
}

// devicePoints maps data points to device space. Non-finite points
// stay non-finite.
func devicePoints(f *frame, xs, ys []float64) (dxs, dys []float64) {
	dxs, dys = make([]float64, len(xs)), make([]float64, len(ys))
	for i := range xs {
		dxs[i], dys[i] = f.px(xs[i]), f.py(ys[i])
	}
	return dxs, dys
}

func (l *Line) markPNG(f *frame, r *raster) {
	if len(l.Xs) < 2 {
		Warning.Print("cannot draw line through fewer than 2 points; ignoring")
		return
	}
	xs, ys := devicePoints(f, l.Xs, l.Ys)
	r.stroke(r.path(xs, ys, false), l.Width, l.Style == Dashed, withAlpha(l.Color, l.Alpha))
}

func (rc *Rect) markPNG(f *frame, r *raster) {
	cxs, cys := rc.corners()
	xs, ys := devicePoints(f, cxs, cys)
	p := r.path(xs, ys, true)
	if rc.Face != nil {
		r.fill(p, withAlpha(rc.Face, rc.Alpha))
	}
	if rc.Edge != nil {
		r.stroke(p, 1, false, withAlpha(rc.Edge, rc.Alpha))
	}
}

func (fl *Fill) markPNG(f *frame, r *raster) {
	if len(fl.Ys) < 2 {
		Warning.Print("cannot fill region with fewer than 2 samples; ignoring")
		return
	}
	oxs, oys := fl.outline()
	xs, ys := devicePoints(f, oxs, oys)
	r.fill(r.path(xs, ys, true), withAlpha(fl.Color, fl.Alpha))
}

func (m *Markers) markPNG(f *frame, r *raster) {
	edge, face := withAlpha(m.Edge, m.Alpha), withAlpha(m.Face, m.Alpha)
	for i := range m.Xs {
		if !isFinite(m.Xs[i]) || !isFinite(m.Ys[i]) {
			continue
		}
		p := markerGlyph(m.Marker, r.pt(f.px(m.Xs[i]), f.py(m.Ys[i])), vg.Length(m.Size))
		switch m.Marker {
		case MarkerX, MarkerPlus:
			// Line-only markers have no face.
		default:
			r.fill(p, face)
		}
		r.stroke(p, 1.5, false, edge)
	}
}

// markerGlyph returns the outline of marker shape m of radius rad
// centered on canvas point pt.
func markerGlyph(m Marker, pt vg.Point, rad vg.Length) vg.Path {
	var p vg.Path
	switch m {
	case MarkerPlus:
		p.Move(vg.Point{X: pt.X - rad, Y: pt.Y})
		p.Line(vg.Point{X: pt.X + rad, Y: pt.Y})
		p.Move(vg.Point{X: pt.X, Y: pt.Y - rad})
		p.Line(vg.Point{X: pt.X, Y: pt.Y + rad})
	case MarkerCircle:
		p.Move(vg.Point{X: pt.X + rad, Y: pt.Y})
		p.Arc(pt, rad, 0, 2*math.Pi)
		p.Close()
	case MarkerSquare:
		p.Move(vg.Point{X: pt.X - rad, Y: pt.Y - rad})
		p.Line(vg.Point{X: pt.X + rad, Y: pt.Y - rad})
		p.Line(vg.Point{X: pt.X + rad, Y: pt.Y + rad})
		p.Line(vg.Point{X: pt.X - rad, Y: pt.Y + rad})
		p.Close()
	case MarkerDiamond:
		p.Move(vg.Point{X: pt.X, Y: pt.Y - rad})
		p.Line(vg.Point{X: pt.X + rad, Y: pt.Y})
		p.Line(vg.Point{X: pt.X, Y: pt.Y + rad})
		p.Line(vg.Point{X: pt.X - rad, Y: pt.Y})
		p.Close()
	default:
		p.Move(vg.Point{X: pt.X - rad, Y: pt.Y - rad})
		p.Line(vg.Point{X: pt.X + rad, Y: pt.Y + rad})
		p.Move(vg.Point{X: pt.X - rad, Y: pt.Y + rad})
		p.Line(vg.Point{X: pt.X + rad, Y: pt.Y - rad})
	}
	return p
}

func renderDecorationsPNG(f *frame, r *raster) {
	l, t, rt, b := f.left, f.top, f.left+f.w, f.top+f.h
	r.stroke(r.path([]float64{l, rt, rt, l}, []float64{t, t, b, b}, true), 1, false, frameGray)

	const tickLen, tickSep = 5, 3
	for i, x := range f.xticks {
		px := f.px(x)
		if !f.inX(px) {
			continue
		}
		r.stroke(r.path([]float64{px, px}, []float64{b, b + tickLen}, false), 1, false, frameGray)
		label := f.xlabels[i]
		r.text(px-textWidth(label)/2, b+tickLen+tickSep+fontSize, label, textGray)
	}
	for i, y := range f.yticks {
		py := f.py(y)
		r.stroke(r.path([]float64{l, l - tickLen}, []float64{py, py}, false), 1, false, frameGray)
		label := f.ylabels[i]
		r.text(l-tickLen-tickSep-textWidth(label), py+fontSize/3, label, textGray)
	}

	if f.title != "" {
		r.text(l+f.w/2-textWidth(f.title)/2, t-fontSize/2, f.title, color.Black)
	}
	if f.xlabel != "" {
		r.text(l+f.w/2-textWidth(f.xlabel)/2, f.height-fontSize/2, f.xlabel, color.Black)
	}
	if f.ylabel != "" {
		r.c.Push()
		r.c.Translate(r.pt(fontSize*1.5, t+f.h/2))
		r.c.Rotate(math.Pi / 2)
		r.c.SetColor(color.Black)
		r.c.FillString(fonts.Lookup(sansFont, fontSize), vg.Point{X: vg.Length(-textWidth(f.ylabel) / 2)}, f.ylabel)
		r.c.Pop()
	}
}
