// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package density estimates probability densities of one-dimensional
// samples using a Gaussian kernel density estimate.
package density

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// ErrDegenerate is returned for samples whose density can't be
// estimated because they have fewer than two distinct values.
var ErrDegenerate = errors.New("fewer than two distinct values")

// DefaultPadFraction is the fraction of the observed range that Grid
// extends beyond the data on each side when no padding is given.
const DefaultPadFraction = 0.3

// Estimate is a kernel density estimate of a sample.
type Estimate struct {
	kde stats.KDE
}

// New returns a Gaussian kernel density estimate of xs using Scott's
// rule for the bandwidth, or Silverman's rule if Scott's rule gives a
// zero bandwidth.
func New(xs []float64) (*Estimate, error) {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("non-finite observation %v", x)
		}
	}
	if !twoDistinct(xs) {
		return nil, ErrDegenerate
	}

	sample := stats.Sample{Xs: xs}
	bw := stats.BandwidthScott(sample)
	if bw == 0 {
		// Scott's rule uses the IQR, which is 0 when most
		// observations tie. Fall back to the standard deviation.
		bw = stats.BandwidthSilverman(sample)
	}
	if !(bw > 0) || math.IsInf(bw, 0) {
		return nil, fmt.Errorf("bad bandwidth %v", bw)
	}
	return &Estimate{stats.KDE{
		Sample:    sample,
		Kernel:    stats.GaussianKernel,
		Bandwidth: bw,
	}}, nil
}

func twoDistinct(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] != xs[0] {
			return true
		}
	}
	return false
}

// PDF returns the estimated density at x.
func (e *Estimate) PDF(x float64) float64 {
	return e.kde.PDF(x)
}

// Eval returns the estimated density at each of ys.
func (e *Estimate) Eval(ys []float64) []float64 {
	return vec.Map(e.kde.PDF, ys)
}

// Bandwidth returns the kernel bandwidth of e.
func (e *Estimate) Bandwidth() float64 {
	return e.kde.Bandwidth
}

// Grid returns n evenly spaced points spanning the combined range of
// all samples in series, extended by pad on both ends. If pad is nil,
// the range is extended by DefaultPadFraction of its width.
func Grid(series [][]float64, pad *float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("grid needs at least 2 points, got %d", n)
	}
	lo, hi := math.NaN(), math.NaN()
	for _, xs := range series {
		smin, smax := stats.Sample{Xs: xs}.Bounds()
		if math.IsNaN(smin) {
			continue
		}
		if smin < lo || math.IsNaN(lo) {
			lo = smin
		}
		if smax > hi || math.IsNaN(hi) {
			hi = smax
		}
	}
	if math.IsNaN(lo) {
		return nil, errors.New("no observations to span")
	}

	p := (hi - lo) * DefaultPadFraction
	if pad != nil {
		p = *pad
	}
	return vec.Linspace(lo-p, hi+p, n), nil
}
