// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boxplot

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/aclements/go-hybridplot/axes"
)

func TestStats(t *testing.T) {
	s, err := Stats([]float64{9, 1, 8, 2, 7, 3, 6, 4, 5}, DefaultWhis)
	if err != nil {
		t.Fatal(err)
	}
	if s.N != 9 || s.Median != 5 || s.Mean != 5 {
		t.Errorf("N, median, mean = %v, %v, %v, want 9, 5, 5", s.N, s.Median, s.Mean)
	}
	if !(s.Q1 < s.Median && s.Median < s.Q3) {
		t.Errorf("quartiles out of order: %v %v %v", s.Q1, s.Median, s.Q3)
	}
	if s.WhiskerLo != 1 || s.WhiskerHi != 9 || len(s.Fliers) != 0 {
		t.Errorf("whiskers %v-%v, fliers %v, want 1-9 and none", s.WhiskerLo, s.WhiskerHi, s.Fliers)
	}
}

func TestStatsFliers(t *testing.T) {
	xs := []float64{1, 1, 1, 100, 1, 1, 1, 1, 1, -50}
	s, err := Stats(xs, DefaultWhis)
	if err != nil {
		t.Fatal(err)
	}
	if s.Q1 != 1 || s.Q3 != 1 {
		t.Fatalf("quartiles %v, %v, want 1, 1", s.Q1, s.Q3)
	}
	if s.WhiskerLo != 1 || s.WhiskerHi != 1 {
		t.Errorf("whiskers %v-%v, want 1-1", s.WhiskerLo, s.WhiskerHi)
	}
	if want := []float64{-50, 100}; !reflect.DeepEqual(s.Fliers, want) {
		t.Errorf("fliers = %v, want %v", s.Fliers, want)
	}
	// The input is not reordered.
	if xs[3] != 100 || xs[9] != -50 {
		t.Errorf("Stats modified its input: %v", xs)
	}
}

func TestStatsErrors(t *testing.T) {
	if _, err := Stats(nil, DefaultWhis); !errors.Is(err, ErrEmpty) {
		t.Errorf("Stats(nil) error = %v, want ErrEmpty", err)
	}
	if _, err := Stats([]float64{1, math.NaN()}, DefaultWhis); err == nil {
		t.Error("Stats with NaN succeeded")
	}
}

func TestDraw(t *testing.T) {
	data := [][]float64{
		{1, 2, 3, 4, 5},
		{2, 2, 2, 2, 2, 2, 2, 2, 30},
	}
	ax := axes.New()
	res, err := Draw(ax, data, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Boxes) != 2 || len(res.Medians) != 2 || len(res.Whiskers) != 4 || len(res.Caps) != 4 {
		t.Fatalf("got %d boxes, %d medians, %d whiskers, %d caps, want 2, 2, 4, 4",
			len(res.Boxes), len(res.Medians), len(res.Whiskers), len(res.Caps))
	}
	if len(res.Fliers) != 0 || len(ax.Markers()) != 0 {
		t.Errorf("fliers drawn with ShowFliers unset")
	}
	if want := []float64{1, 2}; !reflect.DeepEqual(res.Positions, want) {
		t.Errorf("positions = %v, want %v", res.Positions, want)
	}

	s := res.Stats[0]
	xs, ys := res.Boxes[0].Data()
	if want := []float64{0.75, 1.25, 1.25, 0.75, 0.75}; !reflect.DeepEqual(xs, want) {
		t.Errorf("box x = %v, want %v", xs, want)
	}
	if want := []float64{s.Q1, s.Q1, s.Q3, s.Q3, s.Q1}; !reflect.DeepEqual(ys, want) {
		t.Errorf("box y = %v, want %v", ys, want)
	}
	if xs, _ := res.Caps[1].Data(); xs[0] != 0.875 || xs[1] != 1.125 {
		t.Errorf("cap x = %v, want [0.875 1.125]", xs)
	}
	if _, ys := res.Whiskers[0].Data(); ys[0] != s.Q1 || ys[1] != s.WhiskerLo {
		t.Errorf("low whisker y = %v, want [%v %v]", ys, s.Q1, s.WhiskerLo)
	}
	if res.Whiskers[0].Style != axes.Dashed {
		t.Errorf("whiskers are not dashed")
	}
	if n := len(ax.Lines()); n != 2*6 {
		t.Errorf("axes has %d lines, want 12", n)
	}
}

func TestDrawFliersAndMeans(t *testing.T) {
	data := [][]float64{{2, 2, 2, 2, 2, 2, 2, 2, 30}}
	ax := axes.New()
	res, err := Draw(ax, data, Options{ShowFliers: true, ShowMeans: true, Positions: []float64{4}, Width: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Fliers) != 1 || res.Fliers[0].Len() != 1 || res.Fliers[0].Ys[0] != 30 || res.Fliers[0].Xs[0] != 4 {
		t.Errorf("fliers = %+v, want one at (4, 30)", res.Fliers)
	}
	if len(res.Means) != 1 || res.Means[0].Ys[0] != res.Stats[0].Mean {
		t.Errorf("means = %+v", res.Means)
	}
	if xs, _ := res.Medians[0].Data(); xs[0] != 3.5 || xs[1] != 4.5 {
		t.Errorf("median x = %v, want [3.5 4.5]", xs)
	}
}

func TestDrawErrors(t *testing.T) {
	ax := axes.New()
	_, err := Draw(ax, [][]float64{{1, 2}, {}}, Options{})
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("error = %v, want ErrEmpty", err)
	}
	if _, err := Draw(ax, [][]float64{{1, 2}}, Options{Positions: []float64{1, 2}}); err == nil {
		t.Error("Draw with extra positions succeeded")
	}
	if n := len(ax.Artists()); n != 0 {
		t.Errorf("failed Draw left %d artists", n)
	}
}
