// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/vec"
)

type dataset struct {
	names  []string
	data   [][]float64
	colors []string
	violin bool
}

var datasets = map[string]func() dataset{
	"birds":      birds,
	"directions": directions,
}

func datasetNames() []string {
	var names []string
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func linear() []float64 {
	return vec.Linspace(1, 5, 11)
}

func logarithmic() []float64 {
	return vec.Map(math.Log, vec.Linspace(1, math.Exp(5), 11))
}

func quadratic() []float64 {
	return vec.Map(func(x float64) float64 { return (1 + x) * (1 + x) / 5 }, vec.Linspace(-4, 4, 11))
}

func exponential() []float64 {
	return vec.Map(math.Exp, vec.Linspace(1, math.Log(5), 11))
}

func birds() dataset {
	return dataset{
		names:  []string{"duck", "goose", "hen"},
		data:   [][]float64{linear(), logarithmic(), quadratic()},
		colors: []string{"b", "m", "r"},
		violin: true,
	}
}

func directions() dataset {
	return dataset{
		names:  []string{"left", "right", "top", "bottom"},
		data:   [][]float64{linear(), logarithmic(), quadratic(), exponential()},
		colors: []string{"b", "r", "m", "c"},
	}
}
