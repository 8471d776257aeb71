// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hybridbp draws example hybrid raster box plots.
//
// A hybrid raster box plot combines a box plot, a raster of the raw
// observations, and optionally a kernel density estimate for each
// category of a data set. hybridbp renders one of its built-in data
// sets as an SVG or PNG image, or prints the box statistics as a
// table.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-hybridplot/axes"
	"github.com/aclements/go-hybridplot/boxplot"
	"github.com/aclements/go-hybridplot/hybrid"
)

func main() {
	log.SetPrefix("hybridbp: ")
	log.SetFlags(0)

	var (
		flagOut     = flag.String("o", "", "write output to `file` (default: stdout)")
		flagFormat  = flag.String("format", "", "output `format`, svg or png (default: from -o, else svg)")
		flagExample = flag.String("example", "birds", "plot data set `name` ("+strings.Join(datasetNames(), ", ")+")")
		flagViolin  = flag.Bool("violin", false, "draw density estimates (default: per data set)")
		flagMarker  = flag.String("marker", "x", "raster marker: x, o, +, s, or d")
		flagSep     = flag.Float64("sep", hybrid.DefaultRasterSep, "horizontal distance from box to raster")
		flagWidth   = flag.Int("width", 640, "image width in pixels")
		flagHeight  = flag.Int("height", 480, "image height in pixels")
		flagTitle   = flag.String("title", "", "plot title")
		flagTable   = flag.Bool("table", false, "output a table of box statistics instead of a plot")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	mk, ok := datasets[*flagExample]
	if !ok {
		log.Fatalf("unknown data set %q", *flagExample)
	}
	ds := mk()

	// -violin overrides the data set's default only if given.
	violin := ds.violin
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "violin" {
			violin = *flagViolin
		}
	})

	marker, ok := axes.ParseMarker(*flagMarker)
	if !ok {
		log.Fatalf("unknown marker %q", *flagMarker)
	}

	format := *flagFormat
	if format == "" {
		format = "svg"
		if ext := strings.TrimPrefix(filepath.Ext(*flagOut), "."); ext == "png" || ext == "svg" {
			format = ext
		}
	}
	if format != "svg" && format != "png" {
		log.Fatalf("unknown output format %q", format)
	}

	// Prepare for output.
	var w io.Writer = os.Stdout
	if *flagOut != "" {
		f, err := os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Fatal(err)
			}
		}()
		w = f
	}

	if *flagTable {
		if err := printTable(w, ds); err != nil {
			log.Fatal(err)
		}
		return
	}

	ax, err := plot(ds, violin, marker, *flagSep)
	if err != nil {
		log.Fatal(err)
	}
	if *flagTitle != "" {
		ax.SetTitle(*flagTitle)
	}

	switch format {
	case "svg":
		err = ax.WriteSVG(w, *flagWidth, *flagHeight)
	case "png":
		err = ax.WritePNG(w, *flagWidth, *flagHeight)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// plot draws ds on a new axes.
func plot(ds dataset, violin bool, marker axes.Marker, sep float64) (*axes.Axes, error) {
	cols := make(map[string]color.Color)
	for i, name := range ds.names {
		c, err := axes.ParseColor(ds.colors[i])
		if err != nil {
			return nil, err
		}
		cols[name] = c
	}

	ax := axes.New()
	_, err := hybrid.RasterBoxPlot(ds.data, &hybrid.Options{
		Names:     ds.names,
		Axes:      ax,
		Violin:    violin,
		Colors:    cols,
		RasterSep: sep,
		Marker:    marker,
	})
	if err != nil {
		return nil, err
	}
	return ax, nil
}

// printTable writes the box statistics of each category in ds.
func printTable(w io.Writer, ds dataset) error {
	var (
		ns, fliers                       []int
		q1s, medians, q3s, means, lo, hi []float64
	)
	for i, xs := range ds.data {
		s, err := boxplot.Stats(xs, boxplot.DefaultWhis)
		if err != nil {
			return fmt.Errorf("%s: %w", ds.names[i], err)
		}
		ns = append(ns, s.N)
		q1s = append(q1s, s.Q1)
		medians = append(medians, s.Median)
		q3s = append(q3s, s.Q3)
		means = append(means, s.Mean)
		lo = append(lo, s.WhiskerLo)
		hi = append(hi, s.WhiskerHi)
		fliers = append(fliers, len(s.Fliers))
	}

	tab := new(table.Builder).
		Add("category", ds.names).
		Add("n", ns).
		Add("whisker lo", lo).
		Add("q1", q1s).
		Add("median", medians).
		Add("q3", q3s).
		Add("whisker hi", hi).
		Add("mean", means).
		Add("fliers", fliers).
		Done()
	return table.Fprint(w, tab, "%s", "%d", "%.4g", "%.4g", "%.4g", "%.4g", "%.4g", "%.4g", "%d")
}
