// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aclements/go-hybridplot/axes"
)

func TestDatasets(t *testing.T) {
	for _, name := range datasetNames() {
		ds := datasets[name]()
		if len(ds.names) != len(ds.data) || len(ds.names) != len(ds.colors) {
			t.Errorf("%s: %d names, %d series, %d colors", name, len(ds.names), len(ds.data), len(ds.colors))
		}
		for i, xs := range ds.data {
			if len(xs) != 11 {
				t.Errorf("%s/%s: %d observations, want 11", name, ds.names[i], len(xs))
			}
		}
	}
}

func TestPlot(t *testing.T) {
	for _, test := range []struct {
		name    string
		violin  bool
		markers int
		fills   int
	}{
		{"birds", true, 33, 3},
		{"directions", false, 44, 0},
		{"directions", true, 44, 4},
	} {
		ax, err := plot(datasets[test.name](), test.violin, axes.MarkerCircle, 0.3)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		markers := 0
		for _, m := range ax.Markers() {
			markers += m.Len()
		}
		if markers != test.markers || len(ax.Fills()) != test.fills {
			t.Errorf("%s violin=%v: %d markers, %d fills, want %d, %d", test.name, test.violin, markers, len(ax.Fills()), test.markers, test.fills)
		}

		var buf bytes.Buffer
		if err := ax.WriteSVG(&buf, 640, 480); err != nil {
			t.Errorf("%s: %v", test.name, err)
		}
		for _, label := range datasets[test.name]().names {
			if !strings.Contains(buf.String(), label+"</text>") {
				t.Errorf("%s: SVG missing label %q", test.name, label)
			}
		}
		buf.Reset()
		if err := ax.WritePNG(&buf, 320, 240); err != nil {
			t.Errorf("%s: %v", test.name, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
			t.Errorf("%s: output is not a PNG", test.name)
		}
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	if err := printTable(&buf, birds()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header and 3 rows:\n%s", len(lines), buf.String())
	}
	for _, col := range []string{"category", "median", "whisker hi", "fliers"} {
		if !strings.Contains(lines[0], col) {
			t.Errorf("header %q missing column %q", lines[0], col)
		}
	}
	for i, name := range []string{"duck", "goose", "hen"} {
		if !strings.HasPrefix(lines[i+1], name) {
			t.Errorf("row %d = %q, want category %s", i+1, lines[i+1], name)
		}
	}
}

func TestPrintTableEmpty(t *testing.T) {
	ds := birds()
	ds.data[1] = nil
	var buf bytes.Buffer
	if err := printTable(&buf, ds); err == nil || !strings.Contains(err.Error(), "goose") {
		t.Errorf("error = %v, want one naming goose", err)
	}
}
