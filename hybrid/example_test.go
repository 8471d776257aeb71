// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hybrid_test

import (
	"fmt"
	"image/color"
	"log"

	"github.com/aclements/go-hybridplot/axes"
	"github.com/aclements/go-hybridplot/hybrid"
)

func ExampleRasterBoxPlot() {
	data := [][]float64{
		{1.0, 1.4, 1.8, 2.2, 2.6, 3.0, 3.4, 3.8, 4.2, 4.6, 5.0},
		{0.0, 2.4, 3.1, 3.5, 3.8, 4.1, 4.3, 4.5, 4.7, 4.8, 5.0},
		{1.8, 0.8, 0.2, 0.0, 0.2, 0.8, 1.8, 3.2, 5.0, 7.2, 9.8},
	}
	ax := axes.New()
	bp, err := hybrid.RasterBoxPlot(data, &hybrid.Options{
		Names:  []string{"duck", "goose", "hen"},
		Axes:   ax,
		Violin: true,
		Colors: map[string]color.Color{
			"duck":  color.NRGBA{0, 0, 0xff, 0xff},
			"goose": color.NRGBA{0xbf, 0, 0xbf, 0xff},
			"hen":   color.NRGBA{0xff, 0, 0, 0xff},
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	markers := 0
	for _, m := range ax.Markers() {
		markers += m.Len()
	}
	fmt.Println("boxes:", len(bp.Boxes))
	fmt.Println("fliers:", len(bp.Fliers))
	fmt.Println("markers:", markers)
	fmt.Println("violins:", len(ax.Fills()))
	// Output:
	// boxes: 3
	// fliers: 0
	// markers: 33
	// violins: 3
}
