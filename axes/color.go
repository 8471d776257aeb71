// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axes

import (
	"fmt"
	"image/color"
	"strconv"
)

var namedColors = map[string]color.NRGBA{
	"b": {0x00, 0x00, 0xff, 0xff},
	"g": {0x00, 0x80, 0x00, 0xff},
	"r": {0xff, 0x00, 0x00, 0xff},
	"c": {0x00, 0xbf, 0xbf, 0xff},
	"m": {0xbf, 0x00, 0xbf, 0xff},
	"y": {0xbf, 0xbf, 0x00, 0xff},
	"k": {0x00, 0x00, 0x00, 0xff},
	"w": {0xff, 0xff, 0xff, 0xff},
}

// DefaultCycle is the palette cycled over categories that have no
// explicit color: blue, green, red, cyan, magenta, yellow, black.
var DefaultCycle = []color.Color{
	namedColors["b"],
	namedColors["g"],
	namedColors["r"],
	namedColors["c"],
	namedColors["m"],
	namedColors["y"],
	namedColors["k"],
}

// ParseColor parses a color given as one of the single-letter codes
// b, g, r, c, m, y, k, w, or in #rgb or #rrggbb hex form.
func ParseColor(s string) (color.Color, error) {
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if len(s) > 0 && s[0] == '#' {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			v, err := strconv.ParseUint(hex, 16, 32)
			if err == nil {
				return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
			}
		}
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

// withAlpha returns c with its opacity multiplied by alpha. An alpha
// of 0 leaves c unchanged.
func withAlpha(c color.Color, alpha float64) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if alpha > 0 && alpha < 1 {
		n.A = uint8(float64(n.A)*alpha + 0.5)
	}
	return n
}

// cssPaint returns a CSS fragment for setting CSS property prop to
// color c with its opacity scaled by alpha.
func cssPaint(prop string, c color.Color, alpha float64) string {
	n := withAlpha(c, alpha)
	if n.A == 0 {
		// No paint.
		return prop + ":none"
	}

	r, g, b := n.R, n.G, n.B
	css := prop
	if r>>4 == r&0xF && g>>4 == g&0xF && b>>4 == b&0xF {
		// Use #rgb form.
		css += fmt.Sprintf(":#%x%x%x", r>>4, g>>4, b>>4)
	} else {
		// Use #rrggbb form.
		css += fmt.Sprintf(":#%02x%02x%02x", r, g, b)
	}

	if n.A != 0xff {
		// SVG 1.1 only supports CSS2 color formats, which
		// don't include rgba, so opacity is a separate
		// property.
		css += ";" + prop + "-opacity:" + strconv.FormatFloat(float64(n.A)/0xff, 'g', 3, 64)
	}
	return css
}
