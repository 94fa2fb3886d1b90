/*
Package cga maps arbitrary sRGB colors onto the sixteen fixed IBM CGA
palette entries.

Distances are measured in the Oklab color space, where Euclidean
distance tracks perceived color difference; plain RGB distance is a
poor metric at sixteen-color granularity.
*/
package cga

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds the sixteen CGA colors in ANSI SGR order, so an index
// maps straight onto the 30+n foreground and 40+n background codes
// (8..15 are the bright variants of 0..7).
var Palette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xff}, // black
	{0xaa, 0x00, 0x00, 0xff}, // red
	{0x00, 0xaa, 0x00, 0xff}, // green
	{0xaa, 0x55, 0x00, 0xff}, // brown
	{0x00, 0x00, 0xaa, 0xff}, // blue
	{0xaa, 0x00, 0xaa, 0xff}, // magenta
	{0x00, 0xaa, 0xaa, 0xff}, // cyan
	{0xaa, 0xaa, 0xaa, 0xff}, // light gray
	{0x55, 0x55, 0x55, 0xff}, // dark gray
	{0xff, 0x55, 0x55, 0xff}, // light red
	{0x55, 0xff, 0x55, 0xff}, // light green
	{0xff, 0xff, 0x55, 0xff}, // yellow
	{0x55, 0x55, 0xff, 0xff}, // light blue
	{0xff, 0x55, 0xff, 0xff}, // light magenta
	{0x55, 0xff, 0xff, 0xff}, // light cyan
	{0xff, 0xff, 0xff, 0xff}, // white
}

type oklab struct {
	l, a, b float64
}

// toOklab converts an sRGB color to Oklab: linearize, project into the
// LMS cone space, compress with a cube root and rotate into Lab axes.
func toOklab(c color.RGBA) oklab {
	r, g, b := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.LinearRgb()

	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return oklab{
		l: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		a: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		b: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

var paletteOklab = func() [16]oklab {
	var p [16]oklab
	for i, c := range Palette {
		p[i] = toOklab(c)
	}
	return p
}()

// Color returns the palette entry for an index in 0..15.
func Color(index uint8) color.RGBA {
	return Palette[index]
}

// Nearest returns the index of the palette entry closest to c in
// Oklab, with ties broken by the lower index.
func Nearest(c color.RGBA) uint8 {
	q := toOklab(c)
	best := 0
	bestDistance := math.MaxFloat64
	for i, p := range paletteOklab {
		d := sq(q.l-p.l) + sq(q.a-p.a) + sq(q.b-p.b)
		if d < bestDistance {
			best = i
			bestDistance = d
		}
	}
	return uint8(best)
}

func sq(v float64) float64 {
	return v * v
}
