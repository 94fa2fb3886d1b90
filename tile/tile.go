/*
Package tile splits a source image into font-sized tiles and reduces
each tile to at most two colors.

The source is resampled to exactly columns*cellWidth by rows*cellHeight
pixels, where rows is derived from the source aspect ratio with any
partial character row rounded up. Tiles are yielded in row-major order,
left to right, top to bottom, each annotated with its grid position.
*/
package tile

import "image/color"

// Tile is one character cell's worth of pixels after quantization: a
// one- or two-entry palette and a palette index per pixel in row-major
// order. A single-entry palette means the cell is a uniform color and
// every index is zero.
type Tile struct {
	Palette []color.RGBA
	Indices []uint8
	Width   int
	Height  int
	Column  int
	Row     int
}
