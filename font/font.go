/*
Package font implements the two bundled CP437 bitmap fonts and the
glyph matching used to choose a codepoint for a two-color tile.

A font is loaded from a raw ROM dump of 256 consecutive glyphs, each
stored as one byte per row with the most significant bit as the
leftmost pixel. The rows are expanded into a flat bit array at load
time so matching can index individual pixels without shifting.
*/
package font

import (
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

//go:embed fonts/CP437.F16
var ibmVGAData []byte

//go:embed fonts/CP437.F08
var vga50Data []byte

// FullBlock is the codepoint of the solid block glyph emitted for
// single-color cells.
const FullBlock = 219

const numGlyphs = 256

var black = color.RGBA{0, 0, 0, 255}

// Font is an immutable CP437 bitmap font. The width is always eight
// pixels; the bundled faces are sixteen or eight pixels tall.
type Font struct {
	width   int
	height  int
	name    string
	bitmask []uint8
}

// New builds a Font from a raw ROM dump. The glyph height is inferred
// from the data length; the name is written verbatim into the SAUCE
// trailer and must not exceed 22 bytes.
func New(data []byte, name string) (*Font, error) {
	if len(data) == 0 || len(data)%numGlyphs != 0 {
		return nil, fmt.Errorf("font: %d bytes is not a multiple of %d glyphs", len(data), numGlyphs)
	}
	if len(name) > 22 {
		return nil, fmt.Errorf("font: name %q longer than 22 bytes", name)
	}
	f := &Font{
		width:   8,
		height:  len(data) / numGlyphs,
		name:    name,
		bitmask: make([]uint8, len(data)*8),
	}
	for i, b := range data {
		for j := 0; j < 8; j++ {
			if b&(0x80>>j) != 0 {
				f.bitmask[i*8+j] = 1
			}
		}
	}
	return f, nil
}

// IBMVGA returns the bundled 8x16 face.
func IBMVGA() *Font {
	f, err := New(ibmVGAData, "IBM VGA")
	if err != nil {
		panic(err)
	}
	return f
}

// VGA50 returns the bundled 8x8 face.
func VGA50() *Font {
	f, err := New(vga50Data, "IBM VGA50")
	if err != nil {
		panic(err)
	}
	return f
}

// Width returns the glyph width in pixels.
func (f *Font) Width() int {
	return f.width
}

// Height returns the glyph height in pixels.
func (f *Font) Height() int {
	return f.height
}

// Name returns the face name used in the SAUCE trailer.
func (f *Font) Name() string {
	return f.name
}

func (f *Font) size() int {
	return f.width * f.height
}

// Bits returns the width*height bit sequence for a codepoint, row by
// row, each element 0 or 1. The slice aliases the font's bit array and
// must not be modified.
func (f *Font) Bits(codepoint uint8) []uint8 {
	start := int(codepoint) * f.size()
	return f.bitmask[start : start+f.size()]
}

// Render produces the pixel tile for a codepoint with fg where the
// glyph bits are set and bg elsewhere. A nil bg renders opaque black.
func (f *Font) Render(codepoint uint8, fg color.RGBA, bg *color.RGBA) *image.RGBA {
	fill := black
	if bg != nil {
		fill = *bg
	}
	m := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for i, bit := range f.Bits(codepoint) {
		c := fill
		if bit == 1 {
			c = fg
		}
		m.SetRGBA(i%f.width, i/f.width, c)
	}
	return m
}

// Blit writes a rendered tile into dst with its top-left corner at
// (x, y). The tile must fit within dst's bounds.
func (f *Font) Blit(dst draw.Image, tile image.Image, x, y int) {
	r := image.Rect(x, y, x+tile.Bounds().Dx(), y+tile.Bounds().Dy())
	draw.Draw(dst, r, tile, tile.Bounds().Min, draw.Src)
}
