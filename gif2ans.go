/*
Package gif2ans converts raster images into ANSI-art block lists: one
CP437 codepoint and a foreground/background color pair per character
cell, chosen so the rendered cells approximate the source image.
*/
package gif2ans

import (
	"image"
	"image/color"
	"log"

	"github.com/andyherbert/gif2ans/cga"
	"github.com/andyherbert/gif2ans/font"
	"github.com/andyherbert/gif2ans/tile"
)

// Block is the conversion result for one character cell. BG and CGABG
// are nil for uniform cells, which always use the full block glyph.
type Block struct {
	Codepoint uint8
	FG        color.RGBA
	BG        *color.RGBA
	CGAFG     uint8
	CGABG     *uint8
	Column    int
	Row       int
}

// Converter turns images into Block lists with a fixed font.
type Converter struct {
	// FixedScoring selects the corrected inverse-assignment scoring in
	// the glyph matcher. Off by default so output stays byte-identical
	// to the original converter.
	FixedScoring bool

	font   *font.Font
	logger *log.Logger
}

// New returns a Converter using f. Progress is written to logger.
func New(f *font.Font, logger *log.Logger) *Converter {
	return &Converter{
		font:   f,
		logger: logger,
	}
}

// Font returns the font the converter matches against.
func (c *Converter) Font() *font.Font {
	return c.font
}

// Convert reduces m to a grid of columns cells wide and returns one
// Block per cell in row-major order. With restrict set the matcher
// only considers the block-drawing glyph subset.
func (c *Converter) Convert(m image.Image, columns int, restrict bool) []Block {
	it := tile.NewIterator(m, columns, c.font.Width(), c.font.Height())
	blocks := make([]Block, 0, it.Columns()*it.Rows())
	for t, ok := it.Next(); ok; t, ok = it.Next() {
		blocks = append(blocks, c.block(t, restrict))
	}
	c.logger.Printf("converted %dx%d source to %d cells (%dx%d)\n",
		m.Bounds().Dx(), m.Bounds().Dy(), len(blocks), it.Columns(), it.Rows())
	return blocks
}

func (c *Converter) block(t *tile.Tile, restrict bool) Block {
	if len(t.Palette) == 1 {
		fg := t.Palette[0]
		return Block{
			Codepoint: font.FullBlock,
			FG:        fg,
			CGAFG:     cga.Nearest(fg),
			Column:    t.Column,
			Row:       t.Row,
		}
	}

	var m font.Match
	if c.FixedScoring {
		m = c.font.MatchFixed(t.Indices, restrict)
	} else {
		m = c.font.Match(t.Indices, restrict)
	}

	fg, bg := t.Palette[m.FG], t.Palette[m.BG]
	cgaBG := cga.Nearest(bg)
	return Block{
		Codepoint: m.Codepoint,
		FG:        fg,
		BG:        &bg,
		CGAFG:     cga.Nearest(fg),
		CGABG:     &cgaBG,
		Column:    t.Column,
		Row:       t.Row,
	}
}
