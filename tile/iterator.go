package tile

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/ericpauley/go-quantize/quantize"
)

// Rows returns the number of character rows needed to fit an image of
// the given bounds into columns cells of cellWidth by cellHeight
// pixels: the width is scaled to columns*cellWidth, the aspect ratio
// preserved, and any partial row rounded up.
func Rows(bounds image.Rectangle, columns, cellWidth, cellHeight int) int {
	scale := float64(columns*cellWidth) / float64(bounds.Dx())
	return int(math.Ceil(scale * float64(bounds.Dy()) / float64(cellHeight)))
}

// Iterator yields the tiles of a resampled image in row-major order.
// It is a finite, non-restartable sequence of Columns()*Rows() tiles.
type Iterator struct {
	img       *image.RGBA
	quantizer quantize.MedianCutQuantizer
	width     int
	height    int
	columns   int
	rows      int
	column    int
	row       int
}

// NewIterator resamples m to cell-aligned dimensions and returns an
// iterator over its tiles. columns must be at least 1 and m must have
// positive dimensions.
func NewIterator(m image.Image, columns, cellWidth, cellHeight int) *Iterator {
	rows := Rows(m.Bounds(), columns, cellWidth, cellHeight)
	return &Iterator{
		img:       resample(m, columns*cellWidth, rows*cellHeight),
		quantizer: quantize.MedianCutQuantizer{Aggregation: quantize.Mean},
		width:     cellWidth,
		height:    cellHeight,
		columns:   columns,
		rows:      rows,
	}
}

// Columns returns the grid width in cells.
func (it *Iterator) Columns() int {
	return it.columns
}

// Rows returns the grid height in cells.
func (it *Iterator) Rows() int {
	return it.rows
}

// Next returns the next tile, or false once the grid is exhausted.
func (it *Iterator) Next() (*Tile, bool) {
	if it.row >= it.rows {
		return nil, false
	}
	r := image.Rect(0, 0, it.width, it.height).Add(image.Pt(it.column*it.width, it.row*it.height))
	t := it.quantize(it.img.SubImage(r).(*image.RGBA))
	t.Column, t.Row = it.column, it.row
	it.column++
	if it.column >= it.columns {
		it.column = 0
		it.row++
	}
	return t, true
}

// quantize reduces a cell to at most two colors. Uniform cells take a
// fast path; the quantizer never sees them.
func (it *Iterator) quantize(m *image.RGBA) *Tile {
	b := m.Bounds()
	t := &Tile{Width: b.Dx(), Height: b.Dy()}

	if c, ok := uniformColor(m); ok {
		t.Palette = []color.RGBA{c}
		t.Indices = make([]uint8, t.Width*t.Height)
		return t
	}

	p := it.quantizer.Quantize(make(color.Palette, 0, 2), m)
	pm := image.NewPaletted(b, p)
	draw.Draw(pm, b, m, b.Min, draw.Src)

	t.Palette = make([]color.RGBA, len(p))
	for i, c := range p {
		t.Palette[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}
	t.Indices = make([]uint8, 0, t.Width*t.Height)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t.Indices = append(t.Indices, pm.ColorIndexAt(x, y))
		}
	}
	return t
}

func uniformColor(m *image.RGBA) (color.RGBA, bool) {
	b := m.Bounds()
	first := m.RGBAAt(b.Min.X, b.Min.Y)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if m.RGBAAt(x, y) != first {
				return color.RGBA{}, false
			}
		}
	}
	return first, true
}
