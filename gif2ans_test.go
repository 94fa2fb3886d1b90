package gif2ans

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyherbert/gif2ans/font"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func newTestConverter() *Converter {
	return New(font.IBMVGA(), log.New(io.Discard, "", 0))
}

func fill(m *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(m, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func TestConvertSolidColor(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 1, 1))
	fill(m, m.Bounds(), red)

	blocks := newTestConverter().Convert(m, 1, false)
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.Equal(t, uint8(font.FullBlock), b.Codepoint)
	assert.Equal(t, red, b.FG)
	assert.Nil(t, b.BG)
	assert.Equal(t, uint8(9), b.CGAFG)
	assert.Nil(t, b.CGABG)
	assert.Equal(t, 0, b.Column)
	assert.Equal(t, 0, b.Row)
}

func TestConvertUniformCells(t *testing.T) {
	// Left cell white, right cell black, at exact cell dimensions so the
	// resample is a no-op and both cells stay uniform.
	m := image.NewRGBA(image.Rect(0, 0, 16, 16))
	fill(m, image.Rect(0, 0, 8, 16), white)
	fill(m, image.Rect(8, 0, 16, 16), black)

	blocks := newTestConverter().Convert(m, 2, false)
	require.Len(t, blocks, 2)

	assert.Equal(t, uint8(font.FullBlock), blocks[0].Codepoint)
	assert.Equal(t, white, blocks[0].FG)
	assert.Equal(t, uint8(15), blocks[0].CGAFG)
	assert.Nil(t, blocks[0].BG)

	assert.Equal(t, uint8(font.FullBlock), blocks[1].Codepoint)
	assert.Equal(t, black, blocks[1].FG)
	assert.Equal(t, uint8(0), blocks[1].CGAFG)
	assert.Nil(t, blocks[1].BG)
}

func TestConvertHalfBlock(t *testing.T) {
	// One cell split down the middle matches a vertical half block.
	m := image.NewRGBA(image.Rect(0, 0, 8, 16))
	fill(m, image.Rect(0, 0, 4, 16), green)
	fill(m, image.Rect(4, 0, 8, 16), blue)

	blocks := newTestConverter().Convert(m, 1, false)
	require.Len(t, blocks, 1)

	b := blocks[0]
	require.NotNil(t, b.BG)
	require.NotNil(t, b.CGABG)
	assert.Contains(t, []uint8{221, 222}, b.Codepoint)

	colors := []color.RGBA{b.FG, *b.BG}
	assert.Contains(t, colors, green)
	assert.Contains(t, colors, blue)
	assert.Contains(t, []uint8{b.CGAFG, *b.CGABG}, uint8(10))
	assert.Contains(t, []uint8{b.CGAFG, *b.CGABG}, uint8(12))
}

func TestConvertGrid(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 160, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 160; x++ {
			m.SetRGBA(x, y, color.RGBA{uint8(x), uint8(y * 2), 100, 255})
		}
	}

	blocks := newTestConverter().Convert(m, 20, false)
	require.Len(t, blocks, 20*7)

	excluded := []uint8{9, 10, 13, 26, 27}
	for i, b := range blocks {
		require.Equal(t, i%20, b.Column)
		require.Equal(t, i/20, b.Row)
		require.NotContains(t, excluded, b.Codepoint)
		if b.BG == nil {
			require.Equal(t, uint8(font.FullBlock), b.Codepoint)
			require.Nil(t, b.CGABG)
		} else {
			require.NotNil(t, b.CGABG)
		}
	}
}

func TestConvertRestrict(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			m.SetRGBA(x, y, color.RGBA{uint8(x * 4), uint8(y * 4), 128, 255})
		}
	}

	blockGlyphs := []uint8{32, 176, 177, 178, 219, 220, 221, 222, 223}
	for _, b := range newTestConverter().Convert(m, 4, true) {
		require.Contains(t, blockGlyphs, b.Codepoint)
	}
}

func TestBlocksToImage(t *testing.T) {
	f := font.IBMVGA()
	blocks := []Block{
		{Codepoint: font.FullBlock, FG: red, Column: 0, Row: 0},
		{Codepoint: 223, FG: white, BG: &blue, Column: 1, Row: 0},
	}

	m := BlocksToImage(blocks, f, 2)
	require.Equal(t, image.Rect(0, 0, 16, 16), m.Bounds())

	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			require.Equal(t, red, m.RGBAAt(x, y))
		}
		want := blue
		if y < 8 {
			want = white
		}
		for x := 8; x < 16; x++ {
			require.Equal(t, want, m.RGBAAt(x, y))
		}
	}
}

func TestRoundTripExact(t *testing.T) {
	// Uniform and half-block cells at exact cell dimensions survive a
	// render and reconvert byte for byte.
	m := image.NewRGBA(image.Rect(0, 0, 16, 16))
	fill(m, image.Rect(0, 0, 8, 16), red)
	fill(m, image.Rect(8, 0, 12, 16), green)
	fill(m, image.Rect(12, 0, 16, 16), blue)

	c := newTestConverter()
	blocks := c.Convert(m, 2, false)
	again := c.Convert(BlocksToImage(blocks, c.Font(), 2), 2, false)
	assert.Equal(t, blocks, again)
}

func TestRoundTripFixedPoint(t *testing.T) {
	// Converting a rendered conversion reaches a fixed point: every cell
	// is an exact glyph with two colors, so a further pass reproduces it.
	m := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			m.SetRGBA(x, y, color.RGBA{uint8(x * 4), uint8(y * 4), uint8(x + y), 255})
		}
	}

	c := newTestConverter()
	c.FixedScoring = true

	first := c.Convert(m, 4, false)
	second := c.Convert(BlocksToImage(first, c.Font(), 4), 4, false)
	third := c.Convert(BlocksToImage(second, c.Font(), 4), 4, false)
	assert.Equal(t, second, third)
}
