package gif2ans

import (
	"image"

	"github.com/andyherbert/gif2ans/font"
)

// BlocksToImage reconstructs the pixel image a block list describes,
// one rendered glyph per cell. The image is columns cells wide and as
// tall as the blocks require.
func BlocksToImage(blocks []Block, f *font.Font, columns int) *image.RGBA {
	rows := (len(blocks) + columns - 1) / columns
	m := image.NewRGBA(image.Rect(0, 0, columns*f.Width(), rows*f.Height()))
	for _, b := range blocks {
		glyph := f.Render(b.Codepoint, b.FG, b.BG)
		f.Blit(m, glyph, b.Column*f.Width(), b.Row*f.Height())
	}
	return m
}
