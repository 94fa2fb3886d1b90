// mkfont rasterizes a monospaced TrueType font into the raw CP437 ROM
// bitmap format consumed by the font package: 256 glyphs of height
// bytes each, one byte per row, most significant bit leftmost.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/text/encoding/charmap"
)

const glyphWidth = 8

// threshold is the alpha coverage above which a pixel counts as on;
// bitmap fonts want hard edges, not anti-aliasing.
const threshold = 127

func renderGlyph(f *truetype.Font, r rune, height int) ([]byte, error) {
	img := image.NewAlpha(image.Rect(0, 0, glyphWidth, height))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(float64(height))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	// Baseline sits above the descender space at the cell bottom.
	if _, err := ctx.DrawString(string(r), freetype.Pt(0, height-height/4)); err != nil {
		return nil, err
	}

	rows := make([]byte, height)
	for y := 0; y < height; y++ {
		for x := 0; x < glyphWidth; x++ {
			if img.AlphaAt(x, y).A > threshold {
				rows[y] |= 0x80 >> x
			}
		}
	}
	return rows, nil
}

func buildFont(path string, height int) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := freetype.ParseFont(b)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	out := make([]byte, 0, 256*height)
	for codepoint := 0; codepoint < 256; codepoint++ {
		r := charmap.CodePage437.DecodeByte(byte(codepoint))
		rows, err := renderGlyph(f, r, height)
		if err != nil {
			return nil, fmt.Errorf("glyph %d (%q): %w", codepoint, r, err)
		}
		out = append(out, rows...)
	}
	return out, nil
}

func main() {
	input := flag.String("font", "", "path to the input TTF file (required)")
	output := flag.String("output", "", "path to the output ROM file (required)")
	height := flag.Int("height", 16, "glyph height in pixels (16 or 8)")
	flag.Parse()

	if *input == "" || *output == "" {
		fmt.Println("Both -font and -output flags are required")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *height != 8 && *height != 16 {
		log.Fatalf("unsupported glyph height %d", *height)
	}

	data, err := buildFont(*input, *height)
	if err != nil {
		log.Fatalf("Failed to build font: %v", err)
	}

	if err := os.WriteFile(*output, data, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}

	log.Printf("Wrote %d glyphs (%d bytes) to %s", 256, len(data), *output)
}
