package gif2ans

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andyherbert/gif2ans/font"
	"github.com/andyherbert/gif2ans/sauce"
)

// ColorMode selects how block colors are written into the ANS stream.
type ColorMode int

const (
	// ModeLegacy emits the historical truecolor escape terminated by
	// 't', as understood by legacy ANSI editors and viewers.
	ModeLegacy ColorMode = iota
	// ModeSGR emits standard 38;2/48;2 truecolor SGR sequences for
	// modern terminals.
	ModeSGR
	// ModeCGA emits sixteen-color SGR sequences from the CGA indices,
	// with bold for bright foregrounds and blink for bright
	// backgrounds in the usual iCE-color convention.
	ModeCGA
)

var errColumns = errors.New("gif2ans: blocks do not fill a whole number of rows")

// EncodeANS writes blocks to w as an ANS byte stream followed by a
// SAUCE trailer carrying the stream length, grid dimensions and font
// name. The block count must be an exact multiple of columns.
func EncodeANS(w io.Writer, blocks []Block, f *font.Font, columns int, mode ColorMode) error {
	if columns < 1 || len(blocks)%columns != 0 {
		return errColumns
	}

	var buf bytes.Buffer
	for _, b := range blocks {
		writeBlock(&buf, b, mode)
	}

	record := sauce.Record{
		FileSize: uint32(buf.Len()),
		DataType: sauce.DataTypeCharacter,
		FileType: sauce.FileTypeANSI,
		TInfo1:   uint16(columns),
		TInfo2:   uint16(len(blocks) / columns),
		TInfoS:   f.Name(),
	}
	trailer, err := record.MarshalBinary()
	if err != nil {
		return err
	}
	buf.Write(trailer)

	_, err = w.Write(buf.Bytes())
	return err
}

func writeBlock(buf *bytes.Buffer, b Block, mode ColorMode) {
	switch mode {
	case ModeSGR:
		if b.BG != nil {
			fmt.Fprintf(buf, "\x1b[48;2;%d;%d;%dm", b.BG.R, b.BG.G, b.BG.B)
		}
		fmt.Fprintf(buf, "\x1b[38;2;%d;%d;%dm", b.FG.R, b.FG.G, b.FG.B)
	case ModeCGA:
		buf.WriteString("\x1b[0")
		if b.CGABG != nil {
			bg := *b.CGABG
			if bg >= 8 {
				buf.WriteString(";5")
				bg -= 8
			}
			fmt.Fprintf(buf, ";%d", 40+bg)
		}
		fg := b.CGAFG
		if fg >= 8 {
			buf.WriteString(";1")
			fg -= 8
		}
		fmt.Fprintf(buf, ";%dm", 30+fg)
	default:
		if b.BG != nil {
			fmt.Fprintf(buf, "\x1b[0;%d;%d;%dt", b.BG.R, b.BG.G, b.BG.B)
		}
		fmt.Fprintf(buf, "\x1b[1;%d;%d;%dt", b.FG.R, b.FG.G, b.FG.B)
	}
	buf.WriteByte(b.Codepoint)
}
