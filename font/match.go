package font

// Match pairs the chosen codepoint with the palette-index roles its
// bitmask assigns: FG is the tile palette index rendered where glyph
// bits are set, BG where they are clear.
type Match struct {
	Codepoint uint8
	FG        uint8
	BG        uint8
}

// Codepoints 9, 10, 13, 26 and 27 carry control semantics in an ANS
// stream and are never selected.
var excluded = map[uint8]struct{}{
	9:  {},
	10: {},
	13: {},
	26: {},
	27: {},
}

// blockGlyphs is the candidate set used when matching is restricted to
// two-tone block art: space, the three shades, the full block and the
// four half blocks.
var blockGlyphs = []uint8{32, 176, 177, 178, 219, 220, 221, 222, 223}

// Match selects the codepoint whose bitmask best agrees with the
// tile's palette indices, trying both role assignments per glyph. It
// reproduces the historical scoring exactly: when the inverse
// assignment wins, the running best is updated with that iteration's
// direct count. Output is byte-identical to the original converter.
func (f *Font) Match(indices []uint8, restrict bool) Match {
	return f.match(indices, restrict, false)
}

// MatchFixed is Match with the inverse-assignment score recorded
// correctly. It tends to pick better glyphs but changes output
// relative to the historical converter.
func (f *Font) MatchFixed(indices []uint8, restrict bool) Match {
	return f.match(indices, restrict, true)
}

func (f *Font) match(indices []uint8, restrict, fixed bool) Match {
	var best Match
	bestCount := 0
	for _, codepoint := range candidates(restrict) {
		if _, ok := excluded[codepoint]; ok {
			continue
		}
		direct := 0
		for i, bit := range f.Bits(codepoint) {
			if bit == indices[i] {
				direct++
			}
		}
		inverse := f.size() - direct
		if direct > bestCount {
			best = Match{Codepoint: codepoint, FG: 1, BG: 0}
			bestCount = direct
		}
		if inverse > bestCount {
			best = Match{Codepoint: codepoint, FG: 0, BG: 1}
			if fixed {
				bestCount = inverse
			} else {
				bestCount = direct
			}
		}
	}
	return best
}

var fullRange = func() []uint8 {
	r := make([]uint8, numGlyphs)
	for i := range r {
		r[i] = uint8(i)
	}
	return r
}()

func candidates(restrict bool) []uint8 {
	if restrict {
		return blockGlyphs
	}
	return fullRange
}
