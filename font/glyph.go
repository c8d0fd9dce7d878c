package font

// Glyph slot layout. Slot 0 is the universal fallback and renders as blank;
// atlas ordering is fixed and append-only.
const (
	// baseGlyphs is the glyph count of a pre-rendered atlas: ASCII 32-126
	// (slots 0-94), a reserved slot, and the two curly-quote slots.
	baseGlyphs = 98

	// extendedGlyphs adds the Cyrillic block and a few named punctuation
	// marks to the baseline set.
	extendedGlyphs = 167

	// openSingleQuoteSlot and openDoubleQuoteSlot are the dedicated cells
	// used for quote characters that follow whitespace.
	openSingleQuoteSlot = 96
	openDoubleQuoteSlot = 97
)

// Extended-atlas slot ranges.
const (
	cyrUpperFirst = 98  // А-Я
	cyrYoUpper    = 130 // Ё
	cyrLowerFirst = 131 // а-я
	cyrYoLower    = 163 // ё
	emDashSlot    = 164 // —
	leftGuillemet = 165 // «
	rightGuillemet = 166 // »
)

// atlasCodepoints returns the fixed, ordered codepoint list an extended
// atlas is built from. Slot indexes returned by GlyphForCodepoint refer to
// positions in this list.
func atlasCodepoints() []rune {
	cps := make([]rune, 0, extendedGlyphs)
	for c := rune(32); c <= 126; c++ {
		cps = append(cps, c)
	}
	cps = append(cps, '?')      // reserved slot 95; never resolved to
	cps = append(cps, 0x2018)   // ' open single quote
	cps = append(cps, 0x201C)   // " open double quote
	for c := rune(0x0410); c <= 0x042F; c++ {
		cps = append(cps, c) // А-Я
	}
	cps = append(cps, 0x0401) // Ё
	for c := rune(0x0430); c <= 0x044F; c++ {
		cps = append(cps, c) // а-я
	}
	cps = append(cps, 0x0451) // ё
	cps = append(cps, 0x2014) // — em dash
	cps = append(cps, 0x00AB) // « left guillemet
	cps = append(cps, 0x00BB) // » right guillemet
	return cps
}

// Placement anchors a glyph vertically within its atlas cell when building
// from outlines.
type Placement int

const (
	// PlacementBottom aligns the glyph to the cell baseline (letters,
	// digits, most punctuation).
	PlacementBottom Placement = iota
	// PlacementMiddle centers the glyph on the cell midline (dashes,
	// operators).
	PlacementMiddle
	// PlacementTop aligns the glyph near the cell top (quotes, accents).
	PlacementTop
)

// String returns the string representation of the placement.
func (p Placement) String() string {
	switch p {
	case PlacementBottom:
		return "Bottom"
	case PlacementMiddle:
		return "Middle"
	case PlacementTop:
		return "Top"
	default:
		return unknownStr
	}
}

// placements classifies codepoints that are not baseline-aligned.
// Everything absent from the table is PlacementBottom.
var placements = map[rune]Placement{
	// Midline punctuation, operators and dashes.
	'+': PlacementMiddle, '=': PlacementMiddle, '*': PlacementMiddle,
	'/': PlacementMiddle, '\\': PlacementMiddle, '|': PlacementMiddle,
	'<': PlacementMiddle, '>': PlacementMiddle, '~': PlacementMiddle,
	'-': PlacementMiddle,
	0x2010: PlacementMiddle, // ‐
	0x2011: PlacementMiddle, // ‑
	0x2012: PlacementMiddle, // ‒
	0x2013: PlacementMiddle, // –
	0x2014: PlacementMiddle, // —
	0x00AB: PlacementMiddle, // «
	0x00BB: PlacementMiddle, // »
	0x2039: PlacementMiddle, // ‹
	0x203A: PlacementMiddle, // ›
	0x00B7: PlacementMiddle, // ·
	0x2022: PlacementMiddle, // •
	0x2219: PlacementMiddle, // ∙

	// Top punctuation: quote-like characters and accent marks.
	'\'': PlacementTop, '"': PlacementTop, '`': PlacementTop, '^': PlacementTop,
	0x00B4: PlacementTop, // ´
	0x00A8: PlacementTop, // ¨
	0x00AF: PlacementTop, // ¯
	0x02BC: PlacementTop, // ʼ
	0x02C7: PlacementTop, // ˇ
	0x02CA: PlacementTop, // ˊ
	0x02CB: PlacementTop, // ˋ
	0x02DC: PlacementTop, // ˜
	0x2018: PlacementTop, // '
	0x2019: PlacementTop, // '
	0x201A: PlacementTop, // ‚
	0x201B: PlacementTop, // ‛
	0x201C: PlacementTop, // "
	0x201D: PlacementTop, // "
	0x201E: PlacementTop, // „
	0x201F: PlacementTop, // ‟
	0x2032: PlacementTop, // ′
	0x2033: PlacementTop, // ″
}

// placementFor returns the vertical placement class for a codepoint.
func placementFor(cp rune) Placement {
	if p, ok := placements[cp]; ok {
		return p
	}
	return PlacementBottom
}

// substitutes maps common non-representable punctuation to a representable
// equivalent. Only characters whose meaning survives the substitution map to
// something visible; the rest map to space (meaning lost, but never a
// misleading glyph).
var substitutes = map[rune]rune{
	0x00A0: ' ', // non-breaking space
	0x2009: ' ', // thin space
	0x2010: '-', // hyphen
	0x2011: '-', // non-breaking hyphen
	0x2012: '-', // figure dash
	0x2013: '-', // en dash
	0x2019: '\'', // right single quote
	0x201A: '\'', // low single quote
	0x201B: '\'', // reversed single quote
	0x201D: '"', // right double quote
	0x201E: '"', // low double quote
	0x201F: '"', // reversed double quote
	0x2026: ' ', // ellipsis
	0x2033: ' ', // double prime
	0x2036: ' ', // reversed double prime
}

// maxSubstituteHops bounds the substitution walk so a cyclic table can
// never loop.
const maxSubstituteHops = 4

// GlyphForCodepoint maps a codepoint to an atlas slot. isAfterSpace selects
// the dedicated open-quote cells for quote characters that follow
// whitespace. Codepoints outside the atlas are resolved through the
// substitution table; anything still unresolved lands on the blank slot 0.
func (f *Font) GlyphForCodepoint(cp rune, isAfterSpace bool) int {
	for hops := 0; hops <= maxSubstituteHops; hops++ {
		if g, ok := f.directGlyph(cp, isAfterSpace); ok {
			return g
		}
		sub, ok := substitutes[cp]
		if !ok {
			break
		}
		cp = sub
	}
	return 0
}

// directGlyph resolves codepoints the atlas holds a cell for.
func (f *Font) directGlyph(cp rune, isAfterSpace bool) (int, bool) {
	// Curly quotes (ASCII and Unicode opening quotes).
	if (cp == '\'' || cp == 0x2018) && isAfterSpace {
		return openSingleQuoteSlot, true
	}
	if (cp == '"' || cp == 0x201C) && isAfterSpace {
		return openDoubleQuoteSlot, true
	}
	// ASCII printable range: direct offset, clamped clear of the reserved
	// quote slots.
	if cp >= 32 && cp <= 126 {
		g := int(cp - 32)
		if g > f.glyphCount-3 {
			g = f.glyphCount - 3
		}
		if g < 0 {
			g = 0
		}
		return g, true
	}
	if f.glyphCount == extendedGlyphs {
		switch {
		case cp >= 0x0410 && cp <= 0x042F:
			return cyrUpperFirst + int(cp-0x0410), true
		case cp == 0x0401:
			return cyrYoUpper, true
		case cp >= 0x0430 && cp <= 0x044F:
			return cyrLowerFirst + int(cp-0x0430), true
		case cp == 0x0451:
			return cyrYoLower, true
		case cp == 0x2014:
			return emDashSlot, true
		case cp == 0x00AB:
			return leftGuillemet, true
		case cp == 0x00BB:
			return rightGuillemet, true
		}
	}
	return 0, false
}
