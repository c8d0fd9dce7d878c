// Package font implements fixed-cell glyph atlases for UI text.
//
// A Font holds one atlas per (pixel size, language) pair: a single bitmap of
// equally sized glyph cells plus a precomputed glyphCount x glyphCount
// advance matrix derived from the rendered pixels. All measurement goes
// through that matrix, so Width, the truncation search and Draw agree
// bit-for-bit on where every glyph lands.
//
// Atlases come from two sources:
//   - NewFromImage loads a pre-rendered atlas with the baseline glyph set
//     (ASCII 32-126 plus dedicated curly-quote cells).
//   - NewFromOutline builds an extended atlas (the baseline set plus
//     Cyrillic and a few named punctuation marks) by rasterizing glyph
//     outlines from an OutlineSource backend.
//
// Set is a registry of Fonts keyed by size and language with fallback
// resolution, mirroring how UI code asks for "the 14px font for the active
// language".
//
// The glyph model is deliberately simple: left-to-right, one cell per
// codepoint, no shaping and no bidi. Codepoints outside the atlas resolve
// through a substitution table and ultimately to the blank cell at slot 0 —
// never to a misleading replacement glyph.
//
// Package font is single-threaded: build Fonts and switch languages at
// well-defined points outside any concurrent measure/draw calls.
package font
