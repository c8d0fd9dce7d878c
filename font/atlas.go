package font

import "image"

// Atlas is one glyph bitmap: glyphCount equally sized cells side by side,
// rendered at twice the logical resolution.
type Atlas struct {
	// Image holds the atlas pixels. Glyph coverage lives in the alpha
	// channel; a pixel counts as opaque at alpha >= 0xC0.
	Image *image.RGBA

	// CellWidth and CellHeight are the raster (2x) cell dimensions.
	CellWidth, CellHeight int

	// GlyphCount is the number of cells.
	GlyphCount int
}

// opaqueAlpha is the threshold above which a pixel contributes to advance
// measurement.
const opaqueAlpha = 0xC0

// alphaAt returns the alpha of pixel (x, y) within cell.
func (a *Atlas) alphaAt(cell, x, y int) uint8 {
	return a.Image.Pix[y*a.Image.Stride+(cell*a.CellWidth+x)*4+3]
}

// calculateAdvances builds the full glyphCount x glyphCount advance matrix
// from the rendered atlas pixels. For every ordered pair (previous >= 1,
// next) it scans each pixel row for the rightmost opaque pixel of the
// previous glyph and the leftmost opaque pixel of the next glyph, derives
// the tightest horizontal distance that keeps the pair from touching, and
// clamps it to (glyphWidth-4)/2 so combinations like "AV" or an underscore
// pair are not over-kerned. next = 0 measures the previous glyph's full
// width, which is the end-of-line case. The result is halved because the
// atlas raster is twice the logical resolution. Row 0 (previous = fallback)
// stays zero.
func calculateAdvances(a *Atlas) []int {
	n := a.GlyphCount
	w := a.CellWidth
	h := a.CellHeight

	advance := make([]int, n*n)
	for previous := 1; previous < n; previous++ {
		for next := 0; next < n; next++ {
			maxD := 0
			glyphWidth := 0
			for y := 0; y < h; y++ {
				// Rightmost opaque pixel of the previous glyph in this row.
				pit := w
				for pit != 0 {
					pit--
					if a.alphaAt(previous, pit, y) >= opaqueAlpha {
						break
					}
				}
				distance := pit + 1
				if distance > glyphWidth {
					glyphWidth = distance
				}

				// next = 0 measures the full width of the previous glyph.
				// Otherwise subtract the next glyph's left-side gap in this
				// row so the pair sits at zero kerning distance.
				if next != 0 {
					nit := 0
					for nit != w {
						opaque := a.alphaAt(next, nit, y) >= opaqueAlpha
						nit++
						if opaque {
							break
						}
					}
					distance += 1 - nit
				}
				if distance > maxD {
					maxD = distance
				}
			}
			if fudge := glyphWidth - 4; maxD < fudge {
				maxD = fudge
			}
			advance[previous*n+next] = maxD / 2
		}
	}
	return advance
}
