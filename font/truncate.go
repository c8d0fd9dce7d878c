package font

import "github.com/skyrift/uitext/utf8x"

// ellipsis is the marker inserted where codepoints were dropped.
const ellipsis = "..."

// TruncateBack returns the longest prefix of s that, followed by an
// ellipsis, fits the pixel budget, together with its exact measured width.
// If s already fits it is returned unmodified.
func (f *Font) TruncateBack(s string, width int) (string, int) {
	return f.truncateEndsOrMiddle(s, width, func(s string, n int) string {
		return utf8x.FirstCodePoints(s, n) + ellipsis
	})
}

// TruncateFront returns the longest suffix of s that, preceded by an
// ellipsis, fits the pixel budget, together with its exact measured width.
func (f *Font) TruncateFront(s string, width int) (string, int) {
	return f.truncateEndsOrMiddle(s, width, func(s string, n int) string {
		return ellipsis + utf8x.LastCodePoints(s, n)
	})
}

// TruncateMiddle keeps codepoints from both ends of s with an ellipsis in
// between, splitting the retained count ceil(n/2) head, floor(n/2) tail.
func (f *Font) TruncateMiddle(s string, width int) (string, int) {
	return f.truncateEndsOrMiddle(s, width, func(s string, n int) string {
		return utf8x.FirstCodePoints(s, (n+1)/2) + ellipsis + utf8x.LastCodePoints(s, n/2)
	})
}

// truncateEndsOrMiddle binary-searches the retained codepoint count for the
// largest candidate that fits the pixel budget. Every candidate is fully
// rebuilt and re-measured: ellipsis and cut-point kerning are context
// dependent, so an estimate from per-codepoint widths would drift from the
// rendered result. Returns the best candidate (possibly just the ellipsis
// around nothing) and its exact measured width.
func (f *Font) truncateEndsOrMiddle(s string, width int, rebuild func(string, int) string) (string, int) {
	firstWidth := f.WidthRawString(s, 0)
	if firstWidth <= width {
		return s, firstWidth
	}

	workingChars := 0
	workingWidth := 0

	low, high := 0, utf8x.CodePointCount(s)
	for low <= high {
		// How many codepoints to retain, dropping the rest.
		next := (low + high) / 2
		nextWidth := f.WidthRawString(rebuild(s, next), 0)
		if nextWidth <= width {
			if next > workingChars {
				workingChars = next
				workingWidth = nextWidth
			}
			if next == low {
				low = next + 1
			} else {
				low = next
			}
		} else {
			high = next - 1
		}
	}
	return rebuild(s, workingChars), workingWidth
}

// truncateText applies a DisplayText's layout. It returns the string to
// draw and its measured width, or -1 when the layout requests no
// truncation or alignment (negative width, or left-aligned untruncated).
func (f *Font) truncateText(text DisplayText) (string, int) {
	layout := text.Layout
	if layout.Width < 0 || (layout.Align == AlignLeft && layout.Truncate == TruncateNone) {
		return text.Text, -1
	}
	switch layout.Truncate {
	case TruncateNone:
		return text.Text, f.WidthRawString(text.Text, 0)
	case TruncateFront:
		return f.TruncateFront(text.Text, layout.Width)
	case TruncateMiddle:
		return f.TruncateMiddle(text.Text, layout.Width)
	default:
		return f.TruncateBack(text.Text, layout.Width)
	}
}
