package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when outline font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrNoFonts is returned by Set.Get when the registry holds no fonts at
	// all. This is a startup configuration error, not a runtime condition.
	ErrNoFonts = errors.New("font: no fonts registered")

	// ErrAtlasGeometry is returned when an atlas image cannot be divided
	// into the expected number of glyph cells.
	ErrAtlasGeometry = errors.New("font: atlas width is not a multiple of the glyph count")

	// ErrUnknownBackend is returned when an outline backend name has not
	// been registered.
	ErrUnknownBackend = errors.New("font: unknown outline backend")
)
