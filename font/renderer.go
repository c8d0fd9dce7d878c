package font

import "image/color"

// GlyphDraw is one draw instruction emitted by Font.Draw: paint the atlas
// cell Slot at pixel position (X, Y) in the given color. Aspect stretches
// the cell horizontally and is 1 except for underline overlays, which reuse
// the underscore glyph scaled to the width of the glyph they underline.
// Scale is the cached device-to-pixel factor derived from the renderer's
// output dimensions.
type GlyphDraw struct {
	Slot   int
	X, Y   float64
	Color  color.NRGBA
	Aspect float64
	Scale  [2]float32
}

// Renderer consumes glyph draw commands. Implementations typically upload
// the atlas as a texture and turn each GlyphDraw into a textured quad; tests
// can record the commands instead.
//
// Font.Draw polls OutputSize once per draw call and refreshes its cached
// scale factor when the dimensions change.
type Renderer interface {
	// OutputSize reports the current output dimensions in pixels.
	OutputSize() (width, height int)

	// Draw paints one glyph cell from the atlas.
	Draw(atlas *Atlas, g GlyphDraw)
}
