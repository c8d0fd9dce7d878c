package font

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"

	_ "image/png" // pre-rendered atlases ship as PNG

	"github.com/skyrift/uitext"
	"github.com/skyrift/uitext/utf8x"
)

// showUnderlines controls whether underscore markers in draw calls produce
// underline overlays. Off by default; UI code toggles it while a modifier
// key highlights keyboard shortcuts.
var showUnderlines = false

// ShowUnderlines toggles underline overlays for subsequent Draw calls.
func ShowUnderlines(show bool) {
	showUnderlines = show
}

// Option configures Font construction.
type Option func(*config)

// config holds Font construction parameters.
type config struct {
	scalePercent  int
	letterSpacing int
}

// defaultConfig returns the default construction parameters.
func defaultConfig() config {
	return config{scalePercent: 100}
}

// WithScalePercent sets the font-scale percentage applied to all measured
// widths and heights. The default is 100.
func WithScalePercent(pct int) Option {
	return func(c *config) {
		if pct > 0 {
			c.scalePercent = pct
		}
	}
}

// WithLetterSpacing adds a fixed per-glyph spacing in logical pixels.
func WithLetterSpacing(px int) Option {
	return func(c *config) {
		c.letterSpacing = px
	}
}

// Font is one glyph atlas with its precomputed advance matrix. A Font is
// immutable after construction except for a cached screen-scale factor
// refreshed when the renderer's output dimensions change.
type Font struct {
	atlas      *Atlas
	glyphCount int

	// advance holds the glyphCount x glyphCount matrix of horizontal pixel
	// advances between ordered (previous, next) glyph pairs, in logical
	// (halved) pixels. Fully populated before any width query.
	advance []int

	height int // logical cell height
	space  int // width of the blank fallback glyph

	scalePercent  int
	letterSpacing int

	// Screen-scale cache, refreshed once per draw call.
	screenWidth, screenHeight int
	scale                     [2]float32
}

// NewFromImage builds a Font from a pre-rendered atlas image holding the
// baseline glyph set.
func NewFromImage(img image.Image, opts ...Option) (*Font, error) {
	return newFont(img, baseGlyphs, opts...)
}

// NewFromImageFile builds a Font from a pre-rendered atlas image file.
func NewFromImageFile(path string, opts ...Option) (*Font, error) {
	fl, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to open atlas image: %w", err)
	}
	defer fl.Close()
	img, _, err := image.Decode(fl)
	if err != nil {
		return nil, fmt.Errorf("font: failed to decode atlas image: %w", err)
	}
	return NewFromImage(img, opts...)
}

// NewFromOutline builds an extended-set Font by rasterizing glyph outlines
// from src at the given pixel height. Each glyph cell is a square of twice
// the pixel height; the glyph is horizontally centered and vertically
// anchored by its placement class, with a uniform lift of half a cell.
// Codepoints src cannot represent leave blank cells.
func NewFromOutline(src OutlineSource, pixelHeight int, opts ...Option) (*Font, error) {
	if pixelHeight <= 0 {
		return nil, fmt.Errorf("font: invalid pixel height %d", pixelHeight)
	}
	cps := atlasCodepoints()
	cellW, cellH := pixelHeight*2, pixelHeight*2
	img := image.NewRGBA(image.Rect(0, 0, len(cps)*cellW, cellH))

	cov := make([]byte, cellW*cellH)
	for i, cp := range cps {
		w, h := src.BoundingBox(cp, pixelHeight)
		if w <= 0 || h <= 0 {
			continue
		}
		if w > cellW {
			w = cellW
		}
		if h > cellH {
			h = cellH
		}
		for j := range cov {
			cov[j] = 0
		}
		src.Rasterize(cp, pixelHeight, cov, w, h, cellW)

		dx := i*cellW + (cellW-w)/2
		bottomAnchor := cellH
		middleAnchor := bottomAnchor - cellH/2
		topAnchor := bottomAnchor - cellH

		var dy int
		switch placementFor(cp) {
		case PlacementBottom:
			dy = bottomAnchor - h
		case PlacementMiddle:
			dy = int(math.Round(float64(middleAnchor) - float64(h)/2))
		case PlacementTop:
			dy = topAnchor
		}
		// Uniform lift so outline-built text sits on the same visual
		// baseline as the pre-rendered atlases.
		dy -= cellH / 2
		if dy < 0 {
			dy = 0
		}
		if dy > cellH-h {
			dy = cellH - h
		}

		for y := 0; y < h; y++ {
			row := img.Pix[(dy+y)*img.Stride:]
			for x := 0; x < w; x++ {
				a := cov[y*cellW+x]
				o := (dx + x) * 4
				row[o] = a
				row[o+1] = a
				row[o+2] = a
				row[o+3] = a
			}
		}
	}
	return newFont(img, len(cps), opts...)
}

// newFont wraps an atlas image, computes the advance matrix and derived
// metrics, and applies construction options.
func newFont(img image.Image, glyphCount int, opts ...Option) (*Font, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 || b.Dx()%glyphCount != 0 {
		return nil, fmt.Errorf("%w: %dx%d image for %d glyphs", ErrAtlasGeometry, b.Dx(), b.Dy(), glyphCount)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	atlas := &Atlas{
		Image:      rgba,
		CellWidth:  b.Dx() / glyphCount,
		CellHeight: b.Dy(),
		GlyphCount: glyphCount,
	}

	f := &Font{
		atlas:         atlas,
		glyphCount:    glyphCount,
		advance:       calculateAdvances(atlas),
		scalePercent:  cfg.scalePercent,
		letterSpacing: cfg.letterSpacing,
	}

	// The atlas raster is twice the logical resolution.
	logicalW := atlas.CellWidth / 2
	f.height = atlas.CellHeight / 2
	f.space = (logicalW+3)/6 + 1

	uitext.Logger().Debug("font: atlas built",
		"glyphs", glyphCount, "cellWidth", atlas.CellWidth, "cellHeight", atlas.CellHeight)
	return f, nil
}

// Atlas returns the font's glyph atlas.
func (f *Font) Atlas() *Atlas {
	return f.atlas
}

// GlyphCount returns the number of atlas cells.
func (f *Font) GlyphCount() int {
	return f.glyphCount
}

// Height returns the scaled line height in pixels.
func (f *Font) Height() int {
	return f.height * f.scalePercent / 100
}

// Space returns the scaled width of the blank fallback glyph.
func (f *Font) Space() int {
	return f.space * f.scalePercent / 100
}

// layout iterates the decoded codepoints of s exactly as width measurement
// does, invoking emit (when non-nil) for every non-fallback glyph with the
// accumulated unscaled advance at which that glyph is placed. It returns the
// accumulated advance and the last non-fallback glyph, both unscaled and
// without the trailing-context term.
//
// Draw and WidthRawString both run through here, which is what guarantees
// their cursor arithmetic stays identical.
func (f *Font) layout(s string, emit func(glyph, penAdvance int, underline bool)) (width, previous int) {
	isAfterSpace := true
	underline := false
	kern := f.letterSpacing

	for pos := 0; pos >= 0 && pos < len(s); {
		cp, next := utf8x.DecodeCodePoint(s, pos)
		if next < 0 {
			break
		}
		pos = next

		// Underscore is a non-advancing underline marker for the glyph
		// that follows it.
		if cp == '_' {
			underline = showUnderlines
			continue
		}

		glyph := f.GlyphForCodepoint(cp, isAfterSpace)
		if cp != '"' && cp != '\'' {
			isAfterSpace = glyph == 0
		}
		if glyph == 0 {
			width += f.space
			continue
		}

		width += f.advance[previous*f.glyphCount+glyph] + kern
		if emit != nil {
			emit(glyph, width, underline)
		}
		underline = false
		previous = glyph
	}
	return width, previous
}

// WidthRawString measures s in scaled pixels. after is a synthetic trailing
// context codepoint accounting for end-of-string kerning; zero (or anything
// outside ASCII 32-126) resolves to the fallback glyph, which measures the
// last glyph's full cell width.
func (f *Font) WidthRawString(s string, after rune) int {
	width, previous := f.layout(s, nil)

	afterGlyph := 0
	if after >= 32 && after <= 126 {
		afterGlyph = int(after - 32)
	}
	if afterGlyph > f.glyphCount-1 {
		afterGlyph = f.glyphCount - 1
	}
	width += f.advance[previous*f.glyphCount+afterGlyph]

	return width * f.scalePercent / 100
}

// Width measures s in scaled pixels with no trailing context.
func (f *Font) Width(s string) int {
	return f.WidthRawString(s, 0)
}

// FormattedWidth measures text after applying its layout's truncation.
func (f *Font) FormattedWidth(text DisplayText, after rune) int {
	trunc, width := f.truncateText(text)
	if width < 0 {
		return f.WidthRawString(trunc, after)
	}
	return width
}

// refreshScale polls the renderer's output dimensions and recomputes the
// cached device-to-pixel scale factor when they changed.
func (f *Font) refreshScale(r Renderer) {
	w, h := r.OutputSize()
	if w == f.screenWidth && h == f.screenHeight {
		return
	}
	f.screenWidth = w
	f.screenHeight = h
	if w > 0 && h > 0 {
		f.scale[0] = 2 / float32(w)
		f.scale[1] = -2 / float32(h)
	}
}

// Draw resolves text against its layout (truncation, then alignment inside
// the layout width) and emits one draw command per non-fallback glyph.
// The draw origin is rounded to whole pixels.
func (f *Font) Draw(r Renderer, text DisplayText, pos Point, col color.NRGBA) {
	trunc, width := f.truncateText(text)
	x, y := math.Round(pos.X), math.Round(pos.Y)
	if width >= 0 {
		switch text.Layout.Align {
		case AlignCenter:
			x += float64((text.Layout.Width - width) / 2)
		case AlignRight:
			x += float64(text.Layout.Width - width)
		}
	}
	f.DrawAliased(r, trunc, x, y, col)
}

// DrawString draws s at pos with no layout, rounding to whole pixels.
func (f *Font) DrawString(r Renderer, s string, pos Point, col color.NRGBA) {
	f.DrawAliased(r, s, math.Round(pos.X), math.Round(pos.Y), col)
}

// DrawAliased draws s at an exact (unrounded) pixel position. Cursor
// advancement matches WidthRawString exactly; a glyph preceded by an
// underline marker additionally emits the underscore glyph stretched to the
// glyph's measured width.
func (f *Font) DrawAliased(r Renderer, s string, x, y float64, col color.NRGBA) {
	f.refreshScale(r)
	scaleFactor := float64(f.scalePercent) / 100
	kern := f.letterSpacing

	underscore := int('_' - 32)
	if underscore > f.glyphCount-1 {
		underscore = f.glyphCount - 1
	}

	f.layout(s, func(glyph, penAdvance int, underline bool) {
		gx := x - 1 + float64(penAdvance)*scaleFactor
		r.Draw(f.atlas, GlyphDraw{
			Slot:   glyph,
			X:      gx,
			Y:      y,
			Color:  col,
			Aspect: 1,
			Scale:  f.scale,
		})
		if underline {
			aspect := 1.0
			if div := f.advance[underscore*f.glyphCount] + kern; div != 0 {
				aspect = float64(f.advance[glyph*f.glyphCount]+kern) / float64(div)
			}
			r.Draw(f.atlas, GlyphDraw{
				Slot:   underscore,
				X:      gx,
				Y:      y,
				Color:  col,
				Aspect: aspect,
				Scale:  f.scale,
			})
		}
	})
}
