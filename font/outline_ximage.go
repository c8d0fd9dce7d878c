package font

import (
	"fmt"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// sfntSource implements OutlineSource using golang.org/x/image/font/opentype.
type sfntSource struct {
	font *opentype.Font

	// faces caches one opentype.Face per pixel height. opentype.Face is not
	// safe for concurrent use, which matches the single-threaded build path.
	faces map[int]xfont.Face
}

// newSFNTSource parses TTF/OTF data with the x/image opentype parser.
func newSFNTSource(data []byte) (OutlineSource, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return &sfntSource{font: f, faces: make(map[int]xfont.Face)}, nil
}

// face returns the cached face for a pixel height, creating it on first use.
func (s *sfntSource) face(pixelHeight int) xfont.Face {
	if f, ok := s.faces[pixelHeight]; ok {
		return f
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    float64(pixelHeight),
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil
	}
	s.faces[pixelHeight] = f
	return f
}

// BoundingBox implements OutlineSource.
func (s *sfntSource) BoundingBox(cp rune, pixelHeight int) (int, int) {
	face := s.face(pixelHeight)
	if face == nil {
		return 0, 0
	}
	bounds, _, ok := face.GlyphBounds(cp)
	if !ok {
		return 0, 0
	}
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	return w, h
}

// Rasterize implements OutlineSource.
func (s *sfntSource) Rasterize(cp rune, pixelHeight int, dst []byte, w, h, stride int) {
	face := s.face(pixelHeight)
	if face == nil {
		return
	}
	bounds, _, ok := face.GlyphBounds(cp)
	if !ok {
		return
	}

	// Place the dot so the glyph's bounding box lands at the buffer origin.
	dot := fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y}
	dr, mask, maskp, _, ok := face.Glyph(dot, cp)
	if !ok || mask == nil {
		return
	}
	alpha, ok := mask.(*image.Alpha)
	if !ok {
		return
	}

	for y := 0; y < dr.Dy(); y++ {
		dy := dr.Min.Y + y
		if dy < 0 || dy >= h {
			continue
		}
		srcRow := alpha.Pix[(maskp.Y+y)*alpha.Stride:]
		dstRow := dst[dy*stride:]
		for x := 0; x < dr.Dx(); x++ {
			dx := dr.Min.X + x
			if dx < 0 || dx >= w {
				continue
			}
			dstRow[dx] = srcRow[maskp.X+x]
		}
	}
}
