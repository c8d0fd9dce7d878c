package font

import (
	"bytes"
	"fmt"
	"image"
	"math"

	gtfont "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/vector"
)

// gotextSource implements OutlineSource using go-text/typesetting for
// outline extraction and the x/image vector rasterizer for coverage.
type gotextSource struct {
	face *gtfont.Face
	upem float32
}

// newGoTextSource parses TTF/OTF data with go-text/typesetting.
func newGoTextSource(data []byte) (OutlineSource, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return &gotextSource{face: face, upem: float32(face.Upem())}, nil
}

// extents returns the glyph ID and scaled pixel extents of cp, or ok=false
// when the font has no outline for it.
func (s *gotextSource) extents(cp rune, pixelHeight int) (gtfont.GID, gtfont.GlyphExtents, float32, bool) {
	gid, ok := s.face.NominalGlyph(cp)
	if !ok {
		return 0, gtfont.GlyphExtents{}, 0, false
	}
	ext, ok := s.face.GlyphExtents(gid)
	if !ok {
		return 0, gtfont.GlyphExtents{}, 0, false
	}
	scale := float32(pixelHeight) / s.upem
	return gid, ext, scale, true
}

// BoundingBox implements OutlineSource.
func (s *gotextSource) BoundingBox(cp rune, pixelHeight int) (int, int) {
	_, ext, scale, ok := s.extents(cp, pixelHeight)
	if !ok {
		return 0, 0
	}
	// Extents use font-unit y-up coordinates: Height extends downward from
	// YBearing and is negative for ink above the baseline.
	w := int(math.Ceil(float64(ext.Width * scale)))
	h := int(math.Ceil(float64(-ext.Height * scale)))
	return w, h
}

// Rasterize implements OutlineSource.
func (s *gotextSource) Rasterize(cp rune, pixelHeight int, dst []byte, w, h, stride int) {
	gid, ext, scale, ok := s.extents(cp, pixelHeight)
	if !ok {
		return
	}
	outline, ok := s.face.GlyphData(gid).(gtfont.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return
	}

	// Map font units into the w x h pixel box: translate the bounding box
	// corner to the origin and flip y (outlines are y-up, rasters y-down).
	px := func(x float32) float32 { return (x - ext.XBearing) * scale }
	py := func(y float32) float32 { return (ext.YBearing - y) * scale }

	ras := vector.NewRasterizer(w, h)
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			ras.MoveTo(px(seg.Args[0].X), py(seg.Args[0].Y))
		case ot.SegmentOpLineTo:
			ras.LineTo(px(seg.Args[0].X), py(seg.Args[0].Y))
		case ot.SegmentOpQuadTo:
			ras.QuadTo(
				px(seg.Args[0].X), py(seg.Args[0].Y),
				px(seg.Args[1].X), py(seg.Args[1].Y))
		case ot.SegmentOpCubeTo:
			ras.CubeTo(
				px(seg.Args[0].X), py(seg.Args[0].Y),
				px(seg.Args[1].X), py(seg.Args[1].Y),
				px(seg.Args[2].X), py(seg.Args[2].Y))
		}
	}
	ras.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		copy(dst[y*stride:y*stride+w], mask.Pix[y*mask.Stride:y*mask.Stride+w])
	}
}
