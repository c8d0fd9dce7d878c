package font

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// boxSource is an OutlineSource producing a fully opaque box of half the
// pixel height wide and the full pixel height tall for every codepoint.
type boxSource struct {
	skip map[rune]bool // codepoints reported as not representable
}

func (b *boxSource) BoundingBox(cp rune, pixelHeight int) (int, int) {
	if b.skip[cp] {
		return 0, 0
	}
	w := pixelHeight / 2
	if w < 1 {
		w = 1
	}
	return w, pixelHeight
}

func (b *boxSource) Rasterize(cp rune, pixelHeight int, dst []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst[y*stride+x] = 255
		}
	}
}

func extendedFont(t *testing.T, opts ...Option) *Font {
	t.Helper()
	f, err := NewFromOutline(&boxSource{}, 8, opts...)
	if err != nil {
		t.Fatalf("NewFromOutline() = %v", err)
	}
	return f
}

func TestNewFromOutlineGeometry(t *testing.T) {
	f := extendedFont(t)
	if f.GlyphCount() != extendedGlyphs {
		t.Fatalf("GlyphCount() = %d, want %d", f.GlyphCount(), extendedGlyphs)
	}
	a := f.Atlas()
	if a.CellWidth != 16 || a.CellHeight != 16 {
		t.Errorf("cell = %dx%d, want 16x16", a.CellWidth, a.CellHeight)
	}
	if got := a.Image.Bounds().Dx(); got != extendedGlyphs*16 {
		t.Errorf("atlas width = %d, want %d", got, extendedGlyphs*16)
	}
	if f.Height() != 8 {
		t.Errorf("Height() = %d, want 8", f.Height())
	}
}

func TestNewFromOutlineRasterizesCells(t *testing.T) {
	f := extendedFont(t)
	a := f.Atlas()

	// The box glyph is 4 wide, horizontally centered in its 16-pixel cell.
	for _, slot := range []int{int('A' - 32), cyrUpperFirst, emDashSlot} {
		if a.alphaAt(slot, 6, 0) != 255 || a.alphaAt(slot, 9, 0) != 255 {
			t.Errorf("slot %d: expected opaque pixels in centered columns", slot)
		}
		if a.alphaAt(slot, 0, 0) != 0 || a.alphaAt(slot, 15, 0) != 0 {
			t.Errorf("slot %d: expected transparent margins", slot)
		}
	}
}

func TestNewFromOutlineSkipsUnrepresentable(t *testing.T) {
	src := &boxSource{skip: map[rune]bool{0x0410: true}}
	f, err := NewFromOutline(src, 8)
	if err != nil {
		t.Fatalf("NewFromOutline() = %v", err)
	}
	a := f.Atlas()
	for y := 0; y < a.CellHeight; y++ {
		for x := 0; x < a.CellWidth; x++ {
			if a.alphaAt(cyrUpperFirst, x, y) != 0 {
				t.Fatalf("skipped glyph cell has opaque pixel at (%d, %d)", x, y)
			}
		}
	}
}

func TestNewFromOutlineInvalidHeight(t *testing.T) {
	if _, err := NewFromOutline(&boxSource{}, 0); err == nil {
		t.Error("NewFromOutline(0) should fail")
	}
}

func TestNewOutlineSourceEmptyData(t *testing.T) {
	if _, err := NewOutlineSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewOutlineSource(nil) = %v, want ErrEmptyFontData", err)
	}
}

func TestNewOutlineSourceUnknownBackend(t *testing.T) {
	_, err := NewOutlineSource([]byte{0}, WithBackend("nope"))
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("NewOutlineSource(unknown backend) = %v, want ErrUnknownBackend", err)
	}
}

func TestOutlineBackendsRasterizeRealFont(t *testing.T) {
	for _, backend := range []string{"ximage", "gotext"} {
		t.Run(backend, func(t *testing.T) {
			src, err := NewOutlineSource(goregular.TTF, WithBackend(backend))
			if err != nil {
				t.Fatalf("NewOutlineSource() = %v", err)
			}

			const pixelHeight = 32
			w, h := src.BoundingBox('O', pixelHeight)
			if w <= 0 || h <= 0 {
				t.Fatalf("BoundingBox('O') = %dx%d, want positive", w, h)
			}

			dst := make([]byte, w*h)
			src.Rasterize('O', pixelHeight, dst, w, h, w)

			total := 0
			var peak byte
			for _, a := range dst {
				total += int(a)
				if a > peak {
					peak = a
				}
			}
			if total == 0 {
				t.Fatal("Rasterize produced no coverage")
			}
			// The ring carries solid ink; the counter at the glyph's center
			// is empty.
			if peak != 255 {
				t.Errorf("peak coverage = %d, want 255", peak)
			}
			if c := dst[(h/2)*w+w/2]; c != 0 {
				t.Errorf("coverage inside the counter = %d, want 0", c)
			}
		})
	}
}

func TestNewFromOutlineRealFont(t *testing.T) {
	src, err := NewOutlineSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewOutlineSource() = %v", err)
	}
	f, err := NewFromOutline(src, 16)
	if err != nil {
		t.Fatalf("NewFromOutline() = %v", err)
	}
	if f.Width("Hamburgevons") <= 0 {
		t.Error("real-font atlas should measure nonzero widths")
	}
}

func TestRegisterOutlineBackend(t *testing.T) {
	called := false
	RegisterOutlineBackend("fake", func(data []byte) (OutlineSource, error) {
		called = true
		return &boxSource{}, nil
	})
	t.Cleanup(func() { delete(outlineBackends, "fake") })

	src, err := NewOutlineSource([]byte{1, 2, 3}, WithBackend("fake"))
	if err != nil {
		t.Fatalf("NewOutlineSource() = %v", err)
	}
	if !called || src == nil {
		t.Error("registered backend was not used")
	}
}
