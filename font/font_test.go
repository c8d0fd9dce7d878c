package font

import (
	"image"
	"image/color"
	"testing"
)

// monoAtlasImage builds a synthetic pre-rendered atlas: 98 cells of 8x8
// raster pixels, each cell fully opaque in columns 1-6. Every glyph then
// measures the same, which makes expected widths easy to state: the advance
// between any two glyphs is 3 logical pixels and the blank-glyph space
// width is 2.
func monoAtlasImage() *image.RGBA {
	const cells, cellW, cellH = 98, 8, 8
	img := image.NewRGBA(image.Rect(0, 0, cells*cellW, cellH))
	for c := 0; c < cells; c++ {
		for y := 0; y < cellH; y++ {
			for x := 1; x <= 6; x++ {
				img.SetRGBA(c*cellW+x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}
	return img
}

func monoFont(t *testing.T, opts ...Option) *Font {
	t.Helper()
	f, err := NewFromImage(monoAtlasImage(), opts...)
	if err != nil {
		t.Fatalf("NewFromImage() = %v", err)
	}
	return f
}

// recorder is a Renderer that records draw commands.
type recorder struct {
	w, h  int
	cmds  []GlyphDraw
	atlas *Atlas
}

func (r *recorder) OutputSize() (int, int) { return r.w, r.h }

func (r *recorder) Draw(atlas *Atlas, g GlyphDraw) {
	r.atlas = atlas
	r.cmds = append(r.cmds, g)
}

func TestNewFromImageGeometry(t *testing.T) {
	f := monoFont(t)
	if got := f.GlyphCount(); got != 98 {
		t.Errorf("GlyphCount() = %d, want 98", got)
	}
	a := f.Atlas()
	if a.CellWidth != 8 || a.CellHeight != 8 {
		t.Errorf("cell = %dx%d, want 8x8", a.CellWidth, a.CellHeight)
	}
	if f.Height() != 4 {
		t.Errorf("Height() = %d, want 4", f.Height())
	}
	if f.Space() != 2 {
		t.Errorf("Space() = %d, want 2", f.Space())
	}
}

func TestNewFromImageBadGeometry(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 97, 8))
	if _, err := NewFromImage(img); err == nil {
		t.Error("NewFromImage with indivisible width should fail")
	}
}

func TestAdvanceMatrixInvariants(t *testing.T) {
	f := monoFont(t)
	n := f.glyphCount
	if len(f.advance) != n*n {
		t.Fatalf("advance matrix has %d entries, want %d", len(f.advance), n*n)
	}
	// Row 0 (previous = fallback) is zero.
	for next := 0; next < n; next++ {
		if f.advance[next] != 0 {
			t.Fatalf("advance[0][%d] = %d, want 0", next, f.advance[next])
		}
	}
	// The synthetic atlas is monospace: every remaining entry is 3.
	for previous := 1; previous < n; previous++ {
		for next := 0; next < n; next++ {
			if got := f.advance[previous*n+next]; got != 3 {
				t.Fatalf("advance[%d][%d] = %d, want 3", previous, next, got)
			}
		}
	}
}

func TestWidth(t *testing.T) {
	f := monoFont(t)
	tests := []struct {
		name string
		in   string
		want int
	}{
		// First glyph advances from the zero row, then 3 per glyph, plus a
		// trailing full-cell term of 3.
		{"empty", "", 0},
		{"single", "a", 3},
		{"plain", "abc", 9},
		{"space is blank glyph", "ab cd", 14}, // 0+3 +2 +3+3 +3
		{"underscore consumed", "a_b", 6},
		{"malformed stops", "ab\xffzz", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Width(tt.in); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestWidthTrailingContext(t *testing.T) {
	f := monoFont(t)
	// A trailing ASCII context glyph measures kerning against it instead of
	// the full-cell end-of-line term; monospace makes both 3.
	if got, want := f.WidthRawString("ab", 'c'), 6; got != want {
		t.Errorf("WidthRawString(after 'c') = %d, want %d", got, want)
	}
	if got, want := f.WidthRawString("ab", 0), 6; got != want {
		t.Errorf("WidthRawString(after 0) = %d, want %d", got, want)
	}
}

func TestWidthScalePercent(t *testing.T) {
	f := monoFont(t, WithScalePercent(200))
	if got := f.Width("abc"); got != 18 {
		t.Errorf("scaled Width = %d, want 18", got)
	}
	if got := f.Height(); got != 8 {
		t.Errorf("scaled Height = %d, want 8", got)
	}
	if got := f.Space(); got != 4 {
		t.Errorf("scaled Space = %d, want 4", got)
	}
}

func TestWidthLetterSpacing(t *testing.T) {
	f := monoFont(t, WithLetterSpacing(2))
	// Each of the three glyphs gains 2; the trailing term does not.
	if got := f.Width("abc"); got != 15 {
		t.Errorf("letter-spaced Width = %d, want 15", got)
	}
}

func TestDrawMeasureConsistency(t *testing.T) {
	f := monoFont(t)
	r := &recorder{w: 640, h: 480}

	const origin = 100.0
	s := "ab cd"
	f.DrawString(r, s, Pt(origin, 20), color.NRGBA{A: 255})

	// Four glyph commands; the space advances the cursor without one.
	wantX := []float64{origin - 1 + 0, origin - 1 + 3, origin - 1 + 8, origin - 1 + 11}
	if len(r.cmds) != len(wantX) {
		t.Fatalf("Draw emitted %d commands, want %d", len(r.cmds), len(wantX))
	}
	for i, cmd := range r.cmds {
		if cmd.X != wantX[i] {
			t.Errorf("command %d at X=%v, want %v", i, cmd.X, wantX[i])
		}
		if cmd.Y != 20 {
			t.Errorf("command %d at Y=%v, want 20", i, cmd.Y)
		}
		if cmd.Aspect != 1 {
			t.Errorf("command %d aspect = %v, want 1", i, cmd.Aspect)
		}
	}

	// The final cursor plus the end-of-line advance equals the measured
	// width.
	lastAdvance := r.cmds[len(r.cmds)-1].X - (origin - 1)
	if got, want := int(lastAdvance)+3, f.Width(s); got != want {
		t.Errorf("draw cursor total = %d, measured width = %d", got, want)
	}
}

func TestDrawScaleCache(t *testing.T) {
	f := monoFont(t)
	r := &recorder{w: 800, h: 600}
	f.DrawString(r, "a", Pt(0, 0), color.NRGBA{A: 255})
	if got := r.cmds[0].Scale; got != [2]float32{2.0 / 800, -2.0 / 600} {
		t.Errorf("scale = %v, want refresh from 800x600", got)
	}

	// Same dimensions: the cached scale is reused; new dimensions refresh.
	r.w, r.h = 400, 300
	f.DrawString(r, "a", Pt(0, 0), color.NRGBA{A: 255})
	if got := r.cmds[1].Scale; got != [2]float32{2.0 / 400, -2.0 / 300} {
		t.Errorf("scale after resize = %v, want refresh from 400x300", got)
	}
}

func TestDrawUnderline(t *testing.T) {
	ShowUnderlines(true)
	t.Cleanup(func() { ShowUnderlines(false) })

	f := monoFont(t)
	r := &recorder{w: 640, h: 480}
	f.DrawString(r, "_ab", Pt(10, 10), color.NRGBA{A: 255})

	// Glyph 'a', underline overlay under it, then glyph 'b'.
	if len(r.cmds) != 3 {
		t.Fatalf("emitted %d commands, want 3", len(r.cmds))
	}
	underscore := int('_' - 32)
	if r.cmds[0].Slot != int('a'-32) {
		t.Errorf("first slot = %d, want %d", r.cmds[0].Slot, int('a'-32))
	}
	if r.cmds[1].Slot != underscore {
		t.Errorf("underline slot = %d, want %d", r.cmds[1].Slot, underscore)
	}
	if r.cmds[1].X != r.cmds[0].X || r.cmds[1].Y != r.cmds[0].Y {
		t.Error("underline overlay must sit at the underlined glyph's position")
	}
	// Monospace: the underlined glyph and the underscore measure the same.
	if r.cmds[1].Aspect != 1 {
		t.Errorf("underline aspect = %v, want 1", r.cmds[1].Aspect)
	}
	if r.cmds[2].Slot != int('b'-32) {
		t.Errorf("last slot = %d, want %d", r.cmds[2].Slot, int('b'-32))
	}
}

func TestDrawUnderscoreLiteralWhenDisabled(t *testing.T) {
	f := monoFont(t)
	r := &recorder{w: 640, h: 480}
	f.DrawString(r, "_a", Pt(0, 0), color.NRGBA{A: 255})
	if len(r.cmds) != 1 {
		t.Fatalf("emitted %d commands, want 1 (marker consumed, no overlay)", len(r.cmds))
	}
}

func TestDrawAlignment(t *testing.T) {
	f := monoFont(t)
	s := "abc" // measured width 9

	tests := []struct {
		name  string
		align Align
		wantX float64
	}{
		{"left", AlignLeft, 100 - 1},
		// The 21px gap halves to 10, truncated: origins stay on whole
		// pixels.
		{"center", AlignCenter, 100 + 10 - 1},
		{"right", AlignRight, 100 + 30 - 9 - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{w: 640, h: 480}
			text := DisplayText{Text: s, Layout: Layout{Width: 30, Align: tt.align, Truncate: TruncateBack}}
			f.Draw(r, text, Pt(100, 0), color.NRGBA{A: 255})
			if len(r.cmds) == 0 {
				t.Fatal("no commands emitted")
			}
			if got := r.cmds[0].X; got != tt.wantX {
				t.Errorf("first glyph X = %v, want %v", got, tt.wantX)
			}
		})
	}
}

func TestFormattedWidth(t *testing.T) {
	f := monoFont(t)
	// Unbounded layout measures the raw string.
	if got := f.FormattedWidth(NewDisplayText("abc"), 0); got != 9 {
		t.Errorf("FormattedWidth unbounded = %d, want 9", got)
	}
	// Truncating layout reports the truncated width.
	text := DisplayText{Text: "abcdefghij", Layout: Layout{Width: 21, Truncate: TruncateBack}}
	if got := f.FormattedWidth(text, 0); got != 21 {
		t.Errorf("FormattedWidth truncated = %d, want 21", got)
	}
}
