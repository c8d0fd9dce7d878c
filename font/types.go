package font

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Align specifies horizontal alignment of a string inside a layout width.
type Align int

const (
	// AlignLeft draws from the given origin.
	AlignLeft Align = iota
	// AlignCenter centers the string inside the layout width.
	AlignCenter
	// AlignRight aligns the string's right edge with the layout width.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// Truncate specifies which part of a string is dropped when it does not fit
// the layout width.
type Truncate int

const (
	// TruncateNone draws the full string even if it overflows.
	TruncateNone Truncate = iota
	// TruncateFront drops codepoints from the front: "...suffix".
	TruncateFront
	// TruncateMiddle drops codepoints from the middle: "pre...post".
	TruncateMiddle
	// TruncateBack drops codepoints from the back: "prefix...".
	TruncateBack
)

// String returns the string representation of the truncation mode.
func (tr Truncate) String() string {
	switch tr {
	case TruncateNone:
		return "None"
	case TruncateFront:
		return "Front"
	case TruncateMiddle:
		return "Middle"
	case TruncateBack:
		return "Back"
	default:
		return unknownStr
	}
}

// Layout describes how a string is fitted into a horizontal pixel budget.
type Layout struct {
	// Width is the bounding width in pixels. A negative width disables both
	// truncation and alignment offsets.
	Width int

	// Align positions the (possibly truncated) string inside Width.
	Align Align

	// Truncate selects which part of the string is dropped on overflow.
	Truncate Truncate
}

// DefaultLayout returns a layout with no bounding width.
func DefaultLayout() Layout {
	return Layout{Width: -1}
}

// DisplayText pairs a string with its layout.
type DisplayText struct {
	Text   string
	Layout Layout
}

// NewDisplayText returns text with the default (unbounded) layout.
func NewDisplayText(text string) DisplayText {
	return DisplayText{Text: text, Layout: DefaultLayout()}
}

// Point represents a 2D pixel position.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}
