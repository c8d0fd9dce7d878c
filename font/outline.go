package font

import (
	"fmt"
	"os"
)

// OutlineSource provides glyph bounding boxes and rasterized coverage for
// building atlases from font outlines. Implementations are queried once per
// codepoint of the fixed atlas list during NewFromOutline.
type OutlineSource interface {
	// BoundingBox returns the rasterized size in pixels of cp at the
	// requested pixel height. Zero or negative dimensions mean the glyph is
	// not representable and its cell stays blank.
	BoundingBox(cp rune, pixelHeight int) (w, h int)

	// Rasterize writes coverage values (0-255) for cp into dst, whose rows
	// are stride bytes apart. Only the top-left w x h region is written;
	// dst is zeroed by the caller.
	Rasterize(cp rune, pixelHeight int, dst []byte, w, h, stride int)
}

// OutlineBackend constructs an OutlineSource from raw font data (TTF/OTF).
type OutlineBackend func(data []byte) (OutlineSource, error)

// outlineBackends holds registered outline backends.
// The default backend is "ximage" (golang.org/x/image).
var outlineBackends = map[string]OutlineBackend{
	"ximage": newSFNTSource,
	"gotext": newGoTextSource,
}

// defaultOutlineBackend is the name of the default backend.
const defaultOutlineBackend = "ximage"

// RegisterOutlineBackend registers a custom outline backend. This allows
// plugging in alternative rasterizers or font formats.
func RegisterOutlineBackend(name string, b OutlineBackend) {
	outlineBackends[name] = b
}

// SourceOption configures OutlineSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for outline sources.
type sourceConfig struct {
	backendName string
}

// WithBackend selects the outline backend by name. The default is "ximage"
// (golang.org/x/image/font/opentype); "gotext" uses go-text/typesetting
// with the x/image vector rasterizer.
func WithBackend(name string) SourceOption {
	return func(c *sourceConfig) {
		c.backendName = name
	}
}

// NewOutlineSource creates an OutlineSource from font data (TTF or OTF).
func NewOutlineSource(data []byte, opts ...SourceOption) (OutlineSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	cfg := sourceConfig{backendName: defaultOutlineBackend}
	for _, opt := range opts {
		opt(&cfg)
	}
	backend, ok := outlineBackends[cfg.backendName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.backendName)
	}
	return backend(data)
}

// NewOutlineSourceFromFile loads an OutlineSource from a font file path.
func NewOutlineSourceFromFile(path string, opts ...SourceOption) (OutlineSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return NewOutlineSource(data, opts...)
}
