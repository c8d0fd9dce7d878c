package font

import (
	"image"
	"sort"

	"github.com/skyrift/uitext/internal/langcode"
)

// defaultLanguage is the language every registry falls back to.
const defaultLanguage = langcode.Default

// fontKey identifies a registered font variant.
type fontKey struct {
	size int
	lang string
}

// Set is a registry of Fonts keyed by (pixel size, language code). Get
// resolves the active language with fallback, so UI code can ask for "the
// 14px font" without caring which language is selected.
type Set struct {
	fonts  map[fontKey]*Font
	active string
}

// NewSet returns an empty registry with the default language active.
func NewSet() *Set {
	return &Set{
		fonts:  make(map[fontKey]*Font),
		active: defaultLanguage,
	}
}

// SetLanguage selects the language Get resolves first. Codes are
// canonicalized through x/text ("EN" and "en" select the same fonts).
func (s *Set) SetLanguage(code string) {
	s.active = CanonicalLanguage(code)
}

// ActiveLanguage returns the currently selected language code.
func (s *Set) ActiveLanguage() string {
	return s.active
}

// Add registers a pre-rendered atlas font for (size, lang), eagerly
// building it. A font already registered under the same key is kept, so
// base assets loaded at startup are not clobbered by later plugin loads.
func (s *Set) Add(img image.Image, size int, lang string, opts ...Option) error {
	key := fontKey{size: size, lang: CanonicalLanguage(lang)}
	if _, ok := s.fonts[key]; ok {
		return nil
	}
	f, err := NewFromImage(img, opts...)
	if err != nil {
		return err
	}
	s.fonts[key] = f
	return nil
}

// AddFile registers a pre-rendered atlas font loaded from an image file.
func (s *Set) AddFile(path string, size int, lang string, opts ...Option) error {
	key := fontKey{size: size, lang: CanonicalLanguage(lang)}
	if _, ok := s.fonts[key]; ok {
		return nil
	}
	f, err := NewFromImageFile(path, opts...)
	if err != nil {
		return err
	}
	s.fonts[key] = f
	return nil
}

// AddFromOutline registers an outline-built font for (size, lang), eagerly
// building it and replacing any font registered under the same key.
func (s *Set) AddFromOutline(src OutlineSource, size int, lang string, opts ...Option) error {
	f, err := NewFromOutline(src, size, opts...)
	if err != nil {
		return err
	}
	s.fonts[fontKey{size: size, lang: CanonicalLanguage(lang)}] = f
	return nil
}

// Get resolves the font for a pixel size: the active language's variant,
// then the default language's, then any registered font of that size, then
// any registered font at all. It fails only when the registry is empty,
// which is a startup configuration error rather than a runtime condition.
func (s *Set) Get(size int) (*Font, error) {
	if f, ok := s.fonts[fontKey{size: size, lang: s.active}]; ok {
		return f, nil
	}
	if f, ok := s.fonts[fontKey{size: size, lang: defaultLanguage}]; ok {
		return f, nil
	}
	if len(s.fonts) == 0 {
		return nil, ErrNoFonts
	}
	// Deterministic order for the last-resort scans.
	keys := make([]fontKey, 0, len(s.fonts))
	for k := range s.fonts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].size != keys[j].size {
			return keys[i].size < keys[j].size
		}
		return keys[i].lang < keys[j].lang
	})
	for _, k := range keys {
		if k.size == size {
			return s.fonts[k], nil
		}
	}
	return s.fonts[keys[0]], nil
}

// CanonicalLanguage normalizes a language code ("EN" becomes "en", "ru_RU"
// becomes "ru-RU"). Unparsable codes are returned unchanged.
func CanonicalLanguage(code string) string {
	return langcode.Canonical(code)
}
