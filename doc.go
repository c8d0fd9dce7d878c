// Package uitext provides pixel-accurate UI text measurement, rendering and
// localization for frame-loop driven applications.
//
// # Overview
//
// uitext is organized around three concerns:
//   - font: glyph atlases with a precomputed advance/kerning matrix,
//     pixel-exact string measurement, ellipsis truncation and draw-command
//     emission toward a caller-supplied Renderer.
//   - i18n: key-based translation tables loaded from per-language file
//     trees, with language fallback and {{name}} placeholder substitution.
//   - utf8x: UTF-8 codepoint decoding with byte-offset tracking, shared by
//     the font layer and usable for language-agnostic string slicing.
//
// # Quick Start
//
//	import (
//	    "github.com/skyrift/uitext/font"
//	    "github.com/skyrift/uitext/i18n"
//	)
//
//	fonts := font.NewSet()
//	_ = fonts.AddFile("fonts/ui14.png", 14, "en")
//
//	strings := i18n.New("locale")
//	strings.SetLanguage("ru")
//
//	f, _ := fonts.Get(14)
//	label := strings.Tr("menu.new-game")
//	w := f.Width(label)
//
// # Concurrency
//
// The font and i18n packages are single-threaded by design: loading calls
// (SetLanguage, Set.Add, NewFromOutline) must happen at well-defined points
// outside any concurrent measure/draw calls. The package-level logger is the
// only piece of shared plumbing and is safe for concurrent use.
package uitext

// Version is the current version of the library.
const Version = "0.1.0"
