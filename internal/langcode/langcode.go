// Package langcode normalizes language codes shared by the font registry
// and the translation store.
package langcode

import "golang.org/x/text/language"

// Default is the language code used as the process-wide fallback.
const Default = "en"

// Canonical normalizes a language code through x/text's tag parser ("EN"
// becomes "en", "ru_RU" becomes "ru-RU"). Unparsable codes are returned
// unchanged so directory-derived codes still round-trip.
func Canonical(code string) string {
	if tag, err := language.Parse(code); err == nil {
		return tag.String()
	}
	return code
}
