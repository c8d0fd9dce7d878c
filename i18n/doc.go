// Package i18n provides a key-based translation store with language
// fallback and {{name}} placeholder substitution.
//
// Translations live in a file tree with one directory per language code.
// Every recognized data file inside a language directory is a single flat
// JSON object of string keys to string values; files merge into one table
// per language with last-file-wins per key. A malformed file keeps whatever
// keys were parsed before the failure point — silently incomplete
// translations are an accepted trade-off of the format.
//
// Lookup degrades visibly, never invisibly: a key missing from the active
// language falls back to the default language's table, and a key missing
// there too comes back verbatim, so untranslated strings show up on screen
// as their keys instead of as blanks.
//
// A Store is an explicit session object rather than process-global state,
// so tests (and tools) can hold several languages open side by side.
// Stores are single-threaded: call SetLanguage at well-defined points
// outside any concurrent Tr calls.
package i18n
