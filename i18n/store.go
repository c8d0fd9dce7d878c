package i18n

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/skyrift/uitext"
	"github.com/skyrift/uitext/internal/langcode"
)

// dataExt is the extension of recognized localization data files.
const dataExt = ".json"

// defaultTableCacheSize bounds how many language tables stay loaded. Two
// covers the common active+fallback pair; the rest is headroom for language
// switching without reloading from disk.
const defaultTableCacheSize = 8

// Option configures a Store.
type Option func(*Store)

// WithDefaultLanguage overrides the fallback language (default "en").
func WithDefaultLanguage(code string) Option {
	return func(s *Store) {
		s.defaultLang = langcode.Canonical(code)
	}
}

// WithTableCacheSize sets how many language tables the store keeps in
// memory.
func WithTableCacheSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.cacheSize = n
		}
	}
}

// Store is a translation session: a localization root, an active language
// table, and a cache of previously loaded tables keyed by language code.
// The cache is what makes fallback lookups load the default language from
// disk at most once, and it extends the same memoization to every language
// a process switches through.
type Store struct {
	root        string
	defaultLang string
	cacheSize   int

	active string
	table  map[string]string
	tables *lru.Cache[string, map[string]string]
}

// New creates a Store over a localization root: one directory per language
// code, each holding flat JSON data files. The default language starts
// active; its table loads lazily on the first lookup.
func New(root string, opts ...Option) *Store {
	s := &Store{
		root:        root,
		defaultLang: langcode.Default,
		cacheSize:   defaultTableCacheSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	// Size is fixed positive, so construction cannot fail.
	s.tables, _ = lru.New[string, map[string]string](s.cacheSize)
	// No table is loaded yet: the default language loads lazily on the
	// first lookup miss, or eagerly via SetLanguage.
	s.active = s.defaultLang
	return s
}

// SetLanguage switches the active language, replacing the active table
// wholesale with a fresh load from the file tree. The loaded table also
// refreshes the cache entry for that code.
func (s *Store) SetLanguage(code string) {
	s.active = langcode.Canonical(code)
	s.table = s.loadFromTree(s.active)
	s.tables.Add(s.active, s.table)
}

// ActiveLanguage returns the currently active language code.
func (s *Store) ActiveLanguage() string {
	return s.active
}

// DefaultLanguage returns the fallback language code.
func (s *Store) DefaultLanguage() string {
	return s.defaultLang
}

// Tr returns the translation for key in the active language, falling back
// to the default language's table, and finally to the key itself — a
// visible degradation rather than a blank string. The fallback table is
// loaded lazily and memoized.
func (s *Store) Tr(key string) string {
	if v, ok := s.table[key]; ok {
		return v
	}
	if v, ok := s.cachedTable(s.defaultLang)[key]; ok {
		return v
	}
	return key
}

// TrWith resolves key via Tr, then replaces every literal {{name}}
// occurrence whose name appears in replacements. There is no recursive
// expansion; placeholders without a matching replacement stay verbatim.
func (s *Store) TrWith(key string, replacements map[string]string) string {
	v := s.Tr(key)
	for name, repl := range replacements {
		v = strings.ReplaceAll(v, "{{"+name+"}}", repl)
	}
	return v
}

// cachedTable returns the table for a language code, loading and caching it
// on first use.
func (s *Store) cachedTable(code string) map[string]string {
	if t, ok := s.tables.Get(code); ok {
		return t
	}
	t := s.loadFromTree(code)
	s.tables.Add(code, t)
	return t
}

// loadFromTree reads every recognized data file under the language's
// directory, walking recursively in lexical order, and merges the parsed
// tables with last-file-wins per key. Missing directories yield an empty
// table; malformed files contribute the keys parsed before the failure.
func (s *Store) loadFromTree(code string) map[string]string {
	table := make(map[string]string)
	dir := filepath.Join(s.root, code)
	log := uitext.Logger()

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != dataExt {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("i18n: unreadable localization file", "path", path, "error", err)
			return nil
		}
		partial, perr := parseFlat(string(data))
		if perr != nil {
			log.Warn("i18n: malformed localization file, keeping partial table",
				"path", path, "keys", len(partial))
		}
		for k, v := range partial {
			table[k] = v
		}
		return nil
	})
	if err != nil {
		log.Warn("i18n: failed to scan language directory", "dir", dir, "error", err)
	}
	log.Debug("i18n: language table loaded", "language", code, "keys", len(table))
	return table
}

// AvailableLanguageCodes lists the language codes with at least one
// parsable data file under the localization root. The default language is
// always included and always first; the rest sort lexically.
func (s *Store) AvailableLanguageCodes() []string {
	codes := []string{s.defaultLang}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return codes
	}
	for _, e := range entries {
		if !e.IsDir() || e.Name() == s.defaultLang {
			continue
		}
		if s.hasParsableData(filepath.Join(s.root, e.Name())) {
			codes = append(codes, e.Name())
		}
	}
	sort.Strings(codes[1:])
	return codes
}

// hasParsableData reports whether dir holds at least one data file the
// parser accepts (fully, or far enough to yield keys).
func (s *Store) hasParsableData(dir string) bool {
	found := false
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != dataExt {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		table, perr := parseFlat(string(data))
		if perr == nil || len(table) > 0 {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found
}
