package i18n

import (
	"errors"
	"strings"
)

// ErrMalformed is returned when a localization file is structurally broken:
// missing opening brace, non-string value, unterminated string. Keys parsed
// before the failure point are still returned alongside the error.
var ErrMalformed = errors.New("i18n: malformed localization data")

// parseFlat parses a single flat JSON-style object of string keys to string
// values — no nesting, no arrays. On a structural failure it stops at the
// failure point and returns the keys parsed so far together with
// ErrMalformed.
func parseFlat(data string) (map[string]string, error) {
	out := make(map[string]string)
	pos := skipSpace(data, 0)
	if pos >= len(data) || data[pos] != '{' {
		return out, ErrMalformed
	}
	pos++
	for {
		pos = skipSpaceAndCommas(data, pos)
		if pos >= len(data) {
			return out, ErrMalformed
		}
		if data[pos] == '}' {
			return out, nil
		}
		key, next, ok := parseString(data, pos)
		if !ok {
			return out, ErrMalformed
		}
		pos = skipSpace(data, next)
		if pos >= len(data) || data[pos] != ':' {
			return out, ErrMalformed
		}
		value, next, ok := parseString(data, pos+1)
		if !ok {
			return out, ErrMalformed
		}
		out[key] = value
		pos = next
	}
}

// skipSpace advances past JSON whitespace.
func skipSpace(data string, pos int) int {
	for pos < len(data) {
		switch data[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}

// skipSpaceAndCommas advances past whitespace and the commas between pairs.
func skipSpaceAndCommas(data string, pos int) int {
	for pos < len(data) {
		switch data[pos] {
		case ' ', '\t', '\n', '\r', ',':
			pos++
		default:
			return pos
		}
	}
	return pos
}

// parseString parses a double-quoted JSON string starting at or after pos
// (leading whitespace allowed) and returns its decoded value and the
// position just past the closing quote.
func parseString(data string, pos int) (string, int, bool) {
	pos = skipSpace(data, pos)
	if pos >= len(data) || data[pos] != '"' {
		return "", pos, false
	}
	pos++
	var out strings.Builder
	for pos < len(data) {
		c := data[pos]
		if c == '"' {
			return out.String(), pos + 1, true
		}
		if c == '\\' {
			pos = decodeEscape(data, pos+1, &out)
			continue
		}
		out.WriteByte(c)
		pos++
	}
	// Unterminated string.
	return "", pos, false
}

// decodeEscape decodes the escape sequence whose backslash has already been
// consumed. Standard escapes and \uXXXX are honored; an unrecognized escape
// character is emitted literally without its backslash.
func decodeEscape(data string, pos int, out *strings.Builder) int {
	if pos >= len(data) {
		return pos
	}
	c := data[pos]
	pos++
	switch c {
	case '"':
		out.WriteByte('"')
	case '\\':
		out.WriteByte('\\')
	case '/':
		out.WriteByte('/')
	case 'b':
		out.WriteByte('\b')
	case 'f':
		out.WriteByte('\f')
	case 'n':
		out.WriteByte('\n')
	case 'r':
		out.WriteByte('\r')
	case 't':
		out.WriteByte('\t')
	case 'u':
		var cp rune
		for i := 0; i < 4 && pos < len(data); i++ {
			d, ok := hexDigit(data[pos])
			if !ok {
				break
			}
			cp = cp<<4 | rune(d)
			pos++
		}
		// WriteRune encodes invalid scalar values (lone surrogates) as
		// U+FFFD rather than emitting broken UTF-8.
		out.WriteRune(cp)
	default:
		out.WriteByte(c)
	}
	return pos
}

// hexDigit decodes one hexadecimal character.
func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
