// Package utf8x decodes UTF-8 strings into Unicode codepoints with
// byte-offset tracking.
//
// Unlike unicode/utf8, iteration stops at the first malformed sequence:
// DecodeCodePoint reports the Invalid sentinel together with a terminal
// position, so callers never read past a broken buffer and never surface
// decoding problems as errors. The slicing helpers operate on codepoint
// counts rather than bytes, which keeps substring operations correct for
// any language.
package utf8x

import "unicode/utf8"

// Invalid is the sentinel codepoint reported for a malformed UTF-8 sequence.
const Invalid rune = -1

// terminal is the position returned once decoding cannot continue.
const terminal = -1

// DecodeCodePoint decodes the codepoint starting at byte offset pos and
// returns it together with the offset of the following codepoint.
// On malformed input (or pos out of range) it returns Invalid and a
// negative position; callers use the negative position to stop iterating.
func DecodeCodePoint(s string, pos int) (rune, int) {
	if pos < 0 || pos >= len(s) {
		return Invalid, terminal
	}
	r, size := utf8.DecodeRuneInString(s[pos:])
	if r == utf8.RuneError && size <= 1 {
		// utf8 reports (RuneError, 1) only for malformed input; a genuine
		// U+FFFD in the text decodes with size 3.
		return Invalid, terminal
	}
	return r, pos + size
}

// NextCodePoint advances past the codepoint starting at pos without
// decoding it. It returns a negative position on malformed input or when
// pos is already past the end.
func NextCodePoint(s string, pos int) int {
	_, next := DecodeCodePoint(s, pos)
	return next
}

// CodePointCount returns the number of codepoints in s up to the first
// malformed sequence.
func CodePointCount(s string) int {
	count := 0
	for pos := 0; pos < len(s); {
		next := NextCodePoint(s, pos)
		if next < 0 {
			break
		}
		count++
		pos = next
	}
	return count
}

// ByteOffsetAfterCodePoints returns the byte offset just after the first n
// codepoints of s (the start of the (n+1)-th), or len(s) if s has fewer.
func ByteOffsetAfterCodePoints(s string, n int) int {
	pos := 0
	for i := 0; i < n && pos >= 0 && pos < len(s); i++ {
		pos = NextCodePoint(s, pos)
	}
	if pos < 0 || pos > len(s) {
		return len(s)
	}
	return pos
}

// FirstCodePoints returns the prefix of s holding its first n codepoints.
func FirstCodePoints(s string, n int) string {
	return s[:ByteOffsetAfterCodePoints(s, n)]
}

// LastCodePoints returns the suffix of s holding its last n codepoints.
func LastCodePoints(s string, n int) string {
	total := CodePointCount(s)
	if total <= n {
		return s
	}
	return s[ByteOffsetAfterCodePoints(s, total-n):]
}
