package lzw

import "unicode/utf8"

// Core constants for the LZW container format
const (
	maxSymbols   = 255          // initial table entries; the count must fit the one-byte header
	maxCodePoint = rune(0xFFFF) // symbol code points occupy two bytes per entry
	maxCode      = 0xFFFF       // payload codes are transmitted as two bytes

	headerSize = 1 // entry count K
	entrySize  = 3 // 2-byte code point + 1-byte code
	codeSize   = 2 // one 16-bit payload code
)

// A symbol is a single Unicode code point. The container stores code
// points in two bytes, so inputs are restricted to the basic
// multilingual plane; surrogate halves are not code points and never
// appear in valid UTF-8.

// validSymbol reports whether r fits a table entry's code point field.
func validSymbol(r rune) bool {
	return r <= maxCodePoint && utf8.ValidRune(r)
}

// firstSymbol returns the leading symbol of s as a substring.
// s must be nonempty.
func firstSymbol(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
