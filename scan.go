// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ghactivity

import (
	"strings"

	"go4.org/mem"
)

// balance scans text beginning at the opening delimiter at offset pos, and
// returns the offset of the delimiter that brings the nesting depth back to
// zero. Bytes in opens increase the depth and bytes in closes decrease it.
//
// String literals are skipped, so delimiters that occur inside a quoted value
// do not affect the depth. If visit != nil, it is called for each delimiter
// with its offset and the depth after the delimiter is applied.
//
// If text ends before the depth returns to zero, balance returns -1.
func balance(text mem.RO, pos int, opens, closes string, visit func(i, depth int, ch byte)) int {
	var depth int
	for i := pos; i < text.Len(); i++ {
		ch := text.At(i)
		switch {
		case ch == '"':
			end := closeQuote(text, i)
			if end < 0 {
				return -1
			}
			i = end
		case strings.IndexByte(opens, ch) >= 0:
			depth++
			if visit != nil {
				visit(i, depth, ch)
			}
		case strings.IndexByte(closes, ch) >= 0:
			depth--
			if visit != nil {
				visit(i, depth, ch)
			}
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// closeQuote returns the offset of the double quotation mark that ends the
// string literal whose opening quote is at offset pos, or -1 if the literal
// is not terminated. A quote preceded by an unpaired backslash is escaped and
// does not end the literal.
func closeQuote(text mem.RO, pos int) int {
	var esc bool
	for i := pos + 1; i < text.Len(); i++ {
		ch := text.At(i)
		if esc {
			esc = false
			continue
		}
		switch ch {
		case '\\':
			esc = true
		case '"':
			return i
		}
	}
	return -1
}

// valueAt finds the first occurrence of the member prefix "key": in v, and
// returns the offset relative to v of the first non-whitespace byte after the
// colon. It reports false if the prefix does not occur, or if nothing but
// whitespace follows it.
func valueAt(v View, key string) (int, bool) {
	text := v.Text()
	pat := `"` + key + `":`
	i := mem.Index(text, mem.S(pat))
	if i < 0 {
		return 0, false
	}
	j := skipSpace(text, i+len(pat))
	if j >= text.Len() {
		return 0, false
	}
	return j, true
}

// skipSpace returns the offset of the first non-whitespace byte of text at or
// after pos, or text.Len() if there is none.
func skipSpace(text mem.RO, pos int) int {
	for pos < text.Len() && isSpace(text.At(pos)) {
		pos++
	}
	return pos
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
