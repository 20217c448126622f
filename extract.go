// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ghactivity

import "go4.org/mem"

// The field extractors below locate a member of a JSON object by searching
// for the literal text "key": (with no whitespace between the key and the
// colon). The first occurrence wins, whether or not it belongs to the
// outermost object. A false result means the field is absent or does not
// have the expected shape; it is not an error.

// StringField returns a view of the raw contents of the string value of the
// named member of obj. The quotation marks are excluded and escape sequences
// are not decoded: the value "a\"b" yields the four bytes a\"b.
// A backslash escapes the byte after it, so a quote preceded by an even run
// of backslashes ends the value: "a\\" yields a\\.
func StringField(obj View, key string) (View, bool) {
	i, ok := valueAt(obj, key)
	if !ok {
		return View{}, false
	}
	text := obj.Text()
	if text.At(i) != '"' {
		return View{}, false
	}
	end := closeQuote(text, i)
	if end < 0 {
		return View{}, false
	}
	return obj.sub(i+1, end), true
}

// UintField returns the value of the named member of obj, which must be an
// unsigned decimal integer. Signs, fractions and exponents are not
// recognized; the value is the longest run of digits following the colon.
// A value that overflows uint64 is reported as absent.
func UintField(obj View, key string) (uint64, bool) {
	i, ok := valueAt(obj, key)
	if !ok {
		return 0, false
	}
	text := obj.Text()
	j := i
	for j < text.Len() && isDigit(text.At(j)) {
		j++
	}
	if j == i {
		return 0, false
	}
	v, err := mem.ParseUint(text.Slice(i, j), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ObjectField returns a view of the object value of the named member of obj,
// from its opening brace through the matching closing brace.
func ObjectField(obj View, key string) (View, bool) {
	i, ok := valueAt(obj, key)
	if !ok {
		return View{}, false
	}
	text := obj.Text()
	if text.At(i) != '{' {
		return View{}, false
	}
	end := balance(text, i, "{", "}", nil)
	if end < 0 {
		return View{}, false
	}
	return obj.sub(i, end+1), true
}

// ArrayLen reports the number of objects that are direct elements of the
// array value of the named member of obj. Elements that are not objects are
// not counted, nor are objects nested more deeply. An empty array has
// length zero.
func ArrayLen(obj View, key string) (int, bool) {
	i, ok := valueAt(obj, key)
	if !ok {
		return 0, false
	}
	text := obj.Text()
	if text.At(i) != '[' {
		return 0, false
	}
	var n int
	end := balance(text, i, "[{", "]}", func(_, depth int, ch byte) {
		if ch == '{' && depth == 2 {
			n++
		}
	})
	if end < 0 {
		return 0, false
	}
	return n, true
}
