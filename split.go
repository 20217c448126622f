// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ghactivity

import (
	"fmt"

	"go4.org/mem"
)

// SplitArray returns views of the top-level objects in src, which must be a
// JSON array, possibly surrounded by whitespace. Any Unicode space (such as
// U+000B or U+00A0) is permitted outside the brackets. The views are in input
// order. Anything other than an object at the top level of the array is
// ignored, as is an object that is not closed before the end of the array.
//
// If src is not bracketed as an array, SplitArray reports an error of
// concrete type [*StructureError]. An empty array yields no views and no
// error.
func SplitArray(src mem.RO) ([]View, error) {
	v := trimUnicodeSpace(NewView(src))
	text := v.Text()
	if n := text.Len(); n < 2 || text.At(0) != '[' || text.At(n-1) != ']' {
		return nil, structureErrorf(v.Pos, "expected JSON array")
	}
	body := trimSpace(v.sub(1, text.Len()-1))
	btext := body.Text()

	var objs []View
	for i := 0; i < btext.Len(); i++ {
		switch btext.At(i) {
		case '{':
			end := balance(btext, i, "{", "}", nil)
			if end < 0 {
				return objs, nil // unterminated trailing object
			}
			objs = append(objs, body.sub(i, end+1))
			i = end
		case '"':
			// A string between objects is not an element we want, but its
			// contents must not be mistaken for structure.
			end := closeQuote(btext, i)
			if end < 0 {
				return objs, nil
			}
			i = end
		}
	}
	return objs, nil
}

// StructureError reports that an input buffer does not have the overall shape
// of a JSON array of objects.
type StructureError struct {
	Offset  int    // byte offset in the input where the problem was found
	Message string // description of the problem
}

// Error satisfies the error interface.
func (e *StructureError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Message, e.Offset)
}

func structureErrorf(offset int, msg string, args ...any) *StructureError {
	return &StructureError{Offset: offset, Message: fmt.Sprintf(msg, args...)}
}
