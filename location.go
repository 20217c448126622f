package ghactivity

import (
	"unicode"

	"go4.org/mem"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the length of s in bytes.
func (s Span) Len() int { return s.End - s.Pos }

// A View is a read-only window onto a span of a source buffer. The offsets of
// the span are relative to the complete buffer, not to any enclosing view, so
// a view extracted from deep inside an object still reports where it lies in
// the original input.
//
// A View does not copy the source. The caller must not modify the buffer
// while views into it are in use.
type View struct {
	src mem.RO
	Span
}

// NewView returns a view spanning all of src.
func NewView(src mem.RO) View { return View{src: src, Span: Span{End: src.Len()}} }

// Text returns the contents of v. The result shares storage with the source.
func (v View) Text() mem.RO { return v.src.Slice(v.Pos, v.End) }

// String returns a copy of the contents of v.
func (v View) String() string { return v.Text().StringCopy() }

// sub returns a view of the range [i, j) of v, with i and j relative to the
// start of v.
func (v View) sub(i, j int) View {
	return View{src: v.src, Span: Span{Pos: v.Pos + i, End: v.Pos + j}}
}

// trimSpace returns v with leading and trailing JSON whitespace removed.
func trimSpace(v View) View {
	text := v.Text()
	i, j := 0, text.Len()
	for i < j && isSpace(text.At(i)) {
		i++
	}
	for j > i && isSpace(text.At(j-1)) {
		j--
	}
	return v.sub(i, j)
}

// trimUnicodeSpace returns v with leading and trailing Unicode whitespace
// removed. It is used only at the outer boundary of an input buffer, where
// text other than JSON may surround the array.
func trimUnicodeSpace(v View) View {
	text := v.Text()
	i := text.Len() - mem.TrimLeftFunc(text, unicode.IsSpace).Len()
	j := mem.TrimRightFunc(text, unicode.IsSpace).Len()
	if j < i {
		j = i
	}
	return v.sub(i, j)
}
