package text

import (
	"strings"
	"unicode/utf8"
)

// Buffer owns an immutable backing string. It is always used through a
// pointer; once allocated, neither its address nor its contents change.
type Buffer struct {
	s string
}

// NewBuffer allocates a Buffer holding s.
func NewBuffer(s string) *Buffer {
	return &Buffer{s: s}
}

// Len returns the length of the buffer in bytes.
func (b *Buffer) Len() int { return len(b.s) }

// String returns the full buffer contents.
func (b *Buffer) String() string { return b.s }

// Borrow returns the full buffer contents, so a Buffer is itself [Text].
func (b *Buffer) Borrow() string { return b.s }

// View returns a view over the whole buffer.
func (b *Buffer) View() View {
	return View{buf: b, off: 0, n: len(b.s)}
}

// Slice returns a view of the half-open byte range [start, end).
//
// It returns [ErrOutOfRange] if start < 0, end < start or end > Len(), and
// [ErrNotCharBoundary] if either bound splits a UTF-8 sequence.
func (b *Buffer) Slice(start, end int) (View, error) {
	if start < 0 || end < start || end > len(b.s) {
		return View{}, ErrOutOfRange
	}
	if !b.isBoundary(start) || !b.isBoundary(end) {
		return View{}, ErrNotCharBoundary
	}
	return View{buf: b, off: start, n: end - start}, nil
}

// MustSlice is like [Buffer.Slice] but panics on error.
func (b *Buffer) MustSlice(start, end int) View {
	v, err := b.Slice(start, end)
	if err != nil {
		panic(err)
	}
	return v
}

// SplitAt returns the views [0, i) and [i, Len()).
func (b *Buffer) SplitAt(i int) (View, View, error) {
	head, err := b.Slice(0, i)
	if err != nil {
		return View{}, View{}, err
	}
	tail, err := b.Slice(i, len(b.s))
	if err != nil {
		return View{}, View{}, err
	}
	return head, tail, nil
}

func (b *Buffer) isBoundary(i int) bool {
	return i == len(b.s) || utf8.RuneStart(b.s[i])
}

// View is a borrowed, read-only window into a [Buffer], stored as an offset
// and a length. The zero View borrows the empty string.
type View struct {
	buf *Buffer
	off int
	n   int
}

// ViewOf returns a view over a freshly allocated buffer holding s.
func ViewOf(s string) View {
	return NewBuffer(s).View()
}

// Borrow recomputes the viewed text from the backing buffer.
func (v View) Borrow() string {
	if v.buf == nil {
		return ""
	}
	return v.buf.s[v.off : v.off+v.n]
}

// String implements fmt.Stringer.
func (v View) String() string { return v.Borrow() }

// Len returns the length of the view in bytes.
func (v View) Len() int { return v.n }

// Offset returns the byte offset of the view within its buffer.
func (v View) Offset() int { return v.off }

// Source returns the buffer the view reads from, or nil for the zero View.
func (v View) Source() *Buffer { return v.buf }

// IsZero reports whether v is the zero View.
func (v View) IsZero() bool { return v.buf == nil }

// ToOwned returns a copy of the viewed text that shares no memory with the
// buffer.
func (v View) ToOwned() Owned {
	return Owned(strings.Clone(v.Borrow()))
}
