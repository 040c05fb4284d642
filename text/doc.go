// Package text provides the element types that can sit inside a pair:
// owned strings, borrowed views into an immutable backing buffer, and
// copy-on-write values that are one or the other.
//
// # The Text capability
//
// Every element type implements [Text]:
//
//	type Text interface {
//	    Borrow() string
//	}
//
// Borrow returns a read-only view of the element's text. Types without a
// Borrow method cannot be used as pair elements; the compiler rejects them.
//
// # Buffers and views
//
// A [Buffer] owns an immutable string and is always handled through a
// pointer, so its address is fixed from the moment it is created. A [View]
// does not hold a substring. It stores the buffer pointer plus an offset and
// a length, and recomputes its text on every Borrow:
//
//	buf := text.NewBuffer("hello")
//	head, tail, _ := buf.SplitAt(1)
//	head.Borrow() // → "h"
//	tail.Borrow() // → "ello"
//
// Because a View keeps its buffer reachable, a view can never outlive the
// data it reads.
//
// # Copy-on-write values
//
// A [Cow] is decided at construction: [Borrowed] wraps a View, [OwnedCow]
// wraps an independent string. Readers cannot tell the two apart:
//
//	a := text.Borrowed(buf.MustSlice(0, 1))
//	b := text.OwnedCow("B")
//	a.Borrow(), b.Borrow() // → "h", "B"
//
// Slicing is by byte offset, and both ends of a slice must fall on UTF-8
// boundaries; see [Buffer.Slice].
package text
