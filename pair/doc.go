// Package pair provides a generic two-slot abstraction over text-like
// values: owned strings, borrowed views and copy-on-write values.
//
// # The Pair capability
//
// [Pair] is generic over its element type, which must implement
// [text.Text]:
//
//	type Pair[T text.Text] interface {
//	    First() T
//	    Second() T
//	}
//
// Accessors return values, never pointers into the container. An element
// is either an owned string or an offset view that keeps its own buffer
// reachable, so a returned element stays valid for as long as the caller
// holds it, independently of the pair it came from.
//
// # Implementers
//
//   - [Tuple] — a two-field value, built with [NewTuple].
//   - [Array] — a fixed two-element array.
//   - [SelfSustained] — owns a backing [text.Buffer] and two values derived
//     from it by an initializer that runs once, after the buffer is in place:
//
//	p, err := pair.NewSelfSustained("Ab", func(buf *text.Buffer) (text.Cow, text.Cow) {
//	    head, tail, _ := buf.SplitAt(1)
//	    return text.Borrowed(head), text.OwnedCow(text.ASCIIUpper(tail.Borrow()))
//	})
//	p.First().Borrow(), p.Second().Borrow() // → "A", "B"
//
// # Consumers
//
// [Fprint] and [Print] write one line per pair, each element quoted:
//
//	pair.Print(pair.All[text.Owned](
//	    pair.NewTuple[text.Owned]("foo", "bar"),
//	    pair.Array[text.Owned]{"hello", "world"},
//	))
//	// "foo" "bar"
//	// "hello" "world"
//
// Package-level helpers cover the usual sequence operations: [Zip],
// [Unzip], [Map], [Equal], and fingerprint-based de-duplication with
// [Fingerprint] and [Unique].
package pair
