package text

// Text is the capability shared by every pair element: it can be viewed as
// read-only text.
//
// The returned string must not change between calls on the same value.
type Text interface {
	Borrow() string
}

// Sourced is implemented by elements that may borrow from a [Buffer].
// Source returns nil when the element owns its text.
type Sourced interface {
	Source() *Buffer
}

// Owned is an element that owns its text outright.
type Owned string

// Borrow returns the owned string.
func (o Owned) Borrow() string { return string(o) }

// String implements fmt.Stringer.
func (o Owned) String() string { return string(o) }

// Equal reports whether a and b borrow the same text, whatever their
// concrete element types.
//
//	text.Equal(text.Owned("h"), buf.MustSlice(0, 1)) // → true for buf "hi"
func Equal[A, B Text](a A, b B) bool {
	return a.Borrow() == b.Borrow()
}

// ASCIIUpper returns a copy of s with ASCII letters a-z mapped to A-Z.
// All other bytes, including non-ASCII UTF-8 sequences, are left as is.
func ASCIIUpper(s string) string {
	return mapASCII(s, 'a', 'z', 'A'-'a')
}

// ASCIILower returns a copy of s with ASCII letters A-Z mapped to a-z.
func ASCIILower(s string) string {
	return mapASCII(s, 'A', 'Z', 'a'-'A')
}

func mapASCII(s string, lo, hi byte, delta int) string {
	b := []byte(s)
	for i, c := range b {
		if c >= lo && c <= hi {
			b[i] = byte(int(c) + delta)
		}
	}
	return string(b)
}
