package text

import "strings"

// Cow is a copy-on-write text value: either a borrowed [View] or an owned
// string, fixed at construction. Readers see the same text either way.
type Cow struct {
	view  View
	owned string
	own   bool
}

// Borrowed returns a Cow that borrows v.
func Borrowed(v View) Cow {
	return Cow{view: v}
}

// OwnedCow returns a Cow that owns s.
func OwnedCow(s string) Cow {
	return Cow{owned: s, own: true}
}

// Borrow returns the text, whichever way it is held.
func (c Cow) Borrow() string {
	if c.own {
		return c.owned
	}
	return c.view.Borrow()
}

// String implements fmt.Stringer.
func (c Cow) String() string { return c.Borrow() }

// IsOwned reports whether c owns its text.
func (c Cow) IsOwned() bool { return c.own }

// IsBorrowed reports whether c borrows from a buffer.
func (c Cow) IsBorrowed() bool { return !c.own }

// Source returns the buffer c borrows from, or nil if c is owned.
func (c Cow) Source() *Buffer {
	if c.own {
		return nil
	}
	return c.view.Source()
}

// IntoOwned returns an owned Cow with the same text. A borrowed value is
// cloned so that it no longer keeps its buffer reachable.
func (c Cow) IntoOwned() Cow {
	if c.own {
		return c
	}
	return OwnedCow(strings.Clone(c.view.Borrow()))
}
