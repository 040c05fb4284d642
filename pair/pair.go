package pair

import (
	"fmt"

	"github.com/hasbyte1/go-textpair/text"
)

// Pair is a container exposing exactly two ordered slots, each holding a
// text-convertible element of type T.
//
// First and Second return elements by value. An element stays readable for
// as long as the caller holds it, even after the pair itself is dropped.
//
// # Portability note
//
// In Python this maps to a Protocol with first() and second() methods; in
// TypeScript to an interface { first(): T; second(): T }. Languages that
// track borrow lifetimes should scope each returned reference to the call,
// not to the implementing type.
type Pair[T text.Text] interface {
	First() T
	Second() T
}

// Tuple holds two elements of the same type. The zero Tuple holds two zero
// elements.
//
// Portability note: in Python this maps to a 2-tuple; in TypeScript to
// [T, T].
type Tuple[T text.Text] struct {
	first  T
	second T
}

// NewTuple returns a Tuple holding first and second.
func NewTuple[T text.Text](first, second T) Tuple[T] {
	return Tuple[T]{first: first, second: second}
}

// First returns the first element.
func (t Tuple[T]) First() T { return t.first }

// Second returns the second element.
func (t Tuple[T]) Second() T { return t.second }

// Values returns both elements.
func (t Tuple[T]) Values() (T, T) { return t.first, t.second }

// Swap returns a Tuple with the elements in reverse order.
func (t Tuple[T]) Swap() Tuple[T] { return Tuple[T]{first: t.second, second: t.first} }

// String returns a human-readable representation: "(first, second)".
func (t Tuple[T]) String() string {
	return fmt.Sprintf("(%s, %s)", t.first.Borrow(), t.second.Borrow())
}

// Array is a fixed two-element sequence. Index 0 is the first slot.
// Being a plain array type, it can be written as a literal:
//
//	pair.Array[text.Owned]{"hello", "world"}
type Array[T text.Text] [2]T

// First returns a[0].
func (a Array[T]) First() T { return a[0] }

// Second returns a[1].
func (a Array[T]) Second() T { return a[1] }
