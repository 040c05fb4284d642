package pair

import (
	"iter"
	"slices"

	"github.com/hasbyte1/go-textpair/text"
)

// All returns a sequence over ps. It is the usual way to feed a
// heterogeneous list of implementers to [Fprint]:
//
//	pair.All[text.Cow](tuple, array, selfSustained)
func All[T text.Text](ps ...Pair[T]) iter.Seq[Pair[T]] {
	return slices.Values(ps)
}

// Zip pairs firsts[i] with seconds[i].
// Returns [ErrMismatchedLengths] if the slices have different lengths.
//
//	ts, _ := pair.Zip([]text.Owned{"a", "b"}, []text.Owned{"1", "2"})
//	// → [(a, 1) (b, 2)]
func Zip[T text.Text](firsts, seconds []T) ([]Tuple[T], error) {
	if len(firsts) != len(seconds) {
		return nil, ErrMismatchedLengths
	}
	out := make([]Tuple[T], len(firsts))
	for i := range firsts {
		out[i] = Tuple[T]{first: firsts[i], second: seconds[i]}
	}
	return out, nil
}

// Unzip is the inverse of [Zip]: it collects the first and second elements
// of every pair into two slices.
func Unzip[T text.Text](pairs iter.Seq[Pair[T]]) (firsts, seconds []T) {
	for p := range pairs {
		firsts = append(firsts, p.First())
		seconds = append(seconds, p.Second())
	}
	return firsts, seconds
}

// Map applies fn to both elements of p.
//
//	up := pair.Map[text.Owned](t, func(o text.Owned) text.Owned {
//	    return text.Owned(text.ASCIIUpper(o.Borrow()))
//	})
func Map[T, U text.Text](p Pair[T], fn func(T) U) Tuple[U] {
	return Tuple[U]{first: fn(p.First()), second: fn(p.Second())}
}

// Equal reports whether a and b hold the same text in the same slots,
// regardless of their element types.
func Equal[A, B text.Text](a Pair[A], b Pair[B]) bool {
	return text.Equal(a.First(), b.First()) && text.Equal(a.Second(), b.Second())
}
