package pair

import "errors"

// Sentinel errors returned by pair constructors and helpers.
var (
	// ErrNilInit is returned when a self-sustained pair is built without an
	// initializer.
	ErrNilInit = errors.New("pair: initializer must not be nil")

	// ErrForeignView is returned when an initializer derives a value that
	// borrows from a buffer other than the pair's own.
	ErrForeignView = errors.New("pair: derived value borrows from a foreign buffer")

	// ErrMismatchedLengths is returned by Zip when the two input slices have
	// different lengths.
	ErrMismatchedLengths = errors.New("pair: firsts and seconds must have the same length")
)
