package text

import "errors"

// Sentinel errors returned by Buffer slicing operations.
var (
	// ErrOutOfRange is returned when a slice bound is negative, inverted, or
	// past the end of the buffer.
	ErrOutOfRange = errors.New("text: slice bounds out of range")

	// ErrNotCharBoundary is returned when a slice bound falls inside a
	// multi-byte UTF-8 sequence.
	ErrNotCharBoundary = errors.New("text: slice bound is not on a character boundary")
)
