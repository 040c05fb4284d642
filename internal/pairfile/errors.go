package pairfile

import "errors"

var (
	// ErrUnknownTransform is returned when a transform name is not registered.
	ErrUnknownTransform = errors.New("pairfile: unknown transform")

	// ErrAmbiguousSplit is returned when a rule sets both a split index and a
	// separator.
	ErrAmbiguousSplit = errors.New("pairfile: rule sets both at and sep")

	// ErrSeparatorNotFound is returned when a line does not contain the rule's
	// separator.
	ErrSeparatorNotFound = errors.New("pairfile: separator not found")
)
