package pairfile

import (
	"fmt"
	"sort"

	"github.com/hasbyte1/go-textpair/text"
)

// TransformName identifies a registered transform.
type TransformName string

const (
	// Borrow keeps the split side as a view into the pair's buffer.
	Borrow TransformName = "borrow"
	// Upper owns an ASCII upper-cased copy.
	Upper TransformName = "upper"
	// Lower owns an ASCII lower-cased copy.
	Lower TransformName = "lower"
	// Copy owns an unchanged copy.
	Copy TransformName = "copy"
)

// Transform derives a pair element from one side of a split line.
type Transform func(v text.View) text.Cow

var transforms = map[TransformName]Transform{
	Borrow: text.Borrowed,
	Upper:  func(v text.View) text.Cow { return text.OwnedCow(text.ASCIIUpper(v.Borrow())) },
	Lower:  func(v text.View) text.Cow { return text.OwnedCow(text.ASCIILower(v.Borrow())) },
	Copy:   func(v text.View) text.Cow { return text.OwnedCow(string(v.ToOwned())) },
}

// LookupTransform returns the transform registered under name. The empty
// name selects [Borrow].
func LookupTransform(name TransformName) (Transform, error) {
	if name == "" {
		name = Borrow
	}
	fn, ok := transforms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}
	return fn, nil
}

// TransformNames returns the registered names in sorted order.
func TransformNames() []TransformName {
	names := make([]TransformName, 0, len(transforms))
	for n := range transforms {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
