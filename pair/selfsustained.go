package pair

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-textpair/text"
)

// SelfSustained owns a backing buffer together with two values derived
// from it. Each derived value either borrows from that buffer or owns its
// text independently.
//
// The buffer is allocated before the derived values are computed and is
// never replaced or mutated, so borrowed values remain valid for the whole
// life of the pair. A SelfSustained is immutable after construction.
//
// # Portability note
//
// Languages without borrow tracking can store the same thing as one string
// plus two (offset, length) records, or as two owned strings; this type
// keeps the offset form and recomputes the text on each access. In Python
// this maps to a small frozen dataclass; in TypeScript to a class holding
// the line and two index pairs.
type SelfSustained[T text.Text] struct {
	buf    *text.Buffer
	first  T
	second T
}

// NewSelfSustained stores line in a new buffer and then calls init exactly
// once with that buffer to derive the first and second values.
//
// It returns [ErrNilInit] if init is nil and [ErrForeignView] if a derived
// value implementing [text.Sourced] borrows from any other buffer.
//
// Every borrowed value must come from buf. That includes views over
// literals: text.Borrowed(text.ViewOf("x")) is rejected because ViewOf
// allocates its own buffer. Use [text.OwnedCow] for text that does not come
// from the line:
//
//	pair.NewSelfSustained(line, func(buf *text.Buffer) (text.Cow, text.Cow) {
//	    return text.Borrowed(buf.View()), text.OwnedCow("literal")
//	})
func NewSelfSustained[T text.Text](line string, init func(buf *text.Buffer) (T, T)) (*SelfSustained[T], error) {
	if init == nil {
		return nil, ErrNilInit
	}
	return TryNewSelfSustained(line, func(buf *text.Buffer) (T, T, error) {
		first, second := init(buf)
		return first, second, nil
	})
}

// TryNewSelfSustained is like [NewSelfSustained] for initializers that can
// fail. An initializer error is returned wrapped.
func TryNewSelfSustained[T text.Text](line string, init func(buf *text.Buffer) (T, T, error)) (*SelfSustained[T], error) {
	if init == nil {
		return nil, ErrNilInit
	}
	p := &SelfSustained[T]{buf: text.NewBuffer(line)}
	first, second, err := init(p.buf)
	if err != nil {
		return nil, fmt.Errorf("pair: initializer failed for %q: %w", line, err)
	}
	if !p.owns(first) || !p.owns(second) {
		return nil, ErrForeignView
	}
	p.first, p.second = first, second
	return p, nil
}

// MustSelfSustained is like [NewSelfSustained] but panics on error.
func MustSelfSustained[T text.Text](line string, init func(buf *text.Buffer) (T, T)) *SelfSustained[T] {
	p, err := NewSelfSustained(line, init)
	if err != nil {
		panic(err)
	}
	return p
}

// owns reports whether v is either independent of any buffer or borrows
// from p's own buffer.
func (p *SelfSustained[T]) owns(v T) bool {
	if b, ok := any(v).(*text.Buffer); ok {
		return b == p.buf
	}
	s, ok := any(v).(text.Sourced)
	if !ok {
		return true
	}
	src := s.Source()
	return src == nil || src == p.buf
}

// First returns the first derived value.
func (p *SelfSustained[T]) First() T { return p.first }

// Second returns the second derived value.
func (p *SelfSustained[T]) Second() T { return p.second }

// Line returns the backing text the pair was built from.
func (p *SelfSustained[T]) Line() string { return p.buf.String() }

// Detach returns owned copies of both values that share no memory with the
// backing buffer.
func (p *SelfSustained[T]) Detach() Tuple[text.Owned] {
	return NewTuple(
		text.Owned(strings.Clone(p.first.Borrow())),
		text.Owned(strings.Clone(p.second.Borrow())),
	)
}

// String returns a human-readable representation: "(first, second)".
func (p *SelfSustained[T]) String() string {
	return fmt.Sprintf("(%s, %s)", p.first.Borrow(), p.second.Borrow())
}
