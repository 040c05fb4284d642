package pairfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hasbyte1/go-textpair/pair"
	"github.com/hasbyte1/go-textpair/text"
)

// Rule describes how to turn one line into a self-sustained pair.
//
// When Sep is set the line is split around its first occurrence and the
// separator belongs to neither side. Otherwise the line is split at byte
// index At.
type Rule struct {
	At     int
	Sep    string
	First  TransformName
	Second TransformName
}

// DefaultRule borrows the first byte and upper-cases the rest.
func DefaultRule() Rule {
	return Rule{At: 1, First: Borrow, Second: Upper}
}

// Validate checks the rule without building anything.
func (r Rule) Validate() error {
	if r.At > 0 && r.Sep != "" {
		return ErrAmbiguousSplit
	}
	if r.At < 0 {
		return fmt.Errorf("pairfile: split index %d: %w", r.At, text.ErrOutOfRange)
	}
	if _, err := LookupTransform(r.First); err != nil {
		return err
	}
	if _, err := LookupTransform(r.Second); err != nil {
		return err
	}
	return nil
}

// Build stores line in a new self-sustained pair and derives both sides.
func (r Rule) Build(line string) (*pair.SelfSustained[text.Cow], error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	first, _ := LookupTransform(r.First)
	second, _ := LookupTransform(r.Second)

	return pair.TryNewSelfSustained(line, func(buf *text.Buffer) (text.Cow, text.Cow, error) {
		head, tail, err := r.split(buf)
		if err != nil {
			return text.Cow{}, text.Cow{}, err
		}
		return first(head), second(tail), nil
	})
}

func (r Rule) split(buf *text.Buffer) (text.View, text.View, error) {
	if r.Sep == "" {
		return buf.SplitAt(r.At)
	}
	i := strings.Index(buf.String(), r.Sep)
	if i < 0 {
		return text.View{}, text.View{}, fmt.Errorf("%w: %q", ErrSeparatorNotFound, r.Sep)
	}
	head, err := buf.Slice(0, i)
	if err != nil {
		return text.View{}, text.View{}, err
	}
	tail, err := buf.Slice(i+len(r.Sep), buf.Len())
	if err != nil {
		return text.View{}, text.View{}, err
	}
	return head, tail, nil
}

// SplitLines builds one pair per non-empty line read from rd. Lines may be
// of any length; a trailing "\r" is dropped.
func SplitLines(rd io.Reader, rule Rule) ([]*pair.SelfSustained[text.Cow], error) {
	var out []*pair.SelfSustained[text.Cow]
	br := bufio.NewReader(rd)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("pairfile: read lines: %w", err)
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if line != "" {
			p, berr := rule.Build(line)
			if berr != nil {
				return nil, fmt.Errorf("pairfile: line %d: %w", n, berr)
			}
			out = append(out, p)
		}
		if err == io.EOF {
			return out, nil
		}
	}
}
