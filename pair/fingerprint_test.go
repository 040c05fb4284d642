package pair_test

import (
	"slices"
	"testing"

	"github.com/hasbyte1/go-textpair/pair"
	"github.com/hasbyte1/go-textpair/text"
)

func TestFingerprintIgnoresElementType(t *testing.T) {
	a := pair.Fingerprint[text.Owned](pair.NewTuple[text.Owned]("a", "B"))
	b := pair.Fingerprint[text.Cow](pair.MustSelfSustained("ab", borrowHeadUpperTail))
	if a != b {
		t.Fatalf("fingerprints differ: %s vs %s", a, b)
	}
}

func TestFingerprintSlotBoundaries(t *testing.T) {
	a := pair.Fingerprint[text.Owned](pair.NewTuple[text.Owned]("ab", "c"))
	b := pair.Fingerprint[text.Owned](pair.NewTuple[text.Owned]("a", "bc"))
	if a == b {
		t.Fatal("moving the slot boundary should change the fingerprint")
	}
}

func TestDigestString(t *testing.T) {
	s := pair.Fingerprint[text.Owned](pair.NewTuple[text.Owned]("", "")).String()
	if len(s) != 64 {
		t.Fatalf("hex digest length: got %d", len(s))
	}
}

func TestUnique(t *testing.T) {
	in := pair.All[text.Owned](
		pair.NewTuple[text.Owned]("a", "1"),
		pair.NewTuple[text.Owned]("b", "2"),
		pair.Array[text.Owned]{"a", "1"},
		pair.NewTuple[text.Owned]("1", "a"),
	)
	var got []string
	for p := range pair.Unique(in) {
		got = append(got, pair.Format(p))
	}
	want := []string{`"a" "1"`, `"b" "2"`, `"1" "a"`}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestUniqueStopsEarly(t *testing.T) {
	in := pair.All[text.Owned](
		pair.NewTuple[text.Owned]("a", "1"),
		pair.NewTuple[text.Owned]("b", "2"),
	)
	n := 0
	for range pair.Unique(in) {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("got %d iterations", n)
	}
}
