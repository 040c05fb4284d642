package pair_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hasbyte1/go-textpair/pair"
	"github.com/hasbyte1/go-textpair/text"
)

func TestFprintHeterogeneous(t *testing.T) {
	var buf bytes.Buffer
	err := pair.Fprint(&buf, pair.All[text.Owned](
		pair.NewTuple[text.Owned]("foo", "bar"),
		pair.Array[text.Owned]{"hello", "world"},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\"foo\" \"bar\"\n\"hello\" \"world\"\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestFprintSelfSustained(t *testing.T) {
	var ps []pair.Pair[text.Cow]
	for _, line := range []string{"ab", "cd", "ef"} {
		ps = append(ps, pair.MustSelfSustained(line, borrowHeadUpperTail))
	}

	var buf bytes.Buffer
	if err := pair.Fprint(&buf, pair.All(ps...)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\"a\" \"B\"\n\"c\" \"D\"\n\"e\" \"F\"\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestFprintMixedCowImplementers(t *testing.T) {
	var buf bytes.Buffer
	err := pair.Fprint(&buf, pair.All[text.Cow](
		pair.NewTuple(text.OwnedCow("t1"), text.Borrowed(text.ViewOf("t2"))),
		pair.Array[text.Cow]{text.OwnedCow("a1"), text.OwnedCow("a2")},
		pair.MustSelfSustained("s1", borrowHeadUpperTail),
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\"t1\" \"t2\"\n\"a1\" \"a2\"\n\"s\" \"1\"\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestFprintEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := pair.Fprint(&buf, pair.All[text.Owned]()); err != nil || buf.Len() != 0 {
		t.Fatalf("got %q, %v", buf.String(), err)
	}
}

func TestFormatQuotes(t *testing.T) {
	got := pair.Format[text.Owned](pair.NewTuple[text.Owned]("a\"b", "tab\t"))
	if got != `"a\"b" "tab\t"` {
		t.Fatalf("got %s", got)
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestFprintWriteError(t *testing.T) {
	err := pair.Fprint(failingWriter{}, pair.All[text.Owned](pair.NewTuple[text.Owned]("a", "b")))
	if !errors.Is(err, errWrite) {
		t.Fatalf("expected write error, got %v", err)
	}
}
