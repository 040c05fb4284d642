package pair

import (
	"bufio"
	"io"
	"iter"
	"os"
	"strconv"

	"github.com/hasbyte1/go-textpair/text"
)

// Format renders p as a single line with both elements quoted:
//
//	pair.Format[text.Owned](pair.NewTuple[text.Owned]("foo", "bar")) // → `"foo" "bar"`
func Format[T text.Text](p Pair[T]) string {
	return strconv.Quote(p.First().Borrow()) + " " + strconv.Quote(p.Second().Borrow())
}

// Fprint writes one line per pair to w, in sequence order, in the form
// produced by [Format]. It stops at and returns the first write error.
func Fprint[T text.Text](w io.Writer, pairs iter.Seq[Pair[T]]) error {
	bw := bufio.NewWriter(w)
	for p := range pairs {
		if _, err := bw.WriteString(Format(p)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Print is [Fprint] to standard output.
func Print[T text.Text](pairs iter.Seq[Pair[T]]) error {
	return Fprint(os.Stdout, pairs)
}
