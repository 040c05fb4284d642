package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-textpair/pair"
	"github.com/hasbyte1/go-textpair/text"
)

func newDemoCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in pair examples.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.demo(cmd.OutOrStdout())
		},
	}
}

// demo prints the first element of every homogeneous variant, then a
// self-sustained pair, then two full listings.
func (r *runner) demo(w io.Writer) error {
	if err := demoVariants(w); err != nil {
		return err
	}

	ss, err := pair.TryNewSelfSustained("Ab", borrowHeadUpperTail)
	if err != nil {
		return err
	}
	if err := printFirst[text.Cow](w, ss); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, pair.Format[text.Cow](ss)); err != nil {
		return err
	}
	r.log.Debug().Str("line", ss.Line()).Msg("self-sustained pair built")

	owned := pair.All[text.Owned](
		pair.NewTuple[text.Owned]("foo", "bar"),
		pair.Array[text.Owned]{"hello", "world"},
	)
	if err := emit(w, r.cfg.Unique, owned); err != nil {
		return err
	}

	var built []pair.Pair[text.Cow]
	for _, line := range []string{"ab", "cd", "ef"} {
		p, err := pair.TryNewSelfSustained(line, borrowHeadUpperTail)
		if err != nil {
			return err
		}
		built = append(built, p)
	}
	return emit(w, r.cfg.Unique, pair.All(built...))
}

func demoVariants(w io.Writer) error {
	p1 := pair.NewTuple[text.Owned]("A", "B")
	if err := printFirst[text.Owned](w, p1); err != nil {
		return err
	}

	p2 := pair.NewTuple(text.ViewOf("A"), text.ViewOf("B"))
	if err := printFirst[text.View](w, p2); err != nil {
		return err
	}

	txt := text.NewBuffer("AB")
	head, tail, err := txt.SplitAt(1)
	if err != nil {
		return err
	}
	if err := printFirst[text.View](w, pair.NewTuple(head, tail)); err != nil {
		return err
	}

	p4 := pair.NewTuple(text.Borrowed(head), text.OwnedCow("B"))
	return printFirst[text.Cow](w, p4)
}

func printFirst[T text.Text](w io.Writer, p pair.Pair[T]) error {
	_, err := fmt.Fprintln(w, strconv.Quote(p.First().Borrow()))
	return err
}

func borrowHeadUpperTail(buf *text.Buffer) (text.Cow, text.Cow, error) {
	head, tail, err := buf.SplitAt(1)
	if err != nil {
		return text.Cow{}, text.Cow{}, err
	}
	return text.Borrowed(head), text.OwnedCow(text.ASCIIUpper(tail.Borrow())), nil
}
