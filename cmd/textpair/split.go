package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-textpair/internal/pairfile"
	"github.com/hasbyte1/go-textpair/pair"
)

func newSplitCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [FILE]",
		Short: "Split each input line into a pair and print it.",
		Long: `Split reads lines from FILE, or standard input when FILE is omitted or "-", ` +
			`and splits each non-empty line at --at or around --sep. ` +
			`Each side then goes through the --first and --second transforms.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("split: %w", err)
				}
				defer f.Close()
				in = f
			}
			return r.split(cmd.OutOrStdout(), in)
		},
	}

	f := cmd.Flags()
	f.Int("at", 1, "byte index to split at; ignored when --sep is set unless given explicitly")
	f.String("sep", "", "split around the first occurrence of this separator")
	f.String("first", string(pairfile.Borrow), fmt.Sprintf("transform for the first side %v", pairfile.TransformNames()))
	f.String("second", string(pairfile.Upper), fmt.Sprintf("transform for the second side %v", pairfile.TransformNames()))
	return cmd
}

func (r *runner) split(w io.Writer, in io.Reader) error {
	rule := r.cfg.Split.Rule()
	ps, err := pairfile.SplitLines(in, rule)
	if err != nil {
		return err
	}
	r.log.Info().Int("pairs", len(ps)).Int("at", rule.At).Str("sep", rule.Sep).Msg("lines split")
	return emit(w, r.cfg.Unique, pair.All(upcast(ps)...))
}
