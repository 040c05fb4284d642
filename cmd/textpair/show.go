package main

import (
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-textpair/internal/pairfile"
	"github.com/hasbyte1/go-textpair/pair"
	"github.com/hasbyte1/go-textpair/text"
)

func newShowCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print the pairs defined in a TOML pair file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := pairfile.Load(args[0])
			if err != nil {
				return err
			}
			r.log.Info().Str("file", args[0]).Int("pairs", len(ps)).Msg("pair file loaded")
			return emit(cmd.OutOrStdout(), r.cfg.Unique, pair.All(upcast(ps)...))
		},
	}
}

func upcast(ps []*pair.SelfSustained[text.Cow]) []pair.Pair[text.Cow] {
	out := make([]pair.Pair[text.Cow], len(ps))
	for i, p := range ps {
		out[i] = p
	}
	return out
}
