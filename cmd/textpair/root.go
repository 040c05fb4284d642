package main

import (
	"io"
	"iter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-textpair/internal/config"
	"github.com/hasbyte1/go-textpair/internal/logging"
	"github.com/hasbyte1/go-textpair/pair"
	"github.com/hasbyte1/go-textpair/text"
)

// runner carries the state shared by all subcommands once flags are parsed.
type runner struct {
	cfg config.Config
	log zerolog.Logger
}

// emit prints pairs to w, dropping repeats when unique is set.
func emit[T text.Text](w io.Writer, unique bool, pairs iter.Seq[pair.Pair[T]]) error {
	if unique {
		pairs = pair.Unique(pairs)
	}
	return pair.Fprint(w, pairs)
}

func newRootCmd() *cobra.Command {
	r := &runner{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "textpair",
		Short: "Print pairs of text values.",
		Long: `textpair builds pairs of text values from owned strings, borrowed views ` +
			`and self-sustained buffers, and prints one quoted pair per line. ` +
			`Without a subcommand it runs the built-in demo.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			r.cfg, r.log = cfg, log
			r.log.Debug().Bool("unique", cfg.Unique).Str("cmd", cmd.Name()).Msg("configuration loaded")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.demo(cmd.OutOrStdout())
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default $HOME/.config/textpair/config.toml)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.Bool("unique", false, "drop pairs whose text was already printed")

	root.AddCommand(newDemoCmd(r), newShowCmd(r), newSplitCmd(r))
	return root
}
