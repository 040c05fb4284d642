// Package logging builds the zerolog logger used by the textpair runner.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the given level
// ("debug", "info", "warn", ...). An empty level means warn.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	if level == "" {
		level = zerolog.WarnLevel.String()
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logging: invalid level %q: %w", level, err)
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "textpair").Logger(), nil
}
