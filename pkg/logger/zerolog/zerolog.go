package zerolog

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds a ready-to-use Adapter. level is a zerolog level name
// ("debug", "info", ...). When json is false, output goes through the
// console writer using timeFormat and the colored flag.
func New(level, timeFormat string, colored, json bool) (*Adapter, error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var out io.Writer = os.Stderr
	if !json {
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: timeFormat,
			NoColor:    !colored,
		}
	}

	l := zerolog.New(out).Level(parsed).With().Timestamp().Logger()
	return NewAdapter(&l), nil
}
