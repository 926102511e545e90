// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init routes the global logger to a console writer on w at the given level.
// An unknown level falls back to warn and is reported.
func Init(w io.Writer, level string, color bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !color}
	log.Logger = log.Output(output)

	SetLevel(level)
}

// SetLevel sets the global level. An unknown level falls back to warn.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if err != nil {
			log.Warn().Str("loglevel", level).Msg("unknown log level, using warn")
		}
		return
	}
	zerolog.SetGlobalLevel(lvl)
	log.Trace().Str("loglevel", lvl.String()).Msg("log level set")
}

// ErrorWithStack logs err with a stack trace at error level.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
