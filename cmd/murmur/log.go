package main

import (
	"os"

	"github.com/rs/zerolog"
)

// newLogger builds a console-writer zerolog.Logger at the given verbosity.
// quiet suppresses everything below error; verbose enables debug.
func newLogger(verbose, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !isTerminal(os.Stderr)}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
