// Package bplog is the engine's warning sink.
//
// It exists for exactly the cases the teacher's encio.Warnings io.Writer
// exists for: conditions that are not fatal to a decode — a partial array
// kept on EOF, a stream parse loop that exited with an error — but worth
// surfacing to an operator. Unlike
// encio.Warnings it is structured, via zerolog, and nil-safe so library
// code never has to check whether a caller bothered to configure one.
package bplog

import (
	"io"

	"github.com/rs/zerolog"
)

// Default is the package-level sink used when a Config does not set its
// own Logger. It discards everything; callers opt in with SetDefault.
var Default = zerolog.New(io.Discard)

// SetDefault replaces the package-level sink, e.g. with
// zerolog.New(os.Stderr).With().Timestamp().Logger().
func SetDefault(l zerolog.Logger) {
	Default = l
}

// Warn logs a non-fatal condition encountered during a decode. field may
// be empty for conditions not tied to one field.
func Warn(l *zerolog.Logger, field, msg string) {
	if l == nil {
		l = &Default
	}
	ev := l.Warn()
	if field != "" {
		ev = ev.Str("field", field)
	}
	ev.Msg(msg)
}
