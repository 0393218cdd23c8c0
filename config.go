package binparse

import (
	"github.com/rs/zerolog"
	"github.com/stewi1014/binparse/bplog"
)

// Config carries settings threaded through a Parser's construction,
// grounded on the teacher's enc.Config: a plain struct attached with
// Parser.WithConfig, never loaded from a file or the environment — spec §6
// rules both out for this library.
//
// The zero value is a usable default.
type Config struct {
	// Logger receives non-fatal warnings: a partial array kept on EOF, a
	// stream parse loop that exited with an error. Nil uses
	// bplog.Default.
	Logger *zerolog.Logger
}

func (c Config) logger() *zerolog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return &bplog.Default
}
