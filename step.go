package binparse

import (
	"github.com/rs/zerolog"
	"github.com/stewi1014/binparse/source"
)

// step is one decode action in a descriptor's chain (§3 "Field step").
//
// run either writes exactly one field — or, for a bit-field block, all of
// its entries — into obj and returns eof=false, or reaches end of input
// before it could do so and returns eof=true having written nothing
// (§3 invariant 1). Composite steps (Nest/Choice/Array-of-Nest) relax this
// slightly for their own interior sub-parses — see field_nest.go — but
// never for the outer field they themselves contribute. log is the
// descriptor's configured warning sink (never nil) for tolerated-but-
// unusual conditions.
type step interface {
	run(src source.Source, obj Object, log *zerolog.Logger) (eof bool, err error)

	// fixedSize returns this step's contribution to the descriptor's
	// total byte size, or ok=false if it cannot be known ahead of a
	// decode (§3 invariant 2).
	fixedSize() (n int, ok bool)
}
