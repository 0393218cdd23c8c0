// Package source implements the engine's read-request protocol: a uniform
// contract between field parsers and byte sources, plus the two
// implementations field parsers are written against — a one-shot buffer
// and an accumulating, backpressured stream.
//
// The protocol is a translation of a continuation-passing read(n, cb)
// contract into a blocking method call: a source's Read either returns
// immediately (BufferSource) or parks the calling goroutine until enough
// bytes have arrived (StreamSource). Field parsers are written as
// straight-line Go against Source and never need to know which.
package source

// Source is a byte source satisfying fixed-size read requests.
//
// Read(n) either returns exactly n contiguous bytes (buf[offset:offset+n])
// with ok=true, or returns ok=false at EOF. It is never asked to, and never
// does, deliver a partial read. n must be >= 1. A source is used by a
// single parse at a time: at most one Read call is ever in flight.
type Source interface {
	Read(n int) (buf []byte, offset int, ok bool)
}
