// Package binparse is a declarative binary parser combinator library.
//
// A parser is built by chaining field declarations — primitives, nested
// structures, arrays, strings, buffers, bit-fields and tagged unions — onto
// a *Parser. The resulting descriptor can decode a single in-memory buffer
// with Parse, or be driven as a streaming decoder with Stream, consuming an
// arbitrarily-chunked byte stream and emitting one decoded Object per
// complete parse.
//
// The engine is read-only: there is no corresponding write/serialize path,
// no schema-file loader and no CLI. Endianness is fixed per primitive field
// at build time; there is no seeking or random access into the underlying
// stream.
package binparse
