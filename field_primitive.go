package binparse

import (
	"github.com/rs/zerolog"
	"github.com/stewi1014/binparse/source"
)

type primitiveStep struct {
	field string
	typ   PrimitiveType
	opts  Options
}

func (s *primitiveStep) fixedSize() (int, bool) { return s.typ.Width, true }

func (s *primitiveStep) run(src source.Source, obj Object, _ *zerolog.Logger) (bool, error) {
	buf, off, ok := src.Read(s.typ.Width)
	if !ok {
		return true, nil
	}
	val := s.typ.Decode(buf, off)
	val, err := s.opts.applyAssertAndFormat(s.field, obj, val)
	if err != nil {
		return false, err
	}
	obj[s.field] = val
	return false, nil
}

// primitive appends a fixed-width primitive field using a named entry
// from DefaultPrimitives. Unknown names are a build-time error — the
// primitive table is meant to be complete and closed over at construction
// time, per §6 "one method per entry".
func (p *Parser) primitive(field, typeName string, opts []Options) *Parser {
	typ, ok := DefaultPrimitives[typeName]
	if !ok {
		panic(BuildError(field, "unknown primitive type "+typeName))
	}
	return p.addStep(&primitiveStep{field: field, typ: typ, opts: firstOptions(opts)})
}

func firstOptions(opts []Options) Options {
	if len(opts) > 0 {
		return opts[0]
	}
	return Options{}
}

// U8 appends a uint8 field.
func (p *Parser) U8(field string, opts ...Options) *Parser { return p.primitive(field, "uint8", opts) }

// I8 appends an int8 field.
func (p *Parser) I8(field string, opts ...Options) *Parser { return p.primitive(field, "int8", opts) }

// U16BE appends a big-endian uint16 field.
func (p *Parser) U16BE(field string, opts ...Options) *Parser {
	return p.primitive(field, "uint16be", opts)
}

// U16LE appends a little-endian uint16 field.
func (p *Parser) U16LE(field string, opts ...Options) *Parser {
	return p.primitive(field, "uint16le", opts)
}

// I16BE appends a big-endian int16 field.
func (p *Parser) I16BE(field string, opts ...Options) *Parser {
	return p.primitive(field, "int16be", opts)
}

// I16LE appends a little-endian int16 field.
func (p *Parser) I16LE(field string, opts ...Options) *Parser {
	return p.primitive(field, "int16le", opts)
}

// U32BE appends a big-endian uint32 field.
func (p *Parser) U32BE(field string, opts ...Options) *Parser {
	return p.primitive(field, "uint32be", opts)
}

// U32LE appends a little-endian uint32 field.
func (p *Parser) U32LE(field string, opts ...Options) *Parser {
	return p.primitive(field, "uint32le", opts)
}

// I32BE appends a big-endian int32 field.
func (p *Parser) I32BE(field string, opts ...Options) *Parser {
	return p.primitive(field, "int32be", opts)
}

// I32LE appends a little-endian int32 field.
func (p *Parser) I32LE(field string, opts ...Options) *Parser {
	return p.primitive(field, "int32le", opts)
}

// U64BE appends a big-endian uint64 field.
func (p *Parser) U64BE(field string, opts ...Options) *Parser {
	return p.primitive(field, "uint64be", opts)
}

// U64LE appends a little-endian uint64 field.
func (p *Parser) U64LE(field string, opts ...Options) *Parser {
	return p.primitive(field, "uint64le", opts)
}

// I64BE appends a big-endian int64 field.
func (p *Parser) I64BE(field string, opts ...Options) *Parser {
	return p.primitive(field, "int64be", opts)
}

// I64LE appends a little-endian int64 field.
func (p *Parser) I64LE(field string, opts ...Options) *Parser {
	return p.primitive(field, "int64le", opts)
}

// F32BE appends a big-endian float32 field.
func (p *Parser) F32BE(field string, opts ...Options) *Parser {
	return p.primitive(field, "float32be", opts)
}

// F32LE appends a little-endian float32 field.
func (p *Parser) F32LE(field string, opts ...Options) *Parser {
	return p.primitive(field, "float32le", opts)
}

// F64BE appends a big-endian float64 field.
func (p *Parser) F64BE(field string, opts ...Options) *Parser {
	return p.primitive(field, "float64be", opts)
}

// F64LE appends a little-endian float64 field.
func (p *Parser) F64LE(field string, opts ...Options) *Parser {
	return p.primitive(field, "float64le", opts)
}
