package binparse

import (
	"github.com/rs/zerolog"
	"github.com/stewi1014/binparse/source"
)

// BufferOptions configures a Buffer field (§4.5 "Buffer"). Exactly one of
// Length or ReadUntilEOF must be set.
type BufferOptions struct {
	Options

	// Length resolves the number of bytes to read.
	Length interface{}

	// ReadUntilEOF reads every remaining byte from the source instead of
	// a declared length.
	ReadUntilEOF bool

	// Clone copies the read bytes into freshly allocated storage. Without
	// it, the returned slice may alias a stream source's internal chunk
	// storage, which later coalescing can mutate or invalidate (§5
	// "Shared resources").
	Clone bool
}

type bufferStep struct {
	field string
	opts  BufferOptions
}

func (s *bufferStep) fixedSize() (int, bool) {
	if s.opts.ReadUntilEOF {
		return 0, false
	}
	n, ok := s.opts.Length.(int)
	if !ok {
		return 0, false
	}
	return n, true
}

func (s *bufferStep) run(src source.Source, obj Object, _ *zerolog.Logger) (bool, error) {
	var raw []byte

	if s.opts.ReadUntilEOF {
		var buf []byte
		for {
			b, off, ok := src.Read(1)
			if !ok {
				break
			}
			buf = append(buf, b[off])
		}
		if len(buf) == 0 {
			return true, nil
		}
		raw = buf
	} else {
		n, err := resolveLength(s.field, s.opts.Length, obj)
		if err != nil {
			return false, err
		}
		if n > 0 {
			b, off, ok := src.Read(n)
			if !ok {
				return true, nil
			}
			raw = b[off : off+n]
		} else {
			raw = []byte{}
		}
	}

	if s.opts.Clone {
		cp := make([]byte, len(raw))
		copy(cp, raw)
		raw = cp
	}

	val, err := s.opts.applyAssertAndFormat(s.field, obj, interface{}(raw))
	if err != nil {
		return false, err
	}
	obj[s.field] = val
	return false, nil
}

// Buffer appends a raw byte-slice field (§4.5 "Buffer").
func (p *Parser) Buffer(field string, opts BufferOptions) *Parser {
	if opts.Length == nil && !opts.ReadUntilEOF {
		panic(BuildError(field, "buffer requires Length or ReadUntilEOF"))
	}
	if opts.Length != nil && opts.ReadUntilEOF {
		panic(BuildError(field, "buffer cannot set both Length and ReadUntilEOF"))
	}
	return p.addStep(&bufferStep{field: field, opts: opts})
}
