package binparse

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/stewi1014/binparse/source"
)

// StringOptions configures a String field (§4.5 "String"). Exactly one of
// Length or ZeroTerminated must be set — the build-time error §4.7 names
// for "string with neither length nor zeroTerminated".
type StringOptions struct {
	Options

	// Length resolves the fixed byte length to read.
	Length interface{}

	// ZeroTerminated reads one byte at a time until a zero byte (the
	// terminator, not included in the decoded string) or MaxLength is
	// reached.
	ZeroTerminated bool

	// MaxLength optionally bounds a zero-terminated read. Ignored for
	// fixed-length strings.
	MaxLength interface{}

	// StripNull strips trailing NUL bytes from the decoded string after
	// decoding (meaningful for fixed-length strings padded with NULs;
	// a no-op for ZeroTerminated, whose terminator is already excluded).
	StripNull bool
}

type stringStep struct {
	field string
	opts  StringOptions
}

func (s *stringStep) fixedSize() (int, bool) {
	if s.opts.ZeroTerminated {
		return 0, false
	}
	n, ok := s.opts.Length.(int)
	if !ok {
		return 0, false
	}
	return n, true
}

func (s *stringStep) run(src source.Source, obj Object, _ *zerolog.Logger) (bool, error) {
	var raw []byte

	if s.opts.ZeroTerminated {
		maxN := -1
		if s.opts.MaxLength != nil {
			n, err := resolveLength(s.field, s.opts.MaxLength, obj)
			if err != nil {
				return false, err
			}
			maxN = n
		}

		var buf []byte
		for {
			b, off, ok := src.Read(1)
			if !ok {
				if len(buf) == 0 {
					return true, nil
				}
				break
			}
			c := b[off]
			if c == 0 {
				break
			}
			buf = append(buf, c)
			if maxN >= 0 && len(buf) >= maxN {
				break
			}
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
		}
	}

	str := string(raw)
	if s.opts.StripNull {
		str = strings.TrimRight(str, "\x00")
	}

	val, err := s.opts.applyAssertAndFormat(s.field, obj, interface{}(str))
	if err != nil {
		return false, err
	}
	obj[s.field] = val
	return false, nil
}

// String appends a string field, either fixed-length or zero-terminated
// (§4.5 "String").
func (p *Parser) String(field string, opts StringOptions) *Parser {
	if opts.Length == nil && !opts.ZeroTerminated {
		panic(BuildError(field, "string requires Length or ZeroTerminated"))
	}
	if opts.Length != nil && opts.ZeroTerminated {
		panic(BuildError(field, "string cannot set both Length and ZeroTerminated"))
	}
	return p.addStep(&stringStep{field: field, opts: opts})
}
