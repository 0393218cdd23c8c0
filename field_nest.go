package binparse

import (
	"github.com/rs/zerolog"
	"github.com/stewi1014/binparse/source"
)

type nestStep struct {
	field string
	sub   *Parser
	opts  Options
}

func (s *nestStep) fixedSize() (int, bool) { return s.sub.FixedSize() }

func (s *nestStep) run(src source.Source, obj Object, _ *zerolog.Logger) (bool, error) {
	sub, wrote, eof, err := s.sub.parseFrom(src, obj)
	if err != nil {
		return false, err
	}
	if eof && !wrote {
		// Nothing at all was read for the nested object: propagate EOF
		// to the parent rather than storing an empty sub-object (§4.5
		// "Nest").
		return true, nil
	}

	val, err := s.opts.applyAssertAndFormat(s.field, obj, interface{}(sub))
	if err != nil {
		return false, err
	}
	obj[s.field] = val
	return false, nil
}

// Nest appends a sub-descriptor's output under field (§4.5 "Nest"). sub's
// own Constructor, if set, receives obj (the parent being built) as
// context.
func (p *Parser) Nest(field string, sub *Parser, opts ...Options) *Parser {
	if sub == nil {
		panic(BuildError(field, "nest requires a non-nil sub-parser"))
	}
	return p.addStep(&nestStep{field: field, sub: sub, opts: firstOptions(opts)})
}
