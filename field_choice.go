package binparse

import (
	"github.com/rs/zerolog"
	"github.com/stewi1014/binparse/source"
)

// ChooserFunc selects a sub-descriptor given the object decoded so far
// (§4.5 "Choice"). It must not return nil.
type ChooserFunc func(obj Object) *Parser

type choiceStep struct {
	field      string
	candidates []*Parser // optional, stored but not used in decoding — see ChoiceOptions
	chooser    ChooserFunc
	opts       Options
}

// choice's fixed size is always unknown: the options hint, when given,
// isn't guaranteed to be exhaustive or size-uniform across branches, and
// the chooser itself is an opaque function of runtime data. Treating
// choice as permanently unknown is the conservative answer consistent
// with §3 invariant 2 — it simply propagates, the same as any other
// unknown-sized step.
func (s *choiceStep) fixedSize() (int, bool) { return 0, false }

func (s *choiceStep) run(src source.Source, obj Object, _ *zerolog.Logger) (bool, error) {
	sub := s.chooser(obj)
	if sub == nil {
		return false, BuildError(s.field, "chooser returned a nil parser")
	}

	subObj, wrote, eof, err := sub.parseFrom(src, obj)
	if err != nil {
		return false, err
	}
	if eof && !wrote {
		return true, nil
	}

	val, err := s.opts.applyAssertAndFormat(s.field, obj, interface{}(subObj))
	if err != nil {
		return false, err
	}
	obj[s.field] = val
	return false, nil
}

// ChoiceOptions configures a Choice field (§4.1 "choice(name, opts{options?}, chooser)").
type ChoiceOptions struct {
	Options

	// Candidates optionally lists the candidate sub-descriptors, as
	// documentation at the call site. It is stored but never read, and no
	// method exposes it; the chooser alone decides.
	Candidates []*Parser
}

// Choice appends a discriminated-union field: chooser picks the
// sub-descriptor to run against obj, the object built so far (§4.5
// "Choice").
func (p *Parser) Choice(field string, chooser ChooserFunc, opts ...ChoiceOptions) *Parser {
	if chooser == nil {
		panic(BuildError(field, "choice requires a chooser function"))
	}
	var co ChoiceOptions
	if len(opts) > 0 {
		co = opts[0]
	}
	return p.addStep(&choiceStep{field: field, candidates: co.Candidates, chooser: chooser, opts: co.Options})
}
