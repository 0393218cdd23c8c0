package binparse

import "github.com/stewi1014/binparse/source"

// NewParser returns an empty descriptor. ctor may be nil, in which case
// each parse starts from a fresh empty Object (§4.1 "create(ctor)").
func NewParser(ctor Constructor) *Parser {
	if ctor == nil {
		ctor = defaultConstructor
	}
	zero := 0
	return &Parser{ctor: ctor, fixedSize: &zero}
}

// Parser accumulates field declarations into a composed parser (§3
// "Parser descriptor"). A Parser is built once, by chaining its methods,
// and is then immutable; Parse and Stream may be called on it any number
// of times and from any number of goroutines.
type Parser struct {
	cfg   Config
	ctor  Constructor
	steps []step

	// fixedSize tracks §3 invariant 2: the sum of every step's fixed
	// size, or nil the instant any step reports unknown. Once nil it
	// stays nil — unknown propagates monotonically through composition.
	fixedSize *int
}

// WithConfig attaches cfg to the descriptor. Like the other builder
// methods it returns the Parser for chaining, and is typically the first
// call after NewParser.
func (p *Parser) WithConfig(cfg Config) *Parser {
	p.cfg = cfg
	return p
}

// FixedSize returns the descriptor's total byte size if it is statically
// known — every step fixed, no zero-terminated strings, EOF-terminated
// arrays/buffers, or choices in the chain.
func (p *Parser) FixedSize() (int, bool) {
	if p.fixedSize == nil {
		return 0, false
	}
	return *p.fixedSize, true
}

func (p *Parser) addStep(s step) *Parser {
	p.steps = append(p.steps, s)
	if p.fixedSize != nil {
		if n, ok := s.fixedSize(); ok {
			*p.fixedSize += n
		} else {
			p.fixedSize = nil
		}
	}
	return p
}

// parseFrom runs the chain against src, constructing obj via p.ctor(parent).
//
// It returns the (possibly partial) object, whether any step successfully
// completed, and whether the chain was cut short by EOF. Top-level callers
// (Parse, Stream) collapse any eof=true into "no object produced"; Nest,
// Choice and Array-of-Parser use wrote to decide whether to propagate EOF
// to their own enclosing step or to keep what was read (§4.5 "Nest").
func (p *Parser) parseFrom(src source.Source, parent Object) (obj Object, wrote bool, eof bool, err error) {
	obj = p.ctor(parent)
	log := p.cfg.logger()
	for _, s := range p.steps {
		stepEOF, stepErr := s.run(src, obj, log)
		if stepErr != nil {
			return obj, wrote, false, stepErr
		}
		if stepEOF {
			return obj, wrote, true, nil
		}
		wrote = true
	}
	return obj, wrote, false, nil
}
