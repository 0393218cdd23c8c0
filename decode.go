package binparse

import "github.com/stewi1014/binparse/source"

// Parse decodes a single object from buf (§6 "parse(buffer) → object |
// null"). If buf is too short for this descriptor to complete — EOF
// reached before the chain finished — Parse returns (nil, nil): a clean
// absence of output, never an error (§4.7, §8 scenario 1).
func (p *Parser) Parse(buf []byte) (Object, error) {
	src := source.NewBuffer(buf)
	obj, _, eof, err := p.parseFrom(src, nil)
	if err != nil {
		return nil, err
	}
	if eof {
		return nil, nil
	}
	return obj, nil
}
