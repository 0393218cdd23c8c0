package binparse

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/stewi1014/binparse/bitfield"
	"github.com/stewi1014/binparse/source"
)

// BitField names one entry of a ProcessBitfield block (§4.5 "BitField").
// Path addresses a (possibly nested) field on the object being built — a
// single-element Path writes obj[Path[0]] directly; a longer Path creates
// intermediate Objects on demand, the same nesting ProcessBitfield's JS
// original produces by assigning into dotted keys.
type BitField struct {
	Options

	Path []string
	Bits int
}

type bitfieldStep struct {
	fields       []BitField
	bitsPerEntry []int
	byteWidth    int
}

func (s *bitfieldStep) fixedSize() (int, bool) { return s.byteWidth, true }

func (s *bitfieldStep) run(src source.Source, obj Object, _ *zerolog.Logger) (bool, error) {
	buf, off, ok := src.Read(s.byteWidth)
	if !ok {
		return true, nil
	}

	values, err := bitfield.Unpack(buf[off:off+s.byteWidth], s.bitsPerEntry)
	if err != nil {
		return false, BuildError(bitfieldFieldName(s.fields), err.Error())
	}

	for i, f := range s.fields {
		val, err := f.Options.applyAssertAndFormat(bitfieldFieldName([]BitField{f}), obj, interface{}(values[i]))
		if err != nil {
			return false, err
		}
		writeBitfieldPath(obj, f.Path, val)
	}
	return false, nil
}

func bitfieldFieldName(fields []BitField) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = strings.Join(f.Path, ".")
	}
	return "bitfield:" + strings.Join(names, ",")
}

// writeBitfieldPath writes val at the nested location path describes,
// creating intermediate Objects on demand.
func writeBitfieldPath(obj Object, path []string, val interface{}) {
	cur := obj
	for _, key := range path[:len(path)-1] {
		next, ok := cur[key].(Object)
		if !ok {
			next = make(Object)
			cur[key] = next
		}
		cur = next
	}
	cur[path[len(path)-1]] = val
}

// ProcessBitfield appends a single packed bit-field block decoding every
// entry in fields, in order, from one contiguous run of bytes (§4.5
// "BitField"). The combined width of fields must not exceed
// bitfield.MaxWidth; builds exceeding it are rejected rather than losing
// precision silently.
func (p *Parser) ProcessBitfield(fields []BitField) *Parser {
	if len(fields) == 0 {
		panic(BuildError("bitfield", "ProcessBitfield requires at least one field"))
	}

	bits := make([]int, len(fields))
	for i, f := range fields {
		if len(f.Path) == 0 {
			panic(BuildError("bitfield", "every entry needs a non-empty Path"))
		}
		bits[i] = f.Bits
	}

	total, err := bitfield.Validate(bits)
	if err != nil {
		panic(BuildError(bitfieldFieldName(fields), err.Error()))
	}

	return p.addStep(&bitfieldStep{
		fields:       fields,
		bitsPerEntry: bits,
		byteWidth:    bitfield.ByteWidth(total),
	})
}
