package binparse_test

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/binparse"
)

// TestScenarioTwoUint8s covers the concrete scenario of two fixed uint8
// fields decoded in sequence.
func TestScenarioTwoUint8s(t *testing.T) {
	p := binparse.NewParser(nil).U8("a").U8("b")

	obj, err := p.Parse([]byte{0x01, 0x02})
	td.CmpNoError(t, err)
	td.Cmp(t, obj, binparse.Object{"a": uint8(1), "b": uint8(2)})
}

// TestScenarioTwoUint8sShortBuffer covers the top-level EOF collapse: even
// though "a" would decode successfully, a short buffer yields (nil, nil),
// never a partial object.
func TestScenarioTwoUint8sShortBuffer(t *testing.T) {
	p := binparse.NewParser(nil).U8("a").U8("b")

	obj, err := p.Parse([]byte{0x01})
	td.CmpNoError(t, err)
	td.CmpNil(t, obj)
}

// TestScenarioZeroTerminatedString covers a zero-terminated string
// followed by a trailing field.
func TestScenarioZeroTerminatedString(t *testing.T) {
	p := binparse.NewParser(nil).
		String("name", binparse.StringOptions{ZeroTerminated: true}).
		U8("flag")

	obj, err := p.Parse([]byte("hi\x00\x07"))
	td.CmpNoError(t, err)
	td.Cmp(t, obj, binparse.Object{"name": "hi", "flag": uint8(7)})
}

// TestScenarioLengthPrefixedArray covers a count decoded from an earlier
// field driving an array of scalar primitive elements.
func TestScenarioLengthPrefixedArray(t *testing.T) {
	p := binparse.NewParser(nil).
		U8("n").
		Array("xs", binparse.ArrayOptions{Type: "uint16be", Length: "n"})

	obj, err := p.Parse([]byte{0x02, 0x00, 0x0a, 0x00, 0x0b})
	td.CmpNoError(t, err)
	td.Cmp(t, obj, binparse.Object{
		"n":  uint8(2),
		"xs": []interface{}{uint16(10), uint16(11)},
	})
}

// TestScenarioBitField covers the packed bit-field extraction
// a:3, b:5, c:8 over 0xA5 0xC3.
func TestScenarioBitField(t *testing.T) {
	p := binparse.NewParser(nil).ProcessBitfield([]binparse.BitField{
		{Path: []string{"a"}, Bits: 3},
		{Path: []string{"b"}, Bits: 5},
		{Path: []string{"c"}, Bits: 8},
	})

	obj, err := p.Parse([]byte{0xA5, 0xC3})
	td.CmpNoError(t, err)
	td.Cmp(t, obj, binparse.Object{
		"a": uint64(5),
		"b": uint64(5),
		"c": uint64(195),
	})
}

// TestScenarioChoice covers a discriminator field selecting between two
// sub-descriptors by an earlier field's value.
func TestScenarioChoice(t *testing.T) {
	intBranch := binparse.NewParser(nil).U8("value")
	strBranch := binparse.NewParser(nil).String("value", binparse.StringOptions{Length: 2})

	p := binparse.NewParser(nil).
		U8("kind").
		Choice("payload", func(obj binparse.Object) *binparse.Parser {
			if obj["kind"].(uint8) == 0 {
				return intBranch
			}
			return strBranch
		})

	obj, err := p.Parse([]byte{0x00, 0x2a})
	td.CmpNoError(t, err)
	td.Cmp(t, obj, binparse.Object{
		"kind":    uint8(0),
		"payload": binparse.Object{"value": uint8(42)},
	})

	obj, err = p.Parse([]byte{0x01, 'h', 'i'})
	td.CmpNoError(t, err)
	td.Cmp(t, obj, binparse.Object{
		"kind":    uint8(1),
		"payload": binparse.Object{"value": "hi"},
	})
}

// TestNestPropagatesParent covers Nest passing the enclosing object to the
// sub-parser's Constructor as read-only context.
func TestNestPropagatesParent(t *testing.T) {
	sub := binparse.NewParser(func(parent binparse.Object) binparse.Object {
		obj := make(binparse.Object)
		if parent != nil {
			obj["parentFlag"] = parent["flag"]
		}
		return obj
	}).U8("value")

	p := binparse.NewParser(nil).
		U8("flag").
		Nest("inner", sub)

	obj, err := p.Parse([]byte{0x09, 0x01})
	td.CmpNoError(t, err)
	td.Cmp(t, obj, binparse.Object{
		"flag": uint8(9),
		"inner": binparse.Object{
			"parentFlag": uint8(9),
			"value":      uint8(1),
		},
	})
}

// TestArrayReadUntilEOFKeepsPartial covers the array EOF tolerance
// property: reaching EOF after reading at least one element is the
// array's normal, successful termination, not a failure. Reaching EOF
// having read nothing at all propagates EOF to the caller, same as every
// other field kind's ReadUntilEOF/ZeroTerminated mode.
func TestArrayReadUntilEOFKeepsPartial(t *testing.T) {
	p := binparse.NewParser(nil).
		Array("xs", binparse.ArrayOptions{Type: "uint8", ReadUntilEOF: true})

	obj, err := p.Parse([]byte{1, 2, 3})
	td.CmpNoError(t, err)
	td.Cmp(t, obj, binparse.Object{"xs": []interface{}{uint8(1), uint8(2), uint8(3)}})

	obj, err = p.Parse([]byte{})
	td.CmpNoError(t, err)
	td.CmpNil(t, obj)
}

// TestArrayKeyGroupsElementsIntoMap covers the Key option converting a
// sequence of Object elements into a map keyed by one of their fields.
func TestArrayKeyGroupsElementsIntoMap(t *testing.T) {
	entry := binparse.NewParser(nil).U8("id").U8("value")

	p := binparse.NewParser(nil).
		U8("n").
		Array("entries", binparse.ArrayOptions{Type: entry, Length: "n", Key: "id"})

	obj, err := p.Parse([]byte{2, 1, 0x64, 2, 0xc8})
	td.CmpNoError(t, err)
	td.Cmp(t, obj, binparse.Object{
		"n": uint8(2),
		"entries": map[interface{}]interface{}{
			uint8(1): binparse.Object{"id": uint8(1), "value": uint8(0x64)},
			uint8(2): binparse.Object{"id": uint8(2), "value": uint8(0xc8)},
		},
	})
}

// TestAssertRejectsMismatch covers the Assert option raising AssertError.
func TestAssertRejectsMismatch(t *testing.T) {
	p := binparse.NewParser(nil).U8("magic", binparse.Options{Assert: uint8(0xAB)})

	_, err := p.Parse([]byte{0x00})
	td.CmpError(t, err)
	td.Cmp(t, err.(*binparse.ParseError).Field, "magic")
}

// TestFormatterReplacesDecodedValue covers Formatter running after Assert
// and replacing the stored value.
func TestFormatterReplacesDecodedValue(t *testing.T) {
	p := binparse.NewParser(nil).U8("flag", binparse.Options{
		Formatter: func(_ binparse.Object, val interface{}) interface{} {
			return val.(uint8) != 0
		},
	})

	obj, err := p.Parse([]byte{0x01})
	td.CmpNoError(t, err)
	td.Cmp(t, obj, binparse.Object{"flag": true})
}

// TestFixedSizeDeterminism covers §3 invariant 2: a descriptor built only
// from fixed-width steps reports a known total size, and introducing an
// unknown-sized step (here a zero-terminated string) propagates unknown
// through the whole chain.
func TestFixedSizeDeterminism(t *testing.T) {
	fixed := binparse.NewParser(nil).U8("a").U16BE("b")
	n, ok := fixed.FixedSize()
	td.CmpTrue(t, ok)
	td.Cmp(t, n, 3)

	unknown := binparse.NewParser(nil).
		U8("a").
		String("name", binparse.StringOptions{ZeroTerminated: true}).
		U16BE("b")
	_, ok = unknown.FixedSize()
	td.CmpFalse(t, ok)
}
