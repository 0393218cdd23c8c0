package bitfield_test

import (
	"math/rand"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/binparse/bitfield"
)

func TestUnpackScenario(t *testing.T) {
	// a:3, b:5, c:8 over 0xA5 0xC3 -> {a:5, b:5, c:195}
	values, err := bitfield.Unpack([]byte{0xA5, 0xC3}, []int{3, 5, 8})
	td.CmpNoError(t, err)
	td.Cmp(t, values, []uint64{5, 5, 195})
}

func TestUnpackRejectsWrongLength(t *testing.T) {
	_, err := bitfield.Unpack([]byte{0xA5}, []int{3, 5, 8})
	td.CmpError(t, err)
}

func TestUnpackRejectsOverMaxWidth(t *testing.T) {
	bits := make([]int, 54)
	for i := range bits {
		bits[i] = 1
	}
	_, err := bitfield.Unpack(make([]byte, 7), bits)
	td.CmpError(t, err)
}

func TestUnpackPaddingAtLowEnd(t *testing.T) {
	// total = 13 bits across 2 bytes (16 bits); bottom 3 bits are padding.
	// layout: a(5) | b(8) | 000, pack a=0x1F, b=0xAA
	// value = (a<<8 | b) << 3, with 3 zero pad bits below b.
	a := uint64(0x1F)
	b := uint64(0xAA)
	packed := ((a << 8) | b) << 3
	raw := []byte{byte(packed >> 8), byte(packed)}

	values, err := bitfield.Unpack(raw, []int{5, 8})
	td.CmpNoError(t, err)
	td.Cmp(t, values, []uint64{a, b})
}

func TestUnpackRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		n := 1 + r.Intn(6)
		bits := make([]int, n)
		total := 0
		for i := range bits {
			bits[i] = 1 + r.Intn(10)
			total += bits[i]
		}
		for total > bitfield.MaxWidth {
			i := r.Intn(n)
			if bits[i] > 1 {
				bits[i]--
				total--
			}
		}

		values := make([]uint64, n)
		var packed uint64
		for i := range bits {
			values[i] = uint64(r.Int63()) & (uint64(1)<<uint(bits[i]) - 1)
			packed = packed<<uint(bits[i]) | values[i]
		}

		width := bitfield.ByteWidth(total)
		pad := width*8 - total
		packed <<= uint(pad)

		raw := make([]byte, width)
		for i := width - 1; i >= 0; i-- {
			raw[i] = byte(packed)
			packed >>= 8
		}

		got, err := bitfield.Unpack(raw, bits)
		td.CmpNoError(t, err)
		td.Cmp(t, got, values)
	}
}
