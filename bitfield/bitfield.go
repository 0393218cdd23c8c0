// Package bitfield implements the engine's packed bit-field extraction:
// given the raw bytes of a bit-field block and the ordered bit-widths of
// its entries, it recovers each entry's unsigned value.
//
// The JS original this design is specified against reads the block in
// byte-runs of 4, 2 or 1 bytes to stay within 32-bit-signed-integer
// precision, switching to multiplicative composition above 25 accumulated
// bits. Go's native 64-bit integers make both workarounds unnecessary: the
// whole block is read in a single Source.Read, and every field up to the
// package's 53-bit ceiling is extracted by pure uint64 arithmetic. The
// right-to-left assembly the spec describes (process entries in reverse,
// track a bit remainder, mask and shift) is preserved exactly — it is just
// applied to an already-complete integer instead of one filled
// incrementally run by run.
package bitfield

import "fmt"

// MaxWidth is the largest total bit-field width this package will extract.
// The spec requires W<=53 to be preserved even by implementations that
// drop the 25-bit precision switch; above that, float64-compatible
// double-precision round-tripping (the spec's own justification for the
// number) is no longer guaranteed, so builds are rejected rather than
// silently losing precision.
const MaxWidth = 53

// Validate sums bits and checks the result is a supportable total width.
// Each individual width must be at least 1 bit.
func Validate(bits []int) (totalBits int, err error) {
	if len(bits) == 0 {
		return 0, fmt.Errorf("bitfield: no entries")
	}
	for i, b := range bits {
		if b < 1 {
			return 0, fmt.Errorf("bitfield: entry %d has non-positive width %d", i, b)
		}
		totalBits += b
	}
	if totalBits > MaxWidth {
		return 0, fmt.Errorf("bitfield: total width %d exceeds maximum of %d", totalBits, MaxWidth)
	}
	return totalBits, nil
}

// ByteWidth returns the number of bytes a bit-field block of the given
// total bit width occupies on the wire.
func ByteWidth(totalBits int) int {
	return (totalBits + 7) / 8
}

// Unpack extracts each entry's unsigned value from raw, which must be
// exactly ByteWidth(sum(bits)) bytes of big-endian packed data. Values are
// returned in the order of bits; extraction walks the entries right to
// left. The first entry starts at the most significant bit of the first
// byte, and any padding from a non-multiple-of-8 total width sits in the
// unused low bits of the last byte.
func Unpack(raw []byte, bits []int) ([]uint64, error) {
	total, err := Validate(bits)
	if err != nil {
		return nil, err
	}
	want := ByteWidth(total)
	if len(raw) != want {
		return nil, fmt.Errorf("bitfield: need %d bytes for %d bits, got %d", want, total, len(raw))
	}

	var packed uint64
	for _, b := range raw {
		packed = packed<<8 | uint64(b)
	}

	values := make([]uint64, len(bits))
	// Skip the padding bits below the last entry.
	consumed := uint(want*8 - total)
	for i := len(bits) - 1; i >= 0; i-- {
		width := uint(bits[i])
		mask := uint64(1)<<width - 1
		values[i] = (packed >> consumed) & mask
		consumed += width
	}
	return values, nil
}
